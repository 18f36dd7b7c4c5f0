package api

import (
	"context"
	"net/http"

	"github.com/herbiel/QuantDinger/client/internal/types"
)

// Admin operations. Every function builds one Descriptor and hands it to the
// transport; transport errors are returned unchanged.

// GetUserList fetches one page of users.
func GetUserList(ctx context.Context, t types.Transport, p types.ListUsersParams) (*types.UserList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	params := map[string]any{}
	if p.Page != 0 {
		params["page"] = p.Page
	}
	if p.PageSize != 0 {
		params["page_size"] = p.PageSize
	}
	var list types.UserList
	if err := t.Send(ctx, types.Descriptor{URL: pathUserList, Method: http.MethodGet, Params: params}, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetUserDetail retrieves a user by ID.
func GetUserDetail(ctx context.Context, t types.Transport, id int64) (*types.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var user types.User
	if err := t.Send(ctx, types.Descriptor{URL: pathUserDetail, Method: http.MethodGet, Params: idParams(id)}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser registers a new user. Required fields are enforced server-side.
func CreateUser(ctx context.Context, t types.Transport, req types.CreateUserRequest) (*types.CreatedUser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var created types.CreatedUser
	if err := t.Send(ctx, types.Descriptor{URL: pathUserCreate, Method: http.MethodPost, Data: req}, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateUser applies a partial update to the user identified by id.
func UpdateUser(ctx context.Context, t types.Transport, id int64, req types.UpdateUserRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return t.Send(ctx, types.Descriptor{URL: pathUserUpdate, Method: http.MethodPut, Params: idParams(id), Data: req}, nil)
}

// DeleteUser removes a user by ID.
func DeleteUser(ctx context.Context, t types.Transport, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return t.Send(ctx, types.Descriptor{URL: pathUserDelete, Method: http.MethodDelete, Params: idParams(id)}, nil)
}

// ResetUserPassword overwrites another user's password.
func ResetUserPassword(ctx context.Context, t types.Transport, req types.ResetPasswordRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return t.Send(ctx, types.Descriptor{URL: pathResetPassword, Method: http.MethodPost, Data: req}, nil)
}

// GetRoles lists the assignable roles.
func GetRoles(ctx context.Context, t types.Transport) ([]types.Role, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var lr types.ListRolesResponse
	if err := t.Send(ctx, types.Descriptor{URL: pathRoles, Method: http.MethodGet}, &lr); err != nil {
		return nil, err
	}
	return lr.Roles, nil
}
