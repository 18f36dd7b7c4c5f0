package api

import (
	"context"
	"net/http"

	"github.com/herbiel/QuantDinger/client/internal/types"
)

// Self-service operations act on the user owning the session token.

// GetProfile returns the caller's profile.
func GetProfile(ctx context.Context, t types.Transport) (*types.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var p types.Profile
	if err := t.Send(ctx, types.Descriptor{URL: pathProfile, Method: http.MethodGet}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProfile changes nickname, email or avatar of the caller.
func UpdateProfile(ctx context.Context, t types.Transport, req types.UpdateProfileRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return t.Send(ctx, types.Descriptor{URL: pathProfileUpdate, Method: http.MethodPut, Data: req}, nil)
}

// ChangePassword replaces the caller's password.
func ChangePassword(ctx context.Context, t types.Transport, req types.ChangePasswordRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return t.Send(ctx, types.Descriptor{URL: pathChangePassword, Method: http.MethodPost, Data: req}, nil)
}
