package api

// Paths of the user-management endpoints.
const (
	pathUserList       = "/api/users/list"
	pathUserDetail     = "/api/users/detail"
	pathUserCreate     = "/api/users/create"
	pathUserUpdate     = "/api/users/update"
	pathUserDelete     = "/api/users/delete"
	pathResetPassword  = "/api/users/reset-password"
	pathRoles          = "/api/users/roles"
	pathProfile        = "/api/users/profile"
	pathProfileUpdate  = "/api/users/profile/update"
	pathChangePassword = "/api/users/change-password"
)

// idParams places a user identifier in the query string.
func idParams(id int64) map[string]any {
	return map[string]any{"id": id}
}
