package types

// ------------------------------
// Request Types
// ------------------------------

// ListUsersParams selects a page of the user list. Zero values are left to
// server defaults (page 1, 20 per page).
type ListUsersParams struct {
	Page     int
	PageSize int
}

// CreateUserRequest holds parameters for a new user.
type CreateUserRequest struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Email    string `json:"email,omitempty" yaml:"email"`
	Nickname string `json:"nickname,omitempty" yaml:"nickname"`
	Role     string `json:"role,omitempty" yaml:"role"`
}

// UpdateUserRequest is a partial update; nil fields are not sent.
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty"`
	Nickname *string `json:"nickname,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
	Role     *string `json:"role,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// ResetPasswordRequest sets a new password for another user (admin only).
type ResetPasswordRequest struct {
	UserID      int64  `json:"user_id"`
	NewPassword string `json:"new_password"`
}

// UpdateProfileRequest is a partial update of the caller's own profile.
type UpdateProfileRequest struct {
	Nickname *string `json:"nickname,omitempty"`
	Email    *string `json:"email,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}

// ChangePasswordRequest changes the caller's own password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}
