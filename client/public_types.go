package client

import "github.com/herbiel/QuantDinger/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Transport plumbing
	Descriptor = types.Descriptor
	Transport  = types.Transport

	// Requests
	ListUsersParams       = types.ListUsersParams
	CreateUserRequest     = types.CreateUserRequest
	UpdateUserRequest     = types.UpdateUserRequest
	ResetPasswordRequest  = types.ResetPasswordRequest
	UpdateProfileRequest  = types.UpdateProfileRequest
	ChangePasswordRequest = types.ChangePasswordRequest

	// Domain entities
	User    = types.User
	Profile = types.Profile
	Role    = types.Role

	// Responses
	UserList    = types.UserList
	CreatedUser = types.CreatedUser
)

// Role identifiers and account statuses understood by the backend.
const (
	RoleViewer  = types.RoleViewer
	RoleUser    = types.RoleUser
	RoleManager = types.RoleManager
	RoleAdmin   = types.RoleAdmin

	StatusActive   = types.StatusActive
	StatusDisabled = types.StatusDisabled
)

// String returns a pointer to s, for the optional fields of partial updates.
func String(s string) *string { return &s }
