package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// Role identifiers known to the backend, ordered by privilege.
const (
	RoleViewer  = "viewer"
	RoleUser    = "user"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

// User account statuses.
const (
	StatusActive   = "active"
	StatusDisabled = "disabled"
)

// User represents a user account as returned by the admin endpoints.
// Timestamps are kept verbatim; the backend renders them as HTTP dates or null.
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email,omitempty"`
	Nickname    string `json:"nickname,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
	Status      string `json:"status,omitempty"`
	Role        string `json:"role,omitempty"`
	LastLoginAt string `json:"last_login_at,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// Profile is the current user's record plus the permissions granted by its role.
type Profile struct {
	User
	Permissions []string `json:"permissions,omitempty"`
}

// Role describes an assignable role and its permissions.
type Role struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}
