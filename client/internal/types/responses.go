package types

// ------------------------------
// Response Types
// ------------------------------

// UserList is one page of users.
type UserList struct {
	Items      []User `json:"items"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalPages int    `json:"total_pages"`
}

// CreatedUser carries the identifier assigned to a new user.
type CreatedUser struct {
	ID int64 `json:"id"`
}

// ListRolesResponse wraps the roles endpoint payload.
type ListRolesResponse struct {
	Roles []Role `json:"roles"`
}
