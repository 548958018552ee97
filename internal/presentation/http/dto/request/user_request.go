package request

// CreateUserRequest creates a staff account
type CreateUserRequest struct {
	FirstName string `json:"first_name" binding:"required,min=2,max=255"`
	LastName  string `json:"last_name" binding:"required,min=2,max=255"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	RoleIDs   []uint `json:"role_ids"`
}

// UpdateUserRolesRequest replaces a user's roles
type UpdateUserRolesRequest struct {
	RoleIDs []uint `json:"role_ids" binding:"required"`
}

// SetUserActiveRequest enables or disables a staff account
type SetUserActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
