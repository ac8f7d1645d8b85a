package request

type UpdateUserRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	IsActive bool    `json:"is_active"`
}

type UpdateUserRolesRequest struct {
	RoleIDs []int64 `json:"role_ids"`
}
