package user

type CreateUserInput struct {
	Username string  `json:"username" form:"username" binding:"required,min=3,max=50"`
	Password string  `json:"password" form:"password" binding:"required,min=8,max=72"`
	Email    string  `json:"email" form:"email" binding:"required,email"`
	FullName *string `json:"full_name,omitempty" form:"full_name,omitempty"`
}

type UpdateUserInput struct {
	Password *string `json:"password,omitempty" form:"password,omitempty" binding:"omitempty,min=8,max=72"`
	Email    *string `json:"email,omitempty" form:"email,omitempty" binding:"omitempty,email"`
	FullName *string `json:"full_name,omitempty" form:"full_name,omitempty"`
	IsActive *bool   `json:"is_active,omitempty" form:"is_active,omitempty"`
}
