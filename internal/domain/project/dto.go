package project

type CreateProjectDTO struct {
	Name           string  `json:"name" form:"name" binding:"required,max=255"`
	Description    *string `json:"description,omitempty" form:"description,omitempty"`
	ProjectAdminID *uint   `json:"project_admin_id,omitempty" form:"project_admin_id,omitempty"`

	// WID is filled from the resolved workspace, never from the payload.
	WID uint `json:"-" form:"-"`
}

type UpdateProjectDTO struct {
	Name           *string `json:"name,omitempty" form:"name,omitempty" binding:"omitempty,max=255"`
	Description    *string `json:"description,omitempty" form:"description,omitempty"`
	ProjectAdminID *uint   `json:"project_admin_id,omitempty" form:"project_admin_id,omitempty"`
}
