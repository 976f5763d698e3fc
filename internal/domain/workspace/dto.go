package workspace

type CreateWorkspaceDTO struct {
	Slug        string  `json:"slug" form:"slug" binding:"required,min=2,max=100"`
	Name        string  `json:"name" form:"name" binding:"required,max=255"`
	Description *string `json:"description,omitempty" form:"description,omitempty"`
}

type UpdateWorkspaceDTO struct {
	Name        *string `json:"name,omitempty" form:"name,omitempty" binding:"omitempty,max=255"`
	Description *string `json:"description,omitempty" form:"description,omitempty"`
	OwnerID     *uint   `json:"owner_id,omitempty" form:"owner_id,omitempty"`
}

type MemberInputDTO struct {
	UID  uint   `json:"uid" form:"u_id" binding:"required"`
	Role string `json:"role" form:"role" binding:"required,oneof=project_admin developer tester"`
}
