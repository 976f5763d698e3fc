package story

type CreateStoryDTO struct {
	PID         uint     `json:"pid" form:"p_id" binding:"required"`
	EpicID      *uint    `json:"epic_id,omitempty" form:"epic_id,omitempty"`
	SprintID    *uint    `json:"sprint_id,omitempty" form:"sprint_id,omitempty"`
	Title       string   `json:"title" form:"title" binding:"required,max=255"`
	Description *string  `json:"description,omitempty" form:"description,omitempty"`
	RequesterID *uint    `json:"requester_id,omitempty" form:"requester_id,omitempty"`
	AssigneeID  *uint    `json:"assignee_id,omitempty" form:"assignee_id,omitempty"`
	Priority    *int     `json:"priority,omitempty" form:"priority,omitempty"`
	Points      *int     `json:"points,omitempty" form:"points,omitempty"`
	State       *string  `json:"state,omitempty" form:"state,omitempty"`
	Tags        []string `json:"tags,omitempty" form:"tags,omitempty"`
}

type UpdateStoryDTO struct {
	EpicID      *uint     `json:"epic_id,omitempty" form:"epic_id,omitempty"`
	SprintID    *uint     `json:"sprint_id,omitempty" form:"sprint_id,omitempty"`
	Title       *string   `json:"title,omitempty" form:"title,omitempty" binding:"omitempty,max=255"`
	Description *string   `json:"description,omitempty" form:"description,omitempty"`
	RequesterID *uint     `json:"requester_id,omitempty" form:"requester_id,omitempty"`
	AssigneeID  *uint     `json:"assignee_id,omitempty" form:"assignee_id,omitempty"`
	Priority    *int      `json:"priority,omitempty" form:"priority,omitempty"`
	Points      *int      `json:"points,omitempty" form:"points,omitempty"`
	State       *string   `json:"state,omitempty" form:"state,omitempty"`
	Tags        *[]string `json:"tags,omitempty" form:"tags,omitempty"`
}
