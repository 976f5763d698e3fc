package epic

type CreateEpicDTO struct {
	WID         uint     `json:"wid" form:"w_id"`
	Title       string   `json:"title" form:"title" binding:"required,max=255"`
	Description *string  `json:"description,omitempty" form:"description,omitempty"`
	OwnerID     *uint    `json:"owner_id,omitempty" form:"owner_id,omitempty"`
	Priority    *int     `json:"priority,omitempty" form:"priority,omitempty"`
	State       *string  `json:"state,omitempty" form:"state,omitempty"`
	Tags        []string `json:"tags,omitempty" form:"tags,omitempty"`
}

type UpdateEpicDTO struct {
	Title       *string   `json:"title,omitempty" form:"title,omitempty" binding:"omitempty,max=255"`
	Description *string   `json:"description,omitempty" form:"description,omitempty"`
	OwnerID     *uint     `json:"owner_id,omitempty" form:"owner_id,omitempty"`
	Priority    *int      `json:"priority,omitempty" form:"priority,omitempty"`
	State       *string   `json:"state,omitempty" form:"state,omitempty"`
	Tags        *[]string `json:"tags,omitempty" form:"tags,omitempty"`
}
