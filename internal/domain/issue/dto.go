package issue

type CreateIssueDTO struct {
	PID         uint    `json:"pid" form:"p_id" binding:"required"`
	Title       string  `json:"title" form:"title" binding:"required,max=255"`
	Description *string `json:"description,omitempty" form:"description,omitempty"`
	Status      *string `json:"status,omitempty" form:"status,omitempty" binding:"omitempty,oneof=open resolved closed"`
	Severity    *string `json:"severity,omitempty" form:"severity,omitempty" binding:"omitempty,oneof=low medium high critical"`
	AssigneeID  *uint   `json:"assignee_id,omitempty" form:"assignee_id,omitempty"`
}

type UpdateIssueDTO struct {
	Title       *string `json:"title,omitempty" form:"title,omitempty" binding:"omitempty,max=255"`
	Description *string `json:"description,omitempty" form:"description,omitempty"`
	Status      *string `json:"status,omitempty" form:"status,omitempty" binding:"omitempty,oneof=open resolved closed"`
	Severity    *string `json:"severity,omitempty" form:"severity,omitempty" binding:"omitempty,oneof=low medium high critical"`
	AssigneeID  *uint   `json:"assignee_id,omitempty" form:"assignee_id,omitempty"`
	Solution    *string `json:"solution,omitempty" form:"solution,omitempty"`
}

// ListFilter narrows issue list and export queries.
type ListFilter struct {
	WID        *uint
	PID        *uint
	AssigneeID *uint
	IssueID    *uint
}
