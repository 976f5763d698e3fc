package sprint

import "time"

type CreateSprintDTO struct {
	PID         uint      `json:"pid" form:"p_id" binding:"required"`
	Title       string    `json:"title" form:"title" binding:"required,max=255"`
	Description *string   `json:"description,omitempty" form:"description,omitempty"`
	StartsAt    time.Time `json:"starts_at" form:"starts_at" binding:"required" time_format:"2006-01-02"`
	EndsAt      time.Time `json:"ends_at" form:"ends_at" binding:"required" time_format:"2006-01-02"`
}

type UpdateSprintDTO struct {
	Title       *string    `json:"title,omitempty" form:"title,omitempty" binding:"omitempty,max=255"`
	Description *string    `json:"description,omitempty" form:"description,omitempty"`
	StartsAt    *time.Time `json:"starts_at,omitempty" form:"starts_at,omitempty" time_format:"2006-01-02"`
	EndsAt      *time.Time `json:"ends_at,omitempty" form:"ends_at,omitempty" time_format:"2006-01-02"`
}
