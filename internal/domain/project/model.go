package project

import "time"

// Project lives inside a workspace. Name is unique per workspace, enforced
// by a composite index so the DB backs up the form-level validation.
type Project struct {
	PID            uint      `gorm:"primaryKey;column:p_id;autoIncrement" json:"pid"`
	Name           string    `gorm:"size:255;not null;uniqueIndex:uniq_project_name_ws" json:"name"`
	Description    string    `gorm:"type:text" json:"description"`
	WID            uint      `gorm:"not null;uniqueIndex:uniq_project_name_ws;column:w_id" json:"wid"`
	ProjectAdminID *uint     `gorm:"column:project_admin_id" json:"project_admin_id,omitempty"`
	CreatedAt      time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}
