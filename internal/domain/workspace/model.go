package workspace

import "time"

// Role names a member can hold inside a workspace.
const (
	RoleProjectAdmin = "project_admin"
	RoleDeveloper    = "developer"
	RoleTester       = "tester"
)

type Workspace struct {
	WID         uint      `gorm:"primaryKey;column:w_id;autoIncrement" json:"wid"`
	Slug        string    `gorm:"size:100;not null;unique" json:"slug"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	OwnerID     *uint     `gorm:"column:owner_id" json:"owner_id,omitempty"`
	CreatedAt   time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (Workspace) TableName() string {
	return "workspaces"
}

type Member struct {
	WID       uint      `gorm:"primaryKey;column:w_id" json:"wid"`
	UID       uint      `gorm:"primaryKey;column:u_id" json:"uid"`
	Role      string    `gorm:"size:30;default:'developer';not null" json:"role"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (Member) TableName() string {
	return "workspace_members"
}
