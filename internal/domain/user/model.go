package user

import "time"

type User struct {
	UID         uint      `gorm:"primaryKey;autoIncrement;column:u_id" json:"u_id"`
	Username    string    `gorm:"size:50;not null;unique" json:"username"`
	Password    string    `gorm:"size:100;not null" json:"-"`
	Email       string    `gorm:"size:255;not null;index" json:"email"`
	FullName    *string   `gorm:"size:255;column:full_name" json:"full_name,omitempty"`
	IsSuperuser bool      `gorm:"default:false;not null;column:is_superuser" json:"is_superuser"`
	IsActive    bool      `gorm:"default:true;not null;column:is_active" json:"is_active"`
	CreatedAt   time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
