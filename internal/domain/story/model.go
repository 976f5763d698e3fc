package story

import (
	"time"

	"gorm.io/datatypes"

	"github.com/agily-hq/agily/internal/domain/epic"
)

// StoryState is a configurable workflow state for stories.
type StoryState struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug string `gorm:"size:30;not null;unique" json:"slug"`
	Name string `gorm:"size:100;not null" json:"name"`
	// SType is one of epic.StateUnstarted, epic.StateStarted, epic.StateDone.
	SType int `gorm:"column:stype;default:0;not null" json:"stype"`
}

func (StoryState) TableName() string {
	return "story_states"
}

func (s StoryState) IsDone() bool {
	return s.SType == epic.StateDone
}

type Story struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	PID         uint           `gorm:"not null;column:p_id;index" json:"pid"`
	EpicID      *uint          `gorm:"column:epic_id;index" json:"epic_id,omitempty"`
	SprintID    *uint          `gorm:"column:sprint_id;index" json:"sprint_id,omitempty"`
	Title       string         `gorm:"size:255;not null;index" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	RequesterID *uint          `gorm:"column:requester_id" json:"requester_id,omitempty"`
	AssigneeID  *uint          `gorm:"column:assignee_id;index" json:"assignee_id,omitempty"`
	Priority    int            `gorm:"default:0" json:"priority"`
	Points      int            `gorm:"default:0" json:"points"`
	StateID     *uint          `gorm:"column:state_id" json:"state_id,omitempty"`
	State       *StoryState    `gorm:"foreignKey:StateID" json:"state,omitempty"`
	Tags        datatypes.JSON `gorm:"type:jsonb" json:"tags,omitempty"`

	CompletedAt *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`
	CreatedAt   time.Time  `gorm:"column:create_at;autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (Story) TableName() string {
	return "stories"
}

func (s *Story) IsDone() bool {
	return s.State != nil && s.State.IsDone()
}

// Attachment is an uploaded file hanging off a story.
type Attachment struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	StoryID     uint      `gorm:"not null;index" json:"story_id"`
	FileName    string    `gorm:"size:255;not null" json:"file_name"`
	ObjectKey   string    `gorm:"size:512;not null" json:"object_key"`
	Size        int64     `gorm:"not null" json:"size"`
	ContentType string    `gorm:"size:100" json:"content_type"`
	Description string    `gorm:"size:255" json:"description"`
	UploaderID  *uint     `gorm:"column:uploader_id" json:"uploader_id,omitempty"`
	CreatedAt   time.Time `gorm:"column:create_at;autoCreateTime" json:"uploaded_at"`
}

func (Attachment) TableName() string {
	return "story_attachments"
}
