package epic

import (
	"time"

	"gorm.io/datatypes"
)

// State types shared by epic and story states.
const (
	StateUnstarted = 0
	StateStarted   = 1
	StateDone      = 2
)

// EpicState is a configurable workflow state for epics, seeded from
// configs/states.yaml.
type EpicState struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug string `gorm:"size:30;not null;unique" json:"slug"`
	Name string `gorm:"size:100;not null" json:"name"`
	// SType is one of StateUnstarted, StateStarted, StateDone.
	SType int `gorm:"column:stype;default:0;not null" json:"stype"`
}

func (EpicState) TableName() string {
	return "epic_states"
}

func (s EpicState) IsDone() bool {
	return s.SType == StateDone
}

type Epic struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	WID         uint           `gorm:"not null;column:w_id;index" json:"wid"`
	Title       string         `gorm:"size:255;not null;index" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	OwnerID     *uint          `gorm:"column:owner_id" json:"owner_id,omitempty"`
	Priority    int            `gorm:"default:0" json:"priority"`
	StateID     *uint          `gorm:"column:state_id" json:"state_id,omitempty"`
	State       *EpicState     `gorm:"foreignKey:StateID" json:"state,omitempty"`
	Tags        datatypes.JSON `gorm:"type:jsonb" json:"tags,omitempty"`

	// Rollup fields, derived from child stories. Never hand-edited;
	// recomputed whenever a child story's state or points change.
	TotalPoints int `gorm:"default:0" json:"total_points"`
	StoryCount  int `gorm:"default:0" json:"story_count"`
	PointsDone  int `gorm:"default:0" json:"points_done"`
	Progress    int `gorm:"default:0" json:"progress"`

	CompletedAt *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`
	CreatedAt   time.Time  `gorm:"column:create_at;autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (Epic) TableName() string {
	return "epics"
}

func (e *Epic) IsDone() bool {
	return e.State != nil && e.State.IsDone()
}
