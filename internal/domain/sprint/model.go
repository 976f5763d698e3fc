package sprint

import "time"

type State string

const (
	StatePlanned  State = "planned"
	StateStarted  State = "started"
	StateFinished State = "finished"
)

// Sprint is a time-boxed container of stories within a project. Its state
// follows the clock: the hourly refresher moves it to started/finished as
// starts_at and ends_at pass.
type Sprint struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PID         uint      `gorm:"not null;column:p_id;index" json:"pid"`
	Title       string    `gorm:"size:255;not null;index" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	StartsAt    time.Time `gorm:"column:starts_at;not null;index" json:"starts_at"`
	EndsAt      time.Time `gorm:"column:ends_at;not null;index" json:"ends_at"`
	State       string    `gorm:"size:20;default:'planned';not null" json:"state"`

	TotalPoints int `gorm:"default:0" json:"total_points"`
	StoryCount  int `gorm:"default:0" json:"story_count"`
	PointsDone  int `gorm:"default:0" json:"points_done"`
	Progress    int `gorm:"default:0" json:"progress"`

	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (Sprint) TableName() string {
	return "sprints"
}

// NextState returns the state the sprint should be in at the given time.
func (s *Sprint) NextState(now time.Time) State {
	switch {
	case !now.Before(s.EndsAt):
		return StateFinished
	case !now.Before(s.StartsAt):
		return StateStarted
	default:
		return StatePlanned
	}
}
