package job

import "time"

type Status string

const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

type Action string

const (
	ActionRemove      Action = "remove"
	ActionDuplicate   Action = "duplicate"
	ActionSetState    Action = "set_state"
	ActionSetAssignee Action = "set_assignee"
	ActionSetOwner    Action = "set_owner"
	ActionSetSprint   Action = "set_sprint"
	ActionSetEpic     Action = "set_epic"
	ActionResetEpic   Action = "reset_epic"
)

type TargetKind string

const (
	TargetStory     TargetKind = "story"
	TargetEpic      TargetKind = "epic"
	TargetProject   TargetKind = "project"
	TargetWorkspace TargetKind = "workspace"
)

// BulkJob is one queued bulk action over a set of rows. The idempotency key
// makes a retried enqueue a no-op instead of a double-apply.
type BulkJob struct {
	ID             uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	IdempotencyKey string     `gorm:"size:64;not null;unique;column:idempotency_key" json:"idempotency_key"`
	Action         string     `gorm:"size:30;not null" json:"action"`
	TargetKind     string     `gorm:"size:20;not null;column:target_kind" json:"target_kind"`
	TargetIDs      string     `gorm:"type:text;not null;column:target_ids" json:"target_ids"`
	Argument       string     `gorm:"size:255" json:"argument,omitempty"`
	Status         string     `gorm:"size:20;default:'queued';not null;index" json:"status"`
	Error          string     `gorm:"type:text" json:"error,omitempty"`
	RequestedBy    *uint      `gorm:"column:requested_by" json:"requested_by,omitempty"`
	StartedAt      *time.Time `gorm:"column:started_at" json:"started_at,omitempty"`
	FinishedAt     *time.Time `gorm:"column:finished_at" json:"finished_at,omitempty"`
	CreatedAt      time.Time  `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (BulkJob) TableName() string {
	return "bulk_jobs"
}
