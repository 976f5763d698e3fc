package issue

import "time"

type Status string

const (
	StatusOpen     Status = "open"
	StatusResolved Status = "resolved"
	StatusClosed   Status = "closed"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// SeverityRank orders severities for list views, most urgent first.
func SeverityRank(s string) int {
	switch Severity(s) {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	default:
		return 3
	}
}

type Issue struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PID         uint      `gorm:"not null;column:p_id;index" json:"pid"`
	Title       string    `gorm:"size:255;not null;index" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Status      string    `gorm:"size:20;default:'open';not null" json:"status"`
	Severity    string    `gorm:"size:10;default:'medium';not null" json:"severity"`
	RequesterID *uint     `gorm:"column:requester_id" json:"requester_id,omitempty"`
	AssigneeID  *uint     `gorm:"column:assignee_id;index" json:"assignee_id,omitempty"`
	Solution    *string   `gorm:"type:text" json:"solution,omitempty"`
	CreatedAt   time.Time `gorm:"column:create_at;autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

func (Issue) TableName() string {
	return "issues"
}

// Attachment is an uploaded file hanging off an issue, stored in the
// object store under a date-bucketed key.
type Attachment struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	IssueID     uint      `gorm:"not null;index" json:"issue_id"`
	FileName    string    `gorm:"size:255;not null" json:"file_name"`
	ObjectKey   string    `gorm:"size:512;not null" json:"object_key"`
	Size        int64     `gorm:"not null" json:"size"`
	ContentType string    `gorm:"size:100" json:"content_type"`
	Description string    `gorm:"size:255" json:"description"`
	UploaderID  *uint     `gorm:"column:uploader_id" json:"uploader_id,omitempty"`
	CreatedAt   time.Time `gorm:"column:create_at;autoCreateTime" json:"uploaded_at"`
}

func (Attachment) TableName() string {
	return "issue_attachments"
}
