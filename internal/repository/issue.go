package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/agily-hq/agily/internal/domain/issue"
)

// severityOrder ranks critical first, then important, normal, low.
// Unknown values sort with low. Ties break on newest first.
const severityOrder = "CASE severity WHEN 'critical' THEN 0 WHEN 'high' THEN 1 WHEN 'medium' THEN 2 ELSE 3 END, create_at DESC"

// ExportFilter narrows spreadsheet export. Nil fields are ignored.
type ExportFilter struct {
	WID        *uint
	PID        *uint
	AssigneeID *uint
}

// ExportRow is the flattened issue view consumed by spreadsheet export.
type ExportRow struct {
	ID            uint
	Title         string
	Description   string
	Status        string
	Severity      string
	ProjectName   string
	RequesterName string
	AssigneeName  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type IssueRepo interface {
	CreateIssue(i *issue.Issue) error
	GetIssueByID(id uint) (issue.Issue, error)
	ListIssues(f issue.ListFilter) ([]issue.Issue, error)
	ListIssuesPaging(f issue.ListFilter, offset, limit int) ([]issue.Issue, int64, error)
	ListExportRows(f ExportFilter) ([]ExportRow, error)
	CountByStatus(pid uint, status string) (int64, error)
	CountAssignedOpen(uid uint) (int64, error)
	CountRequestedSince(uid uint, since time.Time) (int64, error)
	ListAssignedOpen(uid uint, limit int) ([]issue.Issue, error)
	ListRequestedSince(uid uint, since time.Time, limit int) ([]issue.Issue, error)
	ListRecentByProjects(pids []uint, since time.Time, limit int) ([]issue.Issue, error)
	UpdateIssue(i *issue.Issue) error
	DeleteIssue(id uint) error
	CreateAttachment(a *issue.Attachment) error
	GetAttachmentByID(id uint) (issue.Attachment, error)
	ListAttachments(issueID uint) ([]issue.Attachment, error)
	DeleteAttachment(id uint) error
	WithTx(tx *gorm.DB) IssueRepo
}

type DBIssueRepo struct {
	db *gorm.DB
}

func NewIssueRepo(db *gorm.DB) *DBIssueRepo {
	return &DBIssueRepo{db: db}
}

func (r *DBIssueRepo) CreateIssue(i *issue.Issue) error {
	return r.db.Create(i).Error
}

func (r *DBIssueRepo) GetIssueByID(id uint) (issue.Issue, error) {
	var i issue.Issue
	err := r.db.First(&i, id).Error
	return i, err
}

func (r *DBIssueRepo) filtered(f issue.ListFilter) *gorm.DB {
	q := r.db.Model(&issue.Issue{})
	if f.WID != nil {
		q = q.Where("p_id IN (?)", r.db.Table("projects").Select("p_id").Where("w_id = ?", *f.WID))
	}
	if f.PID != nil {
		q = q.Where("p_id = ?", *f.PID)
	}
	if f.AssigneeID != nil {
		q = q.Where("assignee_id = ?", *f.AssigneeID)
	}
	if f.IssueID != nil {
		q = q.Where("id = ?", *f.IssueID)
	}
	return q
}

func (r *DBIssueRepo) ListIssues(f issue.ListFilter) ([]issue.Issue, error) {
	var issues []issue.Issue
	err := r.filtered(f).Order(severityOrder).Find(&issues).Error
	return issues, err
}

func (r *DBIssueRepo) ListIssuesPaging(f issue.ListFilter, offset, limit int) ([]issue.Issue, int64, error) {
	var issues []issue.Issue
	var total int64
	if err := r.filtered(f).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.filtered(f).Order(severityOrder).Offset(offset).Limit(limit).Find(&issues).Error
	return issues, total, err
}

func (r *DBIssueRepo) ListExportRows(f ExportFilter) ([]ExportRow, error) {
	q := r.db.Table("issues").
		Select(`issues.id, issues.title, issues.description, issues.status, issues.severity,
			projects.name AS project_name,
			COALESCE(requesters.username, '') AS requester_name,
			COALESCE(assignees.username, '') AS assignee_name,
			issues.create_at AS created_at, issues.update_at AS updated_at`).
		Joins("JOIN projects ON projects.p_id = issues.p_id").
		Joins("LEFT JOIN users AS requesters ON requesters.u_id = issues.requester_id").
		Joins("LEFT JOIN users AS assignees ON assignees.u_id = issues.assignee_id")
	if f.WID != nil {
		q = q.Where("projects.w_id = ?", *f.WID)
	}
	if f.PID != nil {
		q = q.Where("issues.p_id = ?", *f.PID)
	}
	if f.AssigneeID != nil {
		q = q.Where("issues.assignee_id = ?", *f.AssigneeID)
	}

	var rows []ExportRow
	err := q.Order("issues.id ASC").Scan(&rows).Error
	return rows, err
}

func (r *DBIssueRepo) CountByStatus(pid uint, status string) (int64, error) {
	var n int64
	err := r.db.Model(&issue.Issue{}).Where("p_id = ? AND status = ?", pid, status).Count(&n).Error
	return n, err
}

func (r *DBIssueRepo) CountAssignedOpen(uid uint) (int64, error) {
	var n int64
	err := r.db.Model(&issue.Issue{}).
		Where("assignee_id = ? AND status <> ?", uid, issue.StatusClosed).
		Count(&n).Error
	return n, err
}

func (r *DBIssueRepo) CountRequestedSince(uid uint, since time.Time) (int64, error) {
	var n int64
	err := r.db.Model(&issue.Issue{}).
		Where("requester_id = ? AND create_at >= ?", uid, since).
		Count(&n).Error
	return n, err
}

func (r *DBIssueRepo) ListAssignedOpen(uid uint, limit int) ([]issue.Issue, error) {
	var issues []issue.Issue
	err := r.db.Where("assignee_id = ? AND status <> ?", uid, issue.StatusClosed).
		Order(severityOrder).Limit(limit).Find(&issues).Error
	return issues, err
}

func (r *DBIssueRepo) ListRequestedSince(uid uint, since time.Time, limit int) ([]issue.Issue, error) {
	var issues []issue.Issue
	err := r.db.Where("requester_id = ? AND create_at >= ?", uid, since).
		Order("create_at DESC").Limit(limit).Find(&issues).Error
	return issues, err
}

func (r *DBIssueRepo) ListRecentByProjects(pids []uint, since time.Time, limit int) ([]issue.Issue, error) {
	if len(pids) == 0 {
		return nil, nil
	}
	var issues []issue.Issue
	err := r.db.Where("p_id IN ? AND create_at >= ?", pids, since).
		Order("create_at DESC").Limit(limit).Find(&issues).Error
	return issues, err
}

func (r *DBIssueRepo) UpdateIssue(i *issue.Issue) error {
	return r.db.Save(i).Error
}

func (r *DBIssueRepo) DeleteIssue(id uint) error {
	return r.db.Delete(&issue.Issue{}, id).Error
}

func (r *DBIssueRepo) CreateAttachment(a *issue.Attachment) error {
	return r.db.Create(a).Error
}

func (r *DBIssueRepo) GetAttachmentByID(id uint) (issue.Attachment, error) {
	var a issue.Attachment
	err := r.db.First(&a, id).Error
	return a, err
}

func (r *DBIssueRepo) ListAttachments(issueID uint) ([]issue.Attachment, error) {
	var list []issue.Attachment
	err := r.db.Where("issue_id = ?", issueID).Order("id").Find(&list).Error
	return list, err
}

func (r *DBIssueRepo) DeleteAttachment(id uint) error {
	return r.db.Delete(&issue.Attachment{}, id).Error
}

func (r *DBIssueRepo) WithTx(tx *gorm.DB) IssueRepo {
	if tx == nil {
		return r
	}
	return &DBIssueRepo{db: tx}
}
