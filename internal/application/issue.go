package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"github.com/agily-hq/agily/internal/domain/issue"
	"github.com/agily-hq/agily/internal/domain/workspace"
	"github.com/agily-hq/agily/internal/repository"
	"github.com/agily-hq/agily/internal/storage"
	"github.com/agily-hq/agily/pkg/utils"
)

var (
	ErrIssueNotFound      = errors.New("issue not found")
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrIssueEditForbidden = errors.New("issue is assigned to another developer")
	ErrNotifyFailed       = errors.New("issue created but notification delivery failed")
)

type IssueService struct {
	Repos    *repository.Repos
	Notifier *Notifier
}

func NewIssueService(repos *repository.Repos, notifier *Notifier) *IssueService {
	return &IssueService{
		Repos:    repos,
		Notifier: notifier,
	}
}

func (s *IssueService) GetIssue(id uint) (*issue.Issue, error) {
	i, err := s.Repos.Issue.GetIssueByID(id)
	if err != nil {
		return nil, ErrIssueNotFound
	}
	return &i, nil
}

// ListIssues returns issues most urgent first.
func (s *IssueService) ListIssues(f issue.ListFilter) ([]issue.Issue, error) {
	return s.Repos.Issue.ListIssues(f)
}

func (s *IssueService) ListIssuesPaging(f issue.ListFilter, page, pageSize int) ([]issue.Issue, int64, error) {
	offset := (page - 1) * pageSize
	return s.Repos.Issue.ListIssuesPaging(f, offset, pageSize)
}

func (s *IssueService) CreateIssue(c *gin.Context, input issue.CreateIssueDTO, requesterID uint) (*issue.Issue, error) {
	if _, err := s.Repos.Project.GetProjectByID(input.PID); err != nil {
		return nil, ErrProjectNotFound
	}

	i := &issue.Issue{
		PID:         input.PID,
		Title:       input.Title,
		Status:      string(issue.StatusOpen),
		Severity:    string(issue.SeverityMedium),
		RequesterID: &requesterID,
	}
	if input.Description != nil {
		i.Description = *input.Description
	}
	if input.Status != nil {
		i.Status = *input.Status
	}
	if input.Severity != nil {
		i.Severity = *input.Severity
	}
	if input.AssigneeID != nil {
		i.AssigneeID = input.AssigneeID
	}

	if err := s.Repos.Issue.CreateIssue(i); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create", "issue", fmt.Sprintf("id=%d", i.ID), nil, i, "", s.Repos.Audit)

	// The issue row is committed either way; a dropped mail must still be
	// reported to the reporter.
	if err := s.Notifier.NotifyCreated(i); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotifyFailed, err)
	}

	return i, nil
}

// checkEditAllowed enforces the one role rule the router cannot express:
// a developer may claim an unassigned issue or edit their own, but not
// touch an issue assigned to someone else.
func (s *IssueService) checkEditAllowed(c *gin.Context, i *issue.Issue) error {
	if utils.IsSuperuserFromContext(c) {
		return nil
	}
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		return err
	}
	wid, err := s.Repos.Project.GetWorkspaceIDByProjectID(i.PID)
	if err != nil {
		return err
	}
	role, err := s.Repos.Workspace.GetMemberRole(wid, uid)
	if err != nil {
		return err
	}
	if role == workspace.RoleDeveloper && i.AssigneeID != nil && *i.AssigneeID != uid {
		return ErrIssueEditForbidden
	}
	return nil
}

func (s *IssueService) UpdateIssue(c *gin.Context, id uint, input issue.UpdateIssueDTO) (*issue.Issue, error) {
	i, err := s.Repos.Issue.GetIssueByID(id)
	if err != nil {
		return nil, ErrIssueNotFound
	}

	if err := s.checkEditAllowed(c, &i); err != nil {
		return nil, err
	}

	oldIssue := i

	if input.Title != nil {
		i.Title = *input.Title
	}
	if input.Description != nil {
		i.Description = *input.Description
	}
	if input.Status != nil {
		i.Status = *input.Status
	}
	if input.Severity != nil {
		i.Severity = *input.Severity
	}
	if input.AssigneeID != nil {
		i.AssigneeID = input.AssigneeID
	}
	if input.Solution != nil {
		i.Solution = input.Solution
	}

	if err := s.Repos.Issue.UpdateIssue(&i); err != nil {
		return nil, err
	}

	if NotifyWorthy(&oldIssue, &i) {
		go s.Notifier.NotifyUpdated(&i)
	}
	utils.LogAuditWithConsole(c, "update", "issue", fmt.Sprintf("id=%d", i.ID), oldIssue, i, "", s.Repos.Audit)

	return &i, nil
}

func (s *IssueService) DeleteIssue(c *gin.Context, id uint) error {
	i, err := s.Repos.Issue.GetIssueByID(id)
	if err != nil {
		return ErrIssueNotFound
	}

	attachments, err := s.Repos.Issue.ListAttachments(id)
	if err != nil {
		return err
	}
	for _, a := range attachments {
		if err := storage.Delete(context.Background(), a.ObjectKey); err != nil {
			return err
		}
		if err := s.Repos.Issue.DeleteAttachment(a.ID); err != nil {
			return err
		}
	}

	if err := s.Repos.Issue.DeleteIssue(id); err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "issue", fmt.Sprintf("id=%d", id), i, nil, "", s.Repos.Audit)

	return nil
}

func (s *IssueService) ListAttachments(issueID uint) ([]issue.Attachment, error) {
	if _, err := s.Repos.Issue.GetIssueByID(issueID); err != nil {
		return nil, ErrIssueNotFound
	}
	return s.Repos.Issue.ListAttachments(issueID)
}

func (s *IssueService) UploadAttachment(c *gin.Context, issueID uint, header *multipart.FileHeader, description string, uploaderID uint) (*issue.Attachment, error) {
	if _, err := s.Repos.Issue.GetIssueByID(issueID); err != nil {
		return nil, ErrIssueNotFound
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	key := storage.ObjectKey("issue_attachments", header.Filename)
	contentType := header.Header.Get("Content-Type")
	if err := storage.Upload(c.Request.Context(), key, file, header.Size, contentType); err != nil {
		return nil, err
	}

	a := &issue.Attachment{
		IssueID:     issueID,
		FileName:    header.Filename,
		ObjectKey:   key,
		Size:        header.Size,
		ContentType: contentType,
		Description: description,
		UploaderID:  &uploaderID,
	}
	if err := s.Repos.Issue.CreateAttachment(a); err != nil {
		// Roll back the uploaded object so the store does not leak.
		_ = storage.Delete(context.Background(), key)
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create", "issue_attachment", fmt.Sprintf("id=%d", a.ID), nil, a, "", s.Repos.Audit)

	return a, nil
}

func (s *IssueService) OpenAttachment(ctx context.Context, id uint) (*issue.Attachment, io.ReadCloser, error) {
	a, err := s.Repos.Issue.GetAttachmentByID(id)
	if err != nil {
		return nil, nil, ErrAttachmentNotFound
	}
	rc, err := storage.Download(ctx, a.ObjectKey)
	if err != nil {
		return nil, nil, err
	}
	return &a, rc, nil
}

func (s *IssueService) DeleteAttachment(c *gin.Context, id uint) error {
	a, err := s.Repos.Issue.GetAttachmentByID(id)
	if err != nil {
		return ErrAttachmentNotFound
	}

	if err := storage.Delete(context.Background(), a.ObjectKey); err != nil {
		return err
	}
	if err := s.Repos.Issue.DeleteAttachment(id); err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "issue_attachment", fmt.Sprintf("id=%d", id), a, nil, "", s.Repos.Audit)

	return nil
}
