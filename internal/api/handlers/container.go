package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/agily-hq/agily/internal/application"
	"github.com/agily-hq/agily/internal/repository"
)

type Handlers struct {
	Audit      *AuditHandler
	User       *UserHandler
	Workspace  *WorkspaceHandler
	Project    *ProjectHandler
	Issue      *IssueHandler
	Epic       *EpicHandler
	Story      *StoryHandler
	Sprint     *SprintHandler
	Attachment *AttachmentHandler
	Excel      *ExcelHandler
	Bulk       *BulkHandler
	Dashboard  *DashboardHandler
	Router     *gin.Engine
}

func New(svc *application.Services, repos *repository.Repos, router *gin.Engine) *Handlers {
	h := &Handlers{
		Audit:      NewAuditHandler(svc.Audit),
		User:       NewUserHandler(svc.User),
		Workspace:  NewWorkspaceHandler(svc.Workspace),
		Project:    NewProjectHandler(svc.Project),
		Issue:      NewIssueHandler(svc.Issue),
		Epic:       NewEpicHandler(svc.Epic),
		Story:      NewStoryHandler(svc.Story),
		Sprint:     NewSprintHandler(svc.Sprint),
		Attachment: NewAttachmentHandler(svc.Issue, svc.Story),
		Excel:      NewExcelHandler(svc.Excel),
		Bulk:       NewBulkHandler(svc.Bulk),
		Dashboard:  NewDashboardHandler(svc.Dashboard, repos),
		Router:     router,
	}
	return h
}
