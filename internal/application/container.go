package application

import (
	"github.com/agily-hq/agily/internal/notify"
	"github.com/agily-hq/agily/internal/repository"
)

type Services struct {
	Audit     *AuditService
	User      *UserService
	Workspace *WorkspaceService
	Project   *ProjectService
	Issue     *IssueService
	Epic      *EpicService
	Story     *StoryService
	Sprint    *SprintService
	Rollup    *RollupService
	Notifier  *Notifier
	Excel     *ExcelService
	Bulk      *BulkService
	Dashboard *DashboardService
}

func New(repos *repository.Repos, sender notify.Sender) *Services {
	notifier := NewNotifier(repos, sender)
	rollup := NewRollupService(repos)
	return &Services{
		Audit:     NewAuditService(repos),
		User:      NewUserService(repos),
		Workspace: NewWorkspaceService(repos),
		Project:   NewProjectService(repos),
		Issue:     NewIssueService(repos, notifier),
		Epic:      NewEpicService(repos, rollup),
		Story:     NewStoryService(repos, rollup),
		Sprint:    NewSprintService(repos, rollup),
		Rollup:    rollup,
		Notifier:  notifier,
		Excel:     NewExcelService(repos),
		Bulk:      NewBulkService(repos),
		Dashboard: NewDashboardService(repos),
	}
}
