package application

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/agily-hq/agily/internal/domain/issue"
	"github.com/agily-hq/agily/internal/domain/project"
	"github.com/agily-hq/agily/internal/domain/user"
	"github.com/agily-hq/agily/internal/domain/workspace"
	"github.com/agily-hq/agily/internal/repository"
	"github.com/agily-hq/agily/internal/repository/mock"
	"github.com/agily-hq/agily/pkg/types"
	"github.com/agily-hq/agily/pkg/utils"
)

func issueTestContext(uid uint) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/w/acme/issues", nil)
	c.Set("claims", &types.Claims{UserID: uid, Username: "tess"})
	return c
}

func muteAuditLog(t *testing.T) {
	orig := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(*gin.Context, string, string, string, interface{}, interface{}, string, repository.AuditRepo) {}
	t.Cleanup(func() { utils.LogAuditWithConsole = orig })
}

func setupIssueServiceMocks(t *testing.T, sender *failingSender) (*IssueService, *mock.MockIssueRepo, *mock.MockProjectRepo, *mock.MockUserRepo, *mock.MockWorkspaceRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockIssue := mock.NewMockIssueRepo(ctrl)
	mockProject := mock.NewMockProjectRepo(ctrl)
	mockUser := mock.NewMockUserRepo(ctrl)
	mockWorkspace := mock.NewMockWorkspaceRepo(ctrl)
	repos := &repository.Repos{
		Issue:     mockIssue,
		Project:   mockProject,
		User:      mockUser,
		Workspace: mockWorkspace,
	}
	return NewIssueService(repos, NewNotifier(repos, sender)), mockIssue, mockProject, mockUser, mockWorkspace
}

// --------------------- CreateIssue ---------------------
func TestCreateIssue_MailFailureFailsRequest(t *testing.T) {
	muteAuditLog(t)
	svc, mockIssue, mockProject, mockUser, _ := setupIssueServiceMocks(t,
		&failingSender{err: errors.New("smtp: connection refused")})

	mockProject.EXPECT().GetProjectByID(uint(3)).Return(project.Project{PID: 3, WID: 2}, nil).Times(2)
	mockIssue.EXPECT().CreateIssue(gomock.Any()).DoAndReturn(func(i *issue.Issue) error {
		i.ID = 1
		return nil
	})
	mockUser.EXPECT().ListActiveMembersByRole(uint(2), "tester").Return([]user.User{
		{UID: 11, Email: "tess@test.com"},
	}, nil)
	mockUser.EXPECT().ListActiveSuperusers().Return(nil, nil)

	_, err := svc.CreateIssue(issueTestContext(11), issue.CreateIssueDTO{PID: 3, Title: "crash on save"}, 11)
	assert.ErrorIs(t, err, ErrNotifyFailed)
	assert.ErrorContains(t, err, "connection refused")
}

// --------------------- UpdateIssue ---------------------
func TestUpdateIssue_DeveloperCannotEditOthersIssue(t *testing.T) {
	svc, mockIssue, mockProject, _, mockWorkspace := setupIssueServiceMocks(t, &failingSender{})

	mockIssue.EXPECT().GetIssueByID(uint(4)).Return(issue.Issue{ID: 4, PID: 3, AssigneeID: uintPtr(9)}, nil)
	mockProject.EXPECT().GetWorkspaceIDByProjectID(uint(3)).Return(uint(2), nil)
	mockWorkspace.EXPECT().GetMemberRole(uint(2), uint(5)).Return(workspace.RoleDeveloper, nil)

	_, err := svc.UpdateIssue(issueTestContext(5), 4, issue.UpdateIssueDTO{Status: ptrString("closed")})
	assert.ErrorIs(t, err, ErrIssueEditForbidden)
}

func TestCheckEditAllowed_DeveloperClaimsAndKeepsOwn(t *testing.T) {
	svc, _, mockProject, _, mockWorkspace := setupIssueServiceMocks(t, &failingSender{})

	mockProject.EXPECT().GetWorkspaceIDByProjectID(uint(3)).Return(uint(2), nil).Times(2)
	mockWorkspace.EXPECT().GetMemberRole(uint(2), uint(5)).Return(workspace.RoleDeveloper, nil).Times(2)

	// Unassigned: a developer may claim it.
	i := &issue.Issue{ID: 4, PID: 3}
	assert.NoError(t, svc.checkEditAllowed(issueTestContext(5), i))

	// Their own: still editable.
	i.AssigneeID = uintPtr(5)
	assert.NoError(t, svc.checkEditAllowed(issueTestContext(5), i))
}
