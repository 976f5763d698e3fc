package application

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/agily-hq/agily/internal/domain/issue"
	"github.com/agily-hq/agily/internal/domain/project"
	"github.com/agily-hq/agily/internal/domain/user"
	"github.com/agily-hq/agily/internal/repository"
	"github.com/agily-hq/agily/internal/repository/mock"
)

type fakeSender struct {
	to      []string
	subject string
	calls   int
}

func (f *fakeSender) Send(to []string, subject, textBody, htmlBody string) error {
	f.to = to
	f.subject = subject
	f.calls++
	return nil
}

type failingSender struct{ err error }

func (f *failingSender) Send(to []string, subject, textBody, htmlBody string) error {
	return f.err
}

func setupNotifierMocks(t *testing.T) (*Notifier, *mock.MockProjectRepo, *mock.MockUserRepo, *fakeSender) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockProject := mock.NewMockProjectRepo(ctrl)
	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{
		Project: mockProject,
		User:    mockUser,
	}
	sender := &fakeSender{}
	return NewNotifier(repos, sender), mockProject, mockUser, sender
}

func uintPtr(v uint) *uint { return &v }

// --------------------- Recipients ---------------------
func TestRecipients_DedupesByEmail(t *testing.T) {
	n, mockProject, mockUser, _ := setupNotifierMocks(t)

	adminID := uint(7)
	i := &issue.Issue{ID: 1, PID: 3, AssigneeID: uintPtr(9)}

	mockProject.EXPECT().GetProjectByID(uint(3)).Return(project.Project{PID: 3, WID: 2, ProjectAdminID: &adminID}, nil)
	// The admin is also enrolled as a tester; their email must appear once.
	mockUser.EXPECT().ListActiveMembersByRole(uint(2), "tester").Return([]user.User{
		{UID: 7, Email: "admin@test.com"},
		{UID: 11, Email: "tess@test.com"},
	}, nil)
	mockUser.EXPECT().ListActiveSuperusers().Return([]user.User{
		{UID: 1, Email: "root@test.com"},
	}, nil)
	mockUser.EXPECT().GetUserByID(uint(7)).Return(user.User{UID: 7, Email: "admin@test.com"}, nil)
	mockUser.EXPECT().GetUserByID(uint(9)).Return(user.User{UID: 9, Email: "dev@test.com"}, nil)

	emails, err := n.Recipients(i)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"admin@test.com", "tess@test.com", "root@test.com", "dev@test.com"}, emails)
}

func TestRecipients_SkipsEmptyEmails(t *testing.T) {
	n, mockProject, mockUser, _ := setupNotifierMocks(t)

	i := &issue.Issue{ID: 1, PID: 3}

	mockProject.EXPECT().GetProjectByID(uint(3)).Return(project.Project{PID: 3, WID: 2}, nil)
	mockUser.EXPECT().ListActiveMembersByRole(uint(2), "tester").Return([]user.User{
		{UID: 11, Email: ""},
	}, nil)
	mockUser.EXPECT().ListActiveSuperusers().Return(nil, nil)

	emails, err := n.Recipients(i)
	assert.NoError(t, err)
	assert.Empty(t, emails)
}

// --------------------- deliver ---------------------
func TestNotifyCreated_NoRecipientsNoSend(t *testing.T) {
	n, mockProject, mockUser, sender := setupNotifierMocks(t)

	mockProject.EXPECT().GetProjectByID(uint(3)).Return(project.Project{PID: 3, WID: 2}, nil)
	mockUser.EXPECT().ListActiveMembersByRole(uint(2), "tester").Return(nil, nil)
	mockUser.EXPECT().ListActiveSuperusers().Return(nil, nil)

	assert.NoError(t, n.NotifyCreated(&issue.Issue{ID: 1, PID: 3, Title: "crash on save"}))
	assert.Zero(t, sender.calls)
}

func TestNotifyCreated_SurfacesSendFailure(t *testing.T) {
	n, mockProject, mockUser, _ := setupNotifierMocks(t)
	n.Sender = &failingSender{err: errors.New("smtp: connection refused")}

	mockProject.EXPECT().GetProjectByID(uint(3)).Return(project.Project{PID: 3, WID: 2}, nil)
	mockUser.EXPECT().ListActiveMembersByRole(uint(2), "tester").Return([]user.User{
		{UID: 11, Email: "tess@test.com"},
	}, nil)
	mockUser.EXPECT().ListActiveSuperusers().Return(nil, nil)

	err := n.NotifyCreated(&issue.Issue{ID: 1, PID: 3, Title: "crash on save"})
	assert.ErrorContains(t, err, "connection refused")
}

func TestNotifyUpdated_SendsToRecipients(t *testing.T) {
	n, mockProject, mockUser, sender := setupNotifierMocks(t)

	mockProject.EXPECT().GetProjectByID(uint(3)).Return(project.Project{PID: 3, WID: 2}, nil)
	mockUser.EXPECT().ListActiveMembersByRole(uint(2), "tester").Return([]user.User{
		{UID: 11, Email: "tess@test.com"},
	}, nil)
	mockUser.EXPECT().ListActiveSuperusers().Return(nil, nil)

	n.NotifyUpdated(&issue.Issue{ID: 5, PID: 3, Title: "crash on save"})
	assert.Equal(t, 1, sender.calls)
	assert.Equal(t, []string{"tess@test.com"}, sender.to)
	assert.Contains(t, sender.subject, "updated")
}

// --------------------- NotifyWorthy ---------------------
func TestNotifyWorthy(t *testing.T) {
	base := issue.Issue{
		Title:    "crash on save",
		Status:   "open",
		Severity: "high",
	}

	unchanged := base
	assert.False(t, NotifyWorthy(&base, &unchanged))

	retitled := base
	retitled.Title = "crash on load"
	assert.True(t, NotifyWorthy(&base, &retitled))

	reassigned := base
	reassigned.AssigneeID = uintPtr(4)
	assert.True(t, NotifyWorthy(&base, &reassigned))

	solved := base
	solved.Solution = ptrString("restart the daemon")
	assert.True(t, NotifyWorthy(&base, &solved))
}
