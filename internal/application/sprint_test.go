package application

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"gorm.io/gorm"

	"github.com/agily-hq/agily/internal/domain/project"
	"github.com/agily-hq/agily/internal/domain/sprint"
	"github.com/agily-hq/agily/internal/repository"
	"github.com/agily-hq/agily/internal/repository/mock"
)

// fakeSprintRepo keeps sprints in memory; enough for the clock-driven
// state tests.
type fakeSprintRepo struct {
	sprints map[uint]*sprint.Sprint
	moves   map[uint]string
}

func newFakeSprintRepo(sprints ...*sprint.Sprint) *fakeSprintRepo {
	r := &fakeSprintRepo{sprints: make(map[uint]*sprint.Sprint), moves: make(map[uint]string)}
	for _, sp := range sprints {
		r.sprints[sp.ID] = sp
	}
	return r
}

func (r *fakeSprintRepo) CreateSprint(s *sprint.Sprint) error {
	s.ID = uint(len(r.sprints) + 1)
	r.sprints[s.ID] = s
	return nil
}

func (r *fakeSprintRepo) GetSprintByID(id uint) (sprint.Sprint, error) {
	if sp, ok := r.sprints[id]; ok {
		return *sp, nil
	}
	return sprint.Sprint{}, gorm.ErrRecordNotFound
}

func (r *fakeSprintRepo) ListSprintsByProject(pid uint) ([]sprint.Sprint, error) {
	var out []sprint.Sprint
	for _, sp := range r.sprints {
		if sp.PID == pid {
			out = append(out, *sp)
		}
	}
	return out, nil
}

func (r *fakeSprintRepo) ListUnfinished() ([]sprint.Sprint, error) {
	var out []sprint.Sprint
	for _, sp := range r.sprints {
		if sp.State != string(sprint.StateFinished) {
			out = append(out, *sp)
		}
	}
	return out, nil
}

func (r *fakeSprintRepo) UpdateSprint(s *sprint.Sprint) error {
	r.sprints[s.ID] = s
	return nil
}

func (r *fakeSprintRepo) UpdateState(id uint, state string) error {
	r.sprints[id].State = state
	r.moves[id] = state
	return nil
}

func (r *fakeSprintRepo) UpdateRollup(id uint, fields map[string]interface{}) error {
	return nil
}

func (r *fakeSprintRepo) DeleteSprint(id uint) error {
	delete(r.sprints, id)
	return nil
}

func (r *fakeSprintRepo) WithTx(tx *gorm.DB) repository.SprintRepo { return r }

// --------------------- CreateSprint ---------------------
func TestCreateSprint_RejectsBadDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	projectRepo := mock.NewMockProjectRepo(ctrl)
	projectRepo.EXPECT().GetProjectByID(uint(3)).Return(project.Project{PID: 3}, nil)

	repo := newFakeSprintRepo()
	svc := NewSprintService(&repository.Repos{Sprint: repo, Project: projectRepo}, nil)

	starts := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.CreateSprint(nil, sprint.CreateSprintDTO{
		PID:      3,
		Title:    "Sprint 1",
		StartsAt: starts,
		EndsAt:   starts,
	})
	if !errors.Is(err, ErrSprintDates) {
		t.Fatalf("expected ErrSprintDates, got %v", err)
	}
	if len(repo.sprints) != 0 {
		t.Fatal("no sprint should be created")
	}
}

func TestCreateSprint_ProjectMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	projectRepo := mock.NewMockProjectRepo(ctrl)
	projectRepo.EXPECT().GetProjectByID(uint(99)).Return(project.Project{}, gorm.ErrRecordNotFound)

	svc := NewSprintService(&repository.Repos{Sprint: newFakeSprintRepo(), Project: projectRepo}, nil)

	_, err := svc.CreateSprint(nil, sprint.CreateSprintDTO{
		PID:      99,
		Title:    "Sprint 1",
		StartsAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

// --------------------- NextState ---------------------
func TestSprintNextState(t *testing.T) {
	sp := sprint.Sprint{
		StartsAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
	}

	cases := []struct {
		now  time.Time
		want sprint.State
	}{
		{time.Date(2026, 5, 31, 23, 0, 0, 0, time.UTC), sprint.StatePlanned},
		{sp.StartsAt, sprint.StateStarted},
		{time.Date(2026, 6, 7, 12, 0, 0, 0, time.UTC), sprint.StateStarted},
		{sp.EndsAt, sprint.StateFinished},
		{time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), sprint.StateFinished},
	}
	for _, tc := range cases {
		if got := sp.NextState(tc.now); got != tc.want {
			t.Fatalf("NextState(%v) = %s, want %s", tc.now, got, tc.want)
		}
	}
}

// --------------------- RefreshStates ---------------------
func TestRefreshStates_AdvancesDueSprints(t *testing.T) {
	now := time.Date(2026, 6, 7, 12, 0, 0, 0, time.UTC)

	due := &sprint.Sprint{
		ID: 1, State: string(sprint.StatePlanned),
		StartsAt: now.Add(-time.Hour), EndsAt: now.Add(time.Hour),
	}
	ended := &sprint.Sprint{
		ID: 2, State: string(sprint.StateStarted),
		StartsAt: now.Add(-48 * time.Hour), EndsAt: now.Add(-time.Hour),
	}
	future := &sprint.Sprint{
		ID: 3, State: string(sprint.StatePlanned),
		StartsAt: now.Add(24 * time.Hour), EndsAt: now.Add(48 * time.Hour),
	}

	repo := newFakeSprintRepo(due, ended, future)
	svc := NewSprintService(&repository.Repos{Sprint: repo}, nil)

	moved, err := svc.RefreshStates(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if moved != 2 {
		t.Fatalf("expected 2 moves, got %d", moved)
	}
	if repo.moves[1] != string(sprint.StateStarted) {
		t.Fatalf("sprint 1 should have started, got %q", repo.moves[1])
	}
	if repo.moves[2] != string(sprint.StateFinished) {
		t.Fatalf("sprint 2 should have finished, got %q", repo.moves[2])
	}
	if _, ok := repo.moves[3]; ok {
		t.Fatal("future sprint must not move")
	}
}

func TestRefreshStates_NoopWhenCurrent(t *testing.T) {
	now := time.Date(2026, 6, 7, 12, 0, 0, 0, time.UTC)

	current := &sprint.Sprint{
		ID: 1, State: string(sprint.StateStarted),
		StartsAt: now.Add(-time.Hour), EndsAt: now.Add(time.Hour),
	}

	repo := newFakeSprintRepo(current)
	svc := NewSprintService(&repository.Repos{Sprint: repo}, nil)

	moved, err := svc.RefreshStates(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if moved != 0 {
		t.Fatalf("expected no moves, got %d", moved)
	}
}
