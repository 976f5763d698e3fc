package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agily-hq/agily/internal/domain/sprint"
	"github.com/agily-hq/agily/internal/repository"
	"github.com/agily-hq/agily/pkg/utils"
)

var (
	ErrSprintNotFound = errors.New("sprint not found")
	ErrSprintDates    = errors.New("sprint must end after it starts")
)

type SprintService struct {
	Repos  *repository.Repos
	Rollup *RollupService
}

func NewSprintService(repos *repository.Repos, rollup *RollupService) *SprintService {
	return &SprintService{
		Repos:  repos,
		Rollup: rollup,
	}
}

func (s *SprintService) GetSprint(id uint) (*sprint.Sprint, error) {
	sp, err := s.Repos.Sprint.GetSprintByID(id)
	if err != nil {
		return nil, ErrSprintNotFound
	}
	return &sp, nil
}

func (s *SprintService) ListSprintsByProject(pid uint) ([]sprint.Sprint, error) {
	return s.Repos.Sprint.ListSprintsByProject(pid)
}

func (s *SprintService) CreateSprint(c *gin.Context, input sprint.CreateSprintDTO) (*sprint.Sprint, error) {
	if _, err := s.Repos.Project.GetProjectByID(input.PID); err != nil {
		return nil, ErrProjectNotFound
	}
	if !input.EndsAt.After(input.StartsAt) {
		return nil, ErrSprintDates
	}

	sp := &sprint.Sprint{
		PID:      input.PID,
		Title:    input.Title,
		StartsAt: input.StartsAt,
		EndsAt:   input.EndsAt,
		State:    string(sprint.StatePlanned),
	}
	if input.Description != nil {
		sp.Description = *input.Description
	}
	sp.State = string(sp.NextState(time.Now()))

	if err := s.Repos.Sprint.CreateSprint(sp); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create", "sprint", fmt.Sprintf("id=%d", sp.ID), nil, sp, "", s.Repos.Audit)

	return sp, nil
}

func (s *SprintService) UpdateSprint(c *gin.Context, id uint, input sprint.UpdateSprintDTO) (*sprint.Sprint, error) {
	sp, err := s.Repos.Sprint.GetSprintByID(id)
	if err != nil {
		return nil, ErrSprintNotFound
	}

	oldSprint := sp

	if input.Title != nil {
		sp.Title = *input.Title
	}
	if input.Description != nil {
		sp.Description = *input.Description
	}
	if input.StartsAt != nil {
		sp.StartsAt = *input.StartsAt
	}
	if input.EndsAt != nil {
		sp.EndsAt = *input.EndsAt
	}
	if !sp.EndsAt.After(sp.StartsAt) {
		return nil, ErrSprintDates
	}
	sp.State = string(sp.NextState(time.Now()))

	if err := s.Repos.Sprint.UpdateSprint(&sp); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "update", "sprint", fmt.Sprintf("id=%d", sp.ID), oldSprint, sp, "", s.Repos.Audit)

	return &sp, nil
}

func (s *SprintService) DeleteSprint(c *gin.Context, id uint) error {
	sp, err := s.Repos.Sprint.GetSprintByID(id)
	if err != nil {
		return ErrSprintNotFound
	}
	if err := s.Repos.Sprint.DeleteSprint(id); err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "sprint", fmt.Sprintf("id=%d", id), sp, nil, "", s.Repos.Audit)

	return nil
}

// RefreshStates advances unfinished sprints whose start or end has passed.
// It returns the number of sprints moved.
func (s *SprintService) RefreshStates(now time.Time) (int, error) {
	sprints, err := s.Repos.Sprint.ListUnfinished()
	if err != nil {
		return 0, err
	}

	moved := 0
	for i := range sprints {
		next := string(sprints[i].NextState(now))
		if next == sprints[i].State {
			continue
		}
		if err := s.Repos.Sprint.UpdateState(sprints[i].ID, next); err != nil {
			return moved, err
		}
		moved++
	}
	return moved, nil
}
