package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/agily-hq/agily/internal/domain/epic"
	"github.com/agily-hq/agily/internal/repository"
	"github.com/agily-hq/agily/pkg/utils"
)

var (
	ErrEpicNotFound  = errors.New("epic not found")
	ErrStateNotFound = errors.New("workflow state not found")
)

type EpicService struct {
	Repos  *repository.Repos
	Rollup *RollupService
}

func NewEpicService(repos *repository.Repos, rollup *RollupService) *EpicService {
	return &EpicService{
		Repos:  repos,
		Rollup: rollup,
	}
}

func tagsJSON(tags []string) (datatypes.JSON, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func (s *EpicService) GetEpic(id uint) (*epic.Epic, error) {
	e, err := s.Repos.Epic.GetEpicByID(id)
	if err != nil {
		return nil, ErrEpicNotFound
	}
	return &e, nil
}

func (s *EpicService) ListEpics(f repository.EpicFilter) ([]epic.Epic, error) {
	return s.Repos.Epic.ListEpics(f)
}

func (s *EpicService) ListStates() ([]epic.EpicState, error) {
	return s.Repos.Epic.ListStates()
}

func (s *EpicService) CreateEpic(c *gin.Context, wid uint, input epic.CreateEpicDTO) (*epic.Epic, error) {
	e := &epic.Epic{
		WID:   wid,
		Title: input.Title,
	}
	if input.Description != nil {
		e.Description = *input.Description
	}
	if input.OwnerID != nil {
		e.OwnerID = input.OwnerID
	}
	if input.Priority != nil {
		e.Priority = *input.Priority
	}
	if input.State != nil {
		st, err := s.Repos.Epic.GetStateBySlug(*input.State)
		if err != nil {
			return nil, ErrStateNotFound
		}
		e.StateID = &st.ID
	}
	tags, err := tagsJSON(input.Tags)
	if err != nil {
		return nil, err
	}
	e.Tags = tags

	if err := s.Repos.Epic.CreateEpic(e); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create", "epic", fmt.Sprintf("id=%d", e.ID), nil, e, "", s.Repos.Audit)

	return e, nil
}

func (s *EpicService) UpdateEpic(c *gin.Context, id uint, input epic.UpdateEpicDTO) (*epic.Epic, error) {
	e, err := s.Repos.Epic.GetEpicByID(id)
	if err != nil {
		return nil, ErrEpicNotFound
	}

	oldEpic := e
	wasDone := e.IsDone()

	if input.Title != nil {
		e.Title = *input.Title
	}
	if input.Description != nil {
		e.Description = *input.Description
	}
	if input.OwnerID != nil {
		e.OwnerID = input.OwnerID
	}
	if input.Priority != nil {
		e.Priority = *input.Priority
	}
	if input.State != nil {
		st, err := s.Repos.Epic.GetStateBySlug(*input.State)
		if err != nil {
			return nil, ErrStateNotFound
		}
		e.StateID = &st.ID
		e.State = &st
	}
	if input.Tags != nil {
		tags, err := tagsJSON(*input.Tags)
		if err != nil {
			return nil, err
		}
		e.Tags = tags
	}

	if !wasDone && e.IsDone() {
		now := time.Now()
		e.CompletedAt = &now
	} else if wasDone && !e.IsDone() {
		e.CompletedAt = nil
	}

	if err := s.Repos.Epic.UpdateEpic(&e); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "update", "epic", fmt.Sprintf("id=%d", e.ID), oldEpic, e, "", s.Repos.Audit)

	return &e, nil
}

// DeleteEpic removes the epic after detaching its stories, so no story is
// lost with its container.
func (s *EpicService) DeleteEpic(c *gin.Context, id uint) error {
	e, err := s.Repos.Epic.GetEpicByID(id)
	if err != nil {
		return ErrEpicNotFound
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Story.ClearEpic(id); err != nil {
			return err
		}
		return tx.Epic.DeleteEpic(id)
	})
	if err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "epic", fmt.Sprintf("id=%d", id), e, nil, "", s.Repos.Audit)

	return nil
}
