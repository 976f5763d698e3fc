package executor

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/agily-hq/agily/internal/application"
	"github.com/agily-hq/agily/internal/domain/job"
	"github.com/agily-hq/agily/internal/repository"
)

// BulkExecutor applies queued bulk actions to stories, epics, projects and
// workspaces, keeping the rollups on affected containers fresh.
type BulkExecutor struct {
	repos   *repository.Repos
	rollup  *application.RollupService
	stories *application.StoryService
}

func NewBulkExecutor(repos *repository.Repos, rollup *application.RollupService, stories *application.StoryService) *BulkExecutor {
	return &BulkExecutor{
		repos:   repos,
		rollup:  rollup,
		stories: stories,
	}
}

func (e *BulkExecutor) SupportsAction(action job.Action) bool {
	switch action {
	case job.ActionRemove, job.ActionDuplicate, job.ActionSetState,
		job.ActionSetAssignee, job.ActionSetOwner, job.ActionSetSprint,
		job.ActionSetEpic, job.ActionResetEpic:
		return true
	}
	return false
}

func (e *BulkExecutor) Execute(ctx context.Context, j *job.BulkJob) error {
	ids := j.IDs()
	if len(ids) == 0 {
		return nil
	}

	kind := job.TargetKind(j.TargetKind)
	switch job.Action(j.Action) {
	case job.ActionRemove:
		return e.remove(kind, ids)
	case job.ActionDuplicate:
		return e.duplicate(kind, ids)
	case job.ActionSetState:
		return e.setState(kind, ids, j.Argument)
	case job.ActionSetAssignee:
		return e.setAssignee(kind, ids, j.Argument)
	case job.ActionSetOwner:
		return e.setOwner(kind, ids, j.Argument)
	case job.ActionSetSprint:
		return e.setSprint(kind, ids, j.Argument)
	case job.ActionSetEpic:
		return e.setEpic(kind, ids, j.Argument)
	case job.ActionResetEpic:
		return e.resetEpic(kind, ids)
	}
	return fmt.Errorf("unsupported action %q", j.Action)
}

func parseRef(arg string) (*uint, error) {
	if arg == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid reference %q", arg)
	}
	id := uint(v)
	return &id, nil
}

func (e *BulkExecutor) remove(kind job.TargetKind, ids []uint) error {
	switch kind {
	case job.TargetStory:
		stories, err := e.repos.Story.ListStoriesByIDs(ids)
		if err != nil {
			return err
		}
		if err := e.repos.Story.DeleteStories(ids); err != nil {
			return err
		}
		var epicIDs, sprintIDs []*uint
		for i := range stories {
			epicIDs = append(epicIDs, stories[i].EpicID)
			sprintIDs = append(sprintIDs, stories[i].SprintID)
		}
		return e.rollup.RecalcForStory(epicIDs, sprintIDs)

	case job.TargetEpic:
		return e.repos.ExecTx(func(tx *repository.Repos) error {
			for _, id := range ids {
				if err := tx.Story.ClearEpic(id); err != nil {
					return err
				}
			}
			return tx.Epic.DeleteEpics(ids)
		})

	case job.TargetProject:
		return e.repos.Project.DeleteProjects(ids)

	case job.TargetWorkspace:
		for _, id := range ids {
			if err := e.repos.Workspace.DeleteWorkspace(id); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("remove not supported for %q", kind)
}

func (e *BulkExecutor) duplicate(kind job.TargetKind, ids []uint) error {
	if kind != job.TargetStory {
		return fmt.Errorf("duplicate not supported for %q", kind)
	}
	for _, id := range ids {
		if _, err := e.stories.DuplicateStory(id); err != nil {
			return err
		}
	}
	return nil
}

func (e *BulkExecutor) setState(kind job.TargetKind, ids []uint, slug string) error {
	switch kind {
	case job.TargetStory:
		state, err := e.repos.Story.GetStateBySlug(slug)
		if err != nil {
			return fmt.Errorf("unknown story state %q", slug)
		}
		stories, err := e.repos.Story.ListStoriesByIDs(ids)
		if err != nil {
			return err
		}
		var epicIDs, sprintIDs []*uint
		for i := range stories {
			wasDone := stories[i].IsDone()
			stories[i].StateID = &state.ID
			stories[i].State = &state
			if !wasDone && state.IsDone() {
				now := time.Now()
				stories[i].CompletedAt = &now
			} else if wasDone && !state.IsDone() {
				stories[i].CompletedAt = nil
			}
			if err := e.repos.Story.UpdateStory(&stories[i]); err != nil {
				return err
			}
			epicIDs = append(epicIDs, stories[i].EpicID)
			sprintIDs = append(sprintIDs, stories[i].SprintID)
		}
		return e.rollup.RecalcForStory(epicIDs, sprintIDs)

	case job.TargetEpic:
		state, err := e.repos.Epic.GetStateBySlug(slug)
		if err != nil {
			return fmt.Errorf("unknown epic state %q", slug)
		}
		epics, err := e.repos.Epic.ListEpicsByIDs(ids)
		if err != nil {
			return err
		}
		for i := range epics {
			wasDone := epics[i].IsDone()
			epics[i].StateID = &state.ID
			epics[i].State = &state
			if !wasDone && state.IsDone() {
				now := time.Now()
				epics[i].CompletedAt = &now
			} else if wasDone && !state.IsDone() {
				epics[i].CompletedAt = nil
			}
			if err := e.repos.Epic.UpdateEpic(&epics[i]); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("set_state not supported for %q", kind)
}

func (e *BulkExecutor) setAssignee(kind job.TargetKind, ids []uint, arg string) error {
	if kind != job.TargetStory {
		return fmt.Errorf("set_assignee not supported for %q", kind)
	}
	ref, err := parseRef(arg)
	if err != nil {
		return err
	}
	stories, err := e.repos.Story.ListStoriesByIDs(ids)
	if err != nil {
		return err
	}
	for i := range stories {
		stories[i].AssigneeID = ref
		if err := e.repos.Story.UpdateStory(&stories[i]); err != nil {
			return err
		}
	}
	return nil
}

func (e *BulkExecutor) setOwner(kind job.TargetKind, ids []uint, arg string) error {
	if kind != job.TargetEpic {
		return fmt.Errorf("set_owner not supported for %q", kind)
	}
	ref, err := parseRef(arg)
	if err != nil {
		return err
	}
	epics, err := e.repos.Epic.ListEpicsByIDs(ids)
	if err != nil {
		return err
	}
	for i := range epics {
		epics[i].OwnerID = ref
		if err := e.repos.Epic.UpdateEpic(&epics[i]); err != nil {
			return err
		}
	}
	return nil
}

func (e *BulkExecutor) setSprint(kind job.TargetKind, ids []uint, arg string) error {
	if kind != job.TargetStory {
		return fmt.Errorf("set_sprint not supported for %q", kind)
	}
	ref, err := parseRef(arg)
	if err != nil {
		return err
	}
	stories, err := e.repos.Story.ListStoriesByIDs(ids)
	if err != nil {
		return err
	}
	var sprintIDs []*uint
	for i := range stories {
		sprintIDs = append(sprintIDs, stories[i].SprintID)
		stories[i].SprintID = ref
		if err := e.repos.Story.UpdateStory(&stories[i]); err != nil {
			return err
		}
	}
	sprintIDs = append(sprintIDs, ref)
	return e.rollup.RecalcForStory(nil, sprintIDs)
}

func (e *BulkExecutor) setEpic(kind job.TargetKind, ids []uint, arg string) error {
	if kind != job.TargetStory {
		return fmt.Errorf("set_epic not supported for %q", kind)
	}
	ref, err := parseRef(arg)
	if err != nil {
		return err
	}
	stories, err := e.repos.Story.ListStoriesByIDs(ids)
	if err != nil {
		return err
	}
	var epicIDs []*uint
	for i := range stories {
		epicIDs = append(epicIDs, stories[i].EpicID)
		stories[i].EpicID = ref
		if err := e.repos.Story.UpdateStory(&stories[i]); err != nil {
			return err
		}
	}
	epicIDs = append(epicIDs, ref)
	return e.rollup.RecalcForStory(epicIDs, nil)
}

func (e *BulkExecutor) resetEpic(kind job.TargetKind, ids []uint) error {
	switch kind {
	case job.TargetEpic:
		for _, id := range ids {
			if err := e.repos.Story.ClearEpic(id); err != nil {
				return err
			}
			if err := e.rollup.RecalcEpic(id); err != nil {
				return err
			}
		}
		return nil
	case job.TargetStory:
		return e.setEpic(job.TargetStory, ids, "")
	}
	return fmt.Errorf("reset_epic not supported for %q", kind)
}
