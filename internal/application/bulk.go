package application

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agily-hq/agily/internal/domain/job"
	"github.com/agily-hq/agily/internal/repository"
)

var (
	ErrJobNotFound    = errors.New("bulk job not found")
	ErrEmptySelection = errors.New("no rows selected")
)

// Selection is the decoded bulk form: which rows were ticked, grouped by
// kind, plus the requested assignments.
type Selection struct {
	Targets     map[job.TargetKind][]uint
	Remove      bool
	Duplicate   bool
	Assignments map[job.Action]string
}

var selectionPrefixes = map[string]job.TargetKind{
	"story-":     job.TargetStory,
	"epic-":      job.TargetEpic,
	"project-":   job.TargetProject,
	"workspace-": job.TargetWorkspace,
}

var assignmentFields = map[string]job.Action{
	"state":      job.ActionSetState,
	"assignee":   job.ActionSetAssignee,
	"owner":      job.ActionSetOwner,
	"sprint":     job.ActionSetSprint,
	"epic":       job.ActionSetEpic,
	"reset_epic": job.ActionResetEpic,
}

// ParseSelection decodes the submitted form fields. Row checkboxes arrive
// as `<kind>-<id>` keys; everything else is either a destructive flag or an
// assignment value. Unknown keys are ignored.
func ParseSelection(form map[string]string) Selection {
	sel := Selection{
		Targets:     make(map[job.TargetKind][]uint),
		Assignments: make(map[job.Action]string),
	}

	for key, value := range form {
		matched := false
		for prefix, kind := range selectionPrefixes {
			if !strings.HasPrefix(key, prefix) {
				continue
			}
			raw := strings.TrimPrefix(key, prefix)
			id, err := strconv.ParseUint(raw, 10, 32)
			if err == nil {
				sel.Targets[kind] = append(sel.Targets[kind], uint(id))
			}
			matched = true
			break
		}
		if matched {
			continue
		}

		switch key {
		case "remove":
			sel.Remove = true
		case "duplicate":
			sel.Duplicate = true
		default:
			if action, ok := assignmentFields[key]; ok && value != "" {
				sel.Assignments[action] = value
			}
		}
	}

	for kind := range sel.Targets {
		sort.Slice(sel.Targets[kind], func(i, j int) bool {
			return sel.Targets[kind][i] < sel.Targets[kind][j]
		})
	}
	return sel
}

type BulkService struct {
	Repos *repository.Repos
}

func NewBulkService(repos *repository.Repos) *BulkService {
	return &BulkService{
		Repos: repos,
	}
}

type queuedAction struct {
	action   job.Action
	argument string
}

// Dispatch enqueues one job per (kind, action) in the selection and returns
// the queued job ids. A destructive action goes first (remove wins over
// duplicate); field assignments are queued after it, not instead of it. The
// idempotencyKey scopes the whole submission: resubmitting the same key
// returns the jobs already queued instead of enqueueing again.
func (s *BulkService) Dispatch(sel Selection, idempotencyKey string, requestedBy uint) ([]uint, error) {
	total := 0
	for _, ids := range sel.Targets {
		total += len(ids)
	}
	if total == 0 {
		return nil, ErrEmptySelection
	}

	if idempotencyKey == "" {
		idempotencyKey = uuid.NewString()
	}

	var actions []queuedAction
	switch {
	case sel.Remove:
		actions = append(actions, queuedAction{job.ActionRemove, ""})
	case sel.Duplicate:
		actions = append(actions, queuedAction{job.ActionDuplicate, ""})
	}

	var assigns []queuedAction
	for action, argument := range sel.Assignments {
		assigns = append(assigns, queuedAction{action, argument})
	}
	sort.Slice(assigns, func(i, j int) bool { return assigns[i].action < assigns[j].action })
	actions = append(actions, assigns...)

	if len(actions) == 0 {
		return nil, ErrEmptySelection
	}

	var jobIDs []uint
	seq := 0
	for _, a := range actions {
		for _, kind := range []job.TargetKind{job.TargetStory, job.TargetEpic, job.TargetProject, job.TargetWorkspace} {
			ids := sel.Targets[kind]
			if len(ids) == 0 {
				continue
			}

			key := idempotencyKey + "-" + strconv.Itoa(seq)
			seq++

			if existing, err := s.Repos.Job.GetJobByIdempotencyKey(key); err == nil {
				jobIDs = append(jobIDs, existing.ID)
				continue
			} else if err != gorm.ErrRecordNotFound {
				return nil, err
			}

			j := &job.BulkJob{
				IdempotencyKey: key,
				Action:         string(a.action),
				TargetKind:     string(kind),
				TargetIDs:      job.JoinIDs(ids),
				Argument:       a.argument,
				Status:         string(job.StatusQueued),
				RequestedBy:    &requestedBy,
			}
			if err := s.Repos.Job.CreateJob(j); err != nil {
				return nil, err
			}
			jobIDs = append(jobIDs, j.ID)
		}
	}

	return jobIDs, nil
}

func (s *BulkService) GetJob(id uint) (*job.BulkJob, error) {
	j, err := s.Repos.Job.GetJobByID(id)
	if err != nil {
		return nil, ErrJobNotFound
	}
	return &j, nil
}
