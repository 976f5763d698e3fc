package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/agily-hq/agily/internal/domain/job"
	"github.com/agily-hq/agily/internal/repository"
	"github.com/agily-hq/agily/internal/repository/mock"
)

func setupBulkServiceMocks(t *testing.T) (*BulkService, *mock.MockJobRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockJob := mock.NewMockJobRepo(ctrl)
	repos := &repository.Repos{
		Job: mockJob,
	}
	return NewBulkService(repos), mockJob
}

// --------------------- ParseSelection ---------------------
func TestParseSelection_RowsAndAssignment(t *testing.T) {
	sel := ParseSelection(map[string]string{
		"story-9":  "",
		"story-5":  "",
		"state":    "dn",
		"assignee": "",
		"unknown":  "x",
	})

	assert.Equal(t, []uint{5, 9}, sel.Targets[job.TargetStory])
	assert.False(t, sel.Remove)
	assert.False(t, sel.Duplicate)
	// Blank assignment values are not assignments.
	assert.Equal(t, map[job.Action]string{job.ActionSetState: "dn"}, sel.Assignments)
}

func TestParseSelection_MixedKinds(t *testing.T) {
	sel := ParseSelection(map[string]string{
		"story-5":     "",
		"epic-2":      "",
		"project-7":   "",
		"workspace-1": "",
		"remove":      "",
	})

	assert.True(t, sel.Remove)
	assert.Equal(t, []uint{5}, sel.Targets[job.TargetStory])
	assert.Equal(t, []uint{2}, sel.Targets[job.TargetEpic])
	assert.Equal(t, []uint{7}, sel.Targets[job.TargetProject])
	assert.Equal(t, []uint{1}, sel.Targets[job.TargetWorkspace])
}

func TestParseSelection_IgnoresMalformedIDs(t *testing.T) {
	sel := ParseSelection(map[string]string{
		"story-abc": "",
		"story-5":   "",
	})
	assert.Equal(t, []uint{5}, sel.Targets[job.TargetStory])
}

// --------------------- Dispatch ---------------------
func TestDispatch_EmptySelection(t *testing.T) {
	svc, _ := setupBulkServiceMocks(t)

	_, err := svc.Dispatch(ParseSelection(map[string]string{"state": "dn"}), "key", 1)
	assert.Equal(t, ErrEmptySelection, err)
}

func TestDispatch_SelectionWithoutAction(t *testing.T) {
	svc, _ := setupBulkServiceMocks(t)

	_, err := svc.Dispatch(ParseSelection(map[string]string{"story-5": ""}), "key", 1)
	assert.Equal(t, ErrEmptySelection, err)
}

func TestDispatch_DestructiveThenAssignments(t *testing.T) {
	svc, mockJob := setupBulkServiceMocks(t)

	sel := ParseSelection(map[string]string{
		"story-5":   "",
		"remove":    "",
		"duplicate": "",
		"state":     "dn",
	})

	mockJob.EXPECT().GetJobByIdempotencyKey("key-0").Return(job.BulkJob{}, gorm.ErrRecordNotFound)
	mockJob.EXPECT().GetJobByIdempotencyKey("key-1").Return(job.BulkJob{}, gorm.ErrRecordNotFound)

	var queued []string
	mockJob.EXPECT().CreateJob(gomock.Any()).Times(2).DoAndReturn(func(j *job.BulkJob) error {
		assert.Equal(t, string(job.TargetStory), j.TargetKind)
		assert.Equal(t, "5", j.TargetIDs)
		assert.Equal(t, string(job.StatusQueued), j.Status)
		queued = append(queued, j.Action)
		j.ID = uint(40 + len(queued))
		return nil
	})

	ids, err := svc.Dispatch(sel, "key", 1)
	assert.NoError(t, err)
	assert.Equal(t, []uint{41, 42}, ids)
	// Remove beats duplicate, but the assignment still runs after it.
	assert.Equal(t, []string{string(job.ActionRemove), string(job.ActionSetState)}, queued)
}

func TestDispatch_OneJobPerKind(t *testing.T) {
	svc, mockJob := setupBulkServiceMocks(t)

	sel := ParseSelection(map[string]string{
		"story-5": "",
		"story-9": "",
		"epic-2":  "",
		"remove":  "",
	})

	mockJob.EXPECT().GetJobByIdempotencyKey("key-0").Return(job.BulkJob{}, gorm.ErrRecordNotFound)
	mockJob.EXPECT().GetJobByIdempotencyKey("key-1").Return(job.BulkJob{}, gorm.ErrRecordNotFound)

	var kinds []string
	mockJob.EXPECT().CreateJob(gomock.Any()).Times(2).DoAndReturn(func(j *job.BulkJob) error {
		kinds = append(kinds, j.TargetKind)
		j.ID = uint(len(kinds))
		return nil
	})

	ids, err := svc.Dispatch(sel, "key", 1)
	assert.NoError(t, err)
	assert.Len(t, ids, 2)
	// Stories are dispatched before epics.
	assert.Equal(t, []string{string(job.TargetStory), string(job.TargetEpic)}, kinds)
}

func TestDispatch_IdempotentResubmit(t *testing.T) {
	svc, mockJob := setupBulkServiceMocks(t)

	sel := ParseSelection(map[string]string{
		"story-5": "",
		"state":   "dn",
	})

	mockJob.EXPECT().GetJobByIdempotencyKey("key-0").Return(job.BulkJob{ID: 17}, nil)

	ids, err := svc.Dispatch(sel, "key", 1)
	assert.NoError(t, err)
	assert.Equal(t, []uint{17}, ids)
}

func TestGetJob_NotFound(t *testing.T) {
	svc, mockJob := setupBulkServiceMocks(t)

	mockJob.EXPECT().GetJobByID(uint(99)).Return(job.BulkJob{}, gorm.ErrRecordNotFound)

	_, err := svc.GetJob(99)
	assert.Equal(t, ErrJobNotFound, err)
}
