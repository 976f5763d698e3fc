package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/agily-hq/agily/internal/domain/epic"
	"github.com/agily-hq/agily/internal/domain/sprint"
	"github.com/agily-hq/agily/internal/domain/story"
	"github.com/agily-hq/agily/internal/domain/user"
	"github.com/agily-hq/agily/internal/repository"
	"github.com/agily-hq/agily/internal/repository/mock"
)

// stateOnlyStoryRepo answers state lookups; everything else panics if touched.
type stateOnlyStoryRepo struct {
	repository.StoryRepo
	states map[string]uint
}

func (r stateOnlyStoryRepo) GetStateBySlug(slug string) (story.StoryState, error) {
	if id, ok := r.states[slug]; ok {
		return story.StoryState{ID: id, Slug: slug}, nil
	}
	return story.StoryState{}, gorm.ErrRecordNotFound
}

type stateOnlyEpicRepo struct {
	repository.EpicRepo
	states map[string]uint
}

func (r stateOnlyEpicRepo) GetStateBySlug(slug string) (epic.EpicState, error) {
	if id, ok := r.states[slug]; ok {
		return epic.EpicState{ID: id, Slug: slug}, nil
	}
	return epic.EpicState{}, gorm.ErrRecordNotFound
}

func TestStoryApplyQuery_ResolvesTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mock.NewMockUserRepo(ctrl)
	userRepo.EXPECT().GetUserByUsername("bob").Return(user.User{UID: 7, Username: "bob"}, nil)

	sprintRepo := newFakeSprintRepo(
		&sprint.Sprint{ID: 3, PID: 1, Title: "Alpha"},
		&sprint.Sprint{ID: 4, PID: 1, Title: "Beta"},
	)

	svc := &StoryService{Repos: &repository.Repos{
		User:   userRepo,
		Sprint: sprintRepo,
		Story:  stateOnlyStoryRepo{states: map[string]uint{"doing": 2}},
	}}

	f := repository.StoryFilter{PID: 1}
	svc.ApplyQuery(&f, "assignee:bob state:doing label:ui sprint:Beta login page")

	if assert.NotNil(t, f.AssigneeID) {
		assert.Equal(t, uint(7), *f.AssigneeID)
	}
	if assert.NotNil(t, f.StateID) {
		assert.Equal(t, uint(2), *f.StateID)
	}
	if assert.NotNil(t, f.SprintID) {
		assert.Equal(t, uint(4), *f.SprintID)
	}
	assert.Equal(t, "ui", f.Tag)
	assert.Equal(t, "login page", f.Title)
}

func TestStoryApplyQuery_UnknownValuesMatchNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mock.NewMockUserRepo(ctrl)
	userRepo.EXPECT().GetUserByUsername("ghost").Return(user.User{}, gorm.ErrRecordNotFound)

	svc := &StoryService{Repos: &repository.Repos{
		User:   userRepo,
		Sprint: newFakeSprintRepo(),
		Story:  stateOnlyStoryRepo{states: map[string]uint{}},
	}}

	f := repository.StoryFilter{PID: 1}
	svc.ApplyQuery(&f, "requester:ghost state:nope sprint:gone")

	if assert.NotNil(t, f.RequesterID) {
		assert.Equal(t, uint(0), *f.RequesterID)
	}
	if assert.NotNil(t, f.StateID) {
		assert.Equal(t, uint(0), *f.StateID)
	}
	if assert.NotNil(t, f.SprintID) {
		assert.Equal(t, uint(0), *f.SprintID)
	}
	assert.Empty(t, f.Title)
}

func TestEpicApplyQuery_ResolvesTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mock.NewMockUserRepo(ctrl)
	userRepo.EXPECT().GetUserByUsername("alice").Return(user.User{UID: 9, Username: "alice"}, nil)

	svc := &EpicService{Repos: &repository.Repos{
		User: userRepo,
		Epic: stateOnlyEpicRepo{states: map[string]uint{"done": 5}},
	}}

	f := repository.EpicFilter{WID: 1}
	svc.ApplyQuery(&f, "owner:alice state:done label:billing checkout")

	if assert.NotNil(t, f.OwnerID) {
		assert.Equal(t, uint(9), *f.OwnerID)
	}
	if assert.NotNil(t, f.StateID) {
		assert.Equal(t, uint(5), *f.StateID)
	}
	assert.Equal(t, "billing", f.Tag)
	assert.Equal(t, "checkout", f.Title)
}
