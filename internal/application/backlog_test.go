package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/agily-hq/agily/internal/domain/sprint"
	"github.com/agily-hq/agily/internal/domain/story"
	"github.com/agily-hq/agily/internal/domain/user"
	"github.com/agily-hq/agily/internal/repository"
	"github.com/agily-hq/agily/internal/repository/mock"
)

// --------------------- GroupStories ---------------------
func TestGroupStories_BySprint(t *testing.T) {
	sprintRepo := newFakeSprintRepo(
		&sprint.Sprint{ID: 1, Title: "Sprint Alpha"},
		&sprint.Sprint{ID: 2, Title: "Sprint Beta"},
	)
	svc := NewStoryService(&repository.Repos{Sprint: sprintRepo}, nil)

	stories := []story.Story{
		{ID: 10, Title: "loose end"},
		{ID: 11, Title: "beta work", SprintID: uintPtr(2)},
		{ID: 12, Title: "alpha work", SprintID: uintPtr(1)},
	}

	buckets, err := svc.GroupStories(stories, GroupBySprint)
	assert.NoError(t, err)
	assert.Len(t, buckets, 3)
	assert.Equal(t, "Sprint Alpha", buckets[0].Label)
	assert.Equal(t, "Sprint Beta", buckets[1].Label)
	assert.Equal(t, "No sprint", buckets[2].Label)
	assert.Equal(t, uint(10), buckets[2].Items[0].ID)
}

func TestGroupStories_ByAssignee(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	userRepo := mock.NewMockUserRepo(ctrl)
	userRepo.EXPECT().GetUserByID(uint(3)).Return(user.User{UID: 3, Username: "alice"}, nil)
	userRepo.EXPECT().GetUserByID(uint(4)).Return(user.User{UID: 4, Username: "bob"}, nil)

	svc := NewStoryService(&repository.Repos{User: userRepo}, nil)

	stories := []story.Story{
		{ID: 20, Title: "bob's", AssigneeID: uintPtr(4)},
		{ID: 21, Title: "nobody's"},
		{ID: 22, Title: "alice's", AssigneeID: uintPtr(3)},
	}

	buckets, err := svc.GroupStories(stories, GroupByAssignee)
	assert.NoError(t, err)
	assert.Len(t, buckets, 3)
	assert.Equal(t, "alice", buckets[0].Label)
	assert.Equal(t, "bob", buckets[1].Label)
	assert.Equal(t, "Unassigned", buckets[2].Label)
}

func TestGroupStories_ByState(t *testing.T) {
	svc := NewStoryService(&repository.Repos{}, nil)

	todo := &story.StoryState{ID: 1, Name: "Todo"}
	done := &story.StoryState{ID: 2, Name: "Done"}
	stories := []story.Story{
		{ID: 30, Title: "b", State: todo, StateID: uintPtr(1), Priority: 2},
		{ID: 31, Title: "a", State: todo, StateID: uintPtr(1), Priority: 1},
		{ID: 32, Title: "c", State: done, StateID: uintPtr(2)},
	}

	buckets, err := svc.GroupStories(stories, GroupByState)
	assert.NoError(t, err)
	assert.Len(t, buckets, 2)
	assert.Equal(t, "Done", buckets[0].Label)
	assert.Equal(t, "Todo", buckets[1].Label)
	assert.Equal(t, uint(31), buckets[1].Items[0].ID, "priority ties the order within a state")
}

func TestGroupStories_UnknownKeyFallsBack(t *testing.T) {
	svc := NewStoryService(&repository.Repos{}, nil)

	stories := []story.Story{{ID: 40}, {ID: 41}}

	buckets, err := svc.GroupStories(stories, "severity")
	assert.NoError(t, err)
	assert.Len(t, buckets, 1)
	assert.Empty(t, buckets[0].Label)
	assert.Len(t, buckets[0].Items, 2)
}
