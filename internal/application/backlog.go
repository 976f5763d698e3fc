package application

import (
	"github.com/agily-hq/agily/internal/domain/story"
	"github.com/agily-hq/agily/pkg/grouping"
)

// Grouping keys accepted by the backlog views.
const (
	GroupByNone      = "none"
	GroupBySprint    = "sprint"
	GroupByState     = "state"
	GroupByRequester = "requester"
	GroupByAssignee  = "assignee"
)

// GroupStories partitions stories for the backlog board. Unknown keys fall
// back to a single unlabeled bucket.
func (s *StoryService) GroupStories(stories []story.Story, key string) ([]grouping.Bucket[story.Story], error) {
	secondary := func(st story.Story) int { return st.Priority }

	switch key {
	case GroupBySprint:
		titles, err := s.sprintTitles(stories)
		if err != nil {
			return nil, err
		}
		acc := grouping.Accessor[story.Story]{
			SortKey: func(st story.Story) (string, bool) {
				if st.SprintID == nil {
					return "", false
				}
				return titles[*st.SprintID], true
			},
			Label: func(st story.Story) string {
				if st.SprintID == nil {
					return "No sprint"
				}
				return titles[*st.SprintID]
			},
		}
		return grouping.GroupBy(stories, acc, secondary), nil

	case GroupByState:
		acc := grouping.Accessor[story.Story]{
			SortKey: func(st story.Story) (string, bool) {
				if st.State == nil {
					return "", false
				}
				return st.State.Name, true
			},
			Label: func(st story.Story) string {
				if st.State == nil {
					return "Unset"
				}
				return st.State.Name
			},
		}
		return grouping.GroupBy(stories, acc, secondary), nil

	case GroupByRequester:
		names, err := s.usernames(stories, func(st story.Story) *uint { return st.RequesterID })
		if err != nil {
			return nil, err
		}
		acc := grouping.Accessor[story.Story]{
			SortKey: func(st story.Story) (string, bool) {
				if st.RequesterID == nil {
					return "", false
				}
				return names[*st.RequesterID], true
			},
			Label: func(st story.Story) string {
				if st.RequesterID == nil {
					return "Unset"
				}
				return names[*st.RequesterID]
			},
		}
		return grouping.GroupBy(stories, acc, secondary), nil

	case GroupByAssignee:
		names, err := s.usernames(stories, func(st story.Story) *uint { return st.AssigneeID })
		if err != nil {
			return nil, err
		}
		acc := grouping.Accessor[story.Story]{
			SortKey: func(st story.Story) (string, bool) {
				if st.AssigneeID == nil {
					return "", false
				}
				return names[*st.AssigneeID], true
			},
			Label: func(st story.Story) string {
				if st.AssigneeID == nil {
					return "Unassigned"
				}
				return names[*st.AssigneeID]
			},
		}
		return grouping.GroupBy(stories, acc, secondary), nil

	default:
		return grouping.Single(stories), nil
	}
}

func (s *StoryService) sprintTitles(stories []story.Story) (map[uint]string, error) {
	titles := make(map[uint]string)
	for i := range stories {
		id := stories[i].SprintID
		if id == nil {
			continue
		}
		if _, ok := titles[*id]; ok {
			continue
		}
		sp, err := s.Repos.Sprint.GetSprintByID(*id)
		if err != nil {
			return nil, err
		}
		titles[*id] = sp.Title
	}
	return titles, nil
}

func (s *StoryService) usernames(stories []story.Story, pick func(story.Story) *uint) (map[uint]string, error) {
	names := make(map[uint]string)
	for i := range stories {
		id := pick(stories[i])
		if id == nil {
			continue
		}
		if _, ok := names[*id]; ok {
			continue
		}
		u, err := s.Repos.User.GetUserByID(*id)
		if err != nil {
			return nil, err
		}
		names[*id] = u.Username
	}
	return names, nil
}
