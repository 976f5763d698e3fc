package application

import (
	"github.com/agily-hq/agily/internal/repository"
	"github.com/agily-hq/agily/pkg/filterq"
)

// Field tokens accepted in the free-text `q` filter per listing.
var (
	storyFilterFields = map[string]bool{
		"requester": true,
		"assignee":  true,
		"state":     true,
		"label":     true,
		"sprint":    true,
	}
	epicFilterFields = map[string]bool{
		"owner": true,
		"state": true,
		"label": true,
	}
)

// noMatch filters on an id no row can have, so a token naming an unknown
// user/state/sprint yields an empty listing rather than an unfiltered one.
func noMatch() *uint {
	zero := uint(0)
	return &zero
}

func (s *StoryService) userIDByName(username string) *uint {
	u, err := s.Repos.User.GetUserByUsername(username)
	if err != nil {
		return noMatch()
	}
	return &u.UID
}

func (s *StoryService) sprintIDByTitle(pid uint, title string) *uint {
	sprints, err := s.Repos.Sprint.ListSprintsByProject(pid)
	if err != nil {
		return noMatch()
	}
	for i := range sprints {
		if sprints[i].Title == title {
			return &sprints[i].ID
		}
	}
	return noMatch()
}

// ApplyQuery folds a parsed `q` string into the filter. Free text becomes a
// title substring match.
func (s *StoryService) ApplyQuery(f *repository.StoryFilter, raw string) {
	q := filterq.Parse(raw, storyFilterFields)
	for name, value := range q.Fields {
		switch name {
		case "requester":
			f.RequesterID = s.userIDByName(value)
		case "assignee":
			f.AssigneeID = s.userIDByName(value)
		case "state":
			if st, err := s.Repos.Story.GetStateBySlug(value); err == nil {
				f.StateID = &st.ID
			} else {
				f.StateID = noMatch()
			}
		case "label":
			f.Tag = value
		case "sprint":
			f.SprintID = s.sprintIDByTitle(f.PID, value)
		}
	}
	if q.Text != "" {
		f.Title = q.Text
	}
}

// ApplyQuery is the epic counterpart; owners are matched by username.
func (s *EpicService) ApplyQuery(f *repository.EpicFilter, raw string) {
	q := filterq.Parse(raw, epicFilterFields)
	for name, value := range q.Fields {
		switch name {
		case "owner":
			u, err := s.Repos.User.GetUserByUsername(value)
			if err != nil {
				f.OwnerID = noMatch()
			} else {
				f.OwnerID = &u.UID
			}
		case "state":
			if st, err := s.Repos.Epic.GetStateBySlug(value); err == nil {
				f.StateID = &st.ID
			} else {
				f.StateID = noMatch()
			}
		case "label":
			f.Tag = value
		}
	}
	if q.Text != "" {
		f.Title = q.Text
	}
}
