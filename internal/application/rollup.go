package application

import (
	"github.com/agily-hq/agily/internal/domain/story"
	"github.com/agily-hq/agily/internal/repository"
	"github.com/agily-hq/agily/pkg/progress"
)

// RollupService recomputes the derived point totals on epics and sprints
// whenever a child story changes.
type RollupService struct {
	Repos *repository.Repos
}

func NewRollupService(repos *repository.Repos) *RollupService {
	return &RollupService{
		Repos: repos,
	}
}

func children(stories []story.Story) []progress.Child {
	kids := make([]progress.Child, 0, len(stories))
	for i := range stories {
		kids = append(kids, progress.Child{
			Points: stories[i].Points,
			Done:   stories[i].IsDone(),
		})
	}
	return kids
}

func rollupFields(r progress.Rollup) map[string]interface{} {
	return map[string]interface{}{
		"total_points": r.TotalPoints,
		"story_count":  r.StoryCount,
		"points_done":  r.PointsDone,
		"progress":     r.Progress,
	}
}

// RecalcEpic refreshes an epic's rollup from its current stories.
func (s *RollupService) RecalcEpic(epicID uint) error {
	stories, err := s.Repos.Story.ListStoriesByEpic(epicID)
	if err != nil {
		return err
	}
	r := progress.Compute(children(stories))
	return s.Repos.Epic.UpdateRollup(epicID, rollupFields(r))
}

// RecalcSprint refreshes a sprint's rollup from its current stories.
func (s *RollupService) RecalcSprint(sprintID uint) error {
	stories, err := s.Repos.Story.ListStoriesBySprint(sprintID)
	if err != nil {
		return err
	}
	r := progress.Compute(children(stories))
	return s.Repos.Sprint.UpdateRollup(sprintID, rollupFields(r))
}

// RecalcForStory refreshes every container the story belongs to. Pass the
// previous epic/sprint IDs too when a move detached the story, so the old
// containers shrink.
func (s *RollupService) RecalcForStory(epicIDs, sprintIDs []*uint) error {
	doneEpics := make(map[uint]bool)
	for _, id := range epicIDs {
		if id == nil || doneEpics[*id] {
			continue
		}
		doneEpics[*id] = true
		if err := s.RecalcEpic(*id); err != nil {
			return err
		}
	}
	doneSprints := make(map[uint]bool)
	for _, id := range sprintIDs {
		if id == nil || doneSprints[*id] {
			continue
		}
		doneSprints[*id] = true
		if err := s.RecalcSprint(*id); err != nil {
			return err
		}
	}
	return nil
}
