package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/agily-hq/agily/internal/domain/epic"
	"github.com/agily-hq/agily/internal/domain/story"
	"github.com/agily-hq/agily/internal/repository"
)

type stateSpec struct {
	Slug  string `yaml:"slug"`
	Name  string `yaml:"name"`
	SType int    `yaml:"stype"`
}

type statesFile struct {
	Epic  []stateSpec `yaml:"epic"`
	Story []stateSpec `yaml:"story"`
}

// States loads the workflow state definitions from the given YAML file and
// upserts them by slug. Existing states keep their IDs, so rows stay valid
// across reseeds.
func States(path string, repos *repository.Repos) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read states file: %w", err)
	}

	var f statesFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("parse states file: %w", err)
	}

	for _, s := range f.Epic {
		if err := repos.Epic.UpsertState(&epic.EpicState{Slug: s.Slug, Name: s.Name, SType: s.SType}); err != nil {
			return fmt.Errorf("seed epic state %q: %w", s.Slug, err)
		}
	}
	for _, s := range f.Story {
		if err := repos.Story.UpsertState(&story.StoryState{Slug: s.Slug, Name: s.Name, SType: s.SType}); err != nil {
			return fmt.Errorf("seed story state %q: %w", s.Slug, err)
		}
	}
	return nil
}
