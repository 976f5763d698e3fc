package repository

import (
	"gorm.io/gorm"

	"github.com/agily-hq/agily/internal/domain/story"
)

// StoryFilter narrows story listings within a project.
type StoryFilter struct {
	PID         uint
	EpicID      *uint
	SprintID    *uint
	AssigneeID  *uint
	RequesterID *uint
	StateID     *uint
	Tag         string
	Title       string
}

type StoryRepo interface {
	CreateStory(s *story.Story) error
	GetStoryByID(id uint) (story.Story, error)
	ListStories(f StoryFilter) ([]story.Story, error)
	ListStoriesByEpic(epicID uint) ([]story.Story, error)
	ListStoriesBySprint(sprintID uint) ([]story.Story, error)
	ListStoriesByIDs(ids []uint) ([]story.Story, error)
	UpdateStory(s *story.Story) error
	ClearEpic(epicID uint) error
	DeleteStory(id uint) error
	DeleteStories(ids []uint) error
	GetStateBySlug(slug string) (story.StoryState, error)
	GetStateByID(id uint) (story.StoryState, error)
	ListStates() ([]story.StoryState, error)
	UpsertState(s *story.StoryState) error
	CreateAttachment(a *story.Attachment) error
	GetAttachmentByID(id uint) (story.Attachment, error)
	ListAttachments(storyID uint) ([]story.Attachment, error)
	DeleteAttachment(id uint) error
	WithTx(tx *gorm.DB) StoryRepo
}

type DBStoryRepo struct {
	db *gorm.DB
}

func NewStoryRepo(db *gorm.DB) *DBStoryRepo {
	return &DBStoryRepo{db: db}
}

func (r *DBStoryRepo) CreateStory(s *story.Story) error {
	return r.db.Create(s).Error
}

func (r *DBStoryRepo) GetStoryByID(id uint) (story.Story, error) {
	var s story.Story
	err := r.db.Preload("State").First(&s, id).Error
	return s, err
}

func (r *DBStoryRepo) ListStories(f StoryFilter) ([]story.Story, error) {
	q := r.db.Preload("State").Where("p_id = ?", f.PID)
	if f.EpicID != nil {
		q = q.Where("epic_id = ?", *f.EpicID)
	}
	if f.SprintID != nil {
		q = q.Where("sprint_id = ?", *f.SprintID)
	}
	if f.AssigneeID != nil {
		q = q.Where("assignee_id = ?", *f.AssigneeID)
	}
	if f.RequesterID != nil {
		q = q.Where("requester_id = ?", *f.RequesterID)
	}
	if f.StateID != nil {
		q = q.Where("state_id = ?", *f.StateID)
	}
	if f.Tag != "" {
		q = q.Where("tags @> ?", `["`+f.Tag+`"]`)
	}
	if f.Title != "" {
		q = q.Where("title ILIKE ?", "%"+f.Title+"%")
	}
	var stories []story.Story
	err := q.Order("priority, id").Find(&stories).Error
	return stories, err
}

func (r *DBStoryRepo) ListStoriesByEpic(epicID uint) ([]story.Story, error) {
	var stories []story.Story
	err := r.db.Preload("State").Where("epic_id = ?", epicID).
		Order("priority, id").Find(&stories).Error
	return stories, err
}

func (r *DBStoryRepo) ListStoriesBySprint(sprintID uint) ([]story.Story, error) {
	var stories []story.Story
	err := r.db.Preload("State").Where("sprint_id = ?", sprintID).
		Order("priority, id").Find(&stories).Error
	return stories, err
}

func (r *DBStoryRepo) ListStoriesByIDs(ids []uint) ([]story.Story, error) {
	var stories []story.Story
	err := r.db.Preload("State").Where("id IN ?", ids).Find(&stories).Error
	return stories, err
}

func (r *DBStoryRepo) UpdateStory(s *story.Story) error {
	return r.db.Save(s).Error
}

// ClearEpic detaches every story from the epic without touching other fields.
func (r *DBStoryRepo) ClearEpic(epicID uint) error {
	return r.db.Model(&story.Story{}).Where("epic_id = ?", epicID).
		Update("epic_id", nil).Error
}

func (r *DBStoryRepo) DeleteStory(id uint) error {
	return r.db.Delete(&story.Story{}, id).Error
}

func (r *DBStoryRepo) DeleteStories(ids []uint) error {
	return r.db.Delete(&story.Story{}, ids).Error
}

func (r *DBStoryRepo) GetStateBySlug(slug string) (story.StoryState, error) {
	var s story.StoryState
	err := r.db.Where("slug = ?", slug).First(&s).Error
	return s, err
}

func (r *DBStoryRepo) GetStateByID(id uint) (story.StoryState, error) {
	var s story.StoryState
	err := r.db.First(&s, id).Error
	return s, err
}

func (r *DBStoryRepo) ListStates() ([]story.StoryState, error) {
	var states []story.StoryState
	err := r.db.Order("s_type, id").Find(&states).Error
	return states, err
}

func (r *DBStoryRepo) UpsertState(s *story.StoryState) error {
	var existing story.StoryState
	err := r.db.Where("slug = ?", s.Slug).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.Create(s).Error
	}
	if err != nil {
		return err
	}
	existing.Name = s.Name
	existing.SType = s.SType
	return r.db.Save(&existing).Error
}

func (r *DBStoryRepo) CreateAttachment(a *story.Attachment) error {
	return r.db.Create(a).Error
}

func (r *DBStoryRepo) GetAttachmentByID(id uint) (story.Attachment, error) {
	var a story.Attachment
	err := r.db.First(&a, id).Error
	return a, err
}

func (r *DBStoryRepo) ListAttachments(storyID uint) ([]story.Attachment, error) {
	var list []story.Attachment
	err := r.db.Where("story_id = ?", storyID).Order("id").Find(&list).Error
	return list, err
}

func (r *DBStoryRepo) DeleteAttachment(id uint) error {
	return r.db.Delete(&story.Attachment{}, id).Error
}

func (r *DBStoryRepo) WithTx(tx *gorm.DB) StoryRepo {
	if tx == nil {
		return r
	}
	return &DBStoryRepo{db: tx}
}
