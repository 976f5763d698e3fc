package repository

import (
	"gorm.io/gorm"

	"github.com/agily-hq/agily/internal/domain/epic"
)

// EpicFilter narrows epic listings. Nil/empty fields match everything.
type EpicFilter struct {
	WID     uint
	OwnerID *uint
	StateID *uint
	Tag     string
	Title   string
}

type EpicRepo interface {
	CreateEpic(e *epic.Epic) error
	GetEpicByID(id uint) (epic.Epic, error)
	ListEpics(f EpicFilter) ([]epic.Epic, error)
	ListEpicsByIDs(ids []uint) ([]epic.Epic, error)
	ListRecentByWorkspaces(wids []uint, limit int) ([]epic.Epic, error)
	UpdateEpic(e *epic.Epic) error
	UpdateRollup(id uint, fields map[string]interface{}) error
	DeleteEpic(id uint) error
	DeleteEpics(ids []uint) error
	GetStateBySlug(slug string) (epic.EpicState, error)
	GetStateByID(id uint) (epic.EpicState, error)
	ListStates() ([]epic.EpicState, error)
	UpsertState(s *epic.EpicState) error
	WithTx(tx *gorm.DB) EpicRepo
}

type DBEpicRepo struct {
	db *gorm.DB
}

func NewEpicRepo(db *gorm.DB) *DBEpicRepo {
	return &DBEpicRepo{db: db}
}

func (r *DBEpicRepo) CreateEpic(e *epic.Epic) error {
	return r.db.Create(e).Error
}

func (r *DBEpicRepo) GetEpicByID(id uint) (epic.Epic, error) {
	var e epic.Epic
	err := r.db.Preload("State").First(&e, id).Error
	return e, err
}

func (r *DBEpicRepo) ListEpics(f EpicFilter) ([]epic.Epic, error) {
	q := r.db.Preload("State").Where("w_id = ?", f.WID)
	if f.OwnerID != nil {
		q = q.Where("owner_id = ?", *f.OwnerID)
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
	var epics []epic.Epic
	err := q.Order("priority, id").Find(&epics).Error
	return epics, err
}

func (r *DBEpicRepo) ListEpicsByIDs(ids []uint) ([]epic.Epic, error) {
	var epics []epic.Epic
	err := r.db.Preload("State").Where("id IN ?", ids).Find(&epics).Error
	return epics, err
}

func (r *DBEpicRepo) ListRecentByWorkspaces(wids []uint, limit int) ([]epic.Epic, error) {
	if len(wids) == 0 {
		return nil, nil
	}
	var epics []epic.Epic
	err := r.db.Preload("State").Where("w_id IN ?", wids).
		Order("create_at DESC").Limit(limit).Find(&epics).Error
	return epics, err
}

func (r *DBEpicRepo) UpdateEpic(e *epic.Epic) error {
	return r.db.Save(e).Error
}

func (r *DBEpicRepo) UpdateRollup(id uint, fields map[string]interface{}) error {
	return r.db.Model(&epic.Epic{}).Where("id = ?", id).Updates(fields).Error
}

func (r *DBEpicRepo) DeleteEpic(id uint) error {
	return r.db.Delete(&epic.Epic{}, id).Error
}

func (r *DBEpicRepo) DeleteEpics(ids []uint) error {
	return r.db.Delete(&epic.Epic{}, ids).Error
}

func (r *DBEpicRepo) GetStateBySlug(slug string) (epic.EpicState, error) {
	var s epic.EpicState
	err := r.db.Where("slug = ?", slug).First(&s).Error
	return s, err
}

func (r *DBEpicRepo) GetStateByID(id uint) (epic.EpicState, error) {
	var s epic.EpicState
	err := r.db.First(&s, id).Error
	return s, err
}

func (r *DBEpicRepo) ListStates() ([]epic.EpicState, error) {
	var states []epic.EpicState
	err := r.db.Order("s_type, id").Find(&states).Error
	return states, err
}

func (r *DBEpicRepo) UpsertState(s *epic.EpicState) error {
	var existing epic.EpicState
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

func (r *DBEpicRepo) WithTx(tx *gorm.DB) EpicRepo {
	if tx == nil {
		return r
	}
	return &DBEpicRepo{db: tx}
}
