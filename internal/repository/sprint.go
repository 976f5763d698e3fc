package repository

import (
	"gorm.io/gorm"

	"github.com/agily-hq/agily/internal/domain/sprint"
)

type SprintRepo interface {
	CreateSprint(s *sprint.Sprint) error
	GetSprintByID(id uint) (sprint.Sprint, error)
	ListSprintsByProject(pid uint) ([]sprint.Sprint, error)
	ListUnfinished() ([]sprint.Sprint, error)
	UpdateSprint(s *sprint.Sprint) error
	UpdateState(id uint, state string) error
	UpdateRollup(id uint, fields map[string]interface{}) error
	DeleteSprint(id uint) error
	WithTx(tx *gorm.DB) SprintRepo
}

type DBSprintRepo struct {
	db *gorm.DB
}

func NewSprintRepo(db *gorm.DB) *DBSprintRepo {
	return &DBSprintRepo{db: db}
}

func (r *DBSprintRepo) CreateSprint(s *sprint.Sprint) error {
	return r.db.Create(s).Error
}

func (r *DBSprintRepo) GetSprintByID(id uint) (sprint.Sprint, error) {
	var s sprint.Sprint
	err := r.db.First(&s, id).Error
	return s, err
}

func (r *DBSprintRepo) ListSprintsByProject(pid uint) ([]sprint.Sprint, error) {
	var sprints []sprint.Sprint
	err := r.db.Where("p_id = ?", pid).Order("starts_at, id").Find(&sprints).Error
	return sprints, err
}

func (r *DBSprintRepo) ListUnfinished() ([]sprint.Sprint, error) {
	var sprints []sprint.Sprint
	err := r.db.Where("state <> ?", sprint.StateFinished).Find(&sprints).Error
	return sprints, err
}

func (r *DBSprintRepo) UpdateSprint(s *sprint.Sprint) error {
	return r.db.Save(s).Error
}

func (r *DBSprintRepo) UpdateState(id uint, state string) error {
	return r.db.Model(&sprint.Sprint{}).Where("id = ?", id).
		Update("state", state).Error
}

func (r *DBSprintRepo) UpdateRollup(id uint, fields map[string]interface{}) error {
	return r.db.Model(&sprint.Sprint{}).Where("id = ?", id).Updates(fields).Error
}

func (r *DBSprintRepo) DeleteSprint(id uint) error {
	return r.db.Delete(&sprint.Sprint{}, id).Error
}

func (r *DBSprintRepo) WithTx(tx *gorm.DB) SprintRepo {
	if tx == nil {
		return r
	}
	return &DBSprintRepo{db: tx}
}
