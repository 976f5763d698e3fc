package repository

import (
	"gorm.io/gorm"

	"github.com/agily-hq/agily/internal/domain/project"
)

type ProjectRepo interface {
	CreateProject(p *project.Project) error
	GetProjectByID(id uint) (project.Project, error)
	GetWorkspaceIDByProjectID(pid uint) (uint, error)
	ListProjects() ([]project.Project, error)
	ListProjectsByWorkspace(wid uint) ([]project.Project, error)
	ListProjectsByAdmin(uid uint) ([]project.Project, error)
	UpdateProject(p *project.Project) error
	DeleteProject(id uint) error
	DeleteProjects(ids []uint) error
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{db: db}
}

func (r *DBProjectRepo) CreateProject(p *project.Project) error {
	return r.db.Create(p).Error
}

func (r *DBProjectRepo) GetProjectByID(id uint) (project.Project, error) {
	var p project.Project
	err := r.db.First(&p, id).Error
	return p, err
}

func (r *DBProjectRepo) GetWorkspaceIDByProjectID(pid uint) (uint, error) {
	var wid uint
	err := r.db.Model(&project.Project{}).Select("w_id").Where("p_id = ?", pid).Scan(&wid).Error
	if err != nil {
		return 0, err
	}
	return wid, nil
}

func (r *DBProjectRepo) ListProjects() ([]project.Project, error) {
	var projects []project.Project
	err := r.db.Order("name").Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ListProjectsByWorkspace(wid uint) ([]project.Project, error) {
	var projects []project.Project
	err := r.db.Where("w_id = ?", wid).Order("name").Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ListProjectsByAdmin(uid uint) ([]project.Project, error) {
	var projects []project.Project
	err := r.db.Where("project_admin_id = ?", uid).Order("name").Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) UpdateProject(p *project.Project) error {
	return r.db.Save(p).Error
}

func (r *DBProjectRepo) DeleteProject(id uint) error {
	return r.db.Delete(&project.Project{}, id).Error
}

func (r *DBProjectRepo) DeleteProjects(ids []uint) error {
	return r.db.Delete(&project.Project{}, ids).Error
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	if tx == nil {
		return r
	}
	return &DBProjectRepo{db: tx}
}
