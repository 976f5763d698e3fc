package repository

import (
	"gorm.io/gorm"

	"github.com/agily-hq/agily/internal/domain/workspace"
)

type MemberView struct {
	UID      uint   `json:"uid"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type WorkspaceRepo interface {
	CreateWorkspace(w *workspace.Workspace) error
	GetWorkspaceByID(id uint) (workspace.Workspace, error)
	GetWorkspaceBySlug(slug string) (workspace.Workspace, error)
	ListWorkspaces() ([]workspace.Workspace, error)
	UpdateWorkspace(w *workspace.Workspace) error
	DeleteWorkspace(id uint) error

	AddMember(m *workspace.Member) error
	UpdateMember(m *workspace.Member) error
	RemoveMember(wid, uid uint) error
	ListMembers(wid uint) ([]MemberView, error)
	GetMemberRole(wid, uid uint) (string, error)

	WithTx(tx *gorm.DB) WorkspaceRepo
}

type DBWorkspaceRepo struct {
	db *gorm.DB
}

func NewWorkspaceRepo(db *gorm.DB) *DBWorkspaceRepo {
	return &DBWorkspaceRepo{db: db}
}

func (r *DBWorkspaceRepo) CreateWorkspace(w *workspace.Workspace) error {
	return r.db.Create(w).Error
}

func (r *DBWorkspaceRepo) GetWorkspaceByID(id uint) (workspace.Workspace, error) {
	var w workspace.Workspace
	err := r.db.First(&w, id).Error
	return w, err
}

func (r *DBWorkspaceRepo) GetWorkspaceBySlug(slug string) (workspace.Workspace, error) {
	var w workspace.Workspace
	err := r.db.Where("slug = ?", slug).First(&w).Error
	return w, err
}

func (r *DBWorkspaceRepo) ListWorkspaces() ([]workspace.Workspace, error) {
	var workspaces []workspace.Workspace
	err := r.db.Order("slug").Find(&workspaces).Error
	return workspaces, err
}

func (r *DBWorkspaceRepo) UpdateWorkspace(w *workspace.Workspace) error {
	return r.db.Save(w).Error
}

func (r *DBWorkspaceRepo) DeleteWorkspace(id uint) error {
	if err := r.db.Where("w_id = ?", id).Delete(&workspace.Member{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&workspace.Workspace{}, id).Error
}

func (r *DBWorkspaceRepo) AddMember(m *workspace.Member) error {
	return r.db.Create(m).Error
}

func (r *DBWorkspaceRepo) UpdateMember(m *workspace.Member) error {
	return r.db.Model(&workspace.Member{}).
		Where("w_id = ? AND u_id = ?", m.WID, m.UID).
		Update("role", m.Role).Error
}

func (r *DBWorkspaceRepo) RemoveMember(wid, uid uint) error {
	return r.db.Where("w_id = ? AND u_id = ?", wid, uid).Delete(&workspace.Member{}).Error
}

func (r *DBWorkspaceRepo) ListMembers(wid uint) ([]MemberView, error) {
	var members []MemberView
	err := r.db.Table("workspace_members wm").
		Select("u.u_id AS uid, u.username, u.email, wm.role").
		Joins("JOIN users u ON u.u_id = wm.u_id").
		Where("wm.w_id = ?", wid).
		Order("u.username").
		Scan(&members).Error
	return members, err
}

func (r *DBWorkspaceRepo) GetMemberRole(wid, uid uint) (string, error) {
	var m workspace.Member
	err := r.db.Where("w_id = ? AND u_id = ?", wid, uid).First(&m).Error
	if err != nil {
		return "", err
	}
	return m.Role, nil
}

func (r *DBWorkspaceRepo) WithTx(tx *gorm.DB) WorkspaceRepo {
	if tx == nil {
		return r
	}
	return &DBWorkspaceRepo{db: tx}
}
