package repository

import (
	"gorm.io/gorm"

	"github.com/agily-hq/agily/internal/domain/user"
)

type UserRepo interface {
	CreateUser(u *user.User) error
	GetUserByID(id uint) (user.User, error)
	GetUserByUsername(username string) (user.User, error)
	ListUsers() ([]user.User, error)
	ListUsersPaging(offset, limit int) ([]user.User, int64, error)
	UpdateUser(u *user.User) error
	DeleteUser(id uint) error
	ListActiveSuperusers() ([]user.User, error)
	ListActiveMembersByRole(wid uint, role string) ([]user.User, error)
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) CreateUser(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return u, err
}

func (r *DBUserRepo) GetUserByUsername(username string) (user.User, error) {
	var u user.User
	err := r.db.Where("username = ?", username).First(&u).Error
	return u, err
}

func (r *DBUserRepo) ListUsers() ([]user.User, error) {
	var users []user.User
	err := r.db.Order("username").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) ListUsersPaging(offset, limit int) ([]user.User, int64, error) {
	var users []user.User
	var total int64

	if err := r.db.Model(&user.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("username").Offset(offset).Limit(limit).Find(&users).Error
	return users, total, err
}

func (r *DBUserRepo) UpdateUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) DeleteUser(id uint) error {
	return r.db.Delete(&user.User{}, id).Error
}

func (r *DBUserRepo) ListActiveSuperusers() ([]user.User, error) {
	var users []user.User
	err := r.db.Where("is_superuser = ? AND is_active = ?", true, true).Find(&users).Error
	return users, err
}

// ListActiveMembersByRole returns active users holding the given role in a
// workspace.
func (r *DBUserRepo) ListActiveMembersByRole(wid uint, role string) ([]user.User, error) {
	var users []user.User
	err := r.db.Table("users u").
		Select("u.*").
		Joins("JOIN workspace_members wm ON wm.u_id = u.u_id").
		Where("wm.w_id = ? AND wm.role = ? AND u.is_active = ?", wid, role, true).
		Scan(&users).Error
	return users, err
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{db: tx}
}
