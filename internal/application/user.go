package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/agily-hq/agily/internal/api/middleware"
	"github.com/agily-hq/agily/internal/domain/user"
	"github.com/agily-hq/agily/internal/repository"
	"github.com/agily-hq/agily/pkg/utils"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordHashFailure = errors.New("failed to hash password")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrUserInactive        = errors.New("user account is deactivated")
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

func (s *UserService) RegisterUser(input user.CreateUserInput) error {
	_, err := s.Repos.User.GetUserByUsername(input.Username)
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	if err == nil {
		return ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}

	usr := user.User{
		Username: input.Username,
		Password: string(hashed),
		Email:    input.Email,
		FullName: input.FullName,
		IsActive: true,
	}
	return s.Repos.User.CreateUser(&usr)
}

func (s *UserService) LoginUser(username, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByUsername(username)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if !usr.IsActive {
		return user.User{}, "", ErrUserInactive
	}

	token, err := middleware.GenerateToken(usr.UID, usr.Username, usr.IsSuperuser, 24*time.Hour)
	if err != nil {
		return user.User{}, "", err
	}

	return usr, token, nil
}

func (s *UserService) GetUser(id uint) (*user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return &usr, nil
}

func (s *UserService) ListUsers() ([]user.User, error) {
	return s.Repos.User.ListUsers()
}

func (s *UserService) ListUsersPaging(page, pageSize int) ([]user.User, int64, error) {
	offset := (page - 1) * pageSize
	return s.Repos.User.ListUsersPaging(offset, pageSize)
}

func (s *UserService) UpdateUser(c *gin.Context, id uint, input user.UpdateUserInput) (*user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	oldUser := usr

	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, ErrPasswordHashFailure
		}
		usr.Password = string(hashed)
	}
	if input.Email != nil {
		usr.Email = *input.Email
	}
	if input.FullName != nil {
		usr.FullName = input.FullName
	}
	if input.IsActive != nil {
		usr.IsActive = *input.IsActive
	}

	if err := s.Repos.User.UpdateUser(&usr); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "update", "user", fmt.Sprintf("u_id=%d", usr.UID), oldUser, usr, "", s.Repos.Audit)

	return &usr, nil
}

func (s *UserService) DeleteUser(c *gin.Context, id uint) error {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return ErrUserNotFound
	}
	if err := s.Repos.User.DeleteUser(id); err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "user", fmt.Sprintf("u_id=%d", id), usr, nil, "", s.Repos.Audit)

	return nil
}
