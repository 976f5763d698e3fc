package application

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/agily-hq/agily/internal/api/middleware"
	"github.com/agily-hq/agily/internal/domain/user"
	"github.com/agily-hq/agily/internal/repository"
	"github.com/agily-hq/agily/internal/repository/mock"
)

// --------------------- Setup ---------------------
func setupUserServiceMocks(t *testing.T) (*UserService, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{
		User: mockUser,
	}
	svc := NewUserService(repos)
	return svc, mockUser
}

func ptrString(s string) *string { return &s }

// --------------------- RegisterUser ---------------------
func TestRegisterUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	input := user.CreateUserInput{
		Username: "alice",
		Password: "supersecret",
		Email:    "alice@test.com",
		FullName: ptrString("Alice"),
	}

	mockUser.EXPECT().GetUserByUsername("alice").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.True(t, u.IsActive)
		assert.NotEqual(t, "supersecret", u.Password)
		return nil
	})

	err := svc.RegisterUser(input)
	assert.NoError(t, err)
}

func TestRegisterUser_UsernameTaken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("admin").Return(user.User{UID: 1}, nil)

	input := user.CreateUserInput{Username: "admin", Password: "supersecret", Email: "a@test.com"}
	err := svc.RegisterUser(input)
	assert.Equal(t, ErrUsernameTaken, err)
}

// --------------------- LoginUser ---------------------
func TestLoginUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	u := user.User{UID: 1, Username: "bob", Password: string(hashed), IsActive: true, IsSuperuser: true}

	mockUser.EXPECT().GetUserByUsername("bob").Return(u, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(userID uint, username string, isSuperuser bool, expire time.Duration) (string, error) {
		assert.Equal(t, uint(1), userID)
		assert.True(t, isSuperuser)
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	got, token, err := svc.LoginUser("bob", "supersecret")
	assert.NoError(t, err)
	assert.Equal(t, "bob", got.Username)
	assert.Equal(t, "token123", token)
}

func TestLoginUser_InvalidPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	u := user.User{UID: 1, Username: "bob", Password: string(hashed), IsActive: true}

	mockUser.EXPECT().GetUserByUsername("bob").Return(u, nil)

	got, token, err := svc.LoginUser("bob", "wrong")
	assert.Equal(t, ErrInvalidCredentials, err)
	assert.Equal(t, user.User{}, got)
	assert.Empty(t, token)
}

func TestLoginUser_Inactive(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	u := user.User{UID: 2, Username: "carol", Password: string(hashed), IsActive: false}

	mockUser.EXPECT().GetUserByUsername("carol").Return(u, nil)

	_, _, err := svc.LoginUser("carol", "supersecret")
	assert.Equal(t, ErrUserInactive, err)
}

func TestLoginUser_UserNotFound(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByUsername("ghost").Return(user.User{}, gorm.ErrRecordNotFound)

	_, _, err := svc.LoginUser("ghost", "whatever")
	assert.Equal(t, ErrInvalidCredentials, err)
}

// --------------------- ListUsersPaging ---------------------
func TestListUsersPaging_Offset(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().ListUsersPaging(24, 12).Return([]user.User{{UID: 25}}, int64(40), nil)

	users, total, err := svc.ListUsersPaging(3, 12)
	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, int64(40), total)
}
