package services

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/venturemate/marketplace-go/apperrors"
	"github.com/venturemate/marketplace-go/dto"
	"github.com/venturemate/marketplace-go/middleware"
	"github.com/venturemate/marketplace-go/models"
	"github.com/venturemate/marketplace-go/repositories"
	"github.com/venturemate/marketplace-go/repositories/mock_repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type userMocks struct {
	user         *mock_repositories.MockUserRepo
	student      *mock_repositories.MockStudentRepo
	entrepreneur *mock_repositories.MockEntrepreneurRepo
}

func setupUserServiceMocks(t *testing.T) (*UserService, userMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := userMocks{
		user:         mock_repositories.NewMockUserRepo(ctrl),
		student:      mock_repositories.NewMockStudentRepo(ctrl),
		entrepreneur: mock_repositories.NewMockEntrepreneurRepo(ctrl),
	}
	repos := &repositories.Repos{
		User:         m.user,
		Student:      m.student,
		Entrepreneur: m.entrepreneur,
	}
	return NewUserService(repos), m
}

func ptrString(s string) *string { return &s }

// --------------------- Register ---------------------

func TestRegister_StudentWithProfile(t *testing.T) {
	svc, m := setupUserServiceMocks(t)

	input := dto.RegisterDTO{
		Username: "alice",
		Password: "123456",
		Email:    "alice@test.com",
		Role:     "student",
		School:   ptrString("MIT"),
		Major:    ptrString("CS"),
	}

	m.user.EXPECT().GetUserByUsername("alice").Return(models.User{}, gorm.ErrRecordNotFound)
	m.user.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *models.User) error {
		u.UID = 1
		return nil
	})
	m.student.EXPECT().CreateStudent(gomock.Any()).DoAndReturn(func(s *models.Student) error {
		assert.Equal(t, uint(1), s.UserID)
		assert.True(t, s.Available, "new students start available")
		assert.Equal(t, "MIT", s.School)
		return nil
	})

	user, err := svc.Register(input)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleStudent, user.Role)
}

func TestRegister_EntrepreneurWithProfile(t *testing.T) {
	svc, m := setupUserServiceMocks(t)

	input := dto.RegisterDTO{
		Username: "bob",
		Password: "123456",
		Email:    "bob@test.com",
		Role:     "entrepreneur",
		Company:  ptrString("Acme"),
	}

	m.user.EXPECT().GetUserByUsername("bob").Return(models.User{}, gorm.ErrRecordNotFound)
	m.user.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *models.User) error {
		u.UID = 2
		return nil
	})
	m.entrepreneur.EXPECT().CreateEntrepreneur(gomock.Any()).DoAndReturn(func(e *models.Entrepreneur) error {
		assert.Equal(t, uint(2), e.UserID)
		assert.Equal(t, "Acme", e.Company)
		return nil
	})

	_, err := svc.Register(input)
	assert.NoError(t, err)
}

func TestRegister_UsernameTaken(t *testing.T) {
	svc, m := setupUserServiceMocks(t)

	m.user.EXPECT().GetUserByUsername("admin").Return(models.User{UID: 1}, nil)

	_, err := svc.Register(dto.RegisterDTO{Username: "admin", Password: "123456", Role: "student"})
	assert.Equal(t, ErrUsernameTaken, err)
}

// --------------------- Login ---------------------

func TestLogin_Success(t *testing.T) {
	svc, m := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	user := models.User{UID: 1, Username: "bob", Password: string(hashed), Role: models.RoleEntrepreneur}

	m.user.EXPECT().GetUserByUsername("bob").Return(user, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(u models.User, exp time.Duration) (string, error) {
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	u, token, err := svc.Login("bob", "123456")
	assert.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
	assert.Equal(t, "token123", token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, m := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	m.user.EXPECT().GetUserByUsername("bob").Return(models.User{UID: 1, Password: string(hashed)}, nil)

	_, _, err := svc.Login("bob", "wrong")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, m := setupUserServiceMocks(t)

	m.user.EXPECT().GetUserByUsername("ghost").Return(models.User{}, gorm.ErrRecordNotFound)

	_, _, err := svc.Login("ghost", "123456")
	assert.Equal(t, ErrInvalidCredentials, err)
}

// --------------------- UpdateUser ---------------------

func TestUpdateUser_PasswordNeedsOldPassword(t *testing.T) {
	svc, m := setupUserServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(1)).Return(models.User{UID: 1}, nil)

	_, err := svc.UpdateUser(1, dto.UpdateUserDTO{Password: ptrString("newpass")})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateUser_WrongOldPassword(t *testing.T) {
	svc, m := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	m.user.EXPECT().GetUserByID(uint(1)).Return(models.User{UID: 1, Password: string(hashed)}, nil)

	_, err := svc.UpdateUser(1, dto.UpdateUserDTO{
		Password:    ptrString("newpass"),
		OldPassword: ptrString("nope"),
	})
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestUpdateUser_Email(t *testing.T) {
	svc, m := setupUserServiceMocks(t)

	m.user.EXPECT().GetUserByID(uint(1)).Return(models.User{UID: 1, Email: "old@test.com"}, nil)
	m.user.EXPECT().SaveUser(gomock.Any()).Return(nil)

	u, err := svc.UpdateUser(1, dto.UpdateUserDTO{Email: ptrString("new@test.com")})
	assert.NoError(t, err)
	assert.Equal(t, "new@test.com", u.Email)
}
