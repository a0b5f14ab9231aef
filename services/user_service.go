package services

import (
	"errors"
	"time"

	"github.com/venturemate/marketplace-go/apperrors"
	"github.com/venturemate/marketplace-go/dto"
	"github.com/venturemate/marketplace-go/middleware"
	"github.com/venturemate/marketplace-go/models"
	"github.com/venturemate/marketplace-go/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = apperrors.New(apperrors.KindConflict, "username already taken")
	ErrInvalidCredentials = apperrors.New(apperrors.KindUnauthorized, "invalid credentials")
)

type UserService struct {
	Repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{Repos: repos}
}

// Register creates the account plus the role-specific profile row. These are
// two independent writes; a failed profile insert leaves the account in place
// and surfaces the error.
func (s *UserService) Register(input dto.RegisterDTO) (models.User, error) {
	_, err := s.Repos.User.GetUserByUsername(input.Username)
	if err == nil {
		return models.User{}, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, apperrors.Wrap(apperrors.KindRemote, "check username", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, apperrors.Wrap(apperrors.KindRemote, "hash password", err)
	}

	user := models.User{
		Username: input.Username,
		Password: string(hashed),
		Email:    input.Email,
		FullName: input.FullName,
		Role:     models.Role(input.Role),
	}
	if err := s.Repos.User.SaveUser(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, apperrors.Wrap(apperrors.KindRemote, "create user", err)
	}

	switch user.Role {
	case models.RoleStudent:
		student := models.Student{UserID: user.UID, Available: true}
		if input.School != nil {
			student.School = *input.School
		}
		if input.Major != nil {
			student.Major = *input.Major
		}
		if input.Skills != nil {
			student.Skills = *input.Skills
		}
		if err := s.Repos.Student.CreateStudent(&student); err != nil {
			return user, apperrors.Wrap(apperrors.KindRemote, "create student profile", err)
		}
	case models.RoleEntrepreneur:
		e := models.Entrepreneur{UserID: user.UID}
		if input.Company != nil {
			e.Company = *input.Company
		}
		if input.Sector != nil {
			e.Sector = *input.Sector
		}
		if err := s.Repos.Entrepreneur.CreateEntrepreneur(&e); err != nil {
			return user, apperrors.Wrap(apperrors.KindRemote, "create entrepreneur profile", err)
		}
	}

	return user, nil
}

func (s *UserService) Login(username, password string) (models.User, string, error) {
	user, err := s.Repos.User.GetUserByUsername(username)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(user, 24*time.Hour)
	if err != nil {
		return models.User{}, "", apperrors.Wrap(apperrors.KindRemote, "sign token", err)
	}
	return user, token, nil
}

func (s *UserService) GetUser(id uint) (models.User, error) {
	user, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apperrors.New(apperrors.KindNotFound, "user not found")
		}
		return models.User{}, apperrors.Wrap(apperrors.KindRemote, "load user", err)
	}
	return user, nil
}

func (s *UserService) ListUsers() ([]models.User, error) {
	return s.Repos.User.ListUsers()
}

func (s *UserService) UpdateUser(id uint, input dto.UpdateUserDTO) (models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return models.User{}, err
	}

	if input.Password != nil {
		if input.OldPassword == nil {
			return models.User{}, apperrors.New(apperrors.KindValidation, "old password is required to change password")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(*input.OldPassword)); err != nil {
			return models.User{}, apperrors.New(apperrors.KindUnauthorized, "old password is incorrect")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, apperrors.Wrap(apperrors.KindRemote, "hash password", err)
		}
		user.Password = string(hashed)
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
	}

	if err := s.Repos.User.SaveUser(&user); err != nil {
		return models.User{}, apperrors.Wrap(apperrors.KindRemote, "save user", err)
	}
	return user, nil
}

func (s *UserService) DeleteUser(id uint) error {
	if _, err := s.GetUser(id); err != nil {
		return err
	}
	if err := s.Repos.User.DeleteUser(id); err != nil {
		return apperrors.Wrap(apperrors.KindRemote, "delete user", err)
	}
	return nil
}

func (s *UserService) ListStudents() ([]models.Student, error) {
	return s.Repos.Student.ListStudents()
}

func (s *UserService) ListAvailableStudents() ([]models.Student, error) {
	return s.Repos.Student.ListAvailableStudents()
}
