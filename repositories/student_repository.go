package repositories

import (
	"github.com/venturemate/marketplace-go/db"
	"github.com/venturemate/marketplace-go/models"
)

type StudentRepo interface {
	CreateStudent(s *models.Student) error
	GetStudentByID(id uint) (models.Student, error)
	GetStudentByUserID(userID uint) (models.Student, error)
	ListStudents() ([]models.Student, error)
	ListAvailableStudents() ([]models.Student, error)
	// SetAvailability flips the denormalized flag for every id in ids.
	SetAvailability(ids []uint, available bool) error
}

type DBStudentRepo struct{}

func (r *DBStudentRepo) CreateStudent(s *models.Student) error {
	return db.DB.Create(s).Error
}

func (r *DBStudentRepo) GetStudentByID(id uint) (models.Student, error) {
	var s models.Student
	if err := db.DB.Preload("User").First(&s, id).Error; err != nil {
		return models.Student{}, err
	}
	return s, nil
}

func (r *DBStudentRepo) GetStudentByUserID(userID uint) (models.Student, error) {
	var s models.Student
	if err := db.DB.Where("user_id = ?", userID).First(&s).Error; err != nil {
		return models.Student{}, err
	}
	return s, nil
}

func (r *DBStudentRepo) ListStudents() ([]models.Student, error) {
	var students []models.Student
	err := db.DB.Preload("User").Find(&students).Error
	return students, err
}

func (r *DBStudentRepo) ListAvailableStudents() ([]models.Student, error) {
	var students []models.Student
	err := db.DB.Preload("User").Where("available = ?", true).Find(&students).Error
	return students, err
}

func (r *DBStudentRepo) SetAvailability(ids []uint, available bool) error {
	if len(ids) == 0 {
		return nil
	}
	return db.DB.Model(&models.Student{}).
		Where("s_id IN ?", ids).
		Update("available", available).Error
}
