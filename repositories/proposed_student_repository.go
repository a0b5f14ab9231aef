package repositories

import (
	"errors"

	"github.com/venturemate/marketplace-go/db"
	"github.com/venturemate/marketplace-go/models"
	"gorm.io/gorm"
)

type ProposedStudentRepo interface {
	CreateProposedStudent(ps *models.ProposedStudent) error
	ListProposedByProject(projectID uint) ([]models.ProposedStudent, error)
	ProposedExists(projectID, studentID uint) (bool, error)
}

type DBProposedStudentRepo struct{}

func (r *DBProposedStudentRepo) CreateProposedStudent(ps *models.ProposedStudent) error {
	return db.DB.Create(ps).Error
}

func (r *DBProposedStudentRepo) ListProposedByProject(projectID uint) ([]models.ProposedStudent, error) {
	var shortlisted []models.ProposedStudent
	err := db.DB.Where("project_id = ?", projectID).
		Preload("Student").Order("create_at").Find(&shortlisted).Error
	return shortlisted, err
}

func (r *DBProposedStudentRepo) ProposedExists(projectID, studentID uint) (bool, error) {
	var ps models.ProposedStudent
	err := db.DB.Where("project_id = ? AND student_id = ?", projectID, studentID).
		First(&ps).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
