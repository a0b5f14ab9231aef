package repositories

import (
	"github.com/venturemate/marketplace-go/db"
	"github.com/venturemate/marketplace-go/models"
)

type ProposalRepo interface {
	// CreateProposal inserts one row; the unique (project, student) index makes
	// a duplicate surface as gorm.ErrDuplicatedKey.
	CreateProposal(p *models.Proposal) error
	GetProposalByID(id uint) (models.Proposal, error)
	ListProposalsByProject(projectID uint) ([]models.Proposal, error)
	ListProposalsByStudent(studentID uint) ([]models.Proposal, error)
	ListAcceptedByProject(projectID uint) ([]models.Proposal, error)
	CountProposalsByProject(projectID uint) (int64, error)
	SetAcceptance(id uint, accepted bool) error
}

type DBProposalRepo struct{}

func (r *DBProposalRepo) CreateProposal(p *models.Proposal) error {
	return db.DB.Create(p).Error
}

func (r *DBProposalRepo) GetProposalByID(id uint) (models.Proposal, error) {
	var p models.Proposal
	if err := db.DB.First(&p, id).Error; err != nil {
		return models.Proposal{}, err
	}
	return p, nil
}

func (r *DBProposalRepo) ListProposalsByProject(projectID uint) ([]models.Proposal, error) {
	var proposals []models.Proposal
	err := db.DB.Where("project_id = ?", projectID).
		Preload("Student").Order("create_at").Find(&proposals).Error
	return proposals, err
}

func (r *DBProposalRepo) ListProposalsByStudent(studentID uint) ([]models.Proposal, error) {
	var proposals []models.Proposal
	err := db.DB.Where("student_id = ?", studentID).
		Order("create_at desc").Find(&proposals).Error
	return proposals, err
}

func (r *DBProposalRepo) ListAcceptedByProject(projectID uint) ([]models.Proposal, error) {
	var proposals []models.Proposal
	err := db.DB.Where("project_id = ? AND accepted = ?", projectID, true).
		Order("create_at").Find(&proposals).Error
	return proposals, err
}

func (r *DBProposalRepo) CountProposalsByProject(projectID uint) (int64, error) {
	var count int64
	err := db.DB.Model(&models.Proposal{}).
		Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}

func (r *DBProposalRepo) SetAcceptance(id uint, accepted bool) error {
	return db.DB.Model(&models.Proposal{}).
		Where("id = ?", id).
		Update("accepted", accepted).Error
}
