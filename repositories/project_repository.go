package repositories

import (
	"github.com/venturemate/marketplace-go/db"
	"github.com/venturemate/marketplace-go/models"
)

type ProjectRepo interface {
	CreateProject(p *models.Project) error
	GetProjectByID(id uint) (models.Project, error)
	ListProjects() ([]models.Project, error)
	ListProjectsByEntrepreneur(entrepreneurID uint) ([]models.Project, error)
	UpdateProject(p *models.Project) error
	// UpdateStatus is a compare-and-set on the status column. It reports false
	// when the project was no longer at `from`, which is how a lost
	// double-transition race surfaces instead of last-write-wins.
	UpdateStatus(id uint, from, to models.ProjectStatus) (bool, error)
	SetSelectedStudent(id uint, studentID uint) error
	DeleteProject(id uint) error
}

type DBProjectRepo struct{}

func (r *DBProjectRepo) CreateProject(p *models.Project) error {
	return db.DB.Create(p).Error
}

func (r *DBProjectRepo) GetProjectByID(id uint) (models.Project, error) {
	var project models.Project
	if err := db.DB.First(&project, id).Error; err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (r *DBProjectRepo) ListProjects() ([]models.Project, error) {
	var projects []models.Project
	err := db.DB.Order("create_at desc").Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ListProjectsByEntrepreneur(entrepreneurID uint) ([]models.Project, error) {
	var projects []models.Project
	err := db.DB.Where("entrepreneur_id = ?", entrepreneurID).
		Order("create_at desc").Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) UpdateProject(p *models.Project) error {
	return db.DB.Save(p).Error
}

func (r *DBProjectRepo) UpdateStatus(id uint, from, to models.ProjectStatus) (bool, error) {
	res := db.DB.Model(&models.Project{}).
		Where("p_id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *DBProjectRepo) SetSelectedStudent(id uint, studentID uint) error {
	return db.DB.Model(&models.Project{}).
		Where("p_id = ?", id).
		Update("selected_student_id", studentID).Error
}

func (r *DBProjectRepo) DeleteProject(id uint) error {
	if err := db.DB.Where("project_id = ?", id).Delete(&models.Proposal{}).Error; err != nil {
		return err
	}
	if err := db.DB.Where("project_id = ?", id).Delete(&models.ProposedStudent{}).Error; err != nil {
		return err
	}
	return db.DB.Delete(&models.Project{}, id).Error
}
