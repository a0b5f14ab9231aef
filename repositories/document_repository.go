package repositories

import (
	"github.com/venturemate/marketplace-go/db"
	"github.com/venturemate/marketplace-go/models"
)

type DocumentRepo interface {
	CreateDocument(d *models.Document) error
	GetDocumentByID(id uint) (models.Document, error)
	ListDocumentsByProject(projectID uint) ([]models.Document, error)
	DeleteDocument(id uint) error
}

type DBDocumentRepo struct{}

func (r *DBDocumentRepo) CreateDocument(d *models.Document) error {
	return db.DB.Create(d).Error
}

func (r *DBDocumentRepo) GetDocumentByID(id uint) (models.Document, error) {
	var d models.Document
	if err := db.DB.First(&d, id).Error; err != nil {
		return models.Document{}, err
	}
	return d, nil
}

func (r *DBDocumentRepo) ListDocumentsByProject(projectID uint) ([]models.Document, error) {
	var docs []models.Document
	err := db.DB.Where("project_id = ?", projectID).
		Order("create_at desc").Find(&docs).Error
	return docs, err
}

func (r *DBDocumentRepo) DeleteDocument(id uint) error {
	return db.DB.Delete(&models.Document{}, id).Error
}
