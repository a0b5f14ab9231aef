package repositories

import (
	"github.com/venturemate/marketplace-go/db"
	"github.com/venturemate/marketplace-go/models"
)

type CatalogRepo interface {
	SaveService(s *models.Service) error
	ListServices() ([]models.Service, error)
	DeleteService(id uint) error
	SavePack(p *models.Pack) error
	ListPacks() ([]models.Pack, error)
	DeletePack(id uint) error
}

type DBCatalogRepo struct{}

func (r *DBCatalogRepo) SaveService(s *models.Service) error {
	return db.DB.Save(s).Error
}

func (r *DBCatalogRepo) ListServices() ([]models.Service, error) {
	var services []models.Service
	err := db.DB.Order("name").Find(&services).Error
	return services, err
}

func (r *DBCatalogRepo) DeleteService(id uint) error {
	return db.DB.Delete(&models.Service{}, id).Error
}

func (r *DBCatalogRepo) SavePack(p *models.Pack) error {
	return db.DB.Save(p).Error
}

func (r *DBCatalogRepo) ListPacks() ([]models.Pack, error) {
	var packs []models.Pack
	err := db.DB.Order("name").Find(&packs).Error
	return packs, err
}

func (r *DBCatalogRepo) DeletePack(id uint) error {
	return db.DB.Delete(&models.Pack{}, id).Error
}
