package repositories

import (
	"github.com/venturemate/marketplace-go/db"
	"github.com/venturemate/marketplace-go/models"
)

type EntrepreneurRepo interface {
	CreateEntrepreneur(e *models.Entrepreneur) error
	GetEntrepreneurByID(id uint) (models.Entrepreneur, error)
	GetEntrepreneurByUserID(userID uint) (models.Entrepreneur, error)
}

type DBEntrepreneurRepo struct{}

func (r *DBEntrepreneurRepo) CreateEntrepreneur(e *models.Entrepreneur) error {
	return db.DB.Create(e).Error
}

func (r *DBEntrepreneurRepo) GetEntrepreneurByID(id uint) (models.Entrepreneur, error) {
	var e models.Entrepreneur
	if err := db.DB.First(&e, id).Error; err != nil {
		return models.Entrepreneur{}, err
	}
	return e, nil
}

func (r *DBEntrepreneurRepo) GetEntrepreneurByUserID(userID uint) (models.Entrepreneur, error) {
	var e models.Entrepreneur
	if err := db.DB.Where("user_id = ?", userID).First(&e).Error; err != nil {
		return models.Entrepreneur{}, err
	}
	return e, nil
}
