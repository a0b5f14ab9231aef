package models

import (
	"time"

	"gorm.io/datatypes"
)

// Service is a standalone offering shown to entrepreneurs.
type Service struct {
	ID          uint      `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null;default:0" json:"price"`
	CreatedAt   time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt   time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (Service) TableName() string {
	return "services"
}

// Pack bundles services at a package price; Features holds the marketing
// bullet list as JSON.
type Pack struct {
	ID          uint           `gorm:"primaryKey;column:id" json:"id"`
	Name        string         `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Price       float64        `gorm:"not null;default:0" json:"price"`
	Features    datatypes.JSON `gorm:"type:json" json:"features"`
	CreatedAt   time.Time      `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt   time.Time      `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (Pack) TableName() string {
	return "packs"
}
