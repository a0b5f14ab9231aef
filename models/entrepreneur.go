package models

import "time"

type Entrepreneur struct {
	EID       uint      `gorm:"primaryKey;column:e_id" json:"e_id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	Company   string    `gorm:"size:100" json:"company"`
	Sector    string    `gorm:"size:100" json:"sector"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Entrepreneur) TableName() string {
	return "entrepreneurs"
}
