package models

import "time"

// Document is project file metadata; the bytes live in MinIO under ObjectKey.
type Document struct {
	DID         uint      `gorm:"primaryKey;column:d_id" json:"d_id"`
	ProjectID   uint      `gorm:"not null;index" json:"project_id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	ObjectKey   string    `gorm:"size:100;not null;uniqueIndex" json:"-"`
	ContentType string    `gorm:"size:100" json:"content_type"`
	Size        int64     `gorm:"not null;default:0" json:"size"`
	UploadedBy  uint      `gorm:"not null" json:"uploaded_by"`
	CreatedAt   time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
}

func (Document) TableName() string {
	return "documents"
}
