package models

import "time"

type AuditLog struct {
	ID           uint      `gorm:"primaryKey;column:id" json:"id"`
	UserID       uint      `gorm:"index" json:"user_id"`
	Action       string    `gorm:"size:50;not null" json:"action"`
	ResourceType string    `gorm:"size:50;not null" json:"resource_type"`
	ResourceID   string    `gorm:"size:100" json:"resource_id"`
	OldData      []byte    `gorm:"type:jsonb" json:"old_data"`
	NewData      []byte    `gorm:"type:jsonb" json:"new_data"`
	IPAddress    string    `gorm:"size:45" json:"ip_address"`
	UserAgent    string    `gorm:"size:255" json:"user_agent"`
	Description  string    `gorm:"type:text" json:"description"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
