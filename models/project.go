package models

import "time"

// Project is owned by exactly one entrepreneur; the owner never changes after
// creation. SelectedStudentID stays NULL until the Selection→Payment
// transition and is never cleared afterwards except by project deletion.
type Project struct {
	PID               uint          `gorm:"primaryKey;column:p_id" json:"p_id"`
	Title             string        `gorm:"size:150;not null" json:"title"`
	Description       string        `gorm:"type:text" json:"description"`
	Price             float64       `gorm:"not null;default:0" json:"price"`
	EntrepreneurID    uint          `gorm:"not null;index" json:"entrepreneur_id"`
	SelectedStudentID *uint         `gorm:"column:selected_student_id" json:"selected_student_id"`
	Status            ProjectStatus `gorm:"type:varchar(10);not null;default:'STEP1'" json:"status"`
	CreatedAt         time.Time     `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt         time.Time     `gorm:"column:update_at;autoUpdateTime" json:"update_at"`

	Entrepreneur    *Entrepreneur `gorm:"foreignKey:EntrepreneurID" json:"entrepreneur,omitempty"`
	SelectedStudent *Student      `gorm:"foreignKey:SelectedStudentID" json:"selected_student,omitempty"`
}

func (Project) TableName() string {
	return "projects"
}
