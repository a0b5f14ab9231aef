package models

import "time"

// Proposal is the admin→student invitation. Accepted is tri-state: NULL while
// pending, then true/false once the student answers. Rows are never deleted.
// The (project, student) pair is unique; a duplicate insert is surfaced as a
// conflict, not silently ignored.
type Proposal struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	ProjectID uint      `gorm:"not null;uniqueIndex:uix_proposal_project_student" json:"project_id"`
	StudentID uint      `gorm:"not null;uniqueIndex:uix_proposal_project_student" json:"student_id"`
	Accepted  *bool     `gorm:"column:accepted" json:"accepted"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`

	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

func (Proposal) TableName() string {
	return "proposals"
}

func (p Proposal) Pending() bool {
	return p.Accepted == nil
}
