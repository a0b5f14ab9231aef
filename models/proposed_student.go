package models

import "time"

// ProposedStudent is the second shortlist: students who accepted their
// proposal and are now shown to the entrepreneur for final selection.
// Read-only after creation; superseded by Project.SelectedStudentID.
type ProposedStudent struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	ProjectID uint      `gorm:"not null;uniqueIndex:uix_proposed_project_student" json:"project_id"`
	StudentID uint      `gorm:"not null;uniqueIndex:uix_proposed_project_student" json:"student_id"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`

	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

func (ProposedStudent) TableName() string {
	return "proposed_students"
}
