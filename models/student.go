package models

import "time"

// Student is the student-side profile. Available is denormalized here: it
// flips to false while the student is committed to a project and back to true
// on completion. Only the availability coordinator writes it.
type Student struct {
	SID       uint      `gorm:"primaryKey;column:s_id" json:"s_id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	School    string    `gorm:"size:100" json:"school"`
	Major     string    `gorm:"size:100" json:"major"`
	Skills    string    `gorm:"type:text" json:"skills"`
	Available bool      `gorm:"not null;default:true" json:"available"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Student) TableName() string {
	return "students"
}
