package models

import "time"

type Role string

const (
	RoleAdmin        Role = "admin"
	RoleEntrepreneur Role = "entrepreneur"
	RoleStudent      Role = "student"
)

type User struct {
	UID       uint      `gorm:"primaryKey;column:u_id" json:"u_id"`
	Username  string    `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	Email     string    `gorm:"size:100;not null;uniqueIndex" json:"email"`
	FullName  string    `gorm:"size:100" json:"full_name"`
	Role      Role      `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (User) TableName() string {
	return "users"
}
