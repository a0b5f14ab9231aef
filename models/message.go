package models

import "time"

// MessageGroup is the per-project conversation. One group per project,
// created lazily on first message.
type MessageGroup struct {
	GID       uint      `gorm:"primaryKey;column:g_id" json:"g_id"`
	ProjectID uint      `gorm:"not null;uniqueIndex" json:"project_id"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
}

func (MessageGroup) TableName() string {
	return "message_groups"
}

type GroupMember struct {
	ID      uint `gorm:"primaryKey;column:id" json:"id"`
	GroupID uint `gorm:"not null;uniqueIndex:uix_member_group_user" json:"group_id"`
	UserID  uint `gorm:"not null;uniqueIndex:uix_member_group_user" json:"user_id"`

	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
}

func (GroupMember) TableName() string {
	return "group_members"
}

// Message belongs to a group. SenderID 0 marks a system notification.
// RecipientID is set only on direct notifications; broadcasts leave it NULL.
type Message struct {
	MID         uint      `gorm:"primaryKey;column:m_id" json:"m_id"`
	GroupID     uint      `gorm:"not null;index" json:"group_id"`
	SenderID    uint      `gorm:"not null;default:0" json:"sender_id"`
	RecipientID *uint     `gorm:"column:recipient_id" json:"recipient_id"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Read        bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt   time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
}

func (Message) TableName() string {
	return "messages"
}
