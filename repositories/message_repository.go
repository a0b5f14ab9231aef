package repositories

import (
	"errors"

	"github.com/venturemate/marketplace-go/db"
	"github.com/venturemate/marketplace-go/models"
	"gorm.io/gorm"
)

type MessageRepo interface {
	// GetOrCreateGroupByProject returns the project conversation, creating it
	// lazily on first use.
	GetOrCreateGroupByProject(projectID uint) (models.MessageGroup, error)
	AddMember(groupID, userID uint) error
	ListMembers(groupID uint) ([]models.GroupMember, error)
	CreateMessage(m *models.Message) error
	ListMessagesByGroup(groupID uint) ([]models.Message, error)
	ListNotificationsForUser(userID uint) ([]models.Message, error)
	MarkRead(messageID uint) error
}

type DBMessageRepo struct{}

func (r *DBMessageRepo) GetOrCreateGroupByProject(projectID uint) (models.MessageGroup, error) {
	var group models.MessageGroup
	err := db.DB.Where("project_id = ?", projectID).First(&group).Error
	if err == nil {
		return group, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.MessageGroup{}, err
	}
	group = models.MessageGroup{ProjectID: projectID}
	if err := db.DB.Create(&group).Error; err != nil {
		return models.MessageGroup{}, err
	}
	return group, nil
}

func (r *DBMessageRepo) AddMember(groupID, userID uint) error {
	member := models.GroupMember{GroupID: groupID, UserID: userID}
	return db.DB.
		Where("group_id = ? AND user_id = ?", groupID, userID).
		FirstOrCreate(&member).Error
}

func (r *DBMessageRepo) ListMembers(groupID uint) ([]models.GroupMember, error) {
	var members []models.GroupMember
	err := db.DB.Where("group_id = ?", groupID).Find(&members).Error
	return members, err
}

func (r *DBMessageRepo) CreateMessage(m *models.Message) error {
	return db.DB.Create(m).Error
}

func (r *DBMessageRepo) ListMessagesByGroup(groupID uint) ([]models.Message, error) {
	var messages []models.Message
	err := db.DB.Where("group_id = ?", groupID).
		Order("create_at").Find(&messages).Error
	return messages, err
}

func (r *DBMessageRepo) ListNotificationsForUser(userID uint) ([]models.Message, error) {
	var messages []models.Message
	err := db.DB.Where("recipient_id = ?", userID).
		Order("create_at desc").Find(&messages).Error
	return messages, err
}

func (r *DBMessageRepo) MarkRead(messageID uint) error {
	return db.DB.Model(&models.Message{}).
		Where("m_id = ?", messageID).
		Update("read", true).Error
}
