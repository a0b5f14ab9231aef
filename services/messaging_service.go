package services

import (
	"errors"

	"github.com/venturemate/marketplace-go/apperrors"
	"github.com/venturemate/marketplace-go/models"
	"github.com/venturemate/marketplace-go/repositories"
	"gorm.io/gorm"
)

// SystemSenderID marks lifecycle notifications in the message stream.
const SystemSenderID uint = 0

// Broadcaster fans a persisted message out to live websocket subscribers.
// Delivery is fire-and-forget; the chat hub implements it.
type Broadcaster interface {
	BroadcastGroup(groupID uint, message models.Message)
}

type MessagingService struct {
	Repos *repositories.Repos
	Hub   Broadcaster
}

func NewMessagingService(repos *repositories.Repos, hub Broadcaster) *MessagingService {
	return &MessagingService{Repos: repos, Hub: hub}
}

// SendMessage posts into the project conversation, creating the group lazily.
func (s *MessagingService) SendMessage(projectID, senderID uint, content string) (models.Message, error) {
	if content == "" {
		return models.Message{}, apperrors.New(apperrors.KindValidation, "message content is empty")
	}
	group, err := s.Repos.Message.GetOrCreateGroupByProject(projectID)
	if err != nil {
		return models.Message{}, apperrors.Wrap(apperrors.KindRemote, "resolve project group", err)
	}
	msg := models.Message{GroupID: group.GID, SenderID: senderID, Content: content}
	if err := s.Repos.Message.CreateMessage(&msg); err != nil {
		return models.Message{}, apperrors.Wrap(apperrors.KindRemote, "store message", err)
	}
	if s.Hub != nil {
		s.Hub.BroadcastGroup(group.GID, msg)
	}
	return msg, nil
}

// SendDirectNotification addresses one user inside the project conversation.
func (s *MessagingService) SendDirectNotification(userID uint, content string, projectID uint) error {
	group, err := s.Repos.Message.GetOrCreateGroupByProject(projectID)
	if err != nil {
		return apperrors.Wrap(apperrors.KindRemote, "resolve project group", err)
	}
	recipient := userID
	msg := models.Message{
		GroupID:     group.GID,
		SenderID:    SystemSenderID,
		RecipientID: &recipient,
		Content:     content,
	}
	if err := s.Repos.Message.CreateMessage(&msg); err != nil {
		return apperrors.Wrap(apperrors.KindRemote, "store notification", err)
	}
	if s.Hub != nil {
		s.Hub.BroadcastGroup(group.GID, msg)
	}
	return nil
}

// AddProjectMember puts a user into the project conversation. Idempotent.
func (s *MessagingService) AddProjectMember(projectID, userID uint) error {
	group, err := s.Repos.Message.GetOrCreateGroupByProject(projectID)
	if err != nil {
		return apperrors.Wrap(apperrors.KindRemote, "resolve project group", err)
	}
	if err := s.Repos.Message.AddMember(group.GID, userID); err != nil {
		return apperrors.Wrap(apperrors.KindRemote, "add group member", err)
	}
	return nil
}

// GroupForProject resolves (creating if needed) the project's message group.
func (s *MessagingService) GroupForProject(projectID uint) (models.MessageGroup, error) {
	group, err := s.Repos.Message.GetOrCreateGroupByProject(projectID)
	if err != nil {
		return models.MessageGroup{}, apperrors.Wrap(apperrors.KindRemote, "resolve project group", err)
	}
	return group, nil
}

func (s *MessagingService) History(projectID uint) ([]models.Message, error) {
	group, err := s.Repos.Message.GetOrCreateGroupByProject(projectID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindRemote, "resolve project group", err)
	}
	msgs, err := s.Repos.Message.ListMessagesByGroup(group.GID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindRemote, "list messages", err)
	}
	return msgs, nil
}

func (s *MessagingService) Notifications(userID uint) ([]models.Message, error) {
	msgs, err := s.Repos.Message.ListNotificationsForUser(userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindRemote, "list notifications", err)
	}
	return msgs, nil
}

func (s *MessagingService) MarkRead(messageID uint) error {
	if err := s.Repos.Message.MarkRead(messageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.KindNotFound, "message not found")
		}
		return apperrors.Wrap(apperrors.KindRemote, "mark message read", err)
	}
	return nil
}
