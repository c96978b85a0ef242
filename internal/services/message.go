package services

import (
	"time"

	"national-connect-backend/internal/apperrors"
	"national-connect-backend/internal/models"
	"national-connect-backend/internal/repository"
)

// MessageService handles direct messages between users
type MessageService struct {
	msgRepo  *repository.MessageRepository
	userRepo *repository.UserRepository
	ids      IDGenerator
}

// NewMessageService creates a new message service
func NewMessageService(msgRepo *repository.MessageRepository, userRepo *repository.UserRepository, ids IDGenerator) *MessageService {
	return &MessageService{
		msgRepo:  msgRepo,
		userRepo: userRepo,
		ids:      ids,
	}
}

// Send records a message from sender to receiver. Both names are
// denormalized at send time. Read starts false and stays false; there is
// no mark-as-read operation.
func (s *MessageService) Send(senderID, receiverID, content string) (*models.Message, error) {
	if senderID == "" || receiverID == "" || content == "" {
		return nil, apperrors.Validation("senderId, receiverId, and content are required")
	}

	sender, ok := s.userRepo.GetByID(senderID)
	if !ok {
		return nil, apperrors.NotFound("User not found")
	}
	receiver, ok := s.userRepo.GetByID(receiverID)
	if !ok {
		return nil, apperrors.NotFound("User not found")
	}

	msg := models.Message{
		ID:           s.ids.NewID(),
		SenderID:     senderID,
		SenderName:   sender.Name,
		ReceiverID:   receiverID,
		ReceiverName: receiver.Name,
		Content:      content,
		Read:         false,
		CreatedAt:    time.Now(),
	}
	s.msgRepo.Create(msg)
	return &msg, nil
}

// ListForUser returns the user's messages in send order. A non-empty
// withUserID narrows the result to the conversation with that user only.
func (s *MessageService) ListForUser(userID, withUserID string) []models.Message {
	return s.msgRepo.ListByUser(userID, withUserID)
}
