package services

import (
	"context"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/repositories"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
)

// MessageService handles direct messages
type MessageService struct {
	messageRepo *repositories.MessageRepository
}

// NewMessageService creates a new message service instance
func NewMessageService(messageRepo *repositories.MessageRepository) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
	}
}

// SendMessage stores a new direct message
func (s *MessageService) SendMessage(ctx context.Context, req *dto.CreateMessageRequest) (*models.Message, error) {
	messageType := req.MessageType
	if messageType == "" {
		messageType = models.DefaultMessageType
	}

	message := s.messageRepo.Create(ctx, models.Message{
		SenderEmail:    req.SenderEmail,
		RecipientEmail: req.RecipientEmail,
		Content:        req.Content,
		MessageType:    messageType,
		GroupID:        req.GroupID,
		Read:           false,
	})

	return &message, nil
}

// ListMessages returns every message the user sent or received, newest
// first. The user email is mandatory; messages cannot be listed globally.
func (s *MessageService) ListMessages(ctx context.Context, filter dto.MessageFilter) ([]models.Message, error) {
	if filter.UserEmail == "" {
		return nil, apperrors.NewValidationError("user_email parameter is required")
	}

	return s.messageRepo.ListForUser(ctx, repositories.MessageListFilter{
		UserEmail: filter.UserEmail,
		Type:      filter.Type,
	}), nil
}
