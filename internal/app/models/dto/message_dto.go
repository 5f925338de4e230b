package dto

import (
	"github.com/alumniconnect/backend/internal/app/models"
)

// CreateMessageRequest carries a new direct message
type CreateMessageRequest struct {
	SenderEmail    string `json:"sender_email" binding:"required"`
	RecipientEmail string `json:"recipient_email" binding:"required"`
	Content        string `json:"content" binding:"required"`
	MessageType    string `json:"message_type"`
	GroupID        *int64 `json:"group_id"`
}

// MessageFilter carries the list query parameters. UserEmail is required.
type MessageFilter struct {
	UserEmail string `form:"user_email"`
	Type      string `form:"type"`
}

// MessageSentResponse wraps a newly created message
type MessageSentResponse struct {
	Message     string          `json:"message"`
	MessageData *models.Message `json:"message_data"`
}

// MessagesListResponse wraps a participant's messages, newest first
type MessagesListResponse struct {
	Messages []models.Message `json:"messages"`
	Total    int              `json:"total"`
}
