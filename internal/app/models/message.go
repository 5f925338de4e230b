package models

import (
	"time"
)

// DefaultMessageType is used when a message does not specify one.
const DefaultMessageType = "direct"

// Message defines a direct message between two participants identified by
// email. There is no conversation or thread entity.
type Message struct {
	ID             int64     `json:"id" example:"1"`
	SenderEmail    string    `json:"sender_email"`
	RecipientEmail string    `json:"recipient_email"`
	Content        string    `json:"content"`
	MessageType    string    `json:"message_type" example:"direct"`
	GroupID        *int64    `json:"group_id"`
	Read           bool      `json:"read"` // Always false; no read-marking endpoint exists
	CreatedAt      time.Time `json:"created_at"`
}
