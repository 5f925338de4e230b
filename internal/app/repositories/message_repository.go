package repositories

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/pkg/memstore"
)

// MessageListFilter selects messages in ListForUser. Type is optional.
type MessageListFilter struct {
	UserEmail string // required: matches sender or recipient, case-insensitive
	Type      string // exact
}

// MessageRepository stores direct messages. Messages are append-only:
// no update or delete operation exists, and no id-addressed lookup is
// exposed over the API.
type MessageRepository struct {
	collection *memstore.Collection[models.Message]
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository() *MessageRepository {
	return &MessageRepository{
		collection: memstore.New[models.Message](),
	}
}

// Create stores a new message, assigning the next id and creation timestamp
func (r *MessageRepository) Create(_ context.Context, message models.Message) models.Message {
	return r.collection.Insert(func(id int64) models.Message {
		message.ID = id
		message.CreatedAt = time.Now()
		return message
	})
}

// ListForUser returns all messages where the user is sender or recipient,
// newest first. Messages created in the same instant order by descending id.
func (r *MessageRepository) ListForUser(_ context.Context, filter MessageListFilter) []models.Message {
	userEmail := strings.ToLower(filter.UserEmail)

	messages := r.collection.List(func(m models.Message) bool {
		if strings.ToLower(m.SenderEmail) != userEmail &&
			strings.ToLower(m.RecipientEmail) != userEmail {
			return false
		}
		if filter.Type != "" && m.MessageType != filter.Type {
			return false
		}
		return true
	})

	sort.SliceStable(messages, func(i, j int) bool {
		if messages[i].CreatedAt.Equal(messages[j].CreatedAt) {
			return messages[i].ID > messages[j].ID
		}
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})

	return messages
}

// Count reports the number of stored messages
func (r *MessageRepository) Count() int {
	return r.collection.Len()
}
