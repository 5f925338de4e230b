package repositories

import (
	"context"
	"time"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/pkg/memstore"
)

// EventListFilter selects events in List. Zero-valued fields match everything.
type EventListFilter struct {
	Type   string // exact
	Status string // exact
}

// EventRepository stores alumni events
type EventRepository struct {
	collection *memstore.Collection[models.Event]
}

// NewEventRepository creates a new EventRepository
func NewEventRepository() *EventRepository {
	return &EventRepository{
		collection: memstore.New[models.Event](),
	}
}

// Create stores a new event, assigning the next id and timestamps
func (r *EventRepository) Create(_ context.Context, event models.Event) models.Event {
	return r.collection.Insert(func(id int64) models.Event {
		now := time.Now()
		event.ID = id
		event.CreatedAt = now
		event.UpdatedAt = now
		return event
	})
}

// GetByID returns the event with the given id
func (r *EventRepository) GetByID(_ context.Context, id int64) (models.Event, bool) {
	return r.collection.Find(func(e models.Event) bool {
		return e.ID == id
	})
}

// List returns all events matching every supplied filter, in insertion order
func (r *EventRepository) List(_ context.Context, filter EventListFilter) []models.Event {
	return r.collection.List(func(e models.Event) bool {
		if filter.Type != "" && e.EventType != filter.Type {
			return false
		}
		if filter.Status != "" && e.Status != filter.Status {
			return false
		}
		return true
	})
}

// Update applies apply to the event with the given id and stamps the
// update timestamp. Returns false when the id does not exist.
func (r *EventRepository) Update(_ context.Context, id int64, apply func(models.Event) models.Event) (models.Event, bool) {
	return r.collection.Update(
		func(e models.Event) bool { return e.ID == id },
		func(e models.Event) models.Event {
			e = apply(e)
			e.UpdatedAt = time.Now()
			return e
		},
	)
}

// Delete removes the event with the given id
func (r *EventRepository) Delete(_ context.Context, id int64) bool {
	return r.collection.Delete(func(e models.Event) bool {
		return e.ID == id
	})
}

// Count reports the number of stored events
func (r *EventRepository) Count() int {
	return r.collection.Len()
}
