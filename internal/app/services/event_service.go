package services

import (
	"context"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/repositories"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
)

// EventService handles event operations
type EventService struct {
	eventRepo *repositories.EventRepository
}

// NewEventService creates a new event service instance
func NewEventService(eventRepo *repositories.EventRepository) *EventService {
	return &EventService{
		eventRepo: eventRepo,
	}
}

// CreateEvent creates a new event with defaults applied
func (s *EventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error) {
	eventType := req.EventType
	if eventType == "" {
		eventType = models.DefaultEventType
	}

	event := s.eventRepo.Create(ctx, models.Event{
		Title:                req.Title,
		Description:          req.Description,
		Date:                 req.Date,
		Time:                 req.Time,
		Location:             req.Location,
		EventType:            eventType,
		MaxAttendees:         req.MaxAttendees,
		RegistrationRequired: req.RegistrationRequired,
		Organizer:            req.Organizer,
		ContactEmail:         req.ContactEmail,
		ImageURL:             req.ImageURL,
		Status:               models.EventStatusUpcoming,
		Attendees:            []string{},
	})

	return &event, nil
}

// ListEvents returns all events matching the filter
func (s *EventService) ListEvents(ctx context.Context, filter dto.EventFilter) []models.Event {
	return s.eventRepo.List(ctx, repositories.EventListFilter{
		Type:   filter.Type,
		Status: filter.Status,
	})
}

// GetEventByID retrieves an event by id
func (s *EventService) GetEventByID(ctx context.Context, id int64) (*models.Event, error) {
	event, ok := s.eventRepo.GetByID(ctx, id)
	if !ok {
		return nil, apperrors.NewNotFoundError("Event not found")
	}
	return &event, nil
}

// UpdateEvent merge-patches an event
func (s *EventService) UpdateEvent(ctx context.Context, id int64, req *dto.UpdateEventRequest) (*models.Event, error) {
	updated, ok := s.eventRepo.Update(ctx, id, func(e models.Event) models.Event {
		if req.Title != nil {
			e.Title = *req.Title
		}
		if req.Description != nil {
			e.Description = *req.Description
		}
		if req.Date != nil {
			e.Date = *req.Date
		}
		if req.Time != nil {
			e.Time = *req.Time
		}
		if req.Location != nil {
			e.Location = *req.Location
		}
		if req.EventType != nil {
			e.EventType = *req.EventType
		}
		if req.MaxAttendees != nil {
			e.MaxAttendees = req.MaxAttendees
		}
		if req.RegistrationRequired != nil {
			e.RegistrationRequired = *req.RegistrationRequired
		}
		if req.Organizer != nil {
			e.Organizer = *req.Organizer
		}
		if req.ContactEmail != nil {
			e.ContactEmail = *req.ContactEmail
		}
		if req.ImageURL != nil {
			e.ImageURL = *req.ImageURL
		}
		if req.Status != nil {
			e.Status = *req.Status
		}
		return e
	})
	if !ok {
		return nil, apperrors.NewNotFoundError("Event not found")
	}

	return &updated, nil
}

// DeleteEvent removes an event irreversibly
func (s *EventService) DeleteEvent(ctx context.Context, id int64) error {
	if !s.eventRepo.Delete(ctx, id) {
		return apperrors.NewNotFoundError("Event not found")
	}
	return nil
}
