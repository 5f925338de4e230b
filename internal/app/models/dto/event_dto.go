package dto

import (
	"github.com/alumniconnect/backend/internal/app/models"
)

// CreateEventRequest carries a new event
type CreateEventRequest struct {
	Title                string `json:"title" binding:"required"`
	Description          string `json:"description" binding:"required"`
	Date                 string `json:"date" binding:"required"`
	Location             string `json:"location" binding:"required"`
	Time                 string `json:"time"`
	EventType            string `json:"event_type"`
	MaxAttendees         *int   `json:"max_attendees"`
	RegistrationRequired bool   `json:"registration_required"`
	Organizer            string `json:"organizer"`
	ContactEmail         string `json:"contact_email"`
	ImageURL             string `json:"image_url"`
}

// UpdateEventRequest is a merge-patch over the mutable event fields
type UpdateEventRequest struct {
	Title                *string `json:"title"`
	Description          *string `json:"description"`
	Date                 *string `json:"date"`
	Time                 *string `json:"time"`
	Location             *string `json:"location"`
	EventType            *string `json:"event_type"`
	MaxAttendees         *int    `json:"max_attendees"`
	RegistrationRequired *bool   `json:"registration_required"`
	Organizer            *string `json:"organizer"`
	ContactEmail         *string `json:"contact_email"`
	ImageURL             *string `json:"image_url"`
	Status               *string `json:"status"`
}

// EventFilter carries the list query parameters
type EventFilter struct {
	Type   string `form:"type"`
	Status string `form:"status"`
}

// EventResponse wraps a single event
type EventResponse struct {
	Message string        `json:"message,omitempty"`
	Event   *models.Event `json:"event"`
}

// EventsListResponse wraps a filtered event list
type EventsListResponse struct {
	Events []models.Event `json:"events"`
	Total  int            `json:"total"`
}
