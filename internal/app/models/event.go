package models

import (
	"time"
)

// Event statuses
const (
	EventStatusUpcoming = "upcoming"
)

// DefaultEventType is used when an event does not specify one.
const DefaultEventType = "general"

// Event defines an alumni event
type Event struct {
	ID                   int64     `json:"id" example:"1"`
	Title                string    `json:"title" example:"Annual Reunion"`
	Description          string    `json:"description"`
	Date                 string    `json:"date" example:"2024-12-20"`
	Time                 string    `json:"time" example:"18:00"`
	Location             string    `json:"location"`
	EventType            string    `json:"event_type" example:"general"`
	MaxAttendees         *int      `json:"max_attendees"` // nil when unlimited
	RegistrationRequired bool      `json:"registration_required"`
	Organizer            string    `json:"organizer"` // Free text, not a validated reference
	ContactEmail         string    `json:"contact_email"`
	ImageURL             string    `json:"image_url"`
	Status               string    `json:"status" example:"upcoming"`
	Attendees            []string  `json:"attendees"` // Always empty; no registration endpoint exists
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
