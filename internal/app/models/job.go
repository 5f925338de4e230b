package models

import (
	"time"
)

// Job statuses
const (
	JobStatusActive = "active"
)

// Job defaults applied at creation
const (
	DefaultJobType         = "full-time"
	DefaultExperienceLevel = "entry"
)

// Job defines a job posting
type Job struct {
	ID              int64     `json:"id" example:"1"`
	Title           string    `json:"title" example:"Backend Engineer"`
	Company         string    `json:"company"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	JobType         string    `json:"job_type" example:"full-time"`
	ExperienceLevel string    `json:"experience_level" example:"entry"`
	SalaryRange     string    `json:"salary_range"`
	Requirements    string    `json:"requirements"`
	ContactEmail    string    `json:"contact_email"`
	ApplicationURL  string    `json:"application_url"`
	PostedBy        string    `json:"posted_by"` // Free text, not a validated reference
	Status          string    `json:"status" example:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	ExpiresAt       string    `json:"expires_at"`
}
