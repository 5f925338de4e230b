package dto

import (
	"github.com/alumniconnect/backend/internal/app/models"
)

// CreateJobRequest carries a new job posting
type CreateJobRequest struct {
	Title           string `json:"title" binding:"required"`
	Company         string `json:"company" binding:"required"`
	Description     string `json:"description" binding:"required"`
	Location        string `json:"location" binding:"required"`
	JobType         string `json:"job_type"`
	ExperienceLevel string `json:"experience_level"`
	SalaryRange     string `json:"salary_range"`
	Requirements    string `json:"requirements"`
	ContactEmail    string `json:"contact_email"`
	ApplicationURL  string `json:"application_url"`
	PostedBy        string `json:"posted_by"`
	ExpiresAt       string `json:"expires_at"`
}

// UpdateJobRequest is a merge-patch over the mutable job fields
type UpdateJobRequest struct {
	Title           *string `json:"title"`
	Company         *string `json:"company"`
	Description     *string `json:"description"`
	Location        *string `json:"location"`
	JobType         *string `json:"job_type"`
	ExperienceLevel *string `json:"experience_level"`
	SalaryRange     *string `json:"salary_range"`
	Requirements    *string `json:"requirements"`
	ContactEmail    *string `json:"contact_email"`
	ApplicationURL  *string `json:"application_url"`
	PostedBy        *string `json:"posted_by"`
	Status          *string `json:"status"`
	ExpiresAt       *string `json:"expires_at"`
}

// JobFilter carries the list query parameters
type JobFilter struct {
	Type     string `form:"type"`
	Location string `form:"location"`
	Company  string `form:"company"`
}

// JobResponse wraps a single job posting
type JobResponse struct {
	Message string      `json:"message,omitempty"`
	Job     *models.Job `json:"job"`
}

// JobsListResponse wraps a filtered job list
type JobsListResponse struct {
	Jobs  []models.Job `json:"jobs"`
	Total int          `json:"total"`
}
