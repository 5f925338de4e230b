package dto

import (
	"github.com/alumniconnect/backend/internal/app/models"
)

// CreateAlumnusRequest carries a new alumni profile. Field order matters:
// the first missing required field is the one reported.
type CreateAlumnusRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Batch           string `json:"batch" binding:"required"`
	Department      string `json:"department" binding:"required"`
	Phone           string `json:"phone"`
	CurrentCompany  string `json:"current_company"`
	CurrentPosition string `json:"current_position"`
	Location        string `json:"location"`
	Bio             string `json:"bio"`
	LinkedIn        string `json:"linkedin"`
	ProfileImage    string `json:"profile_image"`
	GraduationYear  string `json:"graduation_year"`
}

// UpdateAlumnusRequest is a merge-patch: only non-nil fields are applied.
// The id and timestamps are not patchable; unknown keys are ignored.
type UpdateAlumnusRequest struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	Batch           *string `json:"batch"`
	Department      *string `json:"department"`
	Phone           *string `json:"phone"`
	CurrentCompany  *string `json:"current_company"`
	CurrentPosition *string `json:"current_position"`
	Location        *string `json:"location"`
	Bio             *string `json:"bio"`
	LinkedIn        *string `json:"linkedin"`
	ProfileImage    *string `json:"profile_image"`
	GraduationYear  *string `json:"graduation_year"`
}

// AlumniFilter carries the list query parameters
type AlumniFilter struct {
	Search     string `form:"search"`
	Batch      string `form:"batch"`
	Department string `form:"department"`
	Company    string `form:"company"`
}

// AlumnusResponse wraps a single alumni profile
type AlumnusResponse struct {
	Message string          `json:"message,omitempty"`
	Alumnus *models.Alumnus `json:"alumni"`
}

// AlumniListResponse wraps a filtered profile list
type AlumniListResponse struct {
	Alumni []models.Alumnus `json:"alumni"`
	Total  int              `json:"total"`
}
