package models

import (
	"time"
)

// Alumnus defines an alumni profile. Profiles are independent of user
// accounts; the same email may exist in both collections.
type Alumnus struct {
	ID              int64     `json:"id" example:"1"`
	Name            string    `json:"name" example:"Jane Doe"`
	Email           string    `json:"email" example:"jane@example.com"` // Unique within alumni (case-insensitive, stored lowercase)
	Batch           string    `json:"batch" example:"2018"`
	Department      string    `json:"department" example:"Computer Engineering"`
	Phone           string    `json:"phone"`
	CurrentCompany  string    `json:"current_company"`
	CurrentPosition string    `json:"current_position"`
	Location        string    `json:"location"`
	Bio             string    `json:"bio"`
	LinkedIn        string    `json:"linkedin"`
	ProfileImage    string    `json:"profile_image"`
	GraduationYear  string    `json:"graduation_year"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
