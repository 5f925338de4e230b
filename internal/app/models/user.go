package models

import (
	"time"
)

// Default role assigned to users registered without an explicit role.
const DefaultUserRole = "alumni"

// User defines an account in the identity store
type User struct {
	ID        int64     `json:"id" example:"1"`                            // Unique identifier for the user
	Email     string    `json:"email" example:"jane@example.com"`          // User's email address (unique, stored lowercase)
	Password  string    `json:"-"`                                         // User's bcrypt password hash (excluded from JSON)
	Name      string    `json:"name" example:"Jane Doe"`                   // User's display name
	Role      string    `json:"role" example:"alumni"`                     // User's role (free-form, defaults to "alumni")
	CreatedAt time.Time `json:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
}
