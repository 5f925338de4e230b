package dto

import (
	"github.com/alumniconnect/backend/internal/app/models"
)

// RegisterRequest carries a new account registration
type RegisterRequest struct {
	Email    string `json:"email" binding:"required" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
	Name     string `json:"name" binding:"required" example:"Jane Doe"`
	Role     string `json:"role" example:"alumni"`
}

// LoginRequest carries login credentials. Field presence is checked by the
// service so both fields report as one error, matching the login contract.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
	Token   string       `json:"token"`
}
