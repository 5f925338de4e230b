package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/repositories"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
	"github.com/alumniconnect/backend/internal/pkg/auth"
	"github.com/alumniconnect/backend/internal/pkg/validation"
)

// AuthService handles registration, login and bearer-token resolution
type AuthService struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new user account and issues a token for it.
// The required-field check happens at binding; this validates email shape,
// password length and email uniqueness (case-insensitive).
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, string, error) {
	if !validation.IsValidEmail(req.Email) {
		return nil, "", apperrors.NewValidationError("Invalid email format")
	}

	if len(req.Password) < validation.PasswordMinLength {
		return nil, "", apperrors.NewValidationError(
			fmt.Sprintf("Password must be at least %d characters", validation.PasswordMinLength))
	}

	if _, exists := s.userRepo.GetByEmail(ctx, req.Email); exists {
		return nil, "", apperrors.NewConflictError("User with this email already exists")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.DefaultUserRole
	}

	// The insert re-checks uniqueness atomically: a concurrent registration
	// racing past the read above loses here instead of creating a duplicate.
	user, ok := s.userRepo.Create(ctx, models.User{
		Email:    strings.ToLower(req.Email),
		Password: hash,
		Name:     req.Name,
		Role:     role,
	})
	if !ok {
		return nil, "", apperrors.NewConflictError("User with this email already exists")
	}

	token, err := s.jwtService.GenerateToken(&user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("email", user.Email).Msg("User registered")

	return &user, token, nil
}

// Login verifies credentials and issues a fresh token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, "", apperrors.NewValidationError("Email and password are required")
	}

	user, ok := s.userRepo.GetByEmail(ctx, email)
	if !ok || !auth.CheckPassword(user.Password, req.Password) {
		// Same answer for unknown email and wrong password
		return nil, "", apperrors.NewAuthError("Invalid email or password")
	}

	token, err := s.jwtService.GenerateToken(&user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Msg("User logged in")

	return &user, token, nil
}

// Authenticate resolves an Authorization header value to its user.
// The "Bearer " prefix is optional; the token must be valid, unexpired and
// bound to a user that still exists.
func (s *AuthService) Authenticate(ctx context.Context, authHeader string) (*models.User, error) {
	tokenString, err := auth.ExtractBearerToken(authHeader)
	if err != nil {
		return nil, &apperrors.CustomError{Err: apperrors.ErrTokenInvalid, Message: "Access token is missing"}
	}

	claims, err := s.jwtService.ValidateAndExtractClaims(tokenString)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, &apperrors.CustomError{Err: apperrors.ErrTokenExpired, Message: "Token has expired"}
		}
		return nil, &apperrors.CustomError{Err: apperrors.ErrTokenInvalid, Message: "Invalid token"}
	}

	user, ok := s.userRepo.GetByID(ctx, claims.UserID)
	if !ok {
		return nil, &apperrors.CustomError{Err: apperrors.ErrTokenInvalid, Message: "Invalid token"}
	}

	return &user, nil
}
