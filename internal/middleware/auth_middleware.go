package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/alumniconnect/backend/internal/app/services"
)

// Context keys set by JWTAuth for downstream handlers
const (
	ContextUserIDKey    = "userID"
	ContextUserEmailKey = "userEmail"
)

// AuthMiddleware guards mutating routes with bearer-token authentication
type AuthMiddleware struct {
	authService *services.AuthService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(authService *services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// JWTAuth validates the Authorization header and resolves the calling user.
// The "Bearer " prefix is accepted but not required.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := m.authService.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextUserEmailKey, user.Email)
		c.Next()
	}
}
