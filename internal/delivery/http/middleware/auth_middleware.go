package middleware

import (
	"strings"

	"echofleet/internal/delivery/http/response"
	"echofleet/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextUserIDKey is where Authenticate stores the caller's user ID.
const ContextUserIDKey = "userID"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.ErrorWith(c, 401, "invalid_credentials", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.ErrorWith(c, 401, "invalid_credentials", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.ErrorWith(c, 401, "invalid_credentials", "Invalid or expired token")
		}

		// Set user info on the context for handlers to use
		c.Set(ContextUserIDKey, claims.UserID)
		c.Set("roles", claims.Roles)

		return next(c)
	}
}

// UserID extracts the authenticated caller's ID from the context.
// It must be used AFTER the Authenticate middleware.
func UserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(ContextUserIDKey).(uuid.UUID)

	return userID, ok
}
