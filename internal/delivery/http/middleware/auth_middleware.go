package middleware

import (
	"strings"

	"gamestore/internal/delivery/http/response"
	"gamestore/internal/domain/entity"
	"gamestore/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyAccountID = "accountID"
	ContextKeyRole      = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the session token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		// Reset tokens never authenticate API calls.
		if claims.Type != service.TokenTypeSession {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token is not a session token")
		}

		// Set account info on the context for handlers to use
		c.Set(ContextKeyAccountID, claims.AccountID)
		c.Set(ContextKeyRole, claims.Role)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the caller has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(entity.Role)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// AccountID extracts the authenticated account ID set by Authenticate.
func AccountID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextKeyAccountID).(uuid.UUID)

	return id, ok
}
