package middleware

import (
	"net/http"
	"strings"

	"fixtrack/config"
	"fixtrack/internal/domain/entity"
	"fixtrack/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	keyStaffID = "staffID"
	keyRole    = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate validates the JWT access token and stores the acting staff
// member's identity on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
		if err != nil || !token.Valid {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Failed to parse token claims"})
		}

		staffIDStr, ok := claims["sub"].(string)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Staff ID missing from token"})
		}
		staffID, err := uuid.Parse(staffIDStr)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid staff ID format in token"})
		}

		rolesClaim, _ := claims["roles"].([]any)
		var roleStrings []string
		for _, r := range rolesClaim {
			if roleStr, ok := r.(string); ok {
				roleStrings = append(roleStrings, roleStr)
			}
		}
		roles := entity.RolesFromStrings(roleStrings)
		if len(roles) == 0 {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "No recognized role in token"})
		}

		// Set staff info on the context for handlers to use.
		// Each account carries exactly one role.
		c.Set(keyStaffID, staffID)
		c.Set(keyRole, roles[0])

		return next(c)
	}
}

// RequireRole is a middleware factory that restricts a route to one role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(keyRole).(entity.Role)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: role information missing"})
			}

			if role != requiredRole {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require '" + requiredRole.String() + "' role"})
			}

			return next(c)
		}
	}
}

// GetActor reconstructs the acting staff member set by Authenticate.
func GetActor(c echo.Context) (entity.Actor, bool) {
	staffID, ok := c.Get(keyStaffID).(uuid.UUID)
	if !ok {
		return entity.Actor{}, false
	}
	role, ok := c.Get(keyRole).(entity.Role)
	if !ok {
		return entity.Actor{}, false
	}

	return entity.Actor{ID: staffID, Role: role}, true
}
