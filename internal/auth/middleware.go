package auth

import (
	apperrors "buildunion/pkg/errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Identity is the authenticated caller: an opaque id plus email.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

type Middleware struct {
	jwtService *JWTService
}

func NewMiddleware(jwtService *JWTService) *Middleware {
	return &Middleware{jwtService: jwtService}
}

// RequireJWT rejects requests without a valid bearer token.
func (m *Middleware) RequireJWT() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractBearerToken(c)
			if token == "" {
				return respondError(c, http.StatusUnauthorized, msgMissingAuthorization)
			}

			claims, err := m.jwtService.Verify(token)
			if err != nil {
				return respondError(c, http.StatusUnauthorized, msgInvalidOrExpiredToken)
			}

			c.Set(ContextKeyUserID, claims.UserID)
			c.Set(ContextKeyEmail, claims.Email)

			return next(c)
		}
	}
}

// OptionalJWT attaches the identity when a valid bearer token is present and
// passes the request through either way. List endpoints use this: an
// anonymous caller is "nothing to fetch", not an auth failure.
func (m *Middleware) OptionalJWT() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractBearerToken(c)
			if token == "" {
				return next(c)
			}

			claims, err := m.jwtService.Verify(token)
			if err != nil {
				return next(c)
			}

			c.Set(ContextKeyUserID, claims.UserID)
			c.Set(ContextKeyEmail, claims.Email)

			return next(c)
		}
	}
}

func extractBearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(headerAuthorization)
	if authHeader == "" {
		return ""
	}

	parts := strings.Fields(authHeader)
	if len(parts) != authHeaderParts || strings.ToLower(parts[0]) != bearerScheme {
		return ""
	}

	return parts[1]
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{jsonKeyError: message})
}

// CurrentIdentity returns the caller's identity, or ok=false when the request
// is anonymous.
func CurrentIdentity(c echo.Context) (Identity, bool) {
	userID := c.Get(ContextKeyUserID)
	if userID == nil {
		return Identity{}, false
	}

	id, ok := userID.(uuid.UUID)
	if !ok {
		return Identity{}, false
	}

	email, _ := c.Get(ContextKeyEmail).(string)
	return Identity{UserID: id, Email: email}, true
}

// GetUserID returns the authenticated user ID or an unauthorized error.
func GetUserID(c echo.Context) (uuid.UUID, error) {
	userID := c.Get(ContextKeyUserID)
	if userID == nil {
		return uuid.Nil, apperrors.Unauthorized(msgUserNotAuthenticated)
	}

	id, ok := userID.(uuid.UUID)
	if !ok {
		return uuid.Nil, apperrors.InternalServer(msgInvalidUserIDCtx, nil)
	}

	return id, nil
}
