package middleware

import (
	"ctchen222/Cat-Match/internal/api/models"
	"ctchen222/Cat-Match/internal/api/response"
	"ctchen222/Cat-Match/internal/api/service"
	"ctchen222/Cat-Match/internal/session"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const identityKey = "identity"

type AuthMiddleware struct {
	sessions *session.Manager
	users    service.UserService
}

func NewAuthMiddleware(sessions *session.Manager, users service.UserService) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
		users:    users,
	}
}

// LoadUser resolves the session cookie to an Identity once per request. A
// session naming a user that no longer exists is cleared and the request is
// sent to the login page.
func (m *AuthMiddleware) LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		userID, found, err := m.sessions.Current(c)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to resolve session", "error", err)
			response.ErrorResponseFrom(c, err)
			c.Abort()
			return
		}
		if !found {
			c.Next()
			return
		}

		user, err := m.users.GetUser(ctx, userID)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to load session user", "user.id", userID, "error", err)
			response.ErrorResponseFrom(c, err)
			c.Abort()
			return
		}
		if user == nil {
			slog.WarnContext(ctx, "Session names a missing user", "user.id", userID)
			if err := m.sessions.Logout(c); err != nil {
				slog.WarnContext(ctx, "Failed to destroy stale session", "error", err)
			}
			deny(c)
			return
		}

		trace.SpanFromContext(ctx).SetAttributes(attribute.Int64("user.id", user.ID))
		c.Set(identityKey, models.Identity{UserID: user.ID, Login: user.Login})
		c.Next()
	}
}

// RequireAuth stops anonymous requests: pages redirect to /login, the JSON
// API answers 401.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentIdentity(c); !ok {
			deny(c)
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the identity LoadUser stored on c.
func CurrentIdentity(c *gin.Context) (models.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return models.Identity{}, false
	}
	identity, ok := v.(models.Identity)
	return identity, ok
}

func deny(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		response.ErrorResponse(c, http.StatusUnauthorized, "authorization required")
		c.Abort()
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
	c.Abort()
}
