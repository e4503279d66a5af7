package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/quickfixx-site/internal/httperr"
	"github.com/BruksfildServices01/quickfixx-site/internal/infra/repository"
	"github.com/BruksfildServices01/quickfixx-site/internal/models"
	"github.com/BruksfildServices01/quickfixx-site/internal/session"
)

const ContextAdminID = "adminID"

// AdminLookup resolves the session subject to a stored admin.
type AdminLookup interface {
	GetByID(ctx context.Context, id string) (*models.AdminUser, error)
}

// SessionToken reads the session from the cookie, falling back to an
// "Authorization: Bearer" header.
func SessionToken(c *gin.Context, cookieName string) string {
	if v, err := c.Cookie(cookieName); err == nil && v != "" {
		return v
	}

	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// AuthMiddleware rejects requests unless the session is valid and its
// subject is an existing admin.
func AuthMiddleware(sessions *session.Manager, admins AdminLookup, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c, cookieName)
		if token == "" {
			httperr.Abort(c, http.StatusUnauthorized, "unauthorized", "Unauthorized")
			return
		}

		claims, err := sessions.Verify(c.Request.Context(), token)
		if err != nil {
			httperr.Abort(c, http.StatusUnauthorized, "unauthorized", "Unauthorized")
			return
		}

		admin, err := admins.GetByID(c.Request.Context(), claims.AdminID())
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				httperr.Abort(c, http.StatusUnauthorized, "unauthorized", "Unauthorized")
				return
			}
			_ = c.Error(err)
			httperr.Abort(c, http.StatusInternalServerError, "internal_error", "Failed to load session")
			return
		}

		c.Set(ContextAdminID, admin.ID)

		c.Next()
	}
}

// OptionalAuth attaches the admin when a valid session for an existing admin
// is present and never rejects the request.
func OptionalAuth(sessions *session.Manager, admins AdminLookup, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := SessionToken(c, cookieName); token != "" {
			if claims, err := sessions.Verify(c.Request.Context(), token); err == nil {
				if admin, err := admins.GetByID(c.Request.Context(), claims.AdminID()); err == nil {
					c.Set(ContextAdminID, admin.ID)
				}
			}
		}
		c.Next()
	}
}

// AdminID returns the authenticated admin id, or "" for anonymous requests.
func AdminID(c *gin.Context) string {
	return c.GetString(ContextAdminID)
}
