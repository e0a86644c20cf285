package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/inbucks/inbucks/internal/api/models"
	"github.com/inbucks/inbucks/internal/api/repository"
	"github.com/inbucks/inbucks/internal/api/response"
	"github.com/inbucks/inbucks/internal/session"
)

const userKey = "middleware.user"

// RequestLogger tags every request with an id and logs method, path, status
// and duration once the handler chain finishes.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.New().String()
		c.Header("X-Request-ID", requestID)

		c.Next()

		slog.Info("http request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// SessionLoader resolves the session cookie to a full user record and
// attaches it to the request context. Requests without a cookie, with an
// expired session, or whose user row has since disappeared proceed
// anonymously; gating is RequireAuth's job.
func SessionLoader(store session.Store, users repository.UserRepository, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		userID, err := store.Get(ctx, token)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) {
				slog.ErrorContext(ctx, "failed to resolve session", "error", err)
			}
			c.Next()
			return
		}

		user, err := users.GetByID(ctx, userID)
		if err != nil {
			slog.ErrorContext(ctx, "failed to load session user", "error", err)
			c.Next()
			return
		}
		if user == nil {
			// Stale session for a deleted user. Drop it rather than serve a
			// ghost identity.
			if err := store.Destroy(ctx, token); err != nil {
				slog.ErrorContext(ctx, "failed to destroy stale session", "error", err)
			}
			c.Next()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireAuth aborts with 401 unless SessionLoader attached a user.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			response.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by SessionLoader.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
