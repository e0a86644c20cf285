package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inbucks/inbucks/internal/api/middleware"
	"github.com/inbucks/inbucks/internal/api/models"
	"github.com/inbucks/inbucks/internal/api/repository"
	"github.com/inbucks/inbucks/internal/api/response"
	"github.com/inbucks/inbucks/internal/api/service"
	"github.com/inbucks/inbucks/internal/session"
	"github.com/inbucks/inbucks/internal/validator"
)

// CookieSettings controls the session cookie issued on login and
// registration.
type CookieSettings struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// AuthController handles registration, login, logout and identity lookups.
type AuthController struct {
	authService service.AuthService
	sessions    session.Store
	cookie      CookieSettings
}

// NewAuthController creates a new AuthController.
func NewAuthController(authService service.AuthService, sessions session.Store, cookie CookieSettings) *AuthController {
	return &AuthController{
		authService: authService,
		sessions:    sessions,
		cookie:      cookie,
	}
}

// Register handles the user registration endpoint. A successful registration
// also establishes a session, so the client is logged in immediately.
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrorResponse(c, validator.FieldErrors(err))
		return
	}

	user, err := ac.authService.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			response.ErrorResponse(c, http.StatusBadRequest, "email already exists")
			return
		}
		slog.ErrorContext(c.Request.Context(), "registration failed", "error", err)
		response.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
		return
	}

	if !ac.establishSession(c, user.ID) {
		return
	}
	response.CreatedResponse(c, gin.H{"user": user.Public()})
}

// Login handles the user login endpoint.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrorResponse(c, validator.FieldErrors(err))
		return
	}

	user, err := ac.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.ErrorResponse(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		slog.ErrorContext(c.Request.Context(), "login failed", "error", err)
		response.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
		return
	}

	if !ac.establishSession(c, user.ID) {
		return
	}
	response.SuccessResponse(c, gin.H{"user": user.Public()})
}

// Logout destroys the current session. Always succeeds, even when no
// session existed.
func (ac *AuthController) Logout(c *gin.Context) {
	if token, err := c.Cookie(ac.cookie.Name); err == nil && token != "" {
		if err := ac.sessions.Destroy(c.Request.Context(), token); err != nil {
			slog.ErrorContext(c.Request.Context(), "failed to destroy session", "error", err)
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ac.cookie.Name, "", -1, "/", "", ac.cookie.Secure, true)
	response.SuccessResponse(c, gin.H{"message": "logged out"})
}

// Me returns the authenticated user.
func (ac *AuthController) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}
	response.SuccessResponse(c, gin.H{"user": user.Public()})
}

// establishSession creates a session record and sets the cookie. Writes the
// error response itself when session creation fails.
func (ac *AuthController) establishSession(c *gin.Context, userID int64) bool {
	token, err := ac.sessions.Create(c.Request.Context(), userID)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to establish session", "error", err)
		response.ErrorResponse(c, http.StatusInternalServerError, "failed to establish session")
		return false
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ac.cookie.Name, token, int(ac.cookie.TTL.Seconds()), "/", "", ac.cookie.Secure, true)
	return true
}
