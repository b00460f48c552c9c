package controller

import (
	"ctchen222/Cat-Match/internal/api/models"
	"ctchen222/Cat-Match/internal/api/service"
	"ctchen222/Cat-Match/internal/middleware"
	"ctchen222/Cat-Match/internal/session"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserController handles registration and the login session.
type UserController struct {
	userService service.UserService
	sessions    *session.Manager
}

// NewUserController creates a new UserController.
func NewUserController(userService service.UserService, sessions *session.Manager) *UserController {
	return &UserController{
		userService: userService,
		sessions:    sessions,
	}
}

// RegisterForm shows the registration form.
func (uc *UserController) RegisterForm(c *gin.Context) {
	if redirectLoggedIn(c) {
		return
	}
	render(c, http.StatusOK, "register", gin.H{"Form": &models.RegisterRequest{}, "Errors": models.FieldErrors{}})
}

// Register creates the account and sends the user to the listing.
func (uc *UserController) Register(c *gin.Context) {
	if redirectLoggedIn(c) {
		return
	}

	var req models.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		renderError(c, badRequest(err))
		return
	}

	user, err := uc.userService.Register(c.Request.Context(), &req)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			render(c, http.StatusBadRequest, "register", gin.H{"Form": &req, "Errors": verr.Fields})
			return
		}
		renderError(c, err)
		return
	}

	slog.InfoContext(c.Request.Context(), "User registered", "user.id", user.ID)
	c.Redirect(http.StatusSeeOther, "/")
}

// LoginForm shows the login form.
func (uc *UserController) LoginForm(c *gin.Context) {
	if redirectLoggedIn(c) {
		return
	}
	render(c, http.StatusOK, "login", gin.H{"Form": &models.LoginRequest{}, "Errors": models.FieldErrors{}})
}

// Login starts a session and sends the user to their account.
func (uc *UserController) Login(c *gin.Context) {
	if redirectLoggedIn(c) {
		return
	}

	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		renderError(c, badRequest(err))
		return
	}

	user, err := uc.userService.Login(c.Request.Context(), &req)
	if err != nil {
		var verr *models.ValidationError
		switch {
		case errors.As(err, &verr):
			render(c, http.StatusBadRequest, "login", gin.H{"Form": &req, "Errors": verr.Fields})
		case errors.Is(err, service.ErrInvalidCredentials):
			render(c, http.StatusUnauthorized, "login", gin.H{
				"Form":   &req,
				"Errors": models.FieldErrors{"form": "Invalid login or password"},
			})
		default:
			renderError(c, err)
		}
		return
	}

	if err := uc.sessions.Login(c, user.ID); err != nil {
		renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/account")
}

// Logout ends the session.
func (uc *UserController) Logout(c *gin.Context) {
	if err := uc.sessions.Logout(c); err != nil {
		slog.WarnContext(c.Request.Context(), "Failed to destroy session", "error", err)
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

func redirectLoggedIn(c *gin.Context) bool {
	if _, ok := middleware.CurrentIdentity(c); ok {
		c.Redirect(http.StatusSeeOther, "/account")
		return true
	}
	return false
}
