// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"task_backend/internal/api"
	"task_backend/internal/feature/auth/domain/entity"
	"task_backend/internal/feature/auth/transport/http/dto"
)

// AuthUsecase defines the identity operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user and returns a token bound to it.
	Register(ctx context.Context, username, email, password, confirm string) (string, *entity.User, error)
	// Login authenticates by username or email and returns a token on success.
	Login(ctx context.Context, login, password string) (string, *entity.User, error)
}

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	auth    AuthUsecase
	devMode bool
}

// NewAuthHandler creates a new instance of AuthHandler. devMode exposes
// internal error causes in responses and must be off in production.
func NewAuthHandler(auth AuthUsecase, devMode bool) *AuthHandler {
	return &AuthHandler{auth: auth, devMode: devMode}
}

// Register handles the user registration endpoint.
// - 400 with per-field details on validation failure
// - 409 when the username or email is taken
// - 201 with token and public profile on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	token, user, err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		// Password values never reach the log.
		slog.Warn("register failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
		c.JSON(api.StatusOf(err), api.NewError(err, h.devMode))
		return
	}

	slog.Info("user registered", "username", user.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.AuthRes{
		Token: token,
		User:  dto.UserRes{Username: user.Username},
	})
}

// Login handles the login endpoint.
// - 400 on malformed body
// - 401 on any credential failure, without saying which part was wrong
// - 200 with token and public profile on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "login", req.Email, "remote_addr", c.ClientIP())
		c.JSON(api.StatusOf(err), api.NewError(err, h.devMode))
		return
	}

	slog.Info("user login successful", "username", user.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthRes{
		Token: token,
		User:  dto.UserRes{Username: user.Username},
	})
}
