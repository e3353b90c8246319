package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/LawrenceKuria/task-manager-fullstack/internal/dto"
	"github.com/LawrenceKuria/task-manager-fullstack/internal/service"
	"github.com/LawrenceKuria/task-manager-fullstack/pkg/logger"
	"github.com/LawrenceKuria/task-manager-fullstack/pkg/response"
)

// AuthHandler serves registration and login
type AuthHandler struct {
	auth service.AuthService
}

// NewAuthHandler creates the auth handler
func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	resp, err := h.auth.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			c.JSON(http.StatusConflict, response.Error(response.ErrCodeUsernameTaken, "username is already taken"))
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		default:
			logger.Get().Error("registration failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, response.InternalError("failed to register"))
		}
		return
	}

	c.JSON(http.StatusCreated, response.Success(resp))
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Same code and message whether the username or the
			// password was wrong
			c.JSON(http.StatusUnauthorized, response.Error(response.ErrCodeInvalidLogin, "invalid username or password"))
			return
		}
		logger.Get().Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.InternalError("failed to log in"))
		return
	}

	c.JSON(http.StatusOK, response.Success(resp))
}
