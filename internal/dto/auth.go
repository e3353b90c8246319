package dto

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/LawrenceKuria/task-manager-fullstack/internal/domain"
)

// RegisterRequest is the payload for account registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// Validate applies rules gin's binding tags cannot express
func (r *RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return errors.New("username must not be blank")
	}
	if strings.ContainsAny(r.Username, " \t\n") {
		return errors.New("username must not contain whitespace")
	}
	return nil
}

// LoginRequest is the payload for credential login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued token and its subject
type AuthResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	ExpiresIn int64        `json:"expires_in"`
	User      UserResponse `json:"user"`
}

// UserResponse is the public view of an account
type UserResponse struct {
	ID       uuid.UUID   `json:"id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

// NewUserResponse converts a domain user to its public view
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}
