package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/LawrenceKuria/task-manager-fullstack/internal/domain"
	"github.com/LawrenceKuria/task-manager-fullstack/internal/dto"
)

// TokenService issues and validates signed bearer tokens. Validation is
// stateless: only the signature and the embedded expiry are checked.
type TokenService interface {
	Issue(user *domain.User) (string, time.Time, error)
	Validate(tokenString string) (*domain.Claims, error)
}

// AuthService handles account registration and credential login
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

// TaskListService handles task list CRUD. Count and progress on returned
// lists are recomputed from the live tasks on every call.
type TaskListService interface {
	Create(ctx context.Context, req *dto.CreateTaskListRequest) (*domain.TaskList, error)
	List(ctx context.Context) ([]*domain.TaskList, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.TaskList, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateTaskListRequest) (*domain.TaskList, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TaskService handles task CRUD scoped to a parent task list
type TaskService interface {
	Create(ctx context.Context, listID uuid.UUID, req *dto.CreateTaskRequest) (*domain.Task, error)
	List(ctx context.Context, listID uuid.UUID) ([]*domain.Task, error)
	Get(ctx context.Context, listID, taskID uuid.UUID) (*domain.Task, error)
	Update(ctx context.Context, listID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*domain.Task, error)
	Delete(ctx context.Context, listID, taskID uuid.UUID) error
}
