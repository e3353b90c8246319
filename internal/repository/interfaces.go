package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/LawrenceKuria/task-manager-fullstack/internal/domain"
)

// UserRepository defines data access for user accounts
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// TaskListRepository defines data access for task lists
type TaskListRepository interface {
	Create(ctx context.Context, list *domain.TaskList) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TaskList, error)
	List(ctx context.Context) ([]*domain.TaskList, error)
	Update(ctx context.Context, list *domain.TaskList) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

// TaskRepository defines data access for tasks. All lookups are scoped
// to a parent task list; a task is never addressable outside its list.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByListAndID(ctx context.Context, listID, taskID uuid.UUID) (*domain.Task, error)
	ListByTaskList(ctx context.Context, listID uuid.UUID) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	DeleteByListAndID(ctx context.Context, listID, taskID uuid.UUID) error
}
