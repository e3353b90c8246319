package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/LawrenceKuria/task-manager-fullstack/internal/domain"
	"github.com/LawrenceKuria/task-manager-fullstack/pkg/database"
)

type postgresTaskRepository struct {
	db *database.PostgresDB
}

// NewPostgresTaskRepository creates a PostgreSQL-backed task repository
func NewPostgresTaskRepository(db *database.PostgresDB) TaskRepository {
	return &postgresTaskRepository{db: db}
}

func (r *postgresTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (id, task_list_id, title, description, due_date, status, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Pool().Exec(ctx, query,
		task.ID,
		task.TaskListID,
		task.Title,
		task.Description,
		task.DueDate,
		task.Status,
		task.Priority,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

func (r *postgresTaskRepository) GetByListAndID(ctx context.Context, listID, taskID uuid.UUID) (*domain.Task, error) {
	query := `
		SELECT id, task_list_id, title, description, due_date, status, priority, created_at, updated_at
		FROM tasks
		WHERE task_list_id = $1 AND id = $2
	`

	task := &domain.Task{}
	err := r.db.Pool().QueryRow(ctx, query, listID, taskID).Scan(
		&task.ID,
		&task.TaskListID,
		&task.Title,
		&task.Description,
		&task.DueDate,
		&task.Status,
		&task.Priority,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

func (r *postgresTaskRepository) ListByTaskList(ctx context.Context, listID uuid.UUID) ([]*domain.Task, error) {
	query := `
		SELECT id, task_list_id, title, description, due_date, status, priority, created_at, updated_at
		FROM tasks
		WHERE task_list_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Pool().Query(ctx, query, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task := &domain.Task{}
		if err := rows.Scan(
			&task.ID,
			&task.TaskListID,
			&task.Title,
			&task.Description,
			&task.DueDate,
			&task.Status,
			&task.Priority,
			&task.CreatedAt,
			&task.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

func (r *postgresTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	query := `
		UPDATE tasks
		SET title = $3, description = $4, due_date = $5, status = $6, priority = $7, updated_at = $8
		WHERE task_list_id = $1 AND id = $2
	`

	_, err := r.db.Pool().Exec(ctx, query,
		task.TaskListID,
		task.ID,
		task.Title,
		task.Description,
		task.DueDate,
		task.Status,
		task.Priority,
		task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	return nil
}

func (r *postgresTaskRepository) DeleteByListAndID(ctx context.Context, listID, taskID uuid.UUID) error {
	// Idempotent: deleting an absent task is not an error
	query := `DELETE FROM tasks WHERE task_list_id = $1 AND id = $2`

	if _, err := r.db.Pool().Exec(ctx, query, listID, taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}
