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

type postgresTaskListRepository struct {
	db *database.PostgresDB
}

// NewPostgresTaskListRepository creates a PostgreSQL-backed task list repository
func NewPostgresTaskListRepository(db *database.PostgresDB) TaskListRepository {
	return &postgresTaskListRepository{db: db}
}

func (r *postgresTaskListRepository) Create(ctx context.Context, list *domain.TaskList) error {
	query := `
		INSERT INTO task_lists (id, title, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Pool().Exec(ctx, query,
		list.ID,
		list.Title,
		list.Description,
		list.CreatedAt,
		list.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create task list: %w", err)
	}

	return nil
}

func (r *postgresTaskListRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TaskList, error) {
	query := `
		SELECT id, title, description, created_at, updated_at
		FROM task_lists
		WHERE id = $1
	`

	list := &domain.TaskList{}
	err := r.db.Pool().QueryRow(ctx, query, id).Scan(
		&list.ID,
		&list.Title,
		&list.Description,
		&list.CreatedAt,
		&list.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get task list: %w", err)
	}

	return list, nil
}

func (r *postgresTaskListRepository) List(ctx context.Context) ([]*domain.TaskList, error) {
	query := `
		SELECT id, title, description, created_at, updated_at
		FROM task_lists
		ORDER BY created_at
	`

	rows, err := r.db.Pool().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list task lists: %w", err)
	}
	defer rows.Close()

	lists := make([]*domain.TaskList, 0)
	for rows.Next() {
		list := &domain.TaskList{}
		if err := rows.Scan(
			&list.ID,
			&list.Title,
			&list.Description,
			&list.CreatedAt,
			&list.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task list: %w", err)
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate task lists: %w", err)
	}

	return lists, nil
}

func (r *postgresTaskListRepository) Update(ctx context.Context, list *domain.TaskList) error {
	query := `
		UPDATE task_lists
		SET title = $2, description = $3, updated_at = $4
		WHERE id = $1
	`

	_, err := r.db.Pool().Exec(ctx, query,
		list.ID,
		list.Title,
		list.Description,
		list.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update task list: %w", err)
	}

	return nil
}

func (r *postgresTaskListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Tasks go with the list via ON DELETE CASCADE. Deleting an absent
	// list is not an error.
	query := `DELETE FROM task_lists WHERE id = $1`

	if _, err := r.db.Pool().Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete task list: %w", err)
	}

	return nil
}

func (r *postgresTaskListRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM task_lists WHERE id = $1)`

	var exists bool
	if err := r.db.Pool().QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check task list existence: %w", err)
	}

	return exists, nil
}
