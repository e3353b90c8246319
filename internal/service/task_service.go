package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/LawrenceKuria/task-manager-fullstack/internal/domain"
	"github.com/LawrenceKuria/task-manager-fullstack/internal/dto"
	"github.com/LawrenceKuria/task-manager-fullstack/internal/repository"
	"github.com/LawrenceKuria/task-manager-fullstack/pkg/telemetry"
)

var (
	// ErrTaskListNotFound signals a task operation against a parent list
	// that does not exist
	ErrTaskListNotFound = errors.New("task list not found")

	// ErrTaskIDMismatch signals an update payload whose ID differs from
	// the task being updated
	ErrTaskIDMismatch = errors.New("task ID cannot be changed")
)

type taskService struct {
	tasks repository.TaskRepository
	lists repository.TaskListRepository
}

// NewTaskService creates the task service
func NewTaskService(tasks repository.TaskRepository, lists repository.TaskListRepository) TaskService {
	return &taskService{
		tasks: tasks,
		lists: lists,
	}
}

func (s *taskService) Create(ctx context.Context, listID uuid.UUID, req *dto.CreateTaskRequest) (*domain.Task, error) {
	ctx, span := telemetry.StartSpan(ctx, "TaskService.Create")
	defer span.End()

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	exists, err := s.lists.ExistsByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrTaskListNotFound
	}

	priority := domain.TaskPriorityMedium
	if req.Priority != nil {
		priority = *req.Priority
	}

	now := time.Now()
	task := &domain.Task{
		ID:          uuid.New(),
		TaskListID:  listID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      domain.TaskStatusOpen,
		Priority:    priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.String("task.id", task.ID.String()),
		attribute.String("task_list.id", listID.String()),
	)

	return task, nil
}

func (s *taskService) List(ctx context.Context, listID uuid.UUID) ([]*domain.Task, error) {
	ctx, span := telemetry.StartSpan(ctx, "TaskService.List")
	defer span.End()

	return s.tasks.ListByTaskList(ctx, listID)
}

func (s *taskService) Get(ctx context.Context, listID, taskID uuid.UUID) (*domain.Task, error) {
	ctx, span := telemetry.StartSpan(ctx, "TaskService.Get")
	defer span.End()

	return s.tasks.GetByListAndID(ctx, listID, taskID)
}

func (s *taskService) Update(ctx context.Context, listID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*domain.Task, error) {
	ctx, span := telemetry.StartSpan(ctx, "TaskService.Update")
	defer span.End()

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if req.ID == nil || *req.ID != taskID {
		return nil, ErrTaskIDMismatch
	}

	task, err := s.tasks.GetByListAndID(ctx, listID, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}

	// Narrow update surface: everything else on the task is immutable
	task.Title = req.Title
	task.Description = req.Description
	task.Priority = req.Priority
	task.Status = req.Status
	task.UpdatedAt = time.Now()

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *taskService) Delete(ctx context.Context, listID, taskID uuid.UUID) error {
	ctx, span := telemetry.StartSpan(ctx, "TaskService.Delete")
	defer span.End()

	return s.tasks.DeleteByListAndID(ctx, listID, taskID)
}
