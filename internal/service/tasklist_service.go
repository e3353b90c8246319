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

// ErrTaskListIDMismatch signals an update payload whose ID differs from
// the task list being updated
var ErrTaskListIDMismatch = errors.New("task list ID cannot be changed")

type taskListService struct {
	lists repository.TaskListRepository
	tasks repository.TaskRepository
}

// NewTaskListService creates the task list service
func NewTaskListService(lists repository.TaskListRepository, tasks repository.TaskRepository) TaskListService {
	return &taskListService{
		lists: lists,
		tasks: tasks,
	}
}

func (s *taskListService) Create(ctx context.Context, req *dto.CreateTaskListRequest) (*domain.TaskList, error) {
	ctx, span := telemetry.StartSpan(ctx, "TaskListService.Create")
	defer span.End()

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	now := time.Now()
	list := &domain.TaskList{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.lists.Create(ctx, list); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("task_list.id", list.ID.String()))

	list.ApplyTaskStats(nil)
	return list, nil
}

func (s *taskListService) List(ctx context.Context) ([]*domain.TaskList, error) {
	ctx, span := telemetry.StartSpan(ctx, "TaskListService.List")
	defer span.End()

	lists, err := s.lists.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, list := range lists {
		tasks, err := s.tasks.ListByTaskList(ctx, list.ID)
		if err != nil {
			return nil, err
		}
		list.ApplyTaskStats(tasks)
	}

	span.SetAttributes(attribute.Int("task_list.count", len(lists)))
	return lists, nil
}

func (s *taskListService) Get(ctx context.Context, id uuid.UUID) (*domain.TaskList, error) {
	ctx, span := telemetry.StartSpan(ctx, "TaskListService.Get")
	defer span.End()

	list, err := s.lists.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, nil
	}

	tasks, err := s.tasks.ListByTaskList(ctx, id)
	if err != nil {
		return nil, err
	}

	list.Tasks = tasks
	list.ApplyTaskStats(tasks)
	return list, nil
}

func (s *taskListService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateTaskListRequest) (*domain.TaskList, error) {
	ctx, span := telemetry.StartSpan(ctx, "TaskListService.Update")
	defer span.End()

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if req.ID == nil || *req.ID != id {
		return nil, ErrTaskListIDMismatch
	}

	list, err := s.lists.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, nil
	}

	list.Title = req.Title
	list.Description = req.Description
	list.UpdatedAt = time.Now()

	if err := s.lists.Update(ctx, list); err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListByTaskList(ctx, id)
	if err != nil {
		return nil, err
	}
	list.ApplyTaskStats(tasks)

	return list, nil
}

func (s *taskListService) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := telemetry.StartSpan(ctx, "TaskListService.Delete")
	defer span.End()

	return s.lists.Delete(ctx, id)
}
