package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/LawrenceKuria/task-manager-fullstack/internal/domain"
)

// CreateTaskRequest is the payload for creating a task within a list.
// Status is not accepted on create; new tasks always start OPEN.
type CreateTaskRequest struct {
	ID          *uuid.UUID           `json:"id,omitempty"`
	Title       string               `json:"title" binding:"required,max=255"`
	Description string               `json:"description" binding:"max=2000"`
	DueDate     *time.Time           `json:"due_date,omitempty"`
	Priority    *domain.TaskPriority `json:"priority,omitempty"`
}

// Validate rejects preset IDs, blank titles and unknown priorities
func (r *CreateTaskRequest) Validate() error {
	if r.ID != nil {
		return errors.New("task already has an ID")
	}
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("task title must be present")
	}
	if r.Priority != nil && !r.Priority.Valid() {
		return errors.New("unknown task priority")
	}
	return nil
}

// UpdateTaskRequest is the payload for updating a task. ID, priority and
// status are mandatory; the ID must match the task being updated. The due
// date is fixed at creation and not part of the update surface.
type UpdateTaskRequest struct {
	ID          *uuid.UUID          `json:"id" binding:"required"`
	Title       string              `json:"title" binding:"required,max=255"`
	Description string              `json:"description" binding:"max=2000"`
	Priority    domain.TaskPriority `json:"priority" binding:"required"`
	Status      domain.TaskStatus   `json:"status" binding:"required"`
}

// Validate rejects blank titles and unknown priority or status values
func (r *UpdateTaskRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("task title must be present")
	}
	if !r.Priority.Valid() {
		return errors.New("unknown task priority")
	}
	if !r.Status.Valid() {
		return errors.New("unknown task status")
	}
	return nil
}

// TaskResponse is the public view of a task
type TaskResponse struct {
	ID          uuid.UUID           `json:"id"`
	TaskListID  uuid.UUID           `json:"task_list_id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	DueDate     *time.Time          `json:"due_date,omitempty"`
	Status      domain.TaskStatus   `json:"status"`
	Priority    domain.TaskPriority `json:"priority"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// NewTaskResponse converts a domain task to its public view
func NewTaskResponse(t *domain.Task) *TaskResponse {
	return &TaskResponse{
		ID:          t.ID,
		TaskListID:  t.TaskListID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Status:      t.Status,
		Priority:    t.Priority,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// NewTaskResponses converts a slice of tasks
func NewTaskResponses(tasks []*domain.Task) []*TaskResponse {
	out := make([]*TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, NewTaskResponse(t))
	}
	return out
}
