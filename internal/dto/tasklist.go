package dto

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/LawrenceKuria/task-manager-fullstack/internal/domain"
)

// CreateTaskListRequest is the payload for creating a task list
type CreateTaskListRequest struct {
	ID          *uuid.UUID `json:"id,omitempty"`
	Title       string     `json:"title" binding:"required,max=255"`
	Description string     `json:"description" binding:"max=2000"`
}

// Validate rejects payloads that carry a preset ID or a blank title
func (r *CreateTaskListRequest) Validate() error {
	if r.ID != nil {
		return errors.New("task list already has an ID")
	}
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("task list title must be present")
	}
	return nil
}

// UpdateTaskListRequest is the payload for updating a task list
type UpdateTaskListRequest struct {
	ID          *uuid.UUID `json:"id" binding:"required"`
	Title       string     `json:"title" binding:"required,max=255"`
	Description string     `json:"description" binding:"max=2000"`
}

// Validate rejects payloads with a blank title
func (r *UpdateTaskListRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("task list title must be present")
	}
	return nil
}

// TaskListResponse is the public view of a task list. Count and Progress
// are derived values, computed per request.
type TaskListResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Count       int             `json:"count"`
	Progress    float64         `json:"progress"`
	Tasks       []*TaskResponse `json:"tasks,omitempty"`
}

// NewTaskListResponse converts a domain task list to its public view
func NewTaskListResponse(l *domain.TaskList) *TaskListResponse {
	resp := &TaskListResponse{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		Count:       l.Count,
		Progress:    l.Progress,
	}
	for _, t := range l.Tasks {
		resp.Tasks = append(resp.Tasks, NewTaskResponse(t))
	}
	return resp
}

// NewTaskListResponses converts a slice of task lists
func NewTaskListResponses(lists []*domain.TaskList) []*TaskListResponse {
	out := make([]*TaskListResponse, 0, len(lists))
	for _, l := range lists {
		out = append(out, NewTaskListResponse(l))
	}
	return out
}
