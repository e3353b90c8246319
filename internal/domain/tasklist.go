package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskList is a named collection of tasks. Count and Progress are derived
// from the current tasks on every read and are never persisted.
type TaskList struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Count       int       `json:"count"`
	Progress    float64   `json:"progress"`
	Tasks       []*Task   `json:"tasks,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ApplyTaskStats recomputes Count and Progress from the given tasks.
// Progress is the fraction of tasks in CLOSED status; an empty list
// has progress 0.0, not NaN.
func (l *TaskList) ApplyTaskStats(tasks []*Task) {
	l.Count = len(tasks)
	if len(tasks) == 0 {
		l.Progress = 0.0
		return
	}

	closed := 0
	for _, t := range tasks {
		if t.Status == TaskStatusClosed {
			closed++
		}
	}
	l.Progress = float64(closed) / float64(len(tasks))
}
