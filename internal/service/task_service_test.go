package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/LawrenceKuria/task-manager-fullstack/internal/domain"
	"github.com/LawrenceKuria/task-manager-fullstack/internal/dto"
)

func seedList(lists *mockTaskListRepository) *domain.TaskList {
	list := &domain.TaskList{
		ID:        uuid.New(),
		Title:     "seeded",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	lists.lists[list.ID] = list
	return list
}

func TestTaskService_Create(t *testing.T) {
	lists := newMockTaskListRepository()
	tasks := newMockTaskRepository()
	svc := NewTaskService(tasks, lists)
	list := seedList(lists)

	due := time.Now().Add(48 * time.Hour)
	high := domain.TaskPriorityHigh

	t.Run("defaults", func(t *testing.T) {
		task, err := svc.Create(context.Background(), list.ID, &dto.CreateTaskRequest{
			Title: "buy milk",
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if task.ID == uuid.Nil {
			t.Error("Create() did not assign an ID")
		}
		if task.TaskListID != list.ID {
			t.Errorf("TaskListID = %v, want %v", task.TaskListID, list.ID)
		}
		if task.Priority != domain.TaskPriorityMedium {
			t.Errorf("Priority = %q, want MEDIUM default", task.Priority)
		}
		if task.Status != domain.TaskStatusOpen {
			t.Errorf("Status = %q, want OPEN", task.Status)
		}
		if task.CreatedAt.IsZero() || task.UpdatedAt.IsZero() {
			t.Error("Create() did not stamp timestamps")
		}
	})

	t.Run("explicit fields", func(t *testing.T) {
		task, err := svc.Create(context.Background(), list.ID, &dto.CreateTaskRequest{
			Title:       "file taxes",
			Description: "before the deadline",
			DueDate:     &due,
			Priority:    &high,
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if task.Priority != domain.TaskPriorityHigh {
			t.Errorf("Priority = %q, want HIGH", task.Priority)
		}
		if task.DueDate == nil || !task.DueDate.Equal(due) {
			t.Errorf("DueDate = %v, want %v", task.DueDate, due)
		}
		// Status is always forced OPEN on create regardless of input
		if task.Status != domain.TaskStatusOpen {
			t.Errorf("Status = %q, want OPEN", task.Status)
		}
	})
}

func TestTaskService_Create_Invalid(t *testing.T) {
	lists := newMockTaskListRepository()
	svc := NewTaskService(newMockTaskRepository(), lists)
	list := seedList(lists)

	t.Run("preset ID", func(t *testing.T) {
		id := uuid.New()
		_, err := svc.Create(context.Background(), list.ID, &dto.CreateTaskRequest{
			ID:    &id,
			Title: "buy milk",
		})
		if !errors.Is(err, ErrValidation) {
			t.Errorf("Create() error = %v, want ErrValidation", err)
		}
	})

	t.Run("blank title", func(t *testing.T) {
		_, err := svc.Create(context.Background(), list.ID, &dto.CreateTaskRequest{
			Title: "  ",
		})
		if !errors.Is(err, ErrValidation) {
			t.Errorf("Create() error = %v, want ErrValidation", err)
		}
	})

	t.Run("absent parent list", func(t *testing.T) {
		_, err := svc.Create(context.Background(), uuid.New(), &dto.CreateTaskRequest{
			Title: "orphan",
		})
		if !errors.Is(err, ErrTaskListNotFound) {
			t.Errorf("Create() error = %v, want ErrTaskListNotFound", err)
		}
	})
}

func TestTaskService_Get_ParentScoped(t *testing.T) {
	lists := newMockTaskListRepository()
	tasks := newMockTaskRepository()
	svc := NewTaskService(tasks, lists)

	listA := seedList(lists)
	listB := seedList(lists)

	task, err := svc.Create(context.Background(), listA.ID, &dto.CreateTaskRequest{Title: "in list a"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := svc.Get(context.Background(), listA.ID, task.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got == nil {
		t.Fatal("Get() returned nil through owning list")
	}

	// The same task ID through a different list resolves to nothing
	got, err = svc.Get(context.Background(), listB.ID, task.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != nil {
		t.Errorf("Get() through foreign list = %+v, want nil", got)
	}
}

func TestTaskService_List(t *testing.T) {
	lists := newMockTaskListRepository()
	tasks := newMockTaskRepository()
	svc := NewTaskService(tasks, lists)

	listA := seedList(lists)
	listB := seedList(lists)
	if _, err := svc.Create(context.Background(), listA.ID, &dto.CreateTaskRequest{Title: "one"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Create(context.Background(), listA.ID, &dto.CreateTaskRequest{Title: "two"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := svc.List(context.Background(), listA.ID)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("List() returned %d tasks, want 2", len(got))
	}

	got, err = svc.List(context.Background(), listB.ID)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("List() of empty list returned %d tasks, want 0", len(got))
	}
}

func TestTaskService_Update(t *testing.T) {
	lists := newMockTaskListRepository()
	tasks := newMockTaskRepository()
	svc := NewTaskService(tasks, lists)
	list := seedList(lists)

	due := time.Now().Add(24 * time.Hour)
	task, err := svc.Create(context.Background(), list.ID, &dto.CreateTaskRequest{
		Title:   "draft report",
		DueDate: &due,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := svc.Update(context.Background(), list.ID, task.ID, &dto.UpdateTaskRequest{
		ID:          &task.ID,
		Title:       "final report",
		Description: "reviewed",
		Priority:    domain.TaskPriorityHigh,
		Status:      domain.TaskStatusClosed,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if got.Title != "final report" || got.Description != "reviewed" {
		t.Errorf("Update() = (%q, %q), want (final report, reviewed)", got.Title, got.Description)
	}
	if got.Priority != domain.TaskPriorityHigh {
		t.Errorf("Priority = %q, want HIGH", got.Priority)
	}
	if got.Status != domain.TaskStatusClosed {
		t.Errorf("Status = %q, want CLOSED", got.Status)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Errorf("DueDate = %v, want unchanged %v", got.DueDate, due)
	}
	if got.CreatedAt != task.CreatedAt {
		t.Error("Update() changed CreatedAt")
	}
	if got.TaskListID != list.ID {
		t.Error("Update() changed TaskListID")
	}
}

func TestTaskService_Update_IDMismatch(t *testing.T) {
	lists := newMockTaskListRepository()
	svc := NewTaskService(newMockTaskRepository(), lists)
	list := seedList(lists)

	task, _ := svc.Create(context.Background(), list.ID, &dto.CreateTaskRequest{Title: "a"})
	other := uuid.New()

	_, err := svc.Update(context.Background(), list.ID, task.ID, &dto.UpdateTaskRequest{
		ID:       &other,
		Title:    "b",
		Priority: domain.TaskPriorityLow,
		Status:   domain.TaskStatusOpen,
	})
	if !errors.Is(err, ErrTaskIDMismatch) {
		t.Errorf("Update() error = %v, want ErrTaskIDMismatch", err)
	}
}

func TestTaskService_Update_Absent(t *testing.T) {
	lists := newMockTaskListRepository()
	tasks := newMockTaskRepository()
	svc := NewTaskService(tasks, lists)

	listA := seedList(lists)
	listB := seedList(lists)
	task, _ := svc.Create(context.Background(), listA.ID, &dto.CreateTaskRequest{Title: "a"})

	req := &dto.UpdateTaskRequest{
		ID:       &task.ID,
		Title:    "b",
		Priority: domain.TaskPriorityLow,
		Status:   domain.TaskStatusOpen,
	}

	t.Run("unknown task", func(t *testing.T) {
		id := uuid.New()
		got, err := svc.Update(context.Background(), listA.ID, id, &dto.UpdateTaskRequest{
			ID:       &id,
			Title:    "b",
			Priority: domain.TaskPriorityLow,
			Status:   domain.TaskStatusOpen,
		})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if got != nil {
			t.Errorf("Update() = %+v, want nil for absent task", got)
		}
	})

	t.Run("wrong parent list", func(t *testing.T) {
		got, err := svc.Update(context.Background(), listB.ID, task.ID, req)
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if got != nil {
			t.Errorf("Update() through foreign list = %+v, want nil", got)
		}
	})
}

func TestTaskService_Delete(t *testing.T) {
	lists := newMockTaskListRepository()
	tasks := newMockTaskRepository()
	svc := NewTaskService(tasks, lists)

	listA := seedList(lists)
	listB := seedList(lists)
	task, _ := svc.Create(context.Background(), listA.ID, &dto.CreateTaskRequest{Title: "a"})

	// Deleting through the wrong list leaves the task alone
	if err := svc.Delete(context.Background(), listB.ID, task.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok := tasks.tasks[task.ID]; !ok {
		t.Fatal("task removed through foreign list")
	}

	if err := svc.Delete(context.Background(), listA.ID, task.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok := tasks.tasks[task.ID]; ok {
		t.Error("task still present after delete")
	}

	// Repeat delete is quiet
	if err := svc.Delete(context.Background(), listA.ID, task.ID); err != nil {
		t.Errorf("repeat Delete() error = %v, want nil", err)
	}
}
