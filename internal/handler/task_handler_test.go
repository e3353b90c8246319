package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/LawrenceKuria/task-manager-fullstack/internal/domain"
	"github.com/LawrenceKuria/task-manager-fullstack/internal/dto"
	"github.com/LawrenceKuria/task-manager-fullstack/internal/service"
)

type stubTaskService struct {
	createFn func(ctx context.Context, listID uuid.UUID, req *dto.CreateTaskRequest) (*domain.Task, error)
	listFn   func(ctx context.Context, listID uuid.UUID) ([]*domain.Task, error)
	getFn    func(ctx context.Context, listID, taskID uuid.UUID) (*domain.Task, error)
	updateFn func(ctx context.Context, listID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*domain.Task, error)
	deleteFn func(ctx context.Context, listID, taskID uuid.UUID) error
}

func (s *stubTaskService) Create(ctx context.Context, listID uuid.UUID, req *dto.CreateTaskRequest) (*domain.Task, error) {
	return s.createFn(ctx, listID, req)
}

func (s *stubTaskService) List(ctx context.Context, listID uuid.UUID) ([]*domain.Task, error) {
	return s.listFn(ctx, listID)
}

func (s *stubTaskService) Get(ctx context.Context, listID, taskID uuid.UUID) (*domain.Task, error) {
	return s.getFn(ctx, listID, taskID)
}

func (s *stubTaskService) Update(ctx context.Context, listID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*domain.Task, error) {
	return s.updateFn(ctx, listID, taskID, req)
}

func (s *stubTaskService) Delete(ctx context.Context, listID, taskID uuid.UUID) error {
	return s.deleteFn(ctx, listID, taskID)
}

func taskRouter(svc service.TaskService) *gin.Engine {
	h := NewTaskHandler(svc)
	r := gin.New()
	r.GET("/task-lists/:listID/tasks", h.List)
	r.POST("/task-lists/:listID/tasks", h.Create)
	r.GET("/task-lists/:listID/tasks/:taskID", h.Get)
	r.PUT("/task-lists/:listID/tasks/:taskID", h.Update)
	r.DELETE("/task-lists/:listID/tasks/:taskID", h.Delete)
	return r
}

func TestTaskHandler_Create(t *testing.T) {
	listID := uuid.New()

	t.Run("created", func(t *testing.T) {
		router := taskRouter(&stubTaskService{
			createFn: func(ctx context.Context, gotList uuid.UUID, req *dto.CreateTaskRequest) (*domain.Task, error) {
				return &domain.Task{
					ID:         uuid.New(),
					TaskListID: gotList,
					Title:      req.Title,
					Status:     domain.TaskStatusOpen,
					Priority:   domain.TaskPriorityMedium,
				}, nil
			},
		})

		w := postJSON(router, "/task-lists/"+listID.String()+"/tasks", dto.CreateTaskRequest{Title: "buy milk"})
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusCreated)
		}

		var body struct {
			Data dto.TaskResponse `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if body.Data.Status != domain.TaskStatusOpen {
			t.Errorf("status = %q, want OPEN", body.Data.Status)
		}
		if body.Data.Priority != domain.TaskPriorityMedium {
			t.Errorf("priority = %q, want MEDIUM", body.Data.Priority)
		}
	})

	t.Run("absent parent list is 404", func(t *testing.T) {
		router := taskRouter(&stubTaskService{
			createFn: func(ctx context.Context, gotList uuid.UUID, req *dto.CreateTaskRequest) (*domain.Task, error) {
				return nil, service.ErrTaskListNotFound
			},
		})

		w := postJSON(router, "/task-lists/"+listID.String()+"/tasks", dto.CreateTaskRequest{Title: "orphan"})
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
		}
	})

	t.Run("validation failure is 400", func(t *testing.T) {
		router := taskRouter(&stubTaskService{
			createFn: func(ctx context.Context, gotList uuid.UUID, req *dto.CreateTaskRequest) (*domain.Task, error) {
				return nil, service.ErrValidation
			},
		})

		w := postJSON(router, "/task-lists/"+listID.String()+"/tasks", dto.CreateTaskRequest{Title: " "})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestTaskHandler_Get(t *testing.T) {
	listID := uuid.New()
	taskID := uuid.New()

	router := taskRouter(&stubTaskService{
		getFn: func(ctx context.Context, gotList, gotTask uuid.UUID) (*domain.Task, error) {
			if gotList == listID && gotTask == taskID {
				return &domain.Task{ID: taskID, TaskListID: listID, Title: "buy milk"}, nil
			}
			return nil, nil
		},
	})

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
			"/task-lists/"+listID.String()+"/tasks/"+taskID.String(), nil))

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
		}
	})

	t.Run("wrong parent list is 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
			"/task-lists/"+uuid.New().String()+"/tasks/"+taskID.String(), nil))

		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
		}
	})

	t.Run("non-uuid task ID is 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
			"/task-lists/"+listID.String()+"/tasks/42", nil))

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestTaskHandler_Update(t *testing.T) {
	listID := uuid.New()
	taskID := uuid.New()

	t.Run("ID mismatch is 400", func(t *testing.T) {
		router := taskRouter(&stubTaskService{
			updateFn: func(ctx context.Context, _, _ uuid.UUID, req *dto.UpdateTaskRequest) (*domain.Task, error) {
				return nil, service.ErrTaskIDMismatch
			},
		})

		other := uuid.New()
		w := putJSON(router, "/task-lists/"+listID.String()+"/tasks/"+taskID.String(), dto.UpdateTaskRequest{
			ID:       &other,
			Title:    "x",
			Priority: domain.TaskPriorityLow,
			Status:   domain.TaskStatusOpen,
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("absent task is 404", func(t *testing.T) {
		router := taskRouter(&stubTaskService{
			updateFn: func(ctx context.Context, _, _ uuid.UUID, req *dto.UpdateTaskRequest) (*domain.Task, error) {
				return nil, nil
			},
		})

		w := putJSON(router, "/task-lists/"+listID.String()+"/tasks/"+taskID.String(), dto.UpdateTaskRequest{
			ID:       &taskID,
			Title:    "x",
			Priority: domain.TaskPriorityLow,
			Status:   domain.TaskStatusOpen,
		})
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
		}
	})
}

func TestTaskHandler_Delete(t *testing.T) {
	router := taskRouter(&stubTaskService{
		deleteFn: func(ctx context.Context, listID, taskID uuid.UUID) error {
			return nil
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete,
		"/task-lists/"+uuid.New().String()+"/tasks/"+uuid.New().String(), nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}
