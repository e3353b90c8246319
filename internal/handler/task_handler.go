package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/LawrenceKuria/task-manager-fullstack/internal/dto"
	"github.com/LawrenceKuria/task-manager-fullstack/internal/service"
	"github.com/LawrenceKuria/task-manager-fullstack/pkg/logger"
	"github.com/LawrenceKuria/task-manager-fullstack/pkg/response"
)

// TaskHandler serves task CRUD nested under a task list
type TaskHandler struct {
	tasks service.TaskService
}

// NewTaskHandler creates the task handler
func NewTaskHandler(tasks service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

func taskPathIDs(c *gin.Context) (listID, taskID uuid.UUID, ok bool) {
	listID, err := uuid.Parse(c.Param("listID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("invalid task list ID"))
		return uuid.Nil, uuid.Nil, false
	}

	taskID, err = uuid.Parse(c.Param("taskID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("invalid task ID"))
		return uuid.Nil, uuid.Nil, false
	}

	return listID, taskID, true
}

// List handles GET /api/v1/task-lists/:listID/tasks
func (h *TaskHandler) List(c *gin.Context) {
	listID, err := uuid.Parse(c.Param("listID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("invalid task list ID"))
		return
	}

	tasks, err := h.tasks.List(c.Request.Context(), listID)
	if err != nil {
		logger.Get().Error("failed to list tasks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.InternalError("failed to list tasks"))
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.NewTaskResponses(tasks)))
}

// Create handles POST /api/v1/task-lists/:listID/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	listID, err := uuid.Parse(c.Param("listID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("invalid task list ID"))
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), listID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTaskListNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("task list not found"))
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		default:
			logger.Get().Error("failed to create task", zap.Error(err))
			c.JSON(http.StatusInternalServerError, response.InternalError("failed to create task"))
		}
		return
	}

	c.JSON(http.StatusCreated, response.Success(dto.NewTaskResponse(task)))
}

// Get handles GET /api/v1/task-lists/:listID/tasks/:taskID
func (h *TaskHandler) Get(c *gin.Context) {
	listID, taskID, ok := taskPathIDs(c)
	if !ok {
		return
	}

	task, err := h.tasks.Get(c.Request.Context(), listID, taskID)
	if err != nil {
		logger.Get().Error("failed to get task", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.InternalError("failed to get task"))
		return
	}
	if task == nil {
		c.JSON(http.StatusNotFound, response.NotFound("task not found"))
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.NewTaskResponse(task)))
}

// Update handles PUT /api/v1/task-lists/:listID/tasks/:taskID
func (h *TaskHandler) Update(c *gin.Context) {
	listID, taskID, ok := taskPathIDs(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), listID, taskID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrTaskIDMismatch):
			c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		default:
			logger.Get().Error("failed to update task", zap.Error(err))
			c.JSON(http.StatusInternalServerError, response.InternalError("failed to update task"))
		}
		return
	}
	if task == nil {
		c.JSON(http.StatusNotFound, response.NotFound("task not found"))
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.NewTaskResponse(task)))
}

// Delete handles DELETE /api/v1/task-lists/:listID/tasks/:taskID
func (h *TaskHandler) Delete(c *gin.Context) {
	listID, taskID, ok := taskPathIDs(c)
	if !ok {
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), listID, taskID); err != nil {
		logger.Get().Error("failed to delete task", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.InternalError("failed to delete task"))
		return
	}

	c.JSON(http.StatusOK, response.Success(nil))
}
