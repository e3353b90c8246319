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

// TaskListHandler serves task list CRUD
type TaskListHandler struct {
	taskLists service.TaskListService
}

// NewTaskListHandler creates the task list handler
func NewTaskListHandler(taskLists service.TaskListService) *TaskListHandler {
	return &TaskListHandler{taskLists: taskLists}
}

// List handles GET /api/v1/task-lists
func (h *TaskListHandler) List(c *gin.Context) {
	lists, err := h.taskLists.List(c.Request.Context())
	if err != nil {
		logger.Get().Error("failed to list task lists", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.InternalError("failed to list task lists"))
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.NewTaskListResponses(lists)))
}

// Create handles POST /api/v1/task-lists
func (h *TaskListHandler) Create(c *gin.Context) {
	var req dto.CreateTaskListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	list, err := h.taskLists.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
			return
		}
		logger.Get().Error("failed to create task list", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.InternalError("failed to create task list"))
		return
	}

	c.JSON(http.StatusCreated, response.Success(dto.NewTaskListResponse(list)))
}

// Get handles GET /api/v1/task-lists/:listID
func (h *TaskListHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("listID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("invalid task list ID"))
		return
	}

	list, err := h.taskLists.Get(c.Request.Context(), id)
	if err != nil {
		logger.Get().Error("failed to get task list", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.InternalError("failed to get task list"))
		return
	}
	if list == nil {
		c.JSON(http.StatusNotFound, response.NotFound("task list not found"))
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.NewTaskListResponse(list)))
}

// Update handles PUT /api/v1/task-lists/:listID
func (h *TaskListHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("listID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("invalid task list ID"))
		return
	}

	var req dto.UpdateTaskListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	list, err := h.taskLists.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrTaskListIDMismatch):
			c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		default:
			logger.Get().Error("failed to update task list", zap.Error(err))
			c.JSON(http.StatusInternalServerError, response.InternalError("failed to update task list"))
		}
		return
	}
	if list == nil {
		c.JSON(http.StatusNotFound, response.NotFound("task list not found"))
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.NewTaskListResponse(list)))
}

// Delete handles DELETE /api/v1/task-lists/:listID
func (h *TaskListHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("listID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("invalid task list ID"))
		return
	}

	if err := h.taskLists.Delete(c.Request.Context(), id); err != nil {
		logger.Get().Error("failed to delete task list", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.InternalError("failed to delete task list"))
		return
	}

	c.JSON(http.StatusOK, response.Success(nil))
}
