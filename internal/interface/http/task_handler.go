package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/task-management-api/internal/application"
	"github.com/oksasatya/task-management-api/internal/domain/entity"
	repo "github.com/oksasatya/task-management-api/internal/domain/repository"
	"github.com/oksasatya/task-management-api/internal/interface/middleware"
	"github.com/oksasatya/task-management-api/pkg/response"
	"github.com/oksasatya/task-management-api/pkg/validation"
)

type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

type createTaskRequest struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	Status      entity.TaskStatus `json:"status" binding:"omitempty,oneof=pending in-progress completed"`
}

type updateTaskRequest struct {
	Title       *string            `json:"title" binding:"omitempty,min=1"`
	Description *string            `json:"description"`
	Status      *entity.TaskStatus `json:"status" binding:"omitempty,oneof=pending in-progress completed"`
}

// Create handles POST /tasks/
func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	t, err := h.Svc.Create(c.Request.Context(), middleware.UserID(c), application.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "task creation failed", nil)
		return
	}
	c.JSON(http.StatusCreated, newTaskResponse(t))
}

// List handles GET /tasks/
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.Svc.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "task listing failed", nil)
		return
	}
	c.JSON(http.StatusOK, newTaskListResponse(tasks))
}

// Get handles GET /tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	t, err := h.Svc.Get(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, application.ErrTaskNotFound) {
			response.Error(c, http.StatusNotFound, "task not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "task lookup failed", nil)
		return
	}
	c.JSON(http.StatusOK, newTaskResponse(t))
}

// Update handles PUT /tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	fields := repo.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	}
	t, err := h.Svc.Update(c.Request.Context(), c.Param("id"), middleware.UserID(c), fields)
	if err != nil {
		if errors.Is(err, application.ErrTaskNotFound) {
			response.Error(c, http.StatusNotFound, "task not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "task update failed", nil)
		return
	}
	c.JSON(http.StatusOK, newTaskResponse(t))
}

// Delete handles DELETE /tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), middleware.UserID(c)); err != nil {
		if errors.Is(err, application.ErrTaskNotFound) {
			response.Error(c, http.StatusNotFound, "task not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "task deletion failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
