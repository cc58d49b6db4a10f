// Package handler provides the HTTP handlers for the tasks feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"task_backend/internal/api"
	"task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/feature/tasks/transport/http/dto"
	"task_backend/internal/feature/tasks/usecase"
	jwtmw "task_backend/internal/platform/jwt"
)

// TaskUsecase defines the owner-scoped task operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type TaskUsecase interface {
	List(ctx context.Context, ownerID uint) ([]entity.Task, error)
	Create(ctx context.Context, ownerID uint, in usecase.CreateInput) (*entity.Task, error)
	Update(ctx context.Context, ownerID uint, taskID string, in usecase.UpdateInput) (*entity.Task, error)
	Delete(ctx context.Context, ownerID uint, taskID string) error
	ToggleComplete(ctx context.Context, ownerID uint, taskID string) (*entity.Task, error)
}

// TaskHandler handles HTTP requests for task CRUD. Every route runs behind
// the JWT middleware, which resolves the owner identity used for scoping.
type TaskHandler struct {
	tasks   TaskUsecase
	devMode bool
}

// NewTaskHandler creates a new instance of TaskHandler.
func NewTaskHandler(tasks TaskUsecase, devMode bool) *TaskHandler {
	return &TaskHandler{tasks: tasks, devMode: devMode}
}

// owner resolves the authenticated identity set by the JWT middleware.
// A missing identity means the route was wired without the middleware.
func (h *TaskHandler) owner(c *gin.Context) (uint, bool) {
	ownerID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "not authenticated"})
		return 0, false
	}
	return ownerID, true
}

// List handles GET /api/tasks.
func (h *TaskHandler) List(c *gin.Context) {
	ownerID, ok := h.owner(c)
	if !ok {
		return
	}

	tasks, err := h.tasks.List(c.Request.Context(), ownerID)
	if err != nil {
		slog.Error("list tasks failed", "error", err, "owner", ownerID)
		c.JSON(api.StatusOf(err), api.NewError(err, h.devMode))
		return
	}

	c.JSON(http.StatusOK, dto.NewTaskListRes(tasks))
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(c *gin.Context) {
	ownerID, ok := h.owner(c)
	if !ok {
		return
	}

	var req dto.CreateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	dueDate, err := dto.ParseDueDate(req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "validation failed", Details: []string{err.Error()}})
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), ownerID, usecase.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     dueDate,
	})
	if err != nil {
		c.JSON(api.StatusOf(err), api.NewError(err, h.devMode))
		return
	}

	slog.Info("task created", "task", task.ID, "owner", ownerID)
	c.JSON(http.StatusCreated, dto.NewTaskRes(task))
}

// Update handles PUT /api/tasks/:id with partial-update semantics.
func (h *TaskHandler) Update(c *gin.Context) {
	ownerID, ok := h.owner(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	in := usecase.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Completed:   req.Completed,
	}
	if req.DueDate != nil {
		dueDate, err := dto.ParseDueDate(*req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "validation failed", Details: []string{err.Error()}})
			return
		}
		in.DueDate = dueDate
	}

	task, err := h.tasks.Update(c.Request.Context(), ownerID, c.Param("id"), in)
	if err != nil {
		c.JSON(api.StatusOf(err), api.NewError(err, h.devMode))
		return
	}

	c.JSON(http.StatusOK, dto.NewTaskRes(task))
}

// Delete handles DELETE /api/tasks/:id.
func (h *TaskHandler) Delete(c *gin.Context) {
	ownerID, ok := h.owner(c)
	if !ok {
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		c.JSON(api.StatusOf(err), api.NewError(err, h.devMode))
		return
	}

	slog.Info("task deleted", "task", c.Param("id"), "owner", ownerID)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "task deleted"})
}

// Toggle handles PATCH /api/tasks/:id/toggle.
func (h *TaskHandler) Toggle(c *gin.Context) {
	ownerID, ok := h.owner(c)
	if !ok {
		return
	}

	task, err := h.tasks.ToggleComplete(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		c.JSON(api.StatusOf(err), api.NewError(err, h.devMode))
		return
	}

	c.JSON(http.StatusOK, dto.NewTaskRes(task))
}
