package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/santisala23-sys/exito/internal/core/calendar"
	"github.com/santisala23-sys/exito/internal/core/services"
)

type TaskHandler struct {
	svc *services.TaskService
}

func NewTaskHandler(svc *services.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

type createTaskRequest struct {
	Title   string `json:"title" binding:"required"`
	DueDate string `json:"due_date"`
}

func (h *TaskHandler) RegisterRoutes(router *gin.RouterGroup) {
	tasks := router.Group("/tasks")
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Create)
		tasks.POST("/:id/complete", h.Complete)
	}
}

func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.svc.ListOpen(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	input := services.CreateTaskInput{Title: req.Title}
	if req.DueDate != "" {
		due, err := calendar.ParseDate(req.DueDate)
		if err != nil {
			handleError(c, err)
			return
		}
		input.DueDate = &due
	}

	task, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) Complete(c *gin.Context) {
	if err := h.svc.Complete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
