package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/santisala23-sys/exito/internal/core/services"
)

type HabitHandler struct {
	svc *services.HabitService
}

func NewHabitHandler(svc *services.HabitService) *HabitHandler {
	return &HabitHandler{
		svc: svc,
	}
}

type habitRequest struct {
	Name string `json:"name" binding:"required"`
}

type markHabitRequest struct {
	Done *bool `json:"done" binding:"required"`
}

func (h *HabitHandler) RegisterRoutes(router *gin.RouterGroup) {
	habits := router.Group("/habits")
	{
		habits.GET("", h.List)
		habits.POST("", h.Create)
		habits.GET("/today", h.Today)
		habits.GET("/streaks", h.Streaks)
		habits.PUT("/:id", h.Update)
		habits.DELETE("/:id", h.Delete)
		habits.PUT("/:id/today", h.Mark)
	}
}

func (h *HabitHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *HabitHandler) Create(c *gin.Context) {
	var req habitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	habit, err := h.svc.Create(c.Request.Context(), services.CreateHabitInput{Name: req.Name})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, habit)
}

func (h *HabitHandler) Update(c *gin.Context) {
	var req habitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	habit, err := h.svc.Update(c.Request.Context(), services.UpdateHabitInput{
		ID:   c.Param("id"),
		Name: req.Name,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, habit)
}

func (h *HabitHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Today godoc
// @Summary      Today's habits split into pending and completed
// @Tags         habits
// @Produce      json
// @Success      200  {object}  services.HabitDay
// @Router       /habits/today [get]
func (h *HabitHandler) Today(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Today(c.Request.Context()))
}

func (h *HabitHandler) Mark(c *gin.Context) {
	var req markHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	log, err := h.svc.Mark(c.Request.Context(), services.MarkHabitInput{
		ID:   c.Param("id"),
		Done: *req.Done,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, log)
}

func (h *HabitHandler) Streaks(c *gin.Context) {
	streaks, err := h.svc.Streaks(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, streaks)
}
