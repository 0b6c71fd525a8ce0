package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/santisala23-sys/exito/internal/core/services"
)

type WorkoutHandler struct {
	svc *services.WorkoutService
}

func NewWorkoutHandler(svc *services.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{svc: svc}
}

type exerciseRequest struct {
	Name         string  `json:"name" binding:"required"`
	TargetAmount float64 `json:"target_amount"`
	Period       string  `json:"period" binding:"required"`
}

type recordRequest struct {
	Amounts map[string]float64 `json:"amounts" binding:"required"`
}

func (h *WorkoutHandler) RegisterRoutes(router *gin.RouterGroup) {
	workouts := router.Group("/workouts")
	{
		workouts.GET("", h.Page)
		workouts.GET("/progress", h.Progress)
		workouts.POST("/logs", h.Record)

		workouts.GET("/exercises", h.List)
		workouts.POST("/exercises", h.Create)
		workouts.PUT("/exercises/:id", h.Update)
		workouts.DELETE("/exercises/:id", h.Delete)
	}
}

// Page godoc
// @Summary      Exercises with their goal progress
// @Tags         workouts
// @Produce      json
// @Success      200  {object}  services.WorkoutPage
// @Router       /workouts [get]
func (h *WorkoutHandler) Page(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Page(c.Request.Context()))
}

func (h *WorkoutHandler) Progress(c *gin.Context) {
	progress, err := h.svc.Progress(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// Record godoc
// @Summary      Record today's amounts per exercise
// @Description  Zero amounts are skipped. Unknown exercises and negative amounts are rejected before anything is written.
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Param        request  body      recordRequest  true  "Amounts by exercise name"
// @Success      201      {array}   domain.WorkoutLog
// @Failure      422      {object}  map[string]string
// @Router       /workouts/logs [post]
func (h *WorkoutHandler) Record(c *gin.Context) {
	var req recordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	logs, err := h.svc.Record(c.Request.Context(), services.RecordInput{Amounts: req.Amounts})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, logs)
}

func (h *WorkoutHandler) List(c *gin.Context) {
	exercises, err := h.svc.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercises)
}

func (h *WorkoutHandler) Create(c *gin.Context) {
	var req exerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	exercise, err := h.svc.Create(c.Request.Context(), services.CreateExerciseInput{
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		Period:       req.Period,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, exercise)
}

func (h *WorkoutHandler) Update(c *gin.Context) {
	var req exerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	exercise, err := h.svc.Update(c.Request.Context(), services.UpdateExerciseInput{
		ID:           c.Param("id"),
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		Period:       req.Period,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, exercise)
}

func (h *WorkoutHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
