package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/santisala23-sys/exito/internal/core/services"
)

type DashboardHandler struct {
	dashboard *services.DashboardService
	analytics *services.AnalyticsService
}

func NewDashboardHandler(dashboard *services.DashboardService, analytics *services.AnalyticsService) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		analytics: analytics,
	}
}

type parkingRequest struct {
	Location string `json:"location"`
}

type quickFinanceRequest struct {
	Type     string `json:"transaction_type" binding:"required"`
	Amount   string `json:"amount" binding:"required"`
	Category string `json:"category" binding:"required"`
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/analytics", h.Analytics)

	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("", h.View)
		dashboard.POST("/cigarettes", h.LogCigarette)
		dashboard.DELETE("/cigarettes/last", h.UndoCigarette)
		dashboard.PUT("/parking", h.SaveParking)
		dashboard.POST("/finances", h.QuickFinance)
	}
}

// View godoc
// @Summary      Pending counts, parking, and today's cigarettes
// @Description  Every section degrades to its empty value when its read fails.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  services.Dashboard
// @Router       /dashboard [get]
func (h *DashboardHandler) View(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboard.View(c.Request.Context()))
}

// Analytics godoc
// @Summary      Goal progress, 7-day habit and meal rates, task totals
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  services.Analytics
// @Router       /analytics [get]
func (h *DashboardHandler) Analytics(c *gin.Context) {
	c.JSON(http.StatusOK, h.analytics.Overview(c.Request.Context()))
}

func (h *DashboardHandler) LogCigarette(c *gin.Context) {
	entry, err := h.dashboard.LogCigarette(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *DashboardHandler) UndoCigarette(c *gin.Context) {
	if err := h.dashboard.UndoCigarette(c.Request.Context()); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DashboardHandler) SaveParking(c *gin.Context) {
	var req parkingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	parking, err := h.dashboard.SaveParking(c.Request.Context(), req.Location)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, parking)
}

func (h *DashboardHandler) QuickFinance(c *gin.Context) {
	var req quickFinanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	tx, err := h.dashboard.QuickFinance(c.Request.Context(), services.QuickFinanceInput{
		Type:     req.Type,
		Amount:   req.Amount,
		Category: req.Category,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tx)
}
