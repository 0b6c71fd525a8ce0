package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/santisala23-sys/exito/internal/core/calendar"
	"github.com/santisala23-sys/exito/internal/core/services"
)

type FinanceHandler struct {
	svc *services.FinanceService
}

func NewFinanceHandler(svc *services.FinanceService) *FinanceHandler {
	return &FinanceHandler{svc: svc}
}

// transactionRequest keeps the amount as text so "12,50" and "12.50"
// both parse without float rounding.
type transactionRequest struct {
	Type        string `json:"transaction_type" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

func (h *FinanceHandler) RegisterRoutes(router *gin.RouterGroup) {
	finances := router.Group("/finances")
	{
		finances.GET("", h.Month)
		finances.POST("", h.Add)
		finances.DELETE("/:id", h.Delete)
	}
}

// Month godoc
// @Summary      Month-to-date transactions and totals
// @Tags         finances
// @Produce      json
// @Success      200  {object}  services.FinanceMonth
// @Router       /finances [get]
func (h *FinanceHandler) Month(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Month(c.Request.Context()))
}

func (h *FinanceHandler) Add(c *gin.Context) {
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	var date calendar.Date
	if req.Date != "" {
		parsed, err := calendar.ParseDate(req.Date)
		if err != nil {
			handleError(c, err)
			return
		}
		date = parsed
	}

	tx, err := h.svc.Add(c.Request.Context(), services.AddTransactionInput{
		Type:        req.Type,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tx)
}

func (h *FinanceHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
