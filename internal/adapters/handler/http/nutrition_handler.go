package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/santisala23-sys/exito/internal/core/services"
)

type NutritionHandler struct {
	svc *services.NutritionService
}

func NewNutritionHandler(svc *services.NutritionService) *NutritionHandler {
	return &NutritionHandler{svc: svc}
}

type toggleMealRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

// saveRecipeRequest accepts ingredients as a list or as one comma
// separated string.
type saveRecipeRequest struct {
	DayOfWeek   *int     `json:"day_of_week" binding:"required"`
	MealType    string   `json:"meal_type" binding:"required"`
	Name        string   `json:"recipe_name"`
	Ingredients []string `json:"ingredients"`
	Text        string   `json:"ingredients_text"`
}

type pantryItemRequest struct {
	Ingredient string `json:"ingredient" binding:"required"`
}

type pantryStockRequest struct {
	InStock *bool `json:"in_stock" binding:"required"`
}

func (h *NutritionHandler) RegisterRoutes(router *gin.RouterGroup) {
	nutrition := router.Group("/nutrition")
	{
		nutrition.GET("/today", h.Today)
		nutrition.PUT("/today/:meal_type", h.ToggleMeal)

		nutrition.GET("/recipes", h.ListRecipes)
		nutrition.PUT("/recipes", h.SaveRecipe)

		nutrition.GET("/pantry", h.ListPantry)
		nutrition.POST("/pantry", h.AddPantryItem)
		nutrition.PATCH("/pantry/:id", h.SetPantryStock)
	}
}

// Today godoc
// @Summary      Today's meal slots with planned recipes and pantry availability
// @Tags         nutrition
// @Produce      json
// @Success      200  {object}  services.NutritionDay
// @Router       /nutrition/today [get]
func (h *NutritionHandler) Today(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Today(c.Request.Context()))
}

func (h *NutritionHandler) ToggleMeal(c *gin.Context) {
	var req toggleMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	meal, err := h.svc.ToggleMeal(c.Request.Context(), services.ToggleMealInput{
		MealType:  c.Param("meal_type"),
		Completed: *req.Completed,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, meal)
}

func (h *NutritionHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.svc.ListRecipes(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *NutritionHandler) SaveRecipe(c *gin.Context) {
	var req saveRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	recipe, err := h.svc.SaveRecipe(c.Request.Context(), services.SaveRecipeInput{
		DayOfWeek:       *req.DayOfWeek,
		MealType:        req.MealType,
		Name:            req.Name,
		Ingredients:     req.Ingredients,
		IngredientsText: req.Text,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	if recipe == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *NutritionHandler) ListPantry(c *gin.Context) {
	items, err := h.svc.ListPantry(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *NutritionHandler) AddPantryItem(c *gin.Context) {
	var req pantryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	item, err := h.svc.AddPantryItem(c.Request.Context(), req.Ingredient)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *NutritionHandler) SetPantryStock(c *gin.Context) {
	var req pantryStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.svc.SetPantryStock(c.Request.Context(), c.Param("id"), *req.InStock); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
