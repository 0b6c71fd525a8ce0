package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/santisala23-sys/exito/internal/core/calendar"
)

var (
	ErrInvalidMealType    = errors.New("invalid meal type (must be breakfast, lunch, snack, or dinner)")
	ErrInvalidDayOfWeek   = errors.New("invalid day of week (must be 0-6)")
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrPantryItemNotFound = errors.New("pantry item not found")
	ErrPantryItemExists   = errors.New("pantry item already exists")
	ErrIngredientEmpty    = errors.New("ingredient cannot be empty")
	ErrIngredientTooLong  = errors.New("ingredient is too long (max 100 chars)")
	ErrMealLogDateEmpty   = errors.New("meal log date is required")
	ErrRecipeNameTooLong  = errors.New("recipe name is too long (max 100 chars)")
	ErrRecipeNameEmpty    = errors.New("recipe name cannot be empty")
)

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealSnack     = "snack"
	MealDinner    = "dinner"

	// MealsPerDay is the number of tracked meal slots in a day.
	MealsPerDay = 4
)

// MealTypes lists the slots in the order they are eaten.
var MealTypes = []string{MealBreakfast, MealLunch, MealSnack, MealDinner}

var legacyMealTypes = map[string]string{
	"desayuno": MealBreakfast,
	"almuerzo": MealLunch,
	"merienda": MealSnack,
	"cena":     MealDinner,
}

func ParseMealType(s string) (string, error) {
	m := strings.ToLower(strings.TrimSpace(s))
	switch m {
	case MealBreakfast, MealLunch, MealSnack, MealDinner:
		return m, nil
	}
	if mapped, ok := legacyMealTypes[m]; ok {
		return mapped, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMealType, s)
}

// MealLog records whether a meal slot was eaten on a date.
// At most one row exists per (date, meal type).
type MealLog struct {
	Date        calendar.Date `json:"date" db:"date"`
	MealType    string        `json:"meal_type" db:"meal_type"`
	PlannedMeal string        `json:"planned_meal" db:"planned_meal"`
	Completed   bool          `json:"completed" db:"completed"`
}

func (m *MealLog) Validate() error {
	if m.Date.IsZero() {
		return ErrMealLogDateEmpty
	}
	mt, err := ParseMealType(m.MealType)
	if err != nil {
		return err
	}
	m.MealType = mt
	return nil
}

// Recipe is the meal planned for one slot of the weekly grid.
type Recipe struct {
	ID          string   `json:"id" db:"id"`
	DayOfWeek   int      `json:"day_of_week" db:"day_of_week"`
	MealType    string   `json:"meal_type" db:"meal_type"`
	Name        string   `json:"recipe_name" db:"recipe_name"`
	Ingredients []string `json:"ingredients" db:"-"`
}

func NewRecipe(day int, mealType, name string, ingredients []string) (*Recipe, error) {
	if day < 0 || day > 6 {
		return nil, ErrInvalidDayOfWeek
	}
	mt, err := ParseMealType(mealType)
	if err != nil {
		return nil, err
	}
	cleanName, err := validateName(name, ErrRecipeNameEmpty, ErrRecipeNameTooLong)
	if err != nil {
		return nil, err
	}

	return &Recipe{
		ID:          uuid.NewString(),
		DayOfWeek:   day,
		MealType:    mt,
		Name:        cleanName,
		Ingredients: CleanIngredients(ingredients),
	}, nil
}

// SplitIngredients parses a comma separated ingredient list.
func SplitIngredients(s string) []string {
	return CleanIngredients(strings.Split(s, ","))
}

// CleanIngredients trims every entry and drops the blank ones.
func CleanIngredients(in []string) []string {
	out := make([]string, 0, len(in))
	for _, ing := range in {
		if trimmed := strings.TrimSpace(ing); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

type PantryItem struct {
	ID         string `json:"id" db:"id"`
	Ingredient string `json:"ingredient" db:"ingredient"`
	InStock    bool   `json:"in_stock" db:"in_stock"`
}

func NewPantryItem(ingredient string) (*PantryItem, error) {
	clean, err := validateName(ingredient, ErrIngredientEmpty, ErrIngredientTooLong)
	if err != nil {
		return nil, err
	}
	return &PantryItem{
		ID:         uuid.NewString(),
		Ingredient: clean,
		InStock:    true,
	}, nil
}

// IngredientsAvailable reports whether every ingredient is in stock,
// matching names case-insensitively. No ingredients means available.
func IngredientsAvailable(needed []string, pantry []*PantryItem) bool {
	stock := make(map[string]bool, len(pantry))
	for _, item := range pantry {
		stock[strings.ToLower(item.Ingredient)] = item.InStock
	}
	for _, ing := range needed {
		if !stock[strings.ToLower(ing)] {
			return false
		}
	}
	return true
}
