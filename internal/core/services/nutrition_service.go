package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/santisala23-sys/exito/internal/core/calendar"
	"github.com/santisala23-sys/exito/internal/core/domain"
)

type NutritionService struct {
	meals    domain.MealLogRepository
	recipes  domain.RecipeRepository
	pantry   domain.PantryRepository
	resolver *calendar.Resolver
	logger   *slog.Logger
}

func NewNutritionService(meals domain.MealLogRepository, recipes domain.RecipeRepository, pantry domain.PantryRepository, resolver *calendar.Resolver, logger *slog.Logger) *NutritionService {
	return &NutritionService{
		meals:    meals,
		recipes:  recipes,
		pantry:   pantry,
		resolver: resolver,
		logger:   logger,
	}
}

type ToggleMealInput struct {
	MealType  string
	Completed bool
}

// SaveRecipeInput fills one slot of the weekly grid. A blank Name clears
// the slot. IngredientsText is used when Ingredients is empty.
type SaveRecipeInput struct {
	DayOfWeek       int
	MealType        string
	Name            string
	Ingredients     []string
	IngredientsText string
}

type MealSlot struct {
	MealType             string         `json:"meal_type"`
	Recipe               *domain.Recipe `json:"recipe,omitempty"`
	Completed            bool           `json:"completed"`
	IngredientsAvailable bool           `json:"ingredients_available"`
}

type NutritionDay struct {
	Date         calendar.Date `json:"date"`
	DayOfWeek    int           `json:"day_of_week"`
	WeekdayLabel string        `json:"weekday_label"`
	Slots        []MealSlot    `json:"slots"`
}

// Today builds the four meal slots of today with their planned recipe,
// completion flag, and ingredient availability.
func (s *NutritionService) Today(ctx context.Context) *NutritionDay {
	today := s.resolver.Today()
	dow := s.resolver.DayOfWeek()

	var (
		logs    []*domain.MealLog
		recipes []*domain.Recipe
		pantry  []*domain.PantryItem
	)
	reads := newViewReads(ctx, s.logger, "nutrition")
	reads.Go("meal_logs", func(ctx context.Context) error {
		var err error
		logs, err = s.meals.ListOn(ctx, today)
		return err
	})
	reads.Go("recipes", func(ctx context.Context) error {
		var err error
		recipes, err = s.recipes.List(ctx)
		return err
	})
	reads.Go("pantry", func(ctx context.Context) error {
		var err error
		pantry, err = s.pantry.List(ctx)
		return err
	})
	reads.Wait()

	done := make(map[string]bool, len(logs))
	for _, l := range logs {
		done[l.MealType] = l.Completed
	}

	planned := make(map[string]*domain.Recipe, domain.MealsPerDay)
	for _, r := range recipes {
		if r.DayOfWeek == dow {
			planned[r.MealType] = r
		}
	}

	day := &NutritionDay{
		Date:         today,
		DayOfWeek:    dow,
		WeekdayLabel: calendar.WeekdayLabel(dow),
		Slots:        make([]MealSlot, 0, domain.MealsPerDay),
	}
	for _, mt := range domain.MealTypes {
		slot := MealSlot{MealType: mt, Completed: done[mt]}
		if r, ok := planned[mt]; ok {
			slot.Recipe = r
			slot.IngredientsAvailable = domain.IngredientsAvailable(r.Ingredients, pantry)
		}
		day.Slots = append(day.Slots, slot)
	}

	return day
}

// ToggleMeal upserts today's log of a meal slot, carrying the name of the
// recipe planned for it.
func (s *NutritionService) ToggleMeal(ctx context.Context, input ToggleMealInput) (*domain.MealLog, error) {
	log := &domain.MealLog{
		Date:      s.resolver.Today(),
		MealType:  input.MealType,
		Completed: input.Completed,
	}
	if err := log.Validate(); err != nil {
		return nil, err
	}

	recipes, err := s.recipes.List(ctx)
	if err != nil {
		s.logger.Warn("recipe lookup failed, logging meal without plan", slog.Any("error", err))
	}
	dow := s.resolver.DayOfWeek()
	for _, r := range recipes {
		if r.DayOfWeek == dow && r.MealType == log.MealType {
			log.PlannedMeal = r.Name
			break
		}
	}

	if err := s.meals.Upsert(ctx, log); err != nil {
		return nil, err
	}

	return log, nil
}

func (s *NutritionService) ListRecipes(ctx context.Context) ([]*domain.Recipe, error) {
	return s.recipes.List(ctx)
}

// SaveRecipe replaces the recipe of a slot, or clears the slot when the
// name is blank. The returned recipe is nil when the slot was cleared.
func (s *NutritionService) SaveRecipe(ctx context.Context, input SaveRecipeInput) (*domain.Recipe, error) {
	if strings.TrimSpace(input.Name) == "" {
		if input.DayOfWeek < 0 || input.DayOfWeek > 6 {
			return nil, domain.ErrInvalidDayOfWeek
		}
		mt, err := domain.ParseMealType(input.MealType)
		if err != nil {
			return nil, err
		}
		return nil, s.recipes.DeleteSlot(ctx, input.DayOfWeek, mt)
	}

	ingredients := input.Ingredients
	if len(ingredients) == 0 {
		ingredients = domain.SplitIngredients(input.IngredientsText)
	}

	recipe, err := domain.NewRecipe(input.DayOfWeek, input.MealType, input.Name, ingredients)
	if err != nil {
		return nil, err
	}

	if err := s.recipes.Save(ctx, recipe); err != nil {
		return nil, err
	}

	return recipe, nil
}

func (s *NutritionService) ListPantry(ctx context.Context) ([]*domain.PantryItem, error) {
	return s.pantry.List(ctx)
}

func (s *NutritionService) AddPantryItem(ctx context.Context, ingredient string) (*domain.PantryItem, error) {
	item, err := domain.NewPantryItem(ingredient)
	if err != nil {
		return nil, err
	}

	if err := s.pantry.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *NutritionService) SetPantryStock(ctx context.Context, id string, inStock bool) error {
	return s.pantry.SetInStock(ctx, id, inStock)
}
