package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/santisala23-sys/exito/internal/core/calendar"
	"github.com/santisala23-sys/exito/internal/core/domain"
)

var (
	_ domain.MealLogRepository = (*PostgresMealLogRepository)(nil)
	_ domain.RecipeRepository  = (*PostgresRecipeRepository)(nil)
	_ domain.PantryRepository  = (*PostgresPantryRepository)(nil)
)

type PostgresMealLogRepository struct {
	db *sqlx.DB
}

func NewPostgresMealLogRepository(db *sqlx.DB) *PostgresMealLogRepository {
	return &PostgresMealLogRepository{db: db}
}

func (r *PostgresMealLogRepository) Upsert(ctx context.Context, m *domain.MealLog) error {
	query := `
		INSERT INTO meal_plan (date, meal_type, planned_meal, completed)
		VALUES (:date, :meal_type, :planned_meal, :completed)
		ON CONFLICT (date, meal_type) DO UPDATE
		SET planned_meal = EXCLUDED.planned_meal, completed = EXCLUDED.completed`

	if _, err := r.db.NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("upsert meal log: %w", err)
	}
	return nil
}

func (r *PostgresMealLogRepository) ListOn(ctx context.Context, day calendar.Date) ([]*domain.MealLog, error) {
	logs := []*domain.MealLog{}

	query := `SELECT date, meal_type, planned_meal, completed FROM meal_plan WHERE date = $1`

	if err := r.db.SelectContext(ctx, &logs, query, day); err != nil {
		return nil, fmt.Errorf("list meal logs: %w", err)
	}
	return logs, nil
}

func (r *PostgresMealLogRepository) CountCompletedBetween(ctx context.Context, from, to calendar.Date) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM meal_plan WHERE completed AND date >= $1 AND date <= $2`

	if err := r.db.GetContext(ctx, &count, query, from, to); err != nil {
		return 0, fmt.Errorf("count meal logs: %w", err)
	}
	return count, nil
}

type PostgresRecipeRepository struct {
	db *sqlx.DB
}

func NewPostgresRecipeRepository(db *sqlx.DB) *PostgresRecipeRepository {
	return &PostgresRecipeRepository{db: db}
}

// recipeRow mirrors the recipes table; ingredients travel as JSON.
type recipeRow struct {
	ID          string `db:"id"`
	DayOfWeek   int    `db:"day_of_week"`
	MealType    string `db:"meal_type"`
	Name        string `db:"recipe_name"`
	Ingredients []byte `db:"ingredients"`
}

func (row recipeRow) toDomain() (*domain.Recipe, error) {
	r := &domain.Recipe{
		ID:          row.ID,
		DayOfWeek:   row.DayOfWeek,
		MealType:    row.MealType,
		Name:        row.Name,
		Ingredients: []string{},
	}
	if len(row.Ingredients) > 0 {
		if err := json.Unmarshal(row.Ingredients, &r.Ingredients); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ingredients: %w", err)
		}
	}
	return r, nil
}

func (r *PostgresRecipeRepository) List(ctx context.Context) ([]*domain.Recipe, error) {
	var rows []recipeRow

	query := `
		SELECT id, day_of_week, meal_type, recipe_name, ingredients
		FROM recipes
		ORDER BY day_of_week ASC, meal_type ASC`

	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}

	recipes := make([]*domain.Recipe, 0, len(rows))
	for _, row := range rows {
		recipe, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

func (r *PostgresRecipeRepository) Save(ctx context.Context, recipe *domain.Recipe) error {
	ingredients := recipe.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	ingredientsJSON, err := json.Marshal(ingredients)
	if err != nil {
		return fmt.Errorf("failed to marshal ingredients: %w", err)
	}

	query := `
		INSERT INTO recipes (id, day_of_week, meal_type, recipe_name, ingredients)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (day_of_week, meal_type) DO UPDATE
		SET recipe_name = EXCLUDED.recipe_name, ingredients = EXCLUDED.ingredients
		RETURNING id`

	row := r.db.QueryRowxContext(ctx, query, recipe.ID, recipe.DayOfWeek, recipe.MealType, recipe.Name, string(ingredientsJSON))
	if err := row.Scan(&recipe.ID); err != nil {
		return fmt.Errorf("save recipe: %w", err)
	}
	return nil
}

func (r *PostgresRecipeRepository) DeleteSlot(ctx context.Context, day int, mealType string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM recipes WHERE day_of_week = $1 AND meal_type = $2`, day, mealType); err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}

type PostgresPantryRepository struct {
	db *sqlx.DB
}

func NewPostgresPantryRepository(db *sqlx.DB) *PostgresPantryRepository {
	return &PostgresPantryRepository{db: db}
}

func (r *PostgresPantryRepository) List(ctx context.Context) ([]*domain.PantryItem, error) {
	items := []*domain.PantryItem{}

	query := `SELECT id, ingredient, in_stock FROM pantry_inventory ORDER BY LOWER(ingredient) ASC`

	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list pantry: %w", err)
	}
	return items, nil
}

func (r *PostgresPantryRepository) Create(ctx context.Context, item *domain.PantryItem) error {
	query := `INSERT INTO pantry_inventory (id, ingredient, in_stock) VALUES (:id, :ingredient, :in_stock)`

	if _, err := r.db.NamedExecContext(ctx, query, item); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPantryItemExists
		}
		return fmt.Errorf("insert pantry item: %w", err)
	}
	return nil
}

func (r *PostgresPantryRepository) SetInStock(ctx context.Context, id string, inStock bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE pantry_inventory SET in_stock = $1 WHERE id = $2`, inStock, id)
	if err != nil {
		return fmt.Errorf("update pantry item: %w", err)
	}
	return expectAffected(res, domain.ErrPantryItemNotFound)
}
