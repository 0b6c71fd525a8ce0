package domain

import (
	"context"
	"time"

	"github.com/santisala23-sys/exito/internal/core/calendar"
)

type ExerciseRepository interface {
	// List returns every tracked exercise ordered by name.
	List(ctx context.Context) ([]*Exercise, error)

	GetByID(ctx context.Context, id string) (*Exercise, error)

	Create(ctx context.Context, exercise *Exercise) error

	// Update persists the new definition. When the name changes, logs
	// recorded under previousName are moved to the new name atomically.
	Update(ctx context.Context, exercise *Exercise, previousName string) error

	Delete(ctx context.Context, id string) error
}

type WorkoutLogRepository interface {
	// CreateBatch appends all logs or none.
	CreateBatch(ctx context.Context, logs []*WorkoutLog) error

	// ListBetween returns logs whose date falls in [from, to].
	ListBetween(ctx context.Context, from, to calendar.Date) ([]*WorkoutLog, error)

	CountOn(ctx context.Context, day calendar.Date) (int, error)
}

type HabitRepository interface {
	// List returns every habit in creation order.
	List(ctx context.Context) ([]*Habit, error)

	GetByID(ctx context.Context, id string) (*Habit, error)

	Create(ctx context.Context, habit *Habit) error

	Update(ctx context.Context, habit *Habit) error

	Delete(ctx context.Context, id string) error
}

type HabitLogRepository interface {
	// Upsert inserts the log or overwrites the row with the same (date, habit).
	Upsert(ctx context.Context, log *HabitLog) error

	ListBetween(ctx context.Context, from, to calendar.Date) ([]*HabitLog, error)

	CountCompletedBetween(ctx context.Context, from, to calendar.Date) (int, error)
}

type MealLogRepository interface {
	// Upsert inserts the log or overwrites the row with the same (date, meal type).
	Upsert(ctx context.Context, log *MealLog) error

	ListOn(ctx context.Context, day calendar.Date) ([]*MealLog, error)

	CountCompletedBetween(ctx context.Context, from, to calendar.Date) (int, error)
}

type RecipeRepository interface {
	List(ctx context.Context) ([]*Recipe, error)

	// Save replaces the recipe planned for the recipe's (day, meal type) slot.
	Save(ctx context.Context, recipe *Recipe) error

	// DeleteSlot clears a slot; clearing an empty slot is not an error.
	DeleteSlot(ctx context.Context, day int, mealType string) error
}

type PantryRepository interface {
	// List returns the pantry ordered by ingredient.
	List(ctx context.Context) ([]*PantryItem, error)

	Create(ctx context.Context, item *PantryItem) error

	SetInStock(ctx context.Context, id string, inStock bool) error
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *Transaction) error

	Delete(ctx context.Context, id string) error

	// ListSince returns transactions dated on or after from, newest first.
	ListSince(ctx context.Context, from calendar.Date) ([]*Transaction, error)
}

type TaskRepository interface {
	Create(ctx context.Context, task *Task) error

	Complete(ctx context.Context, id string) error

	// ListOpen returns incomplete tasks, newest first.
	ListOpen(ctx context.Context) ([]*Task, error)

	Counts(ctx context.Context) (TaskCounts, error)
}

type QuickLogRepository interface {
	AddCigarette(ctx context.Context) (*CigaretteLog, error)

	DeleteCigarette(ctx context.Context, id string) error

	// ListCigarettesSince returns logs created at or after since, oldest first.
	ListCigarettesSince(ctx context.Context, since time.Time) ([]*CigaretteLog, error)

	// GetParking returns nil when no location was ever saved.
	GetParking(ctx context.Context) (*Parking, error)

	SaveParking(ctx context.Context, parking *Parking) error
}
