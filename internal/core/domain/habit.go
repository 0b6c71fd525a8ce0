package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/santisala23-sys/exito/internal/core/calendar"
)

var (
	ErrHabitNotFound     = errors.New("habit not found")
	ErrHabitNameEmpty    = errors.New("habit name cannot be empty")
	ErrHabitNameTooLong  = errors.New("habit name is too long (max 100 chars)")
	ErrHabitLogDateEmpty = errors.New("habit log date is required")
)

const MaxNameLen = 100

// Habit is a user-defined recurring daily task.
type Habit struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func validateName(name string, emptyErr, tooLongErr error) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", emptyErr
	}
	if utf8.RuneCountInString(trimmed) > MaxNameLen {
		return "", tooLongErr
	}
	return trimmed, nil
}

func NewHabit(name string) (*Habit, error) {
	clean, err := validateName(name, ErrHabitNameEmpty, ErrHabitNameTooLong)
	if err != nil {
		return nil, err
	}

	return &Habit{
		ID:        uuid.NewString(),
		Name:      clean,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (h *Habit) Rename(name string) error {
	clean, err := validateName(name, ErrHabitNameEmpty, ErrHabitNameTooLong)
	if err != nil {
		return err
	}
	h.Name = clean
	return nil
}

// HabitLog records whether a habit was done on a date.
// At most one row exists per (date, habit).
type HabitLog struct {
	HabitID   string        `json:"habit_id" db:"task_id"`
	Date      calendar.Date `json:"date" db:"date"`
	Completed bool          `json:"completed" db:"completed"`
}

func (l *HabitLog) Validate() error {
	if strings.TrimSpace(l.HabitID) == "" {
		return errors.New("habit_id is required")
	}
	if l.Date.IsZero() {
		return ErrHabitLogDateEmpty
	}
	return nil
}
