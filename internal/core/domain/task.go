package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/santisala23-sys/exito/internal/core/calendar"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrTaskTitleEmpty   = errors.New("task title cannot be empty")
	ErrTaskTitleTooLong = errors.New("task title is too long (max 100 chars)")
)

// Task is a one-off to-do item, optionally due on a date.
type Task struct {
	ID        string         `json:"id" db:"id"`
	Title     string         `json:"title" db:"title"`
	Completed bool           `json:"completed" db:"completed"`
	DueDate   *calendar.Date `json:"due_date,omitempty" db:"due_date"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}

func NewTask(title string, due *calendar.Date) (*Task, error) {
	clean, err := validateName(title, ErrTaskTitleEmpty, ErrTaskTitleTooLong)
	if err != nil {
		return nil, err
	}

	return &Task{
		ID:        uuid.NewString(),
		Title:     clean,
		DueDate:   due,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// PendingOn reports whether the task still needs doing on day: it is open
// and either has no due date or is due on or before day.
func (t *Task) PendingOn(day calendar.Date) bool {
	if t.Completed {
		return false
	}
	return t.DueDate == nil || !t.DueDate.After(day)
}

// TaskCounts is the all-time split of tasks by completion.
type TaskCounts struct {
	Pending   int `json:"pending" db:"pending"`
	Completed int `json:"completed" db:"completed"`
}
