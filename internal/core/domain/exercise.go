package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/santisala23-sys/exito/internal/core/calendar"
)

var (
	ErrExerciseNotFound     = errors.New("exercise not found")
	ErrExerciseExists       = errors.New("exercise already exists")
	ErrExerciseNameEmpty    = errors.New("exercise name cannot be empty")
	ErrExerciseNameTooLong  = errors.New("exercise name is too long (max 100 chars)")
	ErrInvalidPeriod        = errors.New("invalid period (must be daily, weekly, or monthly)")
	ErrInvalidTarget        = errors.New("target cannot be negative")
	ErrInvalidAmount        = errors.New("amount cannot be negative")
	ErrNoAmounts            = errors.New("at least one exercise amount is required")
	ErrWorkoutLogIncomplete = errors.New("workout log needs an exercise and a date")
)

// legacyPeriods maps the values stored by the first version of the app.
var legacyPeriods = map[string]string{
	"diario":  calendar.PeriodDaily,
	"semanal": calendar.PeriodWeekly,
	"mensual": calendar.PeriodMonthly,
}

func ParsePeriod(s string) (string, error) {
	p := strings.ToLower(strings.TrimSpace(s))
	switch p {
	case calendar.PeriodDaily, calendar.PeriodWeekly, calendar.PeriodMonthly:
		return p, nil
	}
	if mapped, ok := legacyPeriods[p]; ok {
		return mapped, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
}

// Exercise is a tracked quantity with a goal per recurring period.
// Logs reference it by Name, not by ID.
type Exercise struct {
	ID           string  `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	TargetAmount float64 `json:"target_amount" db:"goal_amount"`
	Period       string  `json:"period" db:"goal_period"`
}

func validateExercise(name, period string, target float64) (string, string, error) {
	cleanName, err := validateName(name, ErrExerciseNameEmpty, ErrExerciseNameTooLong)
	if err != nil {
		return "", "", err
	}
	if target < 0 {
		return "", "", ErrInvalidTarget
	}
	p, err := ParsePeriod(period)
	if err != nil {
		return "", "", err
	}
	return cleanName, p, nil
}

func NewExercise(name string, target float64, period string) (*Exercise, error) {
	cleanName, p, err := validateExercise(name, period, target)
	if err != nil {
		return nil, err
	}

	return &Exercise{
		ID:           uuid.NewString(),
		Name:         cleanName,
		TargetAmount: target,
		Period:       p,
	}, nil
}

func (e *Exercise) Update(name string, target float64, period string) error {
	cleanName, p, err := validateExercise(name, period, target)
	if err != nil {
		return err
	}
	e.Name = cleanName
	e.TargetAmount = target
	e.Period = p
	return nil
}

// WorkoutLog is one recorded amount of an exercise on a date.
type WorkoutLog struct {
	ID        string        `json:"id" db:"id"`
	Exercise  string        `json:"exercise" db:"exercise"`
	Amount    float64       `json:"amount" db:"amount"`
	Date      calendar.Date `json:"date" db:"date"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
}

func NewWorkoutLog(exercise string, amount float64, date calendar.Date) *WorkoutLog {
	return &WorkoutLog{
		ID:        uuid.NewString(),
		Exercise:  exercise,
		Amount:    amount,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}
}

func (l *WorkoutLog) Validate() error {
	if strings.TrimSpace(l.Exercise) == "" || l.Date.IsZero() {
		return ErrWorkoutLogIncomplete
	}
	if l.Amount < 0 {
		return ErrInvalidAmount
	}
	return nil
}
