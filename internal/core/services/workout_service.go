package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/santisala23-sys/exito/internal/core/aggregate"
	"github.com/santisala23-sys/exito/internal/core/calendar"
	"github.com/santisala23-sys/exito/internal/core/domain"
)

type WorkoutService struct {
	exercises domain.ExerciseRepository
	logs      domain.WorkoutLogRepository
	resolver  *calendar.Resolver
	logger    *slog.Logger
}

func NewWorkoutService(exercises domain.ExerciseRepository, logs domain.WorkoutLogRepository, resolver *calendar.Resolver, logger *slog.Logger) *WorkoutService {
	return &WorkoutService{
		exercises: exercises,
		logs:      logs,
		resolver:  resolver,
		logger:    logger,
	}
}

type CreateExerciseInput struct {
	Name         string
	TargetAmount float64
	Period       string
}

type UpdateExerciseInput struct {
	ID           string
	Name         string
	TargetAmount float64
	Period       string
}

// RecordInput maps exercise names to the amount done today. Zero amounts
// are skipped.
type RecordInput struct {
	Amounts map[string]float64
}

type WorkoutPage struct {
	Date      calendar.Date         `json:"date"`
	Exercises []*domain.Exercise    `json:"exercises"`
	Progress  []domain.GoalProgress `json:"progress"`
}

func (s *WorkoutService) List(ctx context.Context) ([]*domain.Exercise, error) {
	return s.exercises.List(ctx)
}

func (s *WorkoutService) Create(ctx context.Context, input CreateExerciseInput) (*domain.Exercise, error) {
	exercise, err := domain.NewExercise(input.Name, input.TargetAmount, input.Period)
	if err != nil {
		return nil, err
	}

	if err := s.exercises.Create(ctx, exercise); err != nil {
		return nil, err
	}

	return exercise, nil
}

func (s *WorkoutService) Update(ctx context.Context, input UpdateExerciseInput) (*domain.Exercise, error) {
	exercise, err := s.exercises.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	previousName := exercise.Name
	if err := exercise.Update(input.Name, input.TargetAmount, input.Period); err != nil {
		return nil, err
	}

	if err := s.exercises.Update(ctx, exercise, previousName); err != nil {
		return nil, err
	}

	return exercise, nil
}

func (s *WorkoutService) Delete(ctx context.Context, id string) error {
	return s.exercises.Delete(ctx, id)
}

// Record appends one log per exercise with a nonzero amount, all dated
// today. Either every log is stored or none is.
func (s *WorkoutService) Record(ctx context.Context, input RecordInput) ([]*domain.WorkoutLog, error) {
	names := make([]string, 0, len(input.Amounts))
	for name, amount := range input.Amounts {
		if amount < 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAmount, name)
		}
		if amount > 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, domain.ErrNoAmounts
	}
	sort.Strings(names)

	exercises, err := s.exercises.List(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(exercises))
	for _, e := range exercises {
		known[e.Name] = true
	}

	today := s.resolver.Today()
	logs := make([]*domain.WorkoutLog, 0, len(names))
	for _, name := range names {
		if !known[name] {
			return nil, fmt.Errorf("%w: %s", domain.ErrExerciseNotFound, strings.TrimSpace(name))
		}
		l := domain.NewWorkoutLog(name, input.Amounts[name], today)
		if err := l.Validate(); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}

	if err := s.logs.CreateBatch(ctx, logs); err != nil {
		return nil, err
	}

	return logs, nil
}

// Progress computes the current period progress of every exercise.
func (s *WorkoutService) Progress(ctx context.Context) ([]domain.GoalProgress, error) {
	exercises, err := s.exercises.List(ctx)
	if err != nil {
		return nil, err
	}
	return loadProgress(ctx, s.resolver, exercises, s.logs)
}

// Page is the workouts view: the exercise list and its progress. Failed
// reads render as an empty page.
func (s *WorkoutService) Page(ctx context.Context) *WorkoutPage {
	page := &WorkoutPage{
		Date:      s.resolver.Today(),
		Exercises: []*domain.Exercise{},
		Progress:  []domain.GoalProgress{},
	}

	exercises, err := s.exercises.List(ctx)
	if err != nil {
		s.logger.Warn("view read failed, using empty value", slog.String("page", "workouts"), slog.String("read", "exercises"), slog.Any("error", err))
		return page
	}
	page.Exercises = exercises

	progress, err := loadProgress(ctx, s.resolver, exercises, s.logs)
	if err != nil {
		s.logger.Warn("view read failed, using empty value", slog.String("page", "workouts"), slog.String("read", "workout_logs"), slog.Any("error", err))
		progress = aggregate.ProgressAll(s.resolver, exercises, nil)
	}
	page.Progress = progress

	return page
}

// loadProgress fetches, in one range query, every log any exercise window
// can reach and joins them.
func loadProgress(ctx context.Context, r *calendar.Resolver, exercises []*domain.Exercise, logs domain.WorkoutLogRepository) ([]domain.GoalProgress, error) {
	if len(exercises) == 0 {
		return []domain.GoalProgress{}, nil
	}

	from := aggregate.EarliestWindowStart(r, exercises)
	entries, err := logs.ListBetween(ctx, from, r.Today())
	if err != nil {
		return nil, err
	}

	return aggregate.ProgressAll(r, exercises, entries), nil
}
