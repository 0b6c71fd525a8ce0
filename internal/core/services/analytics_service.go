package services

import (
	"context"
	"log/slog"

	"github.com/santisala23-sys/exito/internal/core/aggregate"
	"github.com/santisala23-sys/exito/internal/core/calendar"
	"github.com/santisala23-sys/exito/internal/core/domain"
)

type AnalyticsRepos struct {
	Exercises domain.ExerciseRepository
	Workouts  domain.WorkoutLogRepository
	Habits    domain.HabitRepository
	HabitLogs domain.HabitLogRepository
	Meals     domain.MealLogRepository
	Tasks     domain.TaskRepository
}

type AnalyticsService struct {
	repos    AnalyticsRepos
	resolver *calendar.Resolver
	logger   *slog.Logger
}

func NewAnalyticsService(repos AnalyticsRepos, resolver *calendar.Resolver, logger *slog.Logger) *AnalyticsService {
	return &AnalyticsService{
		repos:    repos,
		resolver: resolver,
		logger:   logger,
	}
}

type Analytics struct {
	Date           calendar.Date         `json:"date"`
	Goals          []domain.GoalProgress `json:"goals"`
	HabitRate      domain.CompletionRate `json:"habit_rate"`
	HabitRemaining int                   `json:"habit_remaining"`
	MealRate       domain.CompletionRate `json:"meal_rate"`
	MealRemaining  int                   `json:"meal_remaining"`
	Tasks          domain.TaskCounts     `json:"tasks"`
}

// Overview computes goal progress, the 7-day habit and meal completion
// rates, and the all-time task split.
func (s *AnalyticsService) Overview(ctx context.Context) *Analytics {
	window := aggregate.RateWindow(s.resolver)

	var (
		goals      []domain.GoalProgress
		habitCount int
		habitsDone int
		mealsDone  int
		tasks      domain.TaskCounts
	)

	reads := newViewReads(ctx, s.logger, "analytics")
	reads.Go("goals", func(ctx context.Context) error {
		exercises, err := s.repos.Exercises.List(ctx)
		if err != nil {
			return err
		}
		goals = aggregate.ProgressAll(s.resolver, exercises, nil)

		progress, err := loadProgress(ctx, s.resolver, exercises, s.repos.Workouts)
		if err != nil {
			return err
		}
		goals = progress
		return nil
	})
	reads.Go("habits", func(ctx context.Context) error {
		habits, err := s.repos.Habits.List(ctx)
		habitCount = len(habits)
		return err
	})
	reads.Go("habit_logs", func(ctx context.Context) error {
		var err error
		habitsDone, err = s.repos.HabitLogs.CountCompletedBetween(ctx, window.From, window.To)
		return err
	})
	reads.Go("meal_logs", func(ctx context.Context) error {
		var err error
		mealsDone, err = s.repos.Meals.CountCompletedBetween(ctx, window.From, window.To)
		return err
	})
	reads.Go("tasks", func(ctx context.Context) error {
		var err error
		tasks, err = s.repos.Tasks.Counts(ctx)
		return err
	})
	reads.Wait()

	if goals == nil {
		goals = []domain.GoalProgress{}
	}

	habitRate := aggregate.HabitCompletion(habitCount, habitsDone)
	mealRate := aggregate.MealCompletion(mealsDone)

	return &Analytics{
		Date:           s.resolver.Today(),
		Goals:          goals,
		HabitRate:      habitRate,
		HabitRemaining: habitRate.Remaining(),
		MealRate:       mealRate,
		MealRemaining:  mealRate.Remaining(),
		Tasks:          tasks,
	}
}
