package services

import (
	"context"
	"log/slog"

	"github.com/santisala23-sys/exito/internal/core/aggregate"
	"github.com/santisala23-sys/exito/internal/core/calendar"
	"github.com/santisala23-sys/exito/internal/core/domain"
)

// StreakLookbackDays bounds how far back streaks are computed.
const StreakLookbackDays = 365

type HabitService struct {
	repo     domain.HabitRepository
	logRepo  domain.HabitLogRepository
	resolver *calendar.Resolver
	logger   *slog.Logger
}

func NewHabitService(repo domain.HabitRepository, logRepo domain.HabitLogRepository, resolver *calendar.Resolver, logger *slog.Logger) *HabitService {
	return &HabitService{
		repo:     repo,
		logRepo:  logRepo,
		resolver: resolver,
		logger:   logger,
	}
}

type CreateHabitInput struct {
	Name string
}

type UpdateHabitInput struct {
	ID   string
	Name string
}

type MarkHabitInput struct {
	ID   string
	Done bool
}

// HabitDay is today's habit checklist split by status.
type HabitDay struct {
	Date      calendar.Date   `json:"date"`
	Pending   []*domain.Habit `json:"pending"`
	Completed []*domain.Habit `json:"completed"`
}

func (s *HabitService) List(ctx context.Context) ([]*domain.Habit, error) {
	return s.repo.List(ctx)
}

func (s *HabitService) Create(ctx context.Context, input CreateHabitInput) (*domain.Habit, error) {
	habit, err := domain.NewHabit(input.Name)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, habit); err != nil {
		return nil, err
	}

	return habit, nil
}

func (s *HabitService) Update(ctx context.Context, input UpdateHabitInput) (*domain.Habit, error) {
	habit, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if err := habit.Rename(input.Name); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, err
	}

	return habit, nil
}

func (s *HabitService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Today splits the habits into pending and completed for today. A failed
// log read shows every habit as pending.
func (s *HabitService) Today(ctx context.Context) *HabitDay {
	today := s.resolver.Today()
	day := &HabitDay{
		Date:      today,
		Pending:   []*domain.Habit{},
		Completed: []*domain.Habit{},
	}

	var (
		habits []*domain.Habit
		logs   []*domain.HabitLog
	)
	reads := newViewReads(ctx, s.logger, "habits")
	reads.Go("habits", func(ctx context.Context) error {
		var err error
		habits, err = s.repo.List(ctx)
		return err
	})
	reads.Go("habit_logs", func(ctx context.Context) error {
		var err error
		logs, err = s.logRepo.ListBetween(ctx, today, today)
		return err
	})
	reads.Wait()

	done := make(map[string]bool, len(logs))
	for _, l := range logs {
		done[l.HabitID] = l.Completed
	}

	for _, h := range habits {
		if done[h.ID] {
			day.Completed = append(day.Completed, h)
		} else {
			day.Pending = append(day.Pending, h)
		}
	}

	return day
}

// Mark sets today's completion flag of a habit. Repeating the call is
// harmless: the log is upserted on (date, habit).
func (s *HabitService) Mark(ctx context.Context, input MarkHabitInput) (*domain.HabitLog, error) {
	if _, err := s.repo.GetByID(ctx, input.ID); err != nil {
		return nil, err
	}

	log := &domain.HabitLog{
		HabitID:   input.ID,
		Date:      s.resolver.Today(),
		Completed: input.Done,
	}
	if err := log.Validate(); err != nil {
		return nil, err
	}

	if err := s.logRepo.Upsert(ctx, log); err != nil {
		return nil, err
	}

	return log, nil
}

func (s *HabitService) Streaks(ctx context.Context) ([]domain.Streak, error) {
	habits, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	window := s.resolver.TrailingWindow(StreakLookbackDays)
	logs, err := s.logRepo.ListBetween(ctx, window.From, window.To)
	if err != nil {
		return nil, err
	}

	return aggregate.Streaks(window.To, habits, logs), nil
}
