package services

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/santisala23-sys/exito/internal/core/aggregate"
	"github.com/santisala23-sys/exito/internal/core/calendar"
	"github.com/santisala23-sys/exito/internal/core/domain"
)

// DashboardRepos groups the stores the dashboard reads from.
type DashboardRepos struct {
	Tasks     domain.TaskRepository
	Habits    domain.HabitRepository
	HabitLogs domain.HabitLogRepository
	Workouts  domain.WorkoutLogRepository
	Meals     domain.MealLogRepository
	Quick     domain.QuickLogRepository
}

type DashboardService struct {
	repos    DashboardRepos
	finances *FinanceService
	resolver *calendar.Resolver
	logger   *slog.Logger
}

func NewDashboardService(repos DashboardRepos, finances *FinanceService, resolver *calendar.Resolver, logger *slog.Logger) *DashboardService {
	return &DashboardService{
		repos:    repos,
		finances: finances,
		resolver: resolver,
		logger:   logger,
	}
}

type QuickFinanceInput struct {
	Type     string
	Amount   string
	Category string
}

type Dashboard struct {
	Date       calendar.Date          `json:"date"`
	Pending    domain.PendingCounts   `json:"pending"`
	Parking    string                 `json:"parking"`
	Cigarettes []*domain.CigaretteLog `json:"cigarettes_today"`
}

// View collects today's pending counts, the parking location, and today's
// cigarette logs.
func (s *DashboardService) View(ctx context.Context) *Dashboard {
	today := s.resolver.Today()

	var (
		tasks      []*domain.Task
		habits     []*domain.Habit
		habitLogs  []*domain.HabitLog
		workouts   int
		meals      []*domain.MealLog
		parking    *domain.Parking
		cigarettes []*domain.CigaretteLog
	)

	reads := newViewReads(ctx, s.logger, "dashboard")
	reads.Go("tasks", func(ctx context.Context) error {
		var err error
		tasks, err = s.repos.Tasks.ListOpen(ctx)
		return err
	})
	reads.Go("habits", func(ctx context.Context) error {
		var err error
		habits, err = s.repos.Habits.List(ctx)
		return err
	})
	reads.Go("habit_logs", func(ctx context.Context) error {
		var err error
		habitLogs, err = s.repos.HabitLogs.ListBetween(ctx, today, today)
		return err
	})
	reads.Go("workout_logs", func(ctx context.Context) error {
		var err error
		workouts, err = s.repos.Workouts.CountOn(ctx, today)
		return err
	})
	reads.Go("meal_logs", func(ctx context.Context) error {
		var err error
		meals, err = s.repos.Meals.ListOn(ctx, today)
		return err
	})
	reads.Go("parking", func(ctx context.Context) error {
		var err error
		parking, err = s.repos.Quick.GetParking(ctx)
		return err
	})
	reads.Go("cigarettes", func(ctx context.Context) error {
		var err error
		cigarettes, err = s.cigarettesToday(ctx)
		return err
	})
	reads.Wait()

	habitsDone := 0
	for _, l := range habitLogs {
		if l.Completed {
			habitsDone++
		}
	}
	mealsDone := 0
	for _, m := range meals {
		if m.Completed {
			mealsDone++
		}
	}

	dash := &Dashboard{
		Date: today,
		Pending: aggregate.Pending(
			aggregate.TasksPending(tasks, today),
			aggregate.HabitsPending(len(habits), habitsDone),
			aggregate.WorkoutPending(workouts),
			aggregate.MealsPending(mealsDone),
		),
		Parking:    domain.ParkingUnset,
		Cigarettes: []*domain.CigaretteLog{},
	}
	if parking != nil {
		dash.Parking = parking.Location
	}
	if cigarettes != nil {
		dash.Cigarettes = cigarettes
	}

	return dash
}

// cigarettesToday keeps the logs whose instant falls on today's date in
// the resolver's zone.
func (s *DashboardService) cigarettesToday(ctx context.Context) ([]*domain.CigaretteLog, error) {
	logs, err := s.repos.Quick.ListCigarettesSince(ctx, s.resolver.StartOfToday())
	if err != nil {
		return nil, err
	}

	today := s.resolver.Today()
	out := make([]*domain.CigaretteLog, 0, len(logs))
	for _, l := range logs {
		if s.resolver.DateOf(l.CreatedAt) == today {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *DashboardService) LogCigarette(ctx context.Context) (*domain.CigaretteLog, error) {
	return s.repos.Quick.AddCigarette(ctx)
}

// UndoCigarette removes the most recent cigarette logged today.
func (s *DashboardService) UndoCigarette(ctx context.Context) error {
	logs, err := s.cigarettesToday(ctx)
	if err != nil {
		return err
	}
	if len(logs) == 0 {
		return domain.ErrNothingToUndo
	}

	last := logs[0]
	for _, l := range logs[1:] {
		if l.CreatedAt.After(last.CreatedAt) {
			last = l
		}
	}
	return s.repos.Quick.DeleteCigarette(ctx, last.ID)
}

func (s *DashboardService) SaveParking(ctx context.Context, location string) (*domain.Parking, error) {
	parking, err := domain.NewParking(location)
	if err != nil {
		return nil, err
	}

	if err := s.repos.Quick.SaveParking(ctx, parking); err != nil {
		return nil, err
	}

	return parking, nil
}

func (s *DashboardService) QuickFinance(ctx context.Context, input QuickFinanceInput) (*domain.Transaction, error) {
	amount, err := domain.ParseAmount(input.Amount)
	if err != nil {
		return nil, err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrTransactionAmount
	}
	return s.finances.QuickAdd(ctx, input.Type, amount, input.Category)
}
