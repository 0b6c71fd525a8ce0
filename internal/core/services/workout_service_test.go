package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/santisala23-sys/exito/internal/core/calendar"
	"github.com/santisala23-sys/exito/internal/core/domain"
	"github.com/santisala23-sys/exito/internal/core/services"
)

func newWorkoutService() (*services.WorkoutService, *MockExerciseRepo, *MockWorkoutLogRepo) {
	exRepo := new(MockExerciseRepo)
	logRepo := new(MockWorkoutLogRepo)
	return services.NewWorkoutService(exRepo, logRepo, testResolver(), discardLogger()), exRepo, logRepo
}

func TestWorkoutService_Record(t *testing.T) {
	ctx := context.Background()
	exercises := []*domain.Exercise{
		{ID: "e1", Name: "Flexiones", TargetAmount: 100, Period: calendar.PeriodWeekly},
		{ID: "e2", Name: "Correr (km)", TargetAmount: 20, Period: calendar.PeriodMonthly},
	}

	t.Run("Success: Appends one log per nonzero amount dated today", func(t *testing.T) {
		svc, exRepo, logRepo := newWorkoutService()
		exRepo.On("List", ctx).Return(exercises, nil)
		logRepo.On("CreateBatch", ctx, mock.MatchedBy(func(logs []*domain.WorkoutLog) bool {
			return len(logs) == 2 &&
				logs[0].Exercise == "Correr (km)" && logs[0].Amount == 5.5 && logs[0].Date == today &&
				logs[1].Exercise == "Flexiones" && logs[1].Amount == 30 && logs[1].Date == today
		})).Return(nil)

		logs, err := svc.Record(ctx, services.RecordInput{Amounts: map[string]float64{
			"Flexiones":   30,
			"Correr (km)": 5.5,
			"Bíceps":      0,
		}})

		require.NoError(t, err)
		assert.Len(t, logs, 2)
		logRepo.AssertExpectations(t)
	})

	t.Run("Fail: All amounts empty performs no write", func(t *testing.T) {
		svc, exRepo, logRepo := newWorkoutService()

		_, err := svc.Record(ctx, services.RecordInput{Amounts: map[string]float64{"Flexiones": 0}})

		assert.ErrorIs(t, err, domain.ErrNoAmounts)
		exRepo.AssertNotCalled(t, "List", mock.Anything)
		logRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	})

	t.Run("Fail: Nil map is the same as no amounts", func(t *testing.T) {
		svc, _, _ := newWorkoutService()

		_, err := svc.Record(ctx, services.RecordInput{})

		assert.ErrorIs(t, err, domain.ErrNoAmounts)
	})

	t.Run("Fail: Negative amount is rejected", func(t *testing.T) {
		svc, _, logRepo := newWorkoutService()

		_, err := svc.Record(ctx, services.RecordInput{Amounts: map[string]float64{"Flexiones": -3}})

		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		logRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	})

	t.Run("Fail: Unknown exercise writes nothing", func(t *testing.T) {
		svc, exRepo, logRepo := newWorkoutService()
		exRepo.On("List", ctx).Return(exercises, nil)

		_, err := svc.Record(ctx, services.RecordInput{Amounts: map[string]float64{"Flexiones": 10, "Remo": 3}})

		assert.ErrorIs(t, err, domain.ErrExerciseNotFound)
		logRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	})

	t.Run("Error: Store failure is returned", func(t *testing.T) {
		svc, exRepo, logRepo := newWorkoutService()
		dbErr := errors.New("connection reset")
		exRepo.On("List", ctx).Return(exercises, nil)
		logRepo.On("CreateBatch", ctx, mock.Anything).Return(dbErr)

		_, err := svc.Record(ctx, services.RecordInput{Amounts: map[string]float64{"Flexiones": 10}})

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestWorkoutService_Exercises(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Create normalizes the period", func(t *testing.T) {
		svc, exRepo, _ := newWorkoutService()
		exRepo.On("Create", ctx, mock.AnythingOfType("*domain.Exercise")).Return(nil)

		ex, err := svc.Create(ctx, services.CreateExerciseInput{Name: " Sentadillas ", TargetAmount: 200, Period: "semanal"})

		require.NoError(t, err)
		assert.Equal(t, "Sentadillas", ex.Name)
		assert.Equal(t, calendar.PeriodWeekly, ex.Period)
	})

	t.Run("Fail: Invalid period never reaches the store", func(t *testing.T) {
		svc, exRepo, _ := newWorkoutService()

		_, err := svc.Create(ctx, services.CreateExerciseInput{Name: "Sentadillas", TargetAmount: 10, Period: "anual"})

		assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
		exRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Success: Update passes the previous name for log migration", func(t *testing.T) {
		svc, exRepo, _ := newWorkoutService()
		existing := &domain.Exercise{ID: "e1", Name: "Flexiones", TargetAmount: 50, Period: calendar.PeriodDaily}
		exRepo.On("GetByID", ctx, "e1").Return(existing, nil)
		exRepo.On("Update", ctx, mock.MatchedBy(func(e *domain.Exercise) bool {
			return e.Name == "Push ups" && e.TargetAmount == 60
		}), "Flexiones").Return(nil)

		ex, err := svc.Update(ctx, services.UpdateExerciseInput{ID: "e1", Name: "Push ups", TargetAmount: 60, Period: "daily"})

		require.NoError(t, err)
		assert.Equal(t, "Push ups", ex.Name)
		exRepo.AssertExpectations(t)
	})

	t.Run("Error: Update of a missing exercise", func(t *testing.T) {
		svc, exRepo, _ := newWorkoutService()
		exRepo.On("GetByID", ctx, "nope").Return(nil, domain.ErrExerciseNotFound)

		_, err := svc.Update(ctx, services.UpdateExerciseInput{ID: "nope", Name: "x", Period: "daily"})

		assert.ErrorIs(t, err, domain.ErrExerciseNotFound)
	})
}

func TestWorkoutService_Progress(t *testing.T) {
	ctx := context.Background()
	exercises := []*domain.Exercise{
		{ID: "e1", Name: "Pushups", TargetAmount: 100, Period: calendar.PeriodWeekly},
	}

	t.Run("Success: Sums the current week", func(t *testing.T) {
		svc, exRepo, logRepo := newWorkoutService()
		exRepo.On("List", ctx).Return(exercises, nil)
		logRepo.On("ListBetween", ctx, calendar.MustParseDate("2024-06-10"), today).Return([]*domain.WorkoutLog{
			{Exercise: "Pushups", Amount: 30, Date: calendar.MustParseDate("2024-06-11")},
			{Exercise: "Pushups", Amount: 20, Date: today},
		}, nil)

		progress, err := svc.Progress(ctx)

		require.NoError(t, err)
		require.Len(t, progress, 1)
		assert.Equal(t, 50.0, progress[0].Progress)
		assert.Equal(t, 50.0, progress[0].Percent)
	})

	t.Run("Success: Page degrades to zero progress when logs fail", func(t *testing.T) {
		svc, exRepo, logRepo := newWorkoutService()
		exRepo.On("List", ctx).Return(exercises, nil)
		logRepo.On("ListBetween", ctx, mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

		page := svc.Page(ctx)

		require.Len(t, page.Progress, 1)
		assert.Equal(t, 0.0, page.Progress[0].Progress)
		assert.Len(t, page.Exercises, 1)
	})

	t.Run("Success: Page is empty when exercises fail", func(t *testing.T) {
		svc, exRepo, _ := newWorkoutService()
		exRepo.On("List", ctx).Return(nil, errors.New("timeout"))

		page := svc.Page(ctx)

		assert.Empty(t, page.Exercises)
		assert.Empty(t, page.Progress)
		assert.Equal(t, today, page.Date)
	})
}
