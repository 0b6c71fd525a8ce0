package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santisala23-sys/exito/internal/core/calendar"
	"github.com/santisala23-sys/exito/internal/core/domain"
)

func TestPostgresExerciseRepository_Integration(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	cleanup(t, db)
	defer cleanup(t, db)

	exercises := NewPostgresExerciseRepository(db)
	logs := NewPostgresWorkoutLogRepository(db)
	ctx := context.Background()
	day := calendar.MustParseDate("2024-06-12")

	pushups, err := domain.NewExercise("Pushups", 50, calendar.PeriodWeekly)
	require.NoError(t, err)
	require.NoError(t, exercises.Create(ctx, pushups))

	t.Run("Duplicate Name", func(t *testing.T) {
		dup, err := domain.NewExercise("Pushups", 10, calendar.PeriodDaily)
		require.NoError(t, err)
		assert.ErrorIs(t, exercises.Create(ctx, dup), domain.ErrExerciseExists)
	})

	t.Run("Batch Insert And Range", func(t *testing.T) {
		err := logs.CreateBatch(ctx, []*domain.WorkoutLog{
			domain.NewWorkoutLog("Pushups", 20, day.AddDays(-1)),
			domain.NewWorkoutLog("Pushups", 30, day),
			domain.NewWorkoutLog("Pushups", 99, day.AddDays(-30)),
		})
		require.NoError(t, err)

		inRange, err := logs.ListBetween(ctx, day.AddDays(-2), day)
		require.NoError(t, err)
		assert.Len(t, inRange, 2)

		count, err := logs.CountOn(ctx, day)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Rename Moves Logs", func(t *testing.T) {
		require.NoError(t, pushups.Update("Push-ups", 60, calendar.PeriodWeekly))
		require.NoError(t, exercises.Update(ctx, pushups, "Pushups"))

		moved, err := logs.ListBetween(ctx, day.AddDays(-2), day)
		require.NoError(t, err)
		for _, l := range moved {
			assert.Equal(t, "Push-ups", l.Exercise)
		}

		fetched, err := exercises.GetByID(ctx, pushups.ID)
		require.NoError(t, err)
		assert.Equal(t, 60.0, fetched.TargetAmount)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, exercises.Delete(ctx, pushups.ID))
		assert.ErrorIs(t, exercises.Delete(ctx, pushups.ID), domain.ErrExerciseNotFound)
	})
}
