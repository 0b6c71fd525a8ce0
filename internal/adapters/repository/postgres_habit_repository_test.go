package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santisala23-sys/exito/internal/core/calendar"
	"github.com/santisala23-sys/exito/internal/core/domain"
)

func TestPostgresHabitRepository_Integration(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	cleanup(t, db)
	defer cleanup(t, db)

	habits := NewPostgresHabitRepository(db)
	logs := NewPostgresHabitLogRepository(db)
	ctx := context.Background()

	habit, err := domain.NewHabit("Read")
	require.NoError(t, err)

	t.Run("Create and Get", func(t *testing.T) {
		require.NoError(t, habits.Create(ctx, habit))

		fetched, err := habits.GetByID(ctx, habit.ID)
		require.NoError(t, err)
		assert.Equal(t, "Read", fetched.Name)
	})

	t.Run("Rename", func(t *testing.T) {
		habit.Name = "Read 20 pages"
		require.NoError(t, habits.Update(ctx, habit))

		list, err := habits.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Read 20 pages", list[0].Name)
	})

	t.Run("Upsert Is Idempotent Per Day", func(t *testing.T) {
		day := calendar.MustParseDate("2024-06-12")

		require.NoError(t, logs.Upsert(ctx, &domain.HabitLog{HabitID: habit.ID, Date: day, Completed: true}))
		require.NoError(t, logs.Upsert(ctx, &domain.HabitLog{HabitID: habit.ID, Date: day, Completed: true}))

		rows, err := logs.ListBetween(ctx, day, day)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.True(t, rows[0].Completed)

		require.NoError(t, logs.Upsert(ctx, &domain.HabitLog{HabitID: habit.ID, Date: day, Completed: false}))
		count, err := logs.CountCompletedBetween(ctx, day.AddDays(-6), day)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("Log For Unknown Habit", func(t *testing.T) {
		err := logs.Upsert(ctx, &domain.HabitLog{
			HabitID: "00000000-0000-0000-0000-000000000000",
			Date:    calendar.MustParseDate("2024-06-12"),
		})
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})

	t.Run("Delete Keeps Completions", func(t *testing.T) {
		day := calendar.MustParseDate("2024-06-12")
		require.NoError(t, logs.Upsert(ctx, &domain.HabitLog{HabitID: habit.ID, Date: day, Completed: true}))

		require.NoError(t, habits.Delete(ctx, habit.ID))

		_, err := habits.GetByID(ctx, habit.ID)
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)

		count, err := logs.CountCompletedBetween(ctx, day.AddDays(-6), day)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		err = logs.Upsert(ctx, &domain.HabitLog{HabitID: habit.ID, Date: day.AddDays(1), Completed: true})
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)

		assert.ErrorIs(t, habits.Delete(ctx, habit.ID), domain.ErrHabitNotFound)
	})
}
