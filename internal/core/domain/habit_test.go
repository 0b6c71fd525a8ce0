package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santisala23-sys/exito/internal/core/calendar"
	"github.com/santisala23-sys/exito/internal/core/domain"
)

func TestNewHabit(t *testing.T) {
	t.Run("Success: Trims the name and assigns identity", func(t *testing.T) {
		h, err := domain.NewHabit("  Meditar  ")

		require.NoError(t, err)
		assert.Equal(t, "Meditar", h.Name)
		assert.NotEmpty(t, h.ID)
		assert.WithinDuration(t, time.Now().UTC(), h.CreatedAt, 2*time.Second)
	})

	t.Run("Error: Empty name", func(t *testing.T) {
		_, err := domain.NewHabit("   ")
		assert.Equal(t, domain.ErrHabitNameEmpty, err)
	})

	t.Run("Error: Name too long", func(t *testing.T) {
		_, err := domain.NewHabit(strings.Repeat("a", domain.MaxNameLen+1))
		assert.Equal(t, domain.ErrHabitNameTooLong, err)
	})
}

func TestHabit_Rename(t *testing.T) {
	h, err := domain.NewHabit("Leer")
	require.NoError(t, err)

	assert.NoError(t, h.Rename("Leer 20 páginas"))
	assert.Equal(t, "Leer 20 páginas", h.Name)

	assert.Equal(t, domain.ErrHabitNameEmpty, h.Rename(""))
	assert.Equal(t, "Leer 20 páginas", h.Name, "failed rename must not change the habit")
}

func TestHabitLog_Validate(t *testing.T) {
	ok := domain.HabitLog{HabitID: "h1", Date: calendar.MustParseDate("2024-06-12"), Completed: true}
	assert.NoError(t, ok.Validate())

	noDate := domain.HabitLog{HabitID: "h1"}
	assert.Equal(t, domain.ErrHabitLogDateEmpty, noDate.Validate())

	noHabit := domain.HabitLog{Date: calendar.MustParseDate("2024-06-12")}
	assert.Error(t, noHabit.Validate())
}
