// Package aggregate holds the pure, windowed aggregations shared by every
// view: goal progress, completion rates, pending counts, ledger sums and
// streaks. Nothing here performs I/O; callers pass what they fetched.
package aggregate

import (
	"math"

	"github.com/santisala23-sys/exito/internal/core/calendar"
	"github.com/santisala23-sys/exito/internal/core/domain"
)

// periodWindow is the calendar-aligned window of the current period
// instance. ok is false for periods the calculator does not know.
func periodWindow(r *calendar.Resolver, period string) (calendar.Window, bool) {
	switch period {
	case calendar.PeriodDaily, calendar.PeriodWeekly, calendar.PeriodMonthly:
		return r.PeriodWindow(period), true
	}
	today := r.Today()
	return calendar.Window{From: today, To: today}, false
}

// Progress sums the logs of exercise that fall inside the current
// instance of its period. Logs match by exact, case-sensitive name.
func Progress(r *calendar.Resolver, exercise *domain.Exercise, logs []*domain.WorkoutLog) domain.GoalProgress {
	window, known := periodWindow(r, exercise.Period)

	var sum float64
	if known {
		for _, l := range logs {
			if l.Exercise != exercise.Name || !window.Contains(l.Date) {
				continue
			}
			sum += l.Amount
		}
	}

	return goalProgress(exercise, window, sum)
}

// ProgressAll joins exercises to logs through a name index and computes
// each exercise's progress, preserving the order of exercises.
func ProgressAll(r *calendar.Resolver, exercises []*domain.Exercise, logs []*domain.WorkoutLog) []domain.GoalProgress {
	byName := make(map[string][]*domain.WorkoutLog, len(exercises))
	for _, l := range logs {
		byName[l.Exercise] = append(byName[l.Exercise], l)
	}

	out := make([]domain.GoalProgress, 0, len(exercises))
	for _, e := range exercises {
		out = append(out, Progress(r, e, byName[e.Name]))
	}
	return out
}

func goalProgress(exercise *domain.Exercise, window calendar.Window, sum float64) domain.GoalProgress {
	if sum < 0 {
		sum = 0
	}

	return domain.GoalProgress{
		Exercise:    exercise.Name,
		Period:      exercise.Period,
		Window:      window,
		Progress:    sum,
		Target:      exercise.TargetAmount,
		Percent:     percentOf(sum, exercise.TargetAmount),
		GoalReached: sum >= exercise.TargetAmount,
	}
}

// percentOf is 100*part/whole bounded to [0, 100]; 0 when whole <= 0.
func percentOf(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	p := 100 * part / whole
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	return math.Min(100, p)
}

// EarliestWindowStart is the oldest date any of the exercises' windows
// reach back to, so a single range query can feed ProgressAll.
func EarliestWindowStart(r *calendar.Resolver, exercises []*domain.Exercise) calendar.Date {
	earliest := r.Today()
	for _, e := range exercises {
		if w, ok := periodWindow(r, e.Period); ok && w.From.Before(earliest) {
			earliest = w.From
		}
	}
	return earliest
}
