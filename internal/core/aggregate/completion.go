package aggregate

import (
	"math"

	"github.com/santisala23-sys/exito/internal/core/calendar"
	"github.com/santisala23-sys/exito/internal/core/domain"
)

// RateWindowDays is the length of the rolling window used for habit and
// meal completion rates. It is not aligned to calendar weeks.
const RateWindowDays = 7

// Completion returns done/total with a rounded percent in [0, 100].
// The raw counts are returned unclamped.
func Completion(universe, completed int) domain.CompletionRate {
	rate := domain.CompletionRate{Done: completed, Total: universe}
	if universe > 0 {
		p := math.Round(100 * float64(completed) / float64(universe))
		rate.Percent = int(math.Max(0, math.Min(100, p)))
	}
	return rate
}

func HabitCompletion(habitCount, completed int) domain.CompletionRate {
	return Completion(habitCount*RateWindowDays, completed)
}

func MealCompletion(completed int) domain.CompletionRate {
	return Completion(domain.MealsPerDay*RateWindowDays, completed)
}

// RateWindow is the rolling window shared by habit and meal rates.
func RateWindow(r *calendar.Resolver) calendar.Window {
	return r.TrailingWindow(RateWindowDays)
}

// HabitsPending is how many habits are still open today, never negative.
// More completions than habits happens when a habit is deleted after
// being marked done.
func HabitsPending(habitCount, doneToday int) int {
	if pending := habitCount - doneToday; pending > 0 {
		return pending
	}
	return 0
}

// MealsPending is the number of meal slots not yet eaten today. It is
// deliberately not clamped.
func MealsPending(doneToday int) int {
	return domain.MealsPerDay - doneToday
}

// WorkoutPending is 1 until at least one workout is logged today.
func WorkoutPending(logsToday int) int {
	if logsToday > 0 {
		return 0
	}
	return 1
}

// TasksPending counts open tasks with no due date or due on or before today.
func TasksPending(tasks []*domain.Task, today calendar.Date) int {
	n := 0
	for _, t := range tasks {
		if t.PendingOn(today) {
			n++
		}
	}
	return n
}

func Pending(tasks, habits, workout, meals int) domain.PendingCounts {
	return domain.PendingCounts{
		Tasks:   tasks,
		Habits:  habits,
		Workout: workout,
		Meals:   meals,
		Total:   tasks + habits + workout + meals,
	}
}
