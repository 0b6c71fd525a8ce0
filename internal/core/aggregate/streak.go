package aggregate

import (
	"sort"

	"github.com/santisala23-sys/exito/internal/core/calendar"
	"github.com/santisala23-sys/exito/internal/core/domain"
)

// Streaks computes, per habit, the current and longest run of consecutive
// completed days. A current streak survives until the end of the day
// after its last completion.
func Streaks(today calendar.Date, habits []*domain.Habit, logs []*domain.HabitLog) []domain.Streak {
	days := make(map[string][]calendar.Date, len(habits))
	for _, l := range logs {
		if l.Completed {
			days[l.HabitID] = append(days[l.HabitID], l.Date)
		}
	}

	out := make([]domain.Streak, 0, len(habits))
	for _, h := range habits {
		current, longest := streaksOf(today, days[h.ID])
		out = append(out, domain.Streak{HabitID: h.ID, Current: current, Longest: longest})
	}
	return out
}

func streaksOf(today calendar.Date, dates []calendar.Date) (int, int) {
	if len(dates) == 0 {
		return 0, 0
	}

	unique := make(map[calendar.Date]bool, len(dates))
	var sorted []calendar.Date
	for _, d := range dates {
		if !unique[d] {
			unique[d] = true
			sorted = append(sorted, d)
		}
	}

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].After(sorted[j])
	})

	current := 0
	if last := sorted[0]; !last.AddDays(1).Before(today) {
		current = 1
		for i := 0; i < len(sorted)-1; i++ {
			if sorted[i+1].AddDays(1) != sorted[i] {
				break
			}
			current++
		}
	}

	longest := 0
	run := 1
	for i := 0; i < len(sorted)-1; i++ {
		if sorted[i+1].AddDays(1) == sorted[i] {
			run++
			continue
		}
		if run > longest {
			longest = run
		}
		run = 1
	}
	if run > longest {
		longest = run
	}

	return current, longest
}
