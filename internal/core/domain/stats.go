package domain

import (
	"github.com/shopspring/decimal"

	"github.com/santisala23-sys/exito/internal/core/calendar"
)

type GoalProgress struct {
	Exercise    string          `json:"exercise"`
	Period      string          `json:"period"`
	Window      calendar.Window `json:"window"`
	Progress    float64         `json:"progress"`
	Target      float64         `json:"target"`
	Percent     float64         `json:"percent"`
	GoalReached bool            `json:"goal_reached"`
}

// CompletionRate is done/total over a window. Done and Total are raw
// counts and may disagree when definitions were removed mid-window.
type CompletionRate struct {
	Done    int `json:"done"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// Remaining is the number of expected events still open, never negative.
func (r CompletionRate) Remaining() int {
	if r.Done >= r.Total {
		return 0
	}
	return r.Total - r.Done
}

type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

type LedgerSummary struct {
	MonthStart calendar.Date    `json:"month_start"`
	Income     decimal.Decimal  `json:"income"`
	Expense    decimal.Decimal  `json:"expense"`
	Balance    decimal.Decimal  `json:"balance"`
	ByCategory []CategoryAmount `json:"expenses_by_category"`
}

type Streak struct {
	HabitID string `json:"habit_id"`
	Current int    `json:"current"`
	Longest int    `json:"longest"`
}

type PendingCounts struct {
	Tasks   int `json:"tasks"`
	Habits  int `json:"habits"`
	Workout int `json:"workout"`
	Meals   int `json:"meals"`
	Total   int `json:"total"`
}
