// Package calendar resolves "today" and the query windows derived from it
// in a single civil timezone, independent of the host's local zone.
package calendar

import (
	"fmt"
	"time"
)

const DefaultTimezone = "America/Argentina/Buenos_Aires"

const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

var weekdayLabels = [7]string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// Window is an inclusive range of calendar dates.
type Window struct {
	From Date `json:"from"`
	To   Date `json:"to"`
}

func (w Window) Contains(d Date) bool {
	return !d.Before(w.From) && !d.After(w.To)
}

// Days lists every date of the window in ascending order.
func (w Window) Days() []Date {
	var days []Date
	for d := w.From; !d.After(w.To); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

type Resolver struct {
	loc   *time.Location
	clock Clock
}

func NewResolver(loc *time.Location, clock Clock) *Resolver {
	if loc == nil {
		loc = time.UTC
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Resolver{loc: loc, clock: clock}
}

// NewResolverForZone loads the named IANA zone.
func NewResolverForZone(name string, clock Clock) (*Resolver, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("calendar: load timezone %q: %w", name, err)
	}
	return NewResolver(loc, clock), nil
}

func (r *Resolver) Location() *time.Location { return r.loc }

// Now is the current instant projected into the resolver's zone.
func (r *Resolver) Now() time.Time {
	return r.clock.Now().In(r.loc)
}

func (r *Resolver) Today() Date {
	return DateOf(r.Now())
}

// DateOf projects an instant into the resolver's zone before taking its date.
func (r *Resolver) DateOf(t time.Time) Date {
	return DateOf(t.In(r.loc))
}

// StartOfToday is midnight of today in the resolver's zone.
func (r *Resolver) StartOfToday() time.Time {
	today := r.Today()
	return time.Date(today.Year, today.Month, today.Day, 0, 0, 0, 0, r.loc)
}

// StartOfWeek returns the Monday on or before d. Sunday counts as day 7.
func StartOfWeek(d Date) Date {
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return d.AddDays(-(weekday - 1))
}

func StartOfMonth(d Date) Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// DayOfWeek is 0=Sunday..6=Saturday for today.
func (r *Resolver) DayOfWeek() int {
	return int(r.Today().Weekday())
}

func WeekdayLabel(day int) string {
	if day < 0 || day > 6 {
		return ""
	}
	return weekdayLabels[day]
}

// TrailingWindow is the rolling window of the last n days ending today.
func (r *Resolver) TrailingWindow(days int) Window {
	if days < 1 {
		days = 1
	}
	today := r.Today()
	return Window{From: today.AddDays(-(days - 1)), To: today}
}

// PeriodWindow is the calendar-aligned window of the current instance of
// period, ending today. Unknown periods resolve to today only.
func (r *Resolver) PeriodWindow(period string) Window {
	today := r.Today()
	switch period {
	case PeriodWeekly:
		return Window{From: StartOfWeek(today), To: today}
	case PeriodMonthly:
		return Window{From: StartOfMonth(today), To: today}
	default:
		return Window{From: today, To: today}
	}
}

func (r *Resolver) MonthStart() Date {
	return StartOfMonth(r.Today())
}
