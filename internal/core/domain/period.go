package domain

import (
	"fmt"
	"time"
)

// PeriodLengthDays is the fixed length of a payroll period.
const PeriodLengthDays = 14

// PayrollPeriod is a derived value object: a half-open interval [Start, End)
// spanning exactly 14 days. Periods are anchored to a configured epoch date
// so that the same reference date always yields the same period, regardless
// of which day "today" is. Periods are never stored as ground truth.
type PayrollPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// truncateToDay normalizes a timestamp to midnight UTC. Period math is date
// math; wall-clock components must never shift a boundary.
func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// PeriodContaining returns the payroll period that contains ref, counted in
// contiguous 14-day windows from epoch. References before the epoch resolve
// to the window that precedes it, so the cadence extends backwards in time
// without gaps.
func PeriodContaining(ref, epoch time.Time) PayrollPeriod {
	ref = truncateToDay(ref)
	epoch = truncateToDay(epoch)

	days := int(ref.Sub(epoch).Hours() / 24)
	idx := days / PeriodLengthDays
	if days < 0 && days%PeriodLengthDays != 0 {
		idx-- // floor division for pre-epoch dates
	}

	start := epoch.AddDate(0, 0, idx*PeriodLengthDays)
	return PayrollPeriod{Start: start, End: start.AddDate(0, 0, PeriodLengthDays)}
}

// Contains reports whether t falls inside the half-open interval [Start, End).
func (p PayrollPeriod) Contains(t time.Time) bool {
	t = truncateToDay(t)
	return !t.Before(p.Start) && t.Before(p.End)
}

// Next returns the period immediately following this one.
func (p PayrollPeriod) Next() PayrollPeriod {
	return PayrollPeriod{Start: p.End, End: p.End.AddDate(0, 0, PeriodLengthDays)}
}

// Previous returns the period immediately preceding this one.
func (p PayrollPeriod) Previous() PayrollPeriod {
	return PayrollPeriod{Start: p.Start.AddDate(0, 0, -PeriodLengthDays), End: p.Start}
}

// Validate checks that the period spans exactly 14 whole days. A malformed
// period is a programmer error, not data variance.
func (p PayrollPeriod) Validate() error {
	if p.Start != truncateToDay(p.Start) || p.End != truncateToDay(p.End) {
		return fmt.Errorf("period boundaries must be whole days: %s", p)
	}
	if p.End != p.Start.AddDate(0, 0, PeriodLengthDays) {
		return fmt.Errorf("period must span exactly %d days: %s", PeriodLengthDays, p)
	}
	return nil
}

// String renders the half-open interval for logs.
func (p PayrollPeriod) String() string {
	return fmt.Sprintf("[%s, %s)", p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"))
}
