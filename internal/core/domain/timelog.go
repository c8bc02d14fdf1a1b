package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TimeLog is one employee's clock record for a single day. Break intervals,
// when present, must lie entirely within the clock interval. Once the day's
// summary is submitted the record is historical and only admin edits or the
// employee's own clock actions may have touched it.
type TimeLog struct {
	LogID      string     `json:"logID"`
	EmployeeID string     `json:"employeeID"`
	WorkDate   time.Time  `json:"workDate"`
	ClockIn    time.Time  `json:"clockIn"`
	ClockOut   time.Time  `json:"clockOut"`
	BreakStart *time.Time `json:"breakStart,omitempty"`
	BreakEnd   *time.Time `json:"breakEnd,omitempty"`
	AuditFields
}

// Validate checks the interval invariants: clock_in <= clock_out and any
// break contained within the clock interval.
func (t TimeLog) Validate() error {
	if t.ClockOut.Before(t.ClockIn) {
		return fmt.Errorf("clock_out %s precedes clock_in %s", t.ClockOut.Format(time.RFC3339), t.ClockIn.Format(time.RFC3339))
	}
	if (t.BreakStart == nil) != (t.BreakEnd == nil) {
		return fmt.Errorf("break interval must have both start and end")
	}
	if t.BreakStart != nil {
		if t.BreakEnd.Before(*t.BreakStart) {
			return fmt.Errorf("break_end precedes break_start")
		}
		if t.BreakStart.Before(t.ClockIn) || t.BreakEnd.After(t.ClockOut) {
			return fmt.Errorf("break interval must lie within the clock interval")
		}
	}
	return nil
}

// HoursWorked returns the worked hours for the day: the clock interval minus
// any break, as a decimal number of hours.
func (t TimeLog) HoursWorked() decimal.Decimal {
	worked := t.ClockOut.Sub(t.ClockIn)
	if t.BreakStart != nil && t.BreakEnd != nil {
		worked -= t.BreakEnd.Sub(*t.BreakStart)
	}
	return decimal.NewFromFloat(worked.Hours()).Round(2)
}

// DailySummary is an employee's per-day aggregate produced by the
// time-tracking collaborator. It is derived data and can always be rebuilt
// from time logs and sales.
type DailySummary struct {
	EmployeeID       string          `json:"employeeID"`
	SummaryDate      time.Time       `json:"summaryDate"`
	HoursWorked      decimal.Decimal `json:"hoursWorked"`
	PoliciesSold     int             `json:"policiesSold"`
	TotalSalesAmount decimal.Decimal `json:"totalSalesAmount"`
}
