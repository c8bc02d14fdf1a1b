package services

import (
	"context"
	"time"

	"github.com/assureline/payroll_engine/internal/core/domain"
)

// PayrollSvcFacade compiles per-employee payroll figures for a period.
type PayrollSvcFacade interface {
	// AggregateActivity collapses raw time logs and sales into per-period
	// totals. Missing data yields all-zero totals, not an error.
	AggregateActivity(ctx context.Context, employeeID string, period domain.PayrollPeriod) (*domain.ActivityTotals, error)

	// ComputePeriodSummary produces the finalized summary for one employee:
	// aggregated activity, bonus breakdown with held amounts split out,
	// and the regular/overtime pay computation.
	ComputePeriodSummary(ctx context.Context, employeeID string, period domain.PayrollPeriod) (*domain.EmployeePayrollSummary, error)

	// DailyBreakdown rebuilds the per-day summaries for one employee from
	// the period's time logs and sales.
	DailyBreakdown(ctx context.Context, employeeID string, period domain.PayrollPeriod) ([]domain.DailySummary, error)

	// PeriodFor resolves the canonical payroll period containing ref,
	// anchored to the configured epoch.
	PeriodFor(ref time.Time) domain.PayrollPeriod
}
