package services

import (
	"context"

	"github.com/assureline/payroll_engine/internal/core/domain"
)

// ReportingSvcFacade assembles company-wide read views on top of the payroll
// compiler's output. No business rules live here.
type ReportingSvcFacade interface {
	// ComputeCompanySummary rolls employee summaries up by department,
	// ranks top performers and carries the pending-review indicators.
	ComputeCompanySummary(ctx context.Context, period domain.PayrollPeriod) (*domain.CompanyPayrollSummary, error)
}
