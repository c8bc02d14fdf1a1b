package repositories

import (
	"context"
	"time"

	"github.com/assureline/payroll_engine/internal/core/domain"
)

// SaleRepositoryFacade defines persistence operations for policy sales.
// Sales are immutable once created; there is no update path.
type SaleRepositoryFacade interface {
	// SaveSale inserts a sale keyed by its policy number. A replayed
	// policy number returns apperrors.ErrDuplicate.
	SaveSale(ctx context.Context, sale domain.PolicySale) error

	// FindSaleByPolicyNumber retrieves a single sale or apperrors.ErrNotFound.
	FindSaleByPolicyNumber(ctx context.Context, policyNumber string) (*domain.PolicySale, error)

	// ListSalesForEmployee returns the employee's sales whose sale_date
	// falls in the half-open interval [start, end).
	ListSalesForEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]domain.PolicySale, error)

	// ListSalesInPeriod returns all sales dated in [start, end), across employees.
	ListSalesInPeriod(ctx context.Context, start, end time.Time) ([]domain.PolicySale, error)
}
