package repositories

import (
	"context"
	"time"

	"github.com/assureline/payroll_engine/internal/core/domain"
)

// OvertimeRepositoryFacade defines persistence operations for overtime
// requests. The approval workflow is external; payroll only records and
// reads the resulting status.
type OvertimeRepositoryFacade interface {
	// SaveOvertimeRequest inserts or refreshes a request (keyed by request ID).
	SaveOvertimeRequest(ctx context.Context, request domain.OvertimeRequest) error

	// FindApprovedForPeriod returns the employee's APPROVED request for the
	// period starting at periodStart, or apperrors.ErrNotFound.
	FindApprovedForPeriod(ctx context.Context, employeeID string, periodStart time.Time) (*domain.OvertimeRequest, error)
}
