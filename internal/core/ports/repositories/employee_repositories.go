package repositories

import (
	"context"

	"github.com/assureline/payroll_engine/internal/core/domain"
)

// EmployeeRepositoryFacade defines persistence operations for the mirrored
// employee directory. The directory's source of truth is the external
// identity collaborator; this store only carries the payroll-relevant
// reference fields.
type EmployeeRepositoryFacade interface {
	// UpsertEmployee inserts or refreshes an employee's reference data.
	UpsertEmployee(ctx context.Context, employee domain.Employee) error

	// FindEmployeeByID retrieves one employee or apperrors.ErrNotFound.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListActiveEmployees returns every employee on the active roster.
	ListActiveEmployees(ctx context.Context) ([]domain.Employee, error)
}
