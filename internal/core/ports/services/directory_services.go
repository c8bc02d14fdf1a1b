package services

import (
	"context"

	"github.com/assureline/payroll_engine/internal/core/domain"
	"github.com/assureline/payroll_engine/internal/dto"
)

// DirectorySvcFacade mirrors employee reference data from the external
// identity/employee directory.
type DirectorySvcFacade interface {
	// UpsertEmployee inserts or refreshes one directory entry.
	UpsertEmployee(ctx context.Context, employeeID string, req dto.UpsertEmployeeRequest, actor domain.Actor) (*domain.Employee, error)

	// GetEmployee retrieves one directory entry.
	GetEmployee(ctx context.Context, employeeID string) (*domain.Employee, error)
}
