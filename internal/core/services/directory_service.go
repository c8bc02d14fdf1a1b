package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/assureline/payroll_engine/internal/apperrors"
	"github.com/assureline/payroll_engine/internal/core/domain"
	portsrepo "github.com/assureline/payroll_engine/internal/core/ports/repositories"
	portssvc "github.com/assureline/payroll_engine/internal/core/ports/services"
	"github.com/assureline/payroll_engine/internal/dto"
)

// directoryService mirrors employee reference data from the external
// identity/employee directory.
type directoryService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
	now          func() time.Time
}

// NewDirectoryService creates a new DirectoryService.
func NewDirectoryService(employeeRepo portsrepo.EmployeeRepositoryFacade) portssvc.DirectorySvcFacade {
	return &directoryService{
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

var _ portssvc.DirectorySvcFacade = (*directoryService)(nil)

// UpsertEmployee inserts or refreshes one directory entry. Directory sync
// is restricted to admin and service actors.
func (s *directoryService) UpsertEmployee(ctx context.Context, employeeID string, req dto.UpsertEmployeeRequest, actor domain.Actor) (*domain.Employee, error) {
	if actor.Role != domain.RoleAdmin && actor.Role != domain.RoleService {
		return nil, apperrors.ErrForbidden
	}
	if req.HourlyRate.IsNegative() {
		return nil, fmt.Errorf("%w: hourly rate must not be negative", apperrors.ErrValidation)
	}
	if req.MaxHoursBeforeOvertime.IsNegative() {
		return nil, fmt.Errorf("%w: overtime threshold must not be negative", apperrors.ErrValidation)
	}
	status := domain.EmployeeStatus(req.Status)
	if status != domain.EmployeeActive && status != domain.EmployeeInactive {
		return nil, fmt.Errorf("%w: unknown employee status %q", apperrors.ErrValidation, req.Status)
	}

	now := s.now()
	employee := domain.Employee{
		EmployeeID:             employeeID,
		ClerkUserID:            req.ClerkUserID,
		Name:                   req.Name,
		HourlyRate:             req.HourlyRate,
		MaxHoursBeforeOvertime: req.MaxHoursBeforeOvertime,
		Department:             req.Department,
		Status:                 status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.employeeRepo.UpsertEmployee(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to upsert employee %s: %w", employeeID, err)
	}

	s.LogInfo(ctx, "Employee directory entry upserted",
		slog.String("employee_id", employeeID),
		slog.String("department", employee.Department))
	return &employee, nil
}

// GetEmployee retrieves one directory entry.
func (s *directoryService) GetEmployee(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return employee, nil
}
