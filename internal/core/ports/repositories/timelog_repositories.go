package repositories

import (
	"context"
	"time"

	"github.com/assureline/payroll_engine/internal/core/domain"
)

// TimeLogRepositoryFacade defines persistence operations for time logs.
type TimeLogRepositoryFacade interface {
	// SaveTimeLog inserts one day's clock record.
	SaveTimeLog(ctx context.Context, log domain.TimeLog) error

	// ListTimeLogsForEmployee returns logs whose work_date falls in the
	// half-open interval [start, end).
	ListTimeLogsForEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]domain.TimeLog, error)
}
