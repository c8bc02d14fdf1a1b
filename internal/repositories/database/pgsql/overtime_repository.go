package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/assureline/payroll_engine/internal/apperrors"
	"github.com/assureline/payroll_engine/internal/core/domain"
	portsrepo "github.com/assureline/payroll_engine/internal/core/ports/repositories"
)

type PgxOvertimeRepository struct {
	BaseRepository
}

// NewOvertimeRepository creates a new overtime request repository backed by Postgres.
func NewOvertimeRepository(db DBTX) portsrepo.OvertimeRepositoryFacade {
	return &PgxOvertimeRepository{BaseRepository{DB: db}}
}

// Ensure PgxOvertimeRepository implements portsrepo.OvertimeRepositoryFacade
var _ portsrepo.OvertimeRepositoryFacade = (*PgxOvertimeRepository)(nil)

func (r *PgxOvertimeRepository) SaveOvertimeRequest(ctx context.Context, request domain.OvertimeRequest) error {
	query := `
		INSERT INTO overtime_requests (request_id, employee_id, period_start, hours_requested, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (request_id) DO UPDATE SET
			hours_requested = EXCLUDED.hours_requested,
			status = EXCLUDED.status,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.DB.Exec(ctx, query,
		request.RequestID,
		request.EmployeeID,
		request.PeriodStart,
		request.HoursRequested,
		string(request.Status),
		request.CreatedAt,
		request.CreatedBy,
		request.LastUpdatedAt,
		request.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save overtime request %s: %w", request.RequestID, err)
	}
	return nil
}

func (r *PgxOvertimeRepository) FindApprovedForPeriod(ctx context.Context, employeeID string, periodStart time.Time) (*domain.OvertimeRequest, error) {
	query := `
		SELECT request_id, employee_id, period_start, hours_requested, status, created_at, created_by, last_updated_at, last_updated_by
		FROM overtime_requests
		WHERE employee_id = $1 AND period_start = $2 AND status = $3
		ORDER BY last_updated_at DESC
		LIMIT 1;
	`
	var request domain.OvertimeRequest
	var status string
	err := r.DB.QueryRow(ctx, query, employeeID, periodStart, string(domain.OvertimeApproved)).Scan(
		&request.RequestID,
		&request.EmployeeID,
		&request.PeriodStart,
		&request.HoursRequested,
		&status,
		&request.CreatedAt,
		&request.CreatedBy,
		&request.LastUpdatedAt,
		&request.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find approved overtime for employee %s: %w", employeeID, err)
	}
	request.Status = domain.OvertimeStatus(status)
	return &request, nil
}
