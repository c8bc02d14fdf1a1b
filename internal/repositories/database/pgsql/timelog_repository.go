package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/assureline/payroll_engine/internal/core/domain"
	portsrepo "github.com/assureline/payroll_engine/internal/core/ports/repositories"
)

type PgxTimeLogRepository struct {
	BaseRepository
}

// NewTimeLogRepository creates a new time log repository backed by Postgres.
func NewTimeLogRepository(db DBTX) portsrepo.TimeLogRepositoryFacade {
	return &PgxTimeLogRepository{BaseRepository{DB: db}}
}

// Ensure PgxTimeLogRepository implements portsrepo.TimeLogRepositoryFacade
var _ portsrepo.TimeLogRepositoryFacade = (*PgxTimeLogRepository)(nil)

func (r *PgxTimeLogRepository) SaveTimeLog(ctx context.Context, log domain.TimeLog) error {
	query := `
		INSERT INTO time_logs (log_id, employee_id, work_date, clock_in, clock_out, break_start, break_end, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.DB.Exec(ctx, query,
		log.LogID,
		log.EmployeeID,
		log.WorkDate,
		log.ClockIn,
		log.ClockOut,
		log.BreakStart,
		log.BreakEnd,
		log.CreatedAt,
		log.CreatedBy,
		log.LastUpdatedAt,
		log.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save time log %s: %w", log.LogID, err)
	}
	return nil
}

func (r *PgxTimeLogRepository) ListTimeLogsForEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]domain.TimeLog, error) {
	query := `
		SELECT log_id, employee_id, work_date, clock_in, clock_out, break_start, break_end, created_at, created_by, last_updated_at, last_updated_by
		FROM time_logs
		WHERE employee_id = $1 AND work_date >= $2 AND work_date < $3
		ORDER BY work_date, clock_in;
	`
	rows, err := r.DB.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list time logs for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	var logs []domain.TimeLog
	for rows.Next() {
		var log domain.TimeLog
		err := rows.Scan(
			&log.LogID,
			&log.EmployeeID,
			&log.WorkDate,
			&log.ClockIn,
			&log.ClockOut,
			&log.BreakStart,
			&log.BreakEnd,
			&log.CreatedAt,
			&log.CreatedBy,
			&log.LastUpdatedAt,
			&log.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time log row: %w", err)
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating time log rows: %w", err)
	}
	return logs, nil
}
