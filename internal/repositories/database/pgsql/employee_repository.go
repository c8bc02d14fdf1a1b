package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/assureline/payroll_engine/internal/apperrors"
	"github.com/assureline/payroll_engine/internal/core/domain"
	portsrepo "github.com/assureline/payroll_engine/internal/core/ports/repositories"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

// NewEmployeeRepository creates a new employee repository backed by Postgres.
func NewEmployeeRepository(db DBTX) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository{DB: db}}
}

// Ensure PgxEmployeeRepository implements portsrepo.EmployeeRepositoryFacade
var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeColumns = `employee_id, clerk_user_id, name, hourly_rate, max_hours_before_overtime, department, status, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxEmployeeRepository) UpsertEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (employee_id) DO UPDATE SET
			clerk_user_id = EXCLUDED.clerk_user_id,
			name = EXCLUDED.name,
			hourly_rate = EXCLUDED.hourly_rate,
			max_hours_before_overtime = EXCLUDED.max_hours_before_overtime,
			department = EXCLUDED.department,
			status = EXCLUDED.status,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.DB.Exec(ctx, query,
		employee.EmployeeID,
		employee.ClerkUserID,
		employee.Name,
		employee.HourlyRate,
		employee.MaxHoursBeforeOvertime,
		employee.Department,
		string(employee.Status),
		employee.CreatedAt,
		employee.CreatedBy,
		employee.LastUpdatedAt,
		employee.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert employee %s: %w", employee.EmployeeID, err)
	}
	return nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE employee_id = $1;
	`
	employee, err := scanEmployee(r.DB.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}
	return employee, nil
}

func (r *PgxEmployeeRepository) ListActiveEmployees(ctx context.Context) ([]domain.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE status = $1
		ORDER BY employee_id;
	`
	rows, err := r.DB.Query(ctx, query, string(domain.EmployeeActive))
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, *employee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating employee rows: %w", err)
	}
	return employees, nil
}

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var employee domain.Employee
	var status string
	err := row.Scan(
		&employee.EmployeeID,
		&employee.ClerkUserID,
		&employee.Name,
		&employee.HourlyRate,
		&employee.MaxHoursBeforeOvertime,
		&employee.Department,
		&status,
		&employee.CreatedAt,
		&employee.CreatedBy,
		&employee.LastUpdatedAt,
		&employee.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	employee.Status = domain.EmployeeStatus(status)
	return &employee, nil
}
