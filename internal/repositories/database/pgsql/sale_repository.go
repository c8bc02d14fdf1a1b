package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/assureline/payroll_engine/internal/apperrors"
	"github.com/assureline/payroll_engine/internal/core/domain"
	portsrepo "github.com/assureline/payroll_engine/internal/core/ports/repositories"
)

// pgUniqueViolation is the Postgres error code for unique constraint violations.
const pgUniqueViolation = "23505"

type PgxSaleRepository struct {
	BaseRepository
}

// NewSaleRepository creates a new sale repository backed by Postgres.
func NewSaleRepository(db DBTX) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{BaseRepository{DB: db}}
}

// Ensure PgxSaleRepository implements portsrepo.SaleRepositoryFacade
var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

const saleColumns = `policy_number, employee_id, amount, broker_fee, policy_type, cross_sold, cross_sold_type, sale_date, created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.PolicySale) error {
	query := `
		INSERT INTO policy_sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	var crossSoldType *string
	if sale.CrossSoldType != nil {
		s := string(*sale.CrossSoldType)
		crossSoldType = &s
	}
	_, err := r.DB.Exec(ctx, query,
		sale.PolicyNumber,
		sale.EmployeeID,
		sale.Amount,
		sale.BrokerFee,
		string(sale.PolicyType),
		sale.CrossSold,
		crossSoldType,
		sale.SaleDate,
		sale.CreatedAt,
		sale.CreatedBy,
		sale.LastUpdatedAt,
		sale.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("policy %s already ingested: %w", sale.PolicyNumber, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save sale %s: %w", sale.PolicyNumber, err)
	}
	return nil
}

func (r *PgxSaleRepository) FindSaleByPolicyNumber(ctx context.Context, policyNumber string) (*domain.PolicySale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM policy_sales
		WHERE policy_number = $1;
	`
	sale, err := scanSale(r.DB.QueryRow(ctx, query, policyNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sale %s: %w", policyNumber, err)
	}
	return sale, nil
}

func (r *PgxSaleRepository) ListSalesForEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]domain.PolicySale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM policy_sales
		WHERE employee_id = $1 AND sale_date >= $2 AND sale_date < $3
		ORDER BY sale_date, policy_number;
	`
	rows, err := r.DB.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales for employee %s: %w", employeeID, err)
	}
	defer rows.Close()
	return collectSales(rows)
}

func (r *PgxSaleRepository) ListSalesInPeriod(ctx context.Context, start, end time.Time) ([]domain.PolicySale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM policy_sales
		WHERE sale_date >= $1 AND sale_date < $2
		ORDER BY sale_date, policy_number;
	`
	rows, err := r.DB.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales in period: %w", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

func scanSale(row pgx.Row) (*domain.PolicySale, error) {
	var sale domain.PolicySale
	var policyType string
	var crossSoldType *string
	err := row.Scan(
		&sale.PolicyNumber,
		&sale.EmployeeID,
		&sale.Amount,
		&sale.BrokerFee,
		&policyType,
		&sale.CrossSold,
		&crossSoldType,
		&sale.SaleDate,
		&sale.CreatedAt,
		&sale.CreatedBy,
		&sale.LastUpdatedAt,
		&sale.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	sale.PolicyType = domain.PolicyType(policyType)
	if crossSoldType != nil {
		t := domain.PolicyType(*crossSoldType)
		sale.CrossSoldType = &t
	}
	return &sale, nil
}

func collectSales(rows pgx.Rows) ([]domain.PolicySale, error) {
	var sales []domain.PolicySale
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, *sale)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating sale rows: %w", err)
	}
	return sales, nil
}
