package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/assureline/payroll_engine/internal/core/domain"
	portsrepo "github.com/assureline/payroll_engine/internal/core/ports/repositories"
)

type PgxReviewRepository struct {
	BaseRepository
}

// NewReviewRepository creates a new client review repository backed by Postgres.
func NewReviewRepository(db DBTX) portsrepo.ReviewRepositoryFacade {
	return &PgxReviewRepository{BaseRepository{DB: db}}
}

// Ensure PgxReviewRepository implements portsrepo.ReviewRepositoryFacade
var _ portsrepo.ReviewRepositoryFacade = (*PgxReviewRepository)(nil)

func (r *PgxReviewRepository) SaveReview(ctx context.Context, review domain.ClientReview) error {
	query := `
		INSERT INTO client_reviews (review_id, employee_id, client_name, rating, review_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.DB.Exec(ctx, query,
		review.ReviewID,
		review.EmployeeID,
		review.ClientName,
		review.Rating,
		review.ReviewDate,
		review.CreatedAt,
		review.CreatedBy,
		review.LastUpdatedAt,
		review.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save review %s: %w", review.ReviewID, err)
	}
	return nil
}

func (r *PgxReviewRepository) ListReviewsForEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]domain.ClientReview, error) {
	query := `
		SELECT review_id, employee_id, client_name, rating, review_date, created_at, created_by, last_updated_at, last_updated_by
		FROM client_reviews
		WHERE employee_id = $1 AND review_date >= $2 AND review_date < $3
		ORDER BY review_date, review_id;
	`
	rows, err := r.DB.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	var reviews []domain.ClientReview
	for rows.Next() {
		var review domain.ClientReview
		err := rows.Scan(
			&review.ReviewID,
			&review.EmployeeID,
			&review.ClientName,
			&review.Rating,
			&review.ReviewDate,
			&review.CreatedAt,
			&review.CreatedBy,
			&review.LastUpdatedAt,
			&review.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating review rows: %w", err)
	}
	return reviews, nil
}
