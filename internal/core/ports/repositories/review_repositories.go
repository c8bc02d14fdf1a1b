package repositories

import (
	"context"
	"time"

	"github.com/assureline/payroll_engine/internal/core/domain"
)

// ReviewRepositoryFacade defines persistence operations for client reviews.
type ReviewRepositoryFacade interface {
	// SaveReview inserts one submitted client review.
	SaveReview(ctx context.Context, review domain.ClientReview) error

	// ListReviewsForEmployee returns reviews dated in [start, end).
	ListReviewsForEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]domain.ClientReview, error)
}
