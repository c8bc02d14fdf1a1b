package repositories

import (
	"context"
	"time"

	"github.com/assureline/payroll_engine/internal/core/domain"
)

// NotificationRepositoryFacade defines persistence operations for high-value
// policy notifications. Creation and the status column are the only mutable
// shared state in the engine, so both operations are written to be safe
// under concurrent callers.
type NotificationRepositoryFacade interface {
	// CreateIfAbsent inserts the notification if none exists for its policy
	// number and reports whether a row was actually created. The insert is
	// conditional at the database level (insert-if-absent on the unique
	// business key), never a read-then-write sequence.
	CreateIfAbsent(ctx context.Context, notification domain.HighValuePolicyNotification) (created bool, err error)

	// FindByPolicyNumber retrieves one notification or apperrors.ErrNotFound.
	FindByPolicyNumber(ctx context.Context, policyNumber string) (*domain.HighValuePolicyNotification, error)

	// ListByStatus returns notifications filtered by status; a nil filter
	// returns all of them, newest first.
	ListByStatus(ctx context.Context, status *domain.NotificationStatus) ([]domain.HighValuePolicyNotification, error)

	// ListUnresolvedInPeriod returns notifications for sales in [start, end)
	// that have not reached RESOLVED.
	ListUnresolvedInPeriod(ctx context.Context, start, end time.Time) ([]domain.HighValuePolicyNotification, error)

	// TransitionStatus compare-and-sets the status column: the update only
	// applies while the current status equals from. A stale expectation
	// returns apperrors.ErrConflict; an unknown policy number returns
	// apperrors.ErrNotFound.
	TransitionStatus(ctx context.Context, policyNumber string, from, to domain.NotificationStatus, updatedBy string, now time.Time) error
}
