package services

import (
	"context"

	"github.com/assureline/payroll_engine/internal/core/domain"
)

// NotificationSvcFacade is the high-value policy gatekeeper surface.
type NotificationSvcFacade interface {
	// ListNotifications returns notifications, optionally filtered by status.
	ListNotifications(ctx context.Context, status *domain.NotificationStatus) ([]domain.HighValuePolicyNotification, error)

	// TransitionNotification compare-and-sets the review status. The
	// transition must be monotonic (RESOLVED is terminal) and is restricted
	// to admin actors; the engine does not resolve roles itself, it only
	// checks the one carried by the actor.
	TransitionNotification(ctx context.Context, policyNumber string, from, to domain.NotificationStatus, actor domain.Actor) error
}
