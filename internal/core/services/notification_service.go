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
)

// notificationService is the high-value policy gatekeeper. The status
// column is the only mutable shared state in the engine; every transition
// goes through a compare-and-set so a stale request can never overwrite a
// later state.
type notificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepositoryFacade
	now              func() time.Time
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade) portssvc.NotificationSvcFacade {
	return &notificationService{
		notificationRepo: notificationRepo,
		now:              time.Now,
	}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

// ListNotifications returns notifications, optionally filtered by status.
func (s *notificationService) ListNotifications(ctx context.Context, status *domain.NotificationStatus) ([]domain.HighValuePolicyNotification, error) {
	notifications, err := s.notificationRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// TransitionNotification moves one notification through the review machine.
// The domain machine rejects non-monotonic moves up front; the repository
// compare-and-set closes the race window between concurrent admins.
func (s *notificationService) TransitionNotification(ctx context.Context, policyNumber string, from, to domain.NotificationStatus, actor domain.Actor) error {
	if err := s.RequireAdmin(ctx, actor); err != nil {
		return err
	}

	if !from.CanTransitionTo(to) {
		s.LogWarn(ctx, "Rejected invalid notification transition",
			slog.String("policy_number", policyNumber),
			slog.String("from", string(from)),
			slog.String("to", string(to)))
		return fmt.Errorf("%w: cannot transition %s from %s to %s", apperrors.ErrValidation, policyNumber, from, to)
	}

	if err := s.notificationRepo.TransitionStatus(ctx, policyNumber, from, to, actor.UserID, s.now()); err != nil {
		return err
	}

	s.LogInfo(ctx, "Notification transitioned",
		slog.String("policy_number", policyNumber),
		slog.String("from", string(from)),
		slog.String("to", string(to)),
		slog.String("by", actor.UserID))
	return nil
}
