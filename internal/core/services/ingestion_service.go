package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/assureline/payroll_engine/internal/apperrors"
	"github.com/assureline/payroll_engine/internal/core/domain"
	portsrepo "github.com/assureline/payroll_engine/internal/core/ports/repositories"
	portssvc "github.com/assureline/payroll_engine/internal/core/ports/services"
	"github.com/assureline/payroll_engine/internal/dto"
	"github.com/assureline/payroll_engine/internal/platform/config"
	"github.com/assureline/payroll_engine/internal/utils/payrollcalc"
)

var (
	ErrNonPositiveAmount = errors.New("sale amount must be positive")
	ErrNegativeBrokerFee = errors.New("broker fee must not be negative")
	ErrUnknownEmployee   = errors.New("employee not found in directory")
	ErrZeroSaleDate      = errors.New("sale date is required")
)

// ingestionService receives fully-formed activity records, derives bonus
// events and creates high-value notifications. It is the only service that
// both computes and mutates: the notification upsert is the narrow
// transactional boundary of the engine.
type ingestionService struct {
	BaseService
	saleRepo         portsrepo.SaleRepositoryFacade
	notificationRepo portsrepo.NotificationRepositoryFacade
	timeLogRepo      portsrepo.TimeLogRepositoryFacade
	employeeRepo     portsrepo.EmployeeRepositoryFacade
	overtimeRepo     portsrepo.OvertimeRepositoryFacade
	reviewRepo       portsrepo.ReviewRepositoryFacade
	policy           payrollcalc.BonusPolicy
	epoch            time.Time
	now              func() time.Time
}

// NewIngestionService creates a new IngestionService.
func NewIngestionService(cfg *config.Config, repos portsrepo.RepositoryProvider) portssvc.IngestionSvcFacade {
	policy := payrollcalc.DefaultBonusPolicy()
	policy.HighValueThreshold = cfg.HighValueThreshold
	policy.HighValueBonus = cfg.HighValueBonus

	return &ingestionService{
		saleRepo:         repos.SaleRepo,
		notificationRepo: repos.NotificationRepo,
		timeLogRepo:      repos.TimeLogRepo,
		employeeRepo:     repos.EmployeeRepo,
		overtimeRepo:     repos.OvertimeRepo,
		reviewRepo:       repos.ReviewRepo,
		policy:           policy,
		epoch:            cfg.PayrollEpoch,
		now:              time.Now,
	}
}

var _ portssvc.IngestionSvcFacade = (*ingestionService)(nil)

// IngestSale validates and stores a sale, derives its bonus events and, for
// qualifying amounts, creates the review notification. Notification creation
// is an idempotent insert-if-absent keyed on the policy number, so replays
// and concurrent duplicates can never produce a second row.
func (s *ingestionService) IngestSale(ctx context.Context, req dto.IngestSaleRequest, actor domain.Actor) (*dto.IngestSaleResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrNonPositiveAmount)
	}
	if req.BrokerFee.IsNegative() {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrNegativeBrokerFee)
	}
	if req.SaleDate.IsZero() {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrZeroSaleDate)
	}
	if _, err := s.employeeRepo.FindEmployeeByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w: %s", apperrors.ErrValidation, ErrUnknownEmployee, req.EmployeeID)
		}
		return nil, fmt.Errorf("failed to look up employee %s: %w", req.EmployeeID, err)
	}

	sale := req.ToDomainSale(actor.UserID, s.now())

	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Replayed submission. The stored sale is immutable and wins
			// over whatever the replay carried; report a no-op success with
			// the events derived from the stored record.
			s.LogInfo(ctx, "Duplicate sale ingestion absorbed", slog.String("policy_number", sale.PolicyNumber))
			stored, findErr := s.saleRepo.FindSaleByPolicyNumber(ctx, sale.PolicyNumber)
			if findErr != nil {
				return nil, fmt.Errorf("failed to load stored sale %s: %w", sale.PolicyNumber, findErr)
			}
			// The sale insert and the notification insert are separate
			// writes. A prior attempt may have died between the two, so the
			// replay re-asserts the notification instead of assuming it.
			created, err := s.ensureHighValueNotification(ctx, *stored)
			if err != nil {
				return nil, err
			}
			return &dto.IngestSaleResponse{
				PolicyNumber:        stored.PolicyNumber,
				BonusEvents:         payrollcalc.ComputeSaleBonuses(*stored, s.policy),
				NotificationCreated: created,
				Replayed:            true,
			}, nil
		}
		return nil, fmt.Errorf("failed to save sale %s: %w", sale.PolicyNumber, err)
	}

	events := payrollcalc.ComputeSaleBonuses(sale, s.policy)

	created, err := s.ensureHighValueNotification(ctx, sale)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Sale ingested",
		slog.String("policy_number", sale.PolicyNumber),
		slog.String("employee_id", sale.EmployeeID),
		slog.Int("bonus_events", len(events)),
		slog.Bool("notification_created", created))

	return &dto.IngestSaleResponse{
		PolicyNumber:        sale.PolicyNumber,
		BonusEvents:         events,
		NotificationCreated: created,
	}, nil
}

// ensureHighValueNotification creates the pending review row for a
// qualifying sale. The insert is keyed on the policy number, so calling it
// again for the same sale is safe and repairs a lost first attempt.
func (s *ingestionService) ensureHighValueNotification(ctx context.Context, sale domain.PolicySale) (bool, error) {
	if !payrollcalc.IsHighValue(sale.Amount, s.policy) {
		return false, nil
	}

	period := domain.PeriodContaining(sale.SaleDate, s.epoch)
	notification := domain.HighValuePolicyNotification{
		PolicyNumber: sale.PolicyNumber,
		EmployeeID:   sale.EmployeeID,
		PolicyAmount: sale.Amount,
		PeriodStart:  period.Start,
		PeriodEnd:    period.End,
		Status:       domain.NotificationPending,
		IsEditable:   true,
		AuditFields:  sale.AuditFields,
	}

	created, err := s.notificationRepo.CreateIfAbsent(ctx, notification)
	if err != nil {
		return false, fmt.Errorf("failed to create high-value notification for %s: %w", sale.PolicyNumber, err)
	}
	return created, nil
}

// RecordTimeLog stores one day's clock record after interval validation.
func (s *ingestionService) RecordTimeLog(ctx context.Context, req dto.CreateTimeLogRequest, actor domain.Actor) (*domain.TimeLog, error) {
	if _, err := s.employeeRepo.FindEmployeeByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w: %s", apperrors.ErrValidation, ErrUnknownEmployee, req.EmployeeID)
		}
		return nil, fmt.Errorf("failed to look up employee %s: %w", req.EmployeeID, err)
	}

	log := req.ToDomainTimeLog(uuid.NewString(), actor.UserID, s.now())
	if err := log.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	if err := s.timeLogRepo.SaveTimeLog(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to save time log for %s: %w", log.EmployeeID, err)
	}

	s.LogInfo(ctx, "Time log recorded",
		slog.String("employee_id", log.EmployeeID),
		slog.String("work_date", log.WorkDate.Format("2006-01-02")),
		slog.String("hours", log.HoursWorked().String()))
	return &log, nil
}

// RecordReview stores one submitted client review.
func (s *ingestionService) RecordReview(ctx context.Context, req dto.CreateReviewRequest, actor domain.Actor) (*domain.ClientReview, error) {
	if _, err := s.employeeRepo.FindEmployeeByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w: %s", apperrors.ErrValidation, ErrUnknownEmployee, req.EmployeeID)
		}
		return nil, fmt.Errorf("failed to look up employee %s: %w", req.EmployeeID, err)
	}

	now := s.now()
	review := domain.ClientReview{
		ReviewID:   uuid.NewString(),
		EmployeeID: req.EmployeeID,
		ClientName: req.ClientName,
		Rating:     req.Rating,
		ReviewDate: req.ReviewDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.reviewRepo.SaveReview(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to save review for %s: %w", review.EmployeeID, err)
	}

	s.LogInfo(ctx, "Client review recorded", slog.String("employee_id", review.EmployeeID))
	return &review, nil
}

// RecordOvertimeRequest mirrors the outcome of the external approval workflow.
func (s *ingestionService) RecordOvertimeRequest(ctx context.Context, req dto.CreateOvertimeRequest, actor domain.Actor) (*domain.OvertimeRequest, error) {
	if !domain.ValidOvertimeStatus(req.Status) {
		return nil, fmt.Errorf("%w: unknown overtime status %q", apperrors.ErrValidation, req.Status)
	}
	if req.HoursRequested.IsNegative() {
		return nil, fmt.Errorf("%w: hours requested must not be negative", apperrors.ErrValidation)
	}
	if _, err := s.employeeRepo.FindEmployeeByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w: %s", apperrors.ErrValidation, ErrUnknownEmployee, req.EmployeeID)
		}
		return nil, fmt.Errorf("failed to look up employee %s: %w", req.EmployeeID, err)
	}

	now := s.now()
	request := domain.OvertimeRequest{
		RequestID:      req.RequestID,
		EmployeeID:     req.EmployeeID,
		PeriodStart:    domain.PeriodContaining(req.PeriodStart, s.epoch).Start,
		HoursRequested: req.HoursRequested,
		Status:         domain.OvertimeStatus(req.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.overtimeRepo.SaveOvertimeRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to save overtime request %s: %w", request.RequestID, err)
	}

	s.LogInfo(ctx, "Overtime request recorded",
		slog.String("employee_id", request.EmployeeID),
		slog.String("status", string(request.Status)))
	return &request, nil
}
