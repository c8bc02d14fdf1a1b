package services

import (
	"context"

	"github.com/assureline/payroll_engine/internal/core/domain"
	"github.com/assureline/payroll_engine/internal/dto"
)

// IngestionSvcFacade receives fully-formed activity records from the
// data-entry collaborators (chat flow, forms, CSV import). Each call is a
// single atomic handoff; nothing partially-built crosses this boundary.
type IngestionSvcFacade interface {
	// IngestSale validates and stores a sale, derives its bonus events and,
	// for sales at or above the high-value threshold, idempotently creates
	// the review notification. Replaying a known policy number is a no-op
	// success with NotificationCreated=false.
	IngestSale(ctx context.Context, req dto.IngestSaleRequest, actor domain.Actor) (*dto.IngestSaleResponse, error)

	// RecordTimeLog stores one day's clock record after interval validation.
	RecordTimeLog(ctx context.Context, req dto.CreateTimeLogRequest, actor domain.Actor) (*domain.TimeLog, error)

	// RecordReview stores one submitted client review.
	RecordReview(ctx context.Context, req dto.CreateReviewRequest, actor domain.Actor) (*domain.ClientReview, error)

	// RecordOvertimeRequest mirrors the outcome of the external overtime
	// approval workflow.
	RecordOvertimeRequest(ctx context.Context, req dto.CreateOvertimeRequest, actor domain.Actor) (*domain.OvertimeRequest, error)
}
