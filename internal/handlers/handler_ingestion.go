package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/assureline/payroll_engine/internal/apperrors"
	portssvc "github.com/assureline/payroll_engine/internal/core/ports/services"
	"github.com/assureline/payroll_engine/internal/dto"
	"github.com/assureline/payroll_engine/internal/middleware"
)

// ingestionHandler handles activity record handoffs from the data-entry
// collaborators.
type ingestionHandler struct {
	ingestionService portssvc.IngestionSvcFacade
}

func newIngestionHandler(s portssvc.IngestionSvcFacade) *ingestionHandler {
	return &ingestionHandler{ingestionService: s}
}

// registerIngestionRoutes registers the activity ingestion routes. The group
// carries the rate limit middleware because CSV imports arrive in bursts.
func registerIngestionRoutes(rg *gin.RouterGroup, s portssvc.IngestionSvcFacade, rateLimit gin.HandlerFunc) {
	h := newIngestionHandler(s)

	activity := rg.Group("/activity", rateLimit)
	{
		activity.POST("/sales", h.ingestSale)
		activity.POST("/timelogs", h.recordTimeLog)
		activity.POST("/reviews", h.recordReview)
		activity.POST("/overtime-requests", h.recordOvertimeRequest)
	}
}

// ingestSale godoc
// @Summary Ingest a policy sale
// @Description Stores a fully-formed sale, derives its bonus events and creates the high-value review notification when the amount is at or above the threshold. Replaying a policy number is a no-op success.
// @Tags activity
// @Accept json
// @Produce json
// @Param sale body dto.IngestSaleRequest true "Sale record"
// @Success 201 {object} dto.IngestSaleResponse
// @Success 200 {object} dto.IngestSaleResponse "Replayed policy number"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /activity/sales [post]
func (h *ingestionHandler) ingestSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.IngestSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for IngestSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.ingestionService.IngestSale(c.Request.Context(), req, actor)
	if err != nil {
		respondServiceError(c, logger, "Failed to ingest sale", err)
		return
	}

	status := http.StatusCreated
	if resp.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, resp)
}

// recordTimeLog godoc
// @Summary Record a time log
// @Description Stores one day's clock record after interval validation.
// @Tags activity
// @Accept json
// @Produce json
// @Param timelog body dto.CreateTimeLogRequest true "Clock record"
// @Success 201 {object} domain.TimeLog
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /activity/timelogs [post]
func (h *ingestionHandler) recordTimeLog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTimeLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordTimeLog", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	log, err := h.ingestionService.RecordTimeLog(c.Request.Context(), req, actor)
	if err != nil {
		respondServiceError(c, logger, "Failed to record time log", err)
		return
	}
	c.JSON(http.StatusCreated, log)
}

// recordReview godoc
// @Summary Record a client review
// @Description Stores one submitted client review; each review yields a flat review bonus.
// @Tags activity
// @Accept json
// @Produce json
// @Param review body dto.CreateReviewRequest true "Client review"
// @Success 201 {object} domain.ClientReview
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /activity/reviews [post]
func (h *ingestionHandler) recordReview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordReview", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	review, err := h.ingestionService.RecordReview(c.Request.Context(), req, actor)
	if err != nil {
		respondServiceError(c, logger, "Failed to record review", err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// recordOvertimeRequest godoc
// @Summary Record an overtime request outcome
// @Description Mirrors the outcome of the external overtime approval workflow. Only APPROVED requests unlock overtime pay.
// @Tags activity
// @Accept json
// @Produce json
// @Param request body dto.CreateOvertimeRequest true "Overtime request"
// @Success 201 {object} domain.OvertimeRequest
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /activity/overtime-requests [post]
func (h *ingestionHandler) recordOvertimeRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOvertimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordOvertimeRequest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	request, err := h.ingestionService.RecordOvertimeRequest(c.Request.Context(), req, actor)
	if err != nil {
		respondServiceError(c, logger, "Failed to record overtime request", err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

// respondServiceError maps service-layer sentinel errors onto HTTP statuses.
func respondServiceError(c *gin.Context, logger *slog.Logger, msg string, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	default:
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
