package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/assureline/payroll_engine/internal/core/domain"
	portssvc "github.com/assureline/payroll_engine/internal/core/ports/services"
	"github.com/assureline/payroll_engine/internal/dto"
	"github.com/assureline/payroll_engine/internal/middleware"
)

// notificationHandler exposes the high-value policy review queue.
type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

func newNotificationHandler(s portssvc.NotificationSvcFacade) *notificationHandler {
	return &notificationHandler{notificationService: s}
}

func registerNotificationRoutes(rg *gin.RouterGroup, s portssvc.NotificationSvcFacade) {
	h := newNotificationHandler(s)

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.POST("/:policy_number/transition", h.transitionNotification)
	}
}

// listNotifications godoc
// @Summary List high-value policy notifications
// @Description Lists review notifications, optionally filtered by status (PENDING, REVIEWED, RESOLVED).
// @Tags notifications
// @Produce json
// @Param status query string false "Status filter"
// @Success 200 {array} dto.NotificationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /notifications [get]
func (h *notificationHandler) listNotifications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var filter *domain.NotificationStatus
	if raw := c.Query("status"); raw != "" {
		if !domain.ValidNotificationStatus(raw) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status " + raw})
			return
		}
		status := domain.NotificationStatus(raw)
		filter = &status
	}

	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, logger, "Failed to list notifications", err)
		return
	}
	c.JSON(http.StatusOK, dto.ToNotificationListResponse(notifications))
}

// transitionNotification godoc
// @Summary Transition a notification's review status
// @Description Compare-and-sets the status: the transition only applies while the current status matches fromStatus. Stale expectations return 409. RESOLVED is terminal. Admin only.
// @Tags notifications
// @Accept json
// @Produce json
// @Param policy_number path string true "Policy number"
// @Param transition body dto.TransitionNotificationRequest true "Expected and target status"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid transition"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Unknown policy number"
// @Failure 409 {object} map[string]string "Stale status expectation"
// @Security BearerAuth
// @Router /notifications/{policy_number}/transition [post]
func (h *notificationHandler) transitionNotification(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TransitionNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TransitionNotification", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if !domain.ValidNotificationStatus(req.FromStatus) || !domain.ValidNotificationStatus(req.ToStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown notification status"})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	policyNumber := c.Param("policy_number")
	err := h.notificationService.TransitionNotification(
		c.Request.Context(),
		policyNumber,
		domain.NotificationStatus(req.FromStatus),
		domain.NotificationStatus(req.ToStatus),
		actor,
	)
	if err != nil {
		respondServiceError(c, logger, "Failed to transition notification", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"policyNumber": policyNumber, "status": req.ToStatus})
}
