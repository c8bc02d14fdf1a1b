package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/assureline/payroll_engine/internal/core/domain"
)

// TransitionNotificationRequest asks for a compare-and-set status change on
// one notification. FromStatus is the caller's expected current state; a
// stale expectation is rejected as a conflict rather than silently applied.
type TransitionNotificationRequest struct {
	FromStatus string `json:"fromStatus" binding:"required"`
	ToStatus   string `json:"toStatus" binding:"required"`
}

// NotificationResponse is the external view of one high-value notification.
type NotificationResponse struct {
	PolicyNumber string          `json:"policyNumber"`
	EmployeeID   string          `json:"employeeID"`
	PolicyAmount decimal.Decimal `json:"policyAmount"`
	PeriodStart  string          `json:"biweeklyPeriodStart"`
	PeriodEnd    string          `json:"biweeklyPeriodEnd"`
	Status       string          `json:"status"`
	IsEditable   bool            `json:"isEditable"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToNotificationResponse maps a domain notification to its API shape.
func ToNotificationResponse(n domain.HighValuePolicyNotification) NotificationResponse {
	return NotificationResponse{
		PolicyNumber: n.PolicyNumber,
		EmployeeID:   n.EmployeeID,
		PolicyAmount: n.PolicyAmount,
		PeriodStart:  n.PeriodStart.Format("2006-01-02"),
		PeriodEnd:    n.PeriodEnd.Format("2006-01-02"),
		Status:       string(n.Status),
		IsEditable:   n.IsEditable,
		CreatedAt:    n.CreatedAt,
	}
}

// ToNotificationListResponse maps a slice of notifications.
func ToNotificationListResponse(list []domain.HighValuePolicyNotification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, ToNotificationResponse(n))
	}
	return out
}
