package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NotificationStatus is the review state of a high-value policy notification.
// The machine is linear and monotonic: PENDING -> REVIEWED -> RESOLVED, where
// REVIEWED is an optional acknowledgement step and RESOLVED is terminal.
type NotificationStatus string

const (
	NotificationPending  NotificationStatus = "PENDING"
	NotificationReviewed NotificationStatus = "REVIEWED"
	NotificationResolved NotificationStatus = "RESOLVED"
)

// ValidNotificationStatus reports whether s names a known status.
func ValidNotificationStatus(s string) bool {
	switch NotificationStatus(s) {
	case NotificationPending, NotificationReviewed, NotificationResolved:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status machine permits moving from the
// receiver to next. RESOLVED accepts no further transitions; PENDING may skip
// straight to RESOLVED.
func (s NotificationStatus) CanTransitionTo(next NotificationStatus) bool {
	switch s {
	case NotificationPending:
		return next == NotificationReviewed || next == NotificationResolved
	case NotificationReviewed:
		return next == NotificationResolved
	default:
		return false
	}
}

// HighValuePolicyNotification gates the payout of bonus events for a sale at
// or above the high-value threshold. Exactly one exists per qualifying
// PolicyNumber; it is created on first ingestion and only ever transitioned,
// never deleted.
type HighValuePolicyNotification struct {
	PolicyNumber string             `json:"policyNumber"`
	EmployeeID   string             `json:"employeeID"`
	PolicyAmount decimal.Decimal    `json:"policyAmount"`
	PeriodStart  time.Time          `json:"biweeklyPeriodStart"`
	PeriodEnd    time.Time          `json:"biweeklyPeriodEnd"`
	Status       NotificationStatus `json:"status"`
	IsEditable   bool               `json:"isEditable"`
	AuditFields
}

// Unresolved reports whether the sale's bonus contribution is still held.
func (n HighValuePolicyNotification) Unresolved() bool {
	return n.Status != NotificationResolved
}
