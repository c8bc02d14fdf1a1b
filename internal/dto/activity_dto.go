package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/assureline/payroll_engine/internal/core/domain"
)

// CreateTimeLogRequest carries one day's clock record from the time-tracking
// collaborator.
type CreateTimeLogRequest struct {
	EmployeeID string     `json:"employeeID" binding:"required"`
	WorkDate   time.Time  `json:"workDate" binding:"required"`
	ClockIn    time.Time  `json:"clockIn" binding:"required"`
	ClockOut   time.Time  `json:"clockOut" binding:"required"`
	BreakStart *time.Time `json:"breakStart,omitempty"`
	BreakEnd   *time.Time `json:"breakEnd,omitempty"`
}

// ToDomainTimeLog converts the request into a domain record with a fresh log ID.
func (r CreateTimeLogRequest) ToDomainTimeLog(logID, creatorUserID string, now time.Time) domain.TimeLog {
	return domain.TimeLog{
		LogID:      logID,
		EmployeeID: r.EmployeeID,
		WorkDate:   r.WorkDate,
		ClockIn:    r.ClockIn,
		ClockOut:   r.ClockOut,
		BreakStart: r.BreakStart,
		BreakEnd:   r.BreakEnd,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
}

// CreateReviewRequest carries one submitted client review.
type CreateReviewRequest struct {
	EmployeeID string    `json:"employeeID" binding:"required"`
	ClientName string    `json:"clientName" binding:"required"`
	Rating     int       `json:"rating" binding:"required,min=1,max=5"`
	ReviewDate time.Time `json:"reviewDate" binding:"required"`
}

// CreateOvertimeRequest records the outcome of the external overtime
// approval workflow for one employee and period.
type CreateOvertimeRequest struct {
	RequestID      string          `json:"requestID" binding:"required"`
	EmployeeID     string          `json:"employeeID" binding:"required"`
	PeriodStart    time.Time       `json:"periodStart" binding:"required"`
	HoursRequested decimal.Decimal `json:"hoursRequested" binding:"required"`
	Status         string          `json:"status" binding:"required"`
}

// UpsertEmployeeRequest refreshes the mirrored directory entry for one employee.
type UpsertEmployeeRequest struct {
	ClerkUserID            string          `json:"clerkUserID" binding:"required"`
	Name                   string          `json:"name" binding:"required"`
	HourlyRate             decimal.Decimal `json:"hourlyRate" binding:"required"`
	MaxHoursBeforeOvertime decimal.Decimal `json:"maxHoursBeforeOvertime" binding:"required"`
	Department             string          `json:"department" binding:"required"`
	Status                 string          `json:"status" binding:"required"`
}
