package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OvertimeStatus is the approval state of an overtime request. The
// request/approval workflow itself lives outside this engine; payroll only
// consumes the resulting status.
type OvertimeStatus string

const (
	OvertimePending  OvertimeStatus = "PENDING"
	OvertimeApproved OvertimeStatus = "APPROVED"
	OvertimeRejected OvertimeStatus = "REJECTED"
)

// ValidOvertimeStatus reports whether s names a known status.
func ValidOvertimeStatus(s string) bool {
	switch OvertimeStatus(s) {
	case OvertimePending, OvertimeApproved, OvertimeRejected:
		return true
	}
	return false
}

// OvertimeRequest records an employee's request to be paid for overtime
// hours within a payroll period. Raw hours never imply overtime pay on their
// own: an APPROVED request is the precondition for the overtime portion.
type OvertimeRequest struct {
	RequestID      string          `json:"requestID"`
	EmployeeID     string          `json:"employeeID"`
	PeriodStart    time.Time       `json:"periodStart"`
	HoursRequested decimal.Decimal `json:"hoursRequested"`
	Status         OvertimeStatus  `json:"status"`
	AuditFields
}
