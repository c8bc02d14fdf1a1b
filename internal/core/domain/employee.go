package domain

import "github.com/shopspring/decimal"

// EmployeeStatus indicates whether an employee is on the active roster.
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "ACTIVE"
	EmployeeInactive EmployeeStatus = "INACTIVE"
)

// Employee is reference data mirrored from the external identity/employee
// directory. ClerkUserID is the foreign identity key and is opaque to this
// engine; payroll math only needs the rate, the overtime threshold and the
// department grouping.
type Employee struct {
	EmployeeID             string          `json:"employeeID"`
	ClerkUserID            string          `json:"clerkUserID"`
	Name                   string          `json:"name"`
	HourlyRate             decimal.Decimal `json:"hourlyRate"`
	MaxHoursBeforeOvertime decimal.Decimal `json:"maxHoursBeforeOvertime"`
	Department             string          `json:"department"`
	Status                 EmployeeStatus  `json:"status"`
	AuditFields
}

// IsActive reports whether the employee participates in payroll runs.
func (e Employee) IsActive() bool {
	return e.Status == EmployeeActive
}
