package domain

import "github.com/shopspring/decimal"

// ActivityTotals is the aggregator output: an employee's raw per-period
// totals over time logs and policy sales. Missing data yields all-zero
// totals, never an error.
type ActivityTotals struct {
	TotalHours       decimal.Decimal `json:"totalHours"`
	SalesCount       int             `json:"salesCount"`
	TotalSalesAmount decimal.Decimal `json:"totalSalesAmount"`
	TotalBrokerFees  decimal.Decimal `json:"totalBrokerFees"`
}

// EmployeePayrollSummary is the finalized per-employee read model for one
// payroll period. It is recomputable from the underlying entities and is
// never persisted as the source of truth.
//
// Bonus events gated behind an unresolved high-value notification are
// excluded from TotalBonuses and TotalPay; their sum is surfaced separately
// as PendingBonusAmount and the summary is marked Provisional. The engine
// never silently drops or silently includes a held bonus.
type EmployeePayrollSummary struct {
	EmployeeID string        `json:"employeeID"`
	Name       string        `json:"name"`
	Department string        `json:"department"`
	Period     PayrollPeriod `json:"period"`

	TotalHours         decimal.Decimal `json:"totalHours"`
	RegularHours       decimal.Decimal `json:"regularHours"`
	OvertimeHours      decimal.Decimal `json:"overtimeHours"`
	OvertimePending    bool            `json:"overtimePending"` // overtime worked but not approved
	RegularPay         decimal.Decimal `json:"regularPay"`
	OvertimePay        decimal.Decimal `json:"overtimePay"`
	SalesCount         int             `json:"salesCount"`
	TotalSalesAmount   decimal.Decimal `json:"totalSalesAmount"`
	TotalBrokerFees    decimal.Decimal `json:"totalBrokerFees"`
	BonusBreakdown     []BonusSubtotal `json:"bonusBreakdown"`
	TotalBonuses       decimal.Decimal `json:"totalBonuses"`
	PendingBonusAmount decimal.Decimal `json:"pendingBonusAmount"`
	PendingReviewCount int             `json:"pendingReviewCount"`
	TotalPay           decimal.Decimal `json:"totalPay"`
	Provisional        bool            `json:"provisional"`
	Incomplete         bool            `json:"incomplete"` // employee reference data missing; rate-dependent fields zeroed
}

// DepartmentSummary aggregates finalized employee summaries per department.
type DepartmentSummary struct {
	Department       string          `json:"department"`
	EmployeeCount    int             `json:"employeeCount"`
	TotalHours       decimal.Decimal `json:"totalHours"`
	TotalSalesAmount decimal.Decimal `json:"totalSalesAmount"`
	TotalBonuses     decimal.Decimal `json:"totalBonuses"`
	TotalPay         decimal.Decimal `json:"totalPay"`
}

// TopPerformer is one row of the company ranking: top salespeople by total
// sales amount, ties broken by earliest sale date.
type TopPerformer struct {
	EmployeeID       string          `json:"employeeID"`
	Name             string          `json:"name"`
	TotalSalesAmount decimal.Decimal `json:"totalSalesAmount"`
	SalesCount       int             `json:"salesCount"`
}

// CompanyPayrollSummary is the company-wide read model for one period.
type CompanyPayrollSummary struct {
	Period             PayrollPeriod            `json:"period"`
	Departments        []DepartmentSummary      `json:"departments"`
	Employees          []EmployeePayrollSummary `json:"employees"`
	TopPerformers      []TopPerformer           `json:"topPerformers"`
	TotalPay           decimal.Decimal          `json:"totalPay"`
	TotalBonuses       decimal.Decimal          `json:"totalBonuses"`
	PendingBonusAmount decimal.Decimal          `json:"pendingBonusAmount"`
	PendingReviewCount int                      `json:"pendingReviewCount"`
	Provisional        bool                     `json:"provisional"`
}
