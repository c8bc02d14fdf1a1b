package dto

import (
	"github.com/shopspring/decimal"

	"github.com/assureline/payroll_engine/internal/core/domain"
)

// BonusSubtotalResponse is one per-category line of a bonus breakdown.
type BonusSubtotalResponse struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Count    int             `json:"count"`
}

// EmployeeSummaryResponse is the API shape of one employee's period summary.
type EmployeeSummaryResponse struct {
	EmployeeID         string                  `json:"employeeID"`
	Name               string                  `json:"name"`
	Department         string                  `json:"department"`
	PeriodStart        string                  `json:"periodStart"`
	PeriodEnd          string                  `json:"periodEnd"`
	TotalHours         decimal.Decimal         `json:"totalHours"`
	RegularHours       decimal.Decimal         `json:"regularHours"`
	OvertimeHours      decimal.Decimal         `json:"overtimeHours"`
	OvertimePending    bool                    `json:"overtimePending"`
	RegularPay         decimal.Decimal         `json:"regularPay"`
	OvertimePay        decimal.Decimal         `json:"overtimePay"`
	SalesCount         int                     `json:"salesCount"`
	TotalSalesAmount   decimal.Decimal         `json:"totalSalesAmount"`
	TotalBrokerFees    decimal.Decimal         `json:"totalBrokerFees"`
	BonusBreakdown     []BonusSubtotalResponse `json:"bonusBreakdown"`
	TotalBonuses       decimal.Decimal         `json:"totalBonuses"`
	PendingBonusAmount decimal.Decimal         `json:"pendingBonusAmount"`
	PendingReviewCount int                     `json:"pendingReviewCount"`
	TotalPay           decimal.Decimal         `json:"totalPay"`
	Provisional        bool                    `json:"provisional"`
	Incomplete         bool                    `json:"incomplete"`
}

// DepartmentSummaryResponse is one department row of the company summary.
type DepartmentSummaryResponse struct {
	Department       string          `json:"department"`
	EmployeeCount    int             `json:"employeeCount"`
	TotalHours       decimal.Decimal `json:"totalHours"`
	TotalSalesAmount decimal.Decimal `json:"totalSalesAmount"`
	TotalBonuses     decimal.Decimal `json:"totalBonuses"`
	TotalPay         decimal.Decimal `json:"totalPay"`
}

// TopPerformerResponse is one ranking row.
type TopPerformerResponse struct {
	EmployeeID       string          `json:"employeeID"`
	Name             string          `json:"name"`
	TotalSalesAmount decimal.Decimal `json:"totalSalesAmount"`
	SalesCount       int             `json:"salesCount"`
}

// CompanySummaryResponse is the API shape of the company-wide period summary.
type CompanySummaryResponse struct {
	PeriodStart        string                      `json:"periodStart"`
	PeriodEnd          string                      `json:"periodEnd"`
	Departments        []DepartmentSummaryResponse `json:"departments"`
	TopPerformers      []TopPerformerResponse      `json:"topPerformers"`
	TotalPay           decimal.Decimal             `json:"totalPay"`
	TotalBonuses       decimal.Decimal             `json:"totalBonuses"`
	PendingBonusAmount decimal.Decimal             `json:"pendingBonusAmount"`
	PendingReviewCount int                         `json:"pendingReviewCount"`
	Provisional        bool                        `json:"provisional"`
}

// DailySummaryResponse is one day's activity aggregate for an employee.
type DailySummaryResponse struct {
	EmployeeID       string          `json:"employeeID"`
	SummaryDate      string          `json:"summaryDate"`
	HoursWorked      decimal.Decimal `json:"hoursWorked"`
	PoliciesSold     int             `json:"policiesSold"`
	TotalSalesAmount decimal.Decimal `json:"totalSalesAmount"`
}

// ToDailySummaryResponses maps the per-day aggregates to their API shape.
func ToDailySummaryResponses(days []domain.DailySummary) []DailySummaryResponse {
	out := make([]DailySummaryResponse, 0, len(days))
	for _, d := range days {
		out = append(out, DailySummaryResponse{
			EmployeeID:       d.EmployeeID,
			SummaryDate:      d.SummaryDate.Format("2006-01-02"),
			HoursWorked:      d.HoursWorked,
			PoliciesSold:     d.PoliciesSold,
			TotalSalesAmount: d.TotalSalesAmount,
		})
	}
	return out
}

// ToEmployeeSummaryResponse maps the domain read model to its API shape.
func ToEmployeeSummaryResponse(s domain.EmployeePayrollSummary) EmployeeSummaryResponse {
	breakdown := make([]BonusSubtotalResponse, 0, len(s.BonusBreakdown))
	for _, st := range s.BonusBreakdown {
		breakdown = append(breakdown, BonusSubtotalResponse{
			Category: string(st.Category),
			Amount:   st.Amount,
			Count:    st.Count,
		})
	}
	return EmployeeSummaryResponse{
		EmployeeID:         s.EmployeeID,
		Name:               s.Name,
		Department:         s.Department,
		PeriodStart:        s.Period.Start.Format("2006-01-02"),
		PeriodEnd:          s.Period.End.Format("2006-01-02"),
		TotalHours:         s.TotalHours,
		RegularHours:       s.RegularHours,
		OvertimeHours:      s.OvertimeHours,
		OvertimePending:    s.OvertimePending,
		RegularPay:         s.RegularPay,
		OvertimePay:        s.OvertimePay,
		SalesCount:         s.SalesCount,
		TotalSalesAmount:   s.TotalSalesAmount,
		TotalBrokerFees:    s.TotalBrokerFees,
		BonusBreakdown:     breakdown,
		TotalBonuses:       s.TotalBonuses,
		PendingBonusAmount: s.PendingBonusAmount,
		PendingReviewCount: s.PendingReviewCount,
		TotalPay:           s.TotalPay,
		Provisional:        s.Provisional,
		Incomplete:         s.Incomplete,
	}
}

// ToCompanySummaryResponse maps the company read model to its API shape.
func ToCompanySummaryResponse(s domain.CompanyPayrollSummary) CompanySummaryResponse {
	departments := make([]DepartmentSummaryResponse, 0, len(s.Departments))
	for _, d := range s.Departments {
		departments = append(departments, DepartmentSummaryResponse{
			Department:       d.Department,
			EmployeeCount:    d.EmployeeCount,
			TotalHours:       d.TotalHours,
			TotalSalesAmount: d.TotalSalesAmount,
			TotalBonuses:     d.TotalBonuses,
			TotalPay:         d.TotalPay,
		})
	}
	performers := make([]TopPerformerResponse, 0, len(s.TopPerformers))
	for _, p := range s.TopPerformers {
		performers = append(performers, TopPerformerResponse{
			EmployeeID:       p.EmployeeID,
			Name:             p.Name,
			TotalSalesAmount: p.TotalSalesAmount,
			SalesCount:       p.SalesCount,
		})
	}
	return CompanySummaryResponse{
		PeriodStart:        s.Period.Start.Format("2006-01-02"),
		PeriodEnd:          s.Period.End.Format("2006-01-02"),
		Departments:        departments,
		TopPerformers:      performers,
		TotalPay:           s.TotalPay,
		TotalBonuses:       s.TotalBonuses,
		PendingBonusAmount: s.PendingBonusAmount,
		PendingReviewCount: s.PendingReviewCount,
		Provisional:        s.Provisional,
	}
}
