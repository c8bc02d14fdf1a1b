package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/assureline/payroll_engine/internal/apperrors"
	"github.com/assureline/payroll_engine/internal/core/domain"
	portsrepo "github.com/assureline/payroll_engine/internal/core/ports/repositories"
	portssvc "github.com/assureline/payroll_engine/internal/core/ports/services"
)

// topPerformerCount is how many salespeople the company ranking surfaces.
const topPerformerCount = 3

// reportingService assembles the company-wide read view on top of the
// payroll compiler. It adds no business rules of its own.
type reportingService struct {
	BaseService
	payrollSvc   portssvc.PayrollSvcFacade
	employeeRepo portsrepo.EmployeeRepositoryFacade
	saleRepo     portsrepo.SaleRepositoryFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(payrollSvc portssvc.PayrollSvcFacade, employeeRepo portsrepo.EmployeeRepositoryFacade, saleRepo portsrepo.SaleRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{
		payrollSvc:   payrollSvc,
		employeeRepo: employeeRepo,
		saleRepo:     saleRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// ComputeCompanySummary rolls up every active employee's period summary
// into department aggregates, company totals and the top-performer ranking.
func (s *reportingService) ComputeCompanySummary(ctx context.Context, period domain.PayrollPeriod) (*domain.CompanyPayrollSummary, error) {
	if err := period.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	employees, err := s.employeeRepo.ListActiveEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}

	company := &domain.CompanyPayrollSummary{
		Period:             period,
		TotalPay:           decimal.Zero,
		TotalBonuses:       decimal.Zero,
		PendingBonusAmount: decimal.Zero,
	}

	byDepartment := make(map[string]*domain.DepartmentSummary)
	for _, employee := range employees {
		summary, err := s.payrollSvc.ComputePeriodSummary(ctx, employee.EmployeeID, period)
		if err != nil {
			return nil, fmt.Errorf("failed to compile summary for %s: %w", employee.EmployeeID, err)
		}
		company.Employees = append(company.Employees, *summary)

		dept, ok := byDepartment[summary.Department]
		if !ok {
			dept = &domain.DepartmentSummary{
				Department:       summary.Department,
				TotalHours:       decimal.Zero,
				TotalSalesAmount: decimal.Zero,
				TotalBonuses:     decimal.Zero,
				TotalPay:         decimal.Zero,
			}
			byDepartment[summary.Department] = dept
		}
		dept.EmployeeCount++
		dept.TotalHours = dept.TotalHours.Add(summary.TotalHours)
		dept.TotalSalesAmount = dept.TotalSalesAmount.Add(summary.TotalSalesAmount)
		dept.TotalBonuses = dept.TotalBonuses.Add(summary.TotalBonuses)
		dept.TotalPay = dept.TotalPay.Add(summary.TotalPay)

		company.TotalPay = company.TotalPay.Add(summary.TotalPay)
		company.TotalBonuses = company.TotalBonuses.Add(summary.TotalBonuses)
		company.PendingBonusAmount = company.PendingBonusAmount.Add(summary.PendingBonusAmount)
		company.PendingReviewCount += summary.PendingReviewCount
	}
	company.Provisional = company.PendingReviewCount > 0

	departments := make([]domain.DepartmentSummary, 0, len(byDepartment))
	for _, dept := range byDepartment {
		departments = append(departments, *dept)
	}
	sort.Slice(departments, func(i, j int) bool {
		return departments[i].Department < departments[j].Department
	})
	company.Departments = departments

	performers, err := s.topPerformers(ctx, employees, period)
	if err != nil {
		return nil, err
	}
	company.TopPerformers = performers

	s.LogInfo(ctx, "Company summary assembled",
		slog.String("period", period.String()),
		slog.Int("employees", len(company.Employees)),
		slog.Int("pending_reviews", company.PendingReviewCount))
	return company, nil
}

// topPerformers ranks employees by total sales amount, descending, keeping
// the top three. Ties break stably towards the employee with the earliest
// sale in the period. One period-wide query covers every employee.
func (s *reportingService) topPerformers(ctx context.Context, employees []domain.Employee, period domain.PayrollPeriod) ([]domain.TopPerformer, error) {
	sales, err := s.saleRepo.ListSalesInPeriod(ctx, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales in period %s: %w", period, err)
	}

	names := make(map[string]string, len(employees))
	for _, employee := range employees {
		names[employee.EmployeeID] = employee.Name
	}

	type ranked struct {
		performer    domain.TopPerformer
		earliestSale time.Time
	}

	byEmployee := make(map[string]*ranked)
	var order []string
	for _, sale := range sales {
		name, active := names[sale.EmployeeID]
		if !active {
			// Only employees in the active directory rank.
			continue
		}
		r, seen := byEmployee[sale.EmployeeID]
		if !seen {
			r = &ranked{
				performer: domain.TopPerformer{
					EmployeeID:       sale.EmployeeID,
					Name:             name,
					TotalSalesAmount: decimal.Zero,
				},
				earliestSale: sale.SaleDate,
			}
			byEmployee[sale.EmployeeID] = r
			order = append(order, sale.EmployeeID)
		}
		r.performer.SalesCount++
		r.performer.TotalSalesAmount = r.performer.TotalSalesAmount.Add(sale.Amount)
		if sale.SaleDate.Before(r.earliestSale) {
			r.earliestSale = sale.SaleDate
		}
	}

	rankings := make([]ranked, 0, len(order))
	for _, employeeID := range order {
		rankings = append(rankings, *byEmployee[employeeID])
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		if !rankings[i].performer.TotalSalesAmount.Equal(rankings[j].performer.TotalSalesAmount) {
			return rankings[i].performer.TotalSalesAmount.GreaterThan(rankings[j].performer.TotalSalesAmount)
		}
		return rankings[i].earliestSale.Before(rankings[j].earliestSale)
	})

	limit := topPerformerCount
	if len(rankings) < limit {
		limit = len(rankings)
	}
	performers := make([]domain.TopPerformer, 0, limit)
	for _, r := range rankings[:limit] {
		performers = append(performers, r.performer)
	}
	return performers, nil
}
