package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/assureline/payroll_engine/internal/apperrors"
	"github.com/assureline/payroll_engine/internal/core/domain"
	portsrepo "github.com/assureline/payroll_engine/internal/core/ports/repositories"
	portssvc "github.com/assureline/payroll_engine/internal/core/ports/services"
	"github.com/assureline/payroll_engine/internal/platform/config"
	"github.com/assureline/payroll_engine/internal/utils/payrollcalc"
)

// payrollService compiles per-employee payroll figures for a period. All of
// its reads are over immutable or append-only records, so summaries can be
// recomputed freely and concurrently.
type payrollService struct {
	BaseService
	saleRepo         portsrepo.SaleRepositoryFacade
	notificationRepo portsrepo.NotificationRepositoryFacade
	timeLogRepo      portsrepo.TimeLogRepositoryFacade
	employeeRepo     portsrepo.EmployeeRepositoryFacade
	overtimeRepo     portsrepo.OvertimeRepositoryFacade
	reviewRepo       portsrepo.ReviewRepositoryFacade
	policy           payrollcalc.BonusPolicy
	epoch            time.Time
	overtimeRate     decimal.Decimal
}

// NewPayrollService creates a new PayrollService.
func NewPayrollService(cfg *config.Config, repos portsrepo.RepositoryProvider) portssvc.PayrollSvcFacade {
	policy := payrollcalc.DefaultBonusPolicy()
	policy.HighValueThreshold = cfg.HighValueThreshold
	policy.HighValueBonus = cfg.HighValueBonus

	return &payrollService{
		saleRepo:         repos.SaleRepo,
		notificationRepo: repos.NotificationRepo,
		timeLogRepo:      repos.TimeLogRepo,
		employeeRepo:     repos.EmployeeRepo,
		overtimeRepo:     repos.OvertimeRepo,
		reviewRepo:       repos.ReviewRepo,
		policy:           policy,
		epoch:            cfg.PayrollEpoch,
		overtimeRate:     cfg.OvertimeMultiplier,
	}
}

var _ portssvc.PayrollSvcFacade = (*payrollService)(nil)

// PeriodFor resolves the canonical payroll period containing ref.
func (s *payrollService) PeriodFor(ref time.Time) domain.PayrollPeriod {
	return domain.PeriodContaining(ref, s.epoch)
}

// AggregateActivity collapses raw time logs and sales into per-period
// totals over the half-open interval [period.Start, period.End). An
// employee with no records in the period gets all-zero totals.
func (s *payrollService) AggregateActivity(ctx context.Context, employeeID string, period domain.PayrollPeriod) (*domain.ActivityTotals, error) {
	if err := period.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	totals := &domain.ActivityTotals{
		TotalHours:       decimal.Zero,
		TotalSalesAmount: decimal.Zero,
		TotalBrokerFees:  decimal.Zero,
	}

	logs, err := s.timeLogRepo.ListTimeLogsForEmployee(ctx, employeeID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list time logs for %s: %w", employeeID, err)
	}
	for _, log := range logs {
		totals.TotalHours = totals.TotalHours.Add(log.HoursWorked())
	}

	sales, err := s.saleRepo.ListSalesForEmployee(ctx, employeeID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales for %s: %w", employeeID, err)
	}
	for _, sale := range sales {
		totals.SalesCount++
		totals.TotalSalesAmount = totals.TotalSalesAmount.Add(sale.Amount)
		totals.TotalBrokerFees = totals.TotalBrokerFees.Add(sale.BrokerFee)
	}

	return totals, nil
}

// ComputePeriodSummary produces the finalized summary for one employee.
//
// Policy choice, made explicit: bonus events for sales whose high-value
// review is unresolved are excluded from TotalBonuses and TotalPay. The
// held sum is reported as PendingBonusAmount and the summary is marked
// Provisional — the engine never silently drops or silently includes.
func (s *payrollService) ComputePeriodSummary(ctx context.Context, employeeID string, period domain.PayrollPeriod) (*domain.EmployeePayrollSummary, error) {
	if err := period.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	summary := &domain.EmployeePayrollSummary{
		EmployeeID:         employeeID,
		Period:             period,
		RegularPay:         decimal.Zero,
		OvertimePay:        decimal.Zero,
		TotalBonuses:       decimal.Zero,
		PendingBonusAmount: decimal.Zero,
		TotalPay:           decimal.Zero,
	}

	// Reference data may be missing for employees known only through
	// activity records; that degrades the summary instead of failing it.
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		s.LogWarn(ctx, "Employee missing from directory; producing incomplete summary",
			slog.String("employee_id", employeeID))
		summary.Incomplete = true
	case err != nil:
		return nil, fmt.Errorf("failed to look up employee %s: %w", employeeID, err)
	default:
		summary.Name = employee.Name
		summary.Department = employee.Department
	}

	totals, err := s.AggregateActivity(ctx, employeeID, period)
	if err != nil {
		return nil, err
	}
	summary.TotalHours = totals.TotalHours
	summary.SalesCount = totals.SalesCount
	summary.TotalSalesAmount = totals.TotalSalesAmount
	summary.TotalBrokerFees = totals.TotalBrokerFees

	// The overtime split needs the employee's threshold. Without reference
	// data the split is unknowable, so worked hours stay reported as
	// regular and nothing is classified as overtime.
	summary.RegularHours = totals.TotalHours
	summary.OvertimeHours = decimal.Zero

	if !summary.Incomplete {
		regular, overtime := payrollcalc.SplitHours(totals.TotalHours, employee.MaxHoursBeforeOvertime)
		summary.RegularHours = regular
		summary.OvertimeHours = overtime
		summary.RegularPay = regular.Mul(employee.HourlyRate).Round(2)

		if overtime.IsPositive() {
			_, err := s.overtimeRepo.FindApprovedForPeriod(ctx, employeeID, period.Start)
			switch {
			case errors.Is(err, apperrors.ErrNotFound):
				// Tracked but unpaid: approval is a precondition for the
				// overtime portion specifically.
				summary.OvertimePending = true
			case err != nil:
				return nil, fmt.Errorf("failed to look up overtime approval for %s: %w", employeeID, err)
			default:
				summary.OvertimePay = payrollcalc.OvertimePay(overtime, employee.HourlyRate, s.overtimeRate)
			}
		}
	}

	events, err := s.bonusEventsForPeriod(ctx, employeeID, period)
	if err != nil {
		return nil, err
	}

	unresolved, err := s.unresolvedPolicies(ctx, period)
	if err != nil {
		return nil, err
	}

	payable, held := payrollcalc.PartitionHeld(events, unresolved)
	summary.BonusBreakdown = payrollcalc.SumByCategory(payable)
	summary.TotalBonuses = payrollcalc.SumAmounts(payable)
	summary.PendingBonusAmount = payrollcalc.SumAmounts(held)

	heldPolicies := make(map[string]bool)
	for _, ev := range held {
		heldPolicies[ev.SourcePolicyNumber] = true
	}
	summary.PendingReviewCount = len(heldPolicies)
	summary.Provisional = summary.PendingReviewCount > 0

	summary.TotalPay = summary.RegularPay.Add(summary.OvertimePay).Add(summary.TotalBonuses)
	return summary, nil
}

// DailyBreakdown rebuilds the per-day summaries for one employee from the
// period's time logs and sales. Days with no activity are omitted.
func (s *payrollService) DailyBreakdown(ctx context.Context, employeeID string, period domain.PayrollPeriod) ([]domain.DailySummary, error) {
	if err := period.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	logs, err := s.timeLogRepo.ListTimeLogsForEmployee(ctx, employeeID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list time logs for %s: %w", employeeID, err)
	}
	sales, err := s.saleRepo.ListSalesForEmployee(ctx, employeeID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales for %s: %w", employeeID, err)
	}

	byDay := make(map[time.Time]*domain.DailySummary)
	dayOf := func(t time.Time) *domain.DailySummary {
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		summary, ok := byDay[day]
		if !ok {
			summary = &domain.DailySummary{
				EmployeeID:       employeeID,
				SummaryDate:      day,
				HoursWorked:      decimal.Zero,
				TotalSalesAmount: decimal.Zero,
			}
			byDay[day] = summary
		}
		return summary
	}

	for _, log := range logs {
		summary := dayOf(log.WorkDate)
		summary.HoursWorked = summary.HoursWorked.Add(log.HoursWorked())
	}
	for _, sale := range sales {
		summary := dayOf(sale.SaleDate)
		summary.PoliciesSold++
		summary.TotalSalesAmount = summary.TotalSalesAmount.Add(sale.Amount)
	}

	days := make([]domain.DailySummary, 0, len(byDay))
	for _, summary := range byDay {
		days = append(days, *summary)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].SummaryDate.Before(days[j].SummaryDate)
	})
	return days, nil
}

// bonusEventsForPeriod re-derives the employee's bonus events from the
// immutable records in the period. Derivation is pure, so recomputation is
// idempotent and needs no locking.
func (s *payrollService) bonusEventsForPeriod(ctx context.Context, employeeID string, period domain.PayrollPeriod) ([]domain.BonusEvent, error) {
	sales, err := s.saleRepo.ListSalesForEmployee(ctx, employeeID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales for %s: %w", employeeID, err)
	}

	var events []domain.BonusEvent
	for _, sale := range sales {
		events = append(events, payrollcalc.ComputeSaleBonuses(sale, s.policy)...)
	}

	reviews, err := s.reviewRepo.ListReviewsForEmployee(ctx, employeeID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for %s: %w", employeeID, err)
	}
	events = append(events, payrollcalc.ComputeReviewBonuses(reviews, s.policy)...)

	return events, nil
}

// unresolvedPolicies returns the set of policy numbers in the period whose
// high-value notification has not reached RESOLVED.
func (s *payrollService) unresolvedPolicies(ctx context.Context, period domain.PayrollPeriod) (map[string]bool, error) {
	notifications, err := s.notificationRepo.ListUnresolvedInPeriod(ctx, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to list unresolved notifications: %w", err)
	}
	unresolved := make(map[string]bool, len(notifications))
	for _, n := range notifications {
		unresolved[n.PolicyNumber] = true
	}
	return unresolved, nil
}
