package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/assureline/payroll_engine/internal/apperrors"
	"github.com/assureline/payroll_engine/internal/core/domain"
	portssvc "github.com/assureline/payroll_engine/internal/core/ports/services"
	"github.com/assureline/payroll_engine/internal/core/services"
)

type PayrollServiceTestSuite struct {
	suite.Suite
	repos   *testRepos
	service portssvc.PayrollSvcFacade
	period  domain.PayrollPeriod
}

func (suite *PayrollServiceTestSuite) SetupTest() {
	suite.repos = newTestRepos()
	suite.service = services.NewPayrollService(testConfig(), suite.repos.provider())
	suite.period = domain.PayrollPeriod{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *PayrollServiceTestSuite) employee() *domain.Employee {
	return &domain.Employee{
		EmployeeID:             "emp-1",
		Name:                   "Dana Reyes",
		Department:             "Sales",
		HourlyRate:             decimal.NewFromInt(20),
		MaxHoursBeforeOvertime: decimal.NewFromInt(80),
		Status:                 domain.EmployeeActive,
	}
}

// timeLog builds one day's record worked from 09:00 for the given hours.
func timeLog(day time.Time, hours int) domain.TimeLog {
	return domain.TimeLog{
		LogID:      "log-" + day.Format("0102"),
		EmployeeID: "emp-1",
		WorkDate:   day,
		ClockIn:    day.Add(9 * time.Hour),
		ClockOut:   day.Add(time.Duration(9+hours) * time.Hour),
	}
}

func (suite *PayrollServiceTestSuite) sale(policyNumber string, amount int64, day time.Time) domain.PolicySale {
	return domain.PolicySale{
		PolicyNumber: policyNumber,
		EmployeeID:   "emp-1",
		Amount:       decimal.NewFromInt(amount),
		BrokerFee:    decimal.NewFromInt(25),
		PolicyType:   domain.PolicyAuto,
		SaleDate:     day,
	}
}

func (suite *PayrollServiceTestSuite) TestPeriodFor_MatchesCadence() {
	period := suite.service.PeriodFor(time.Date(2024, 1, 14, 23, 0, 0, 0, time.UTC))
	suite.True(period.Start.Equal(suite.period.Start))
	suite.True(period.End.Equal(suite.period.End))

	next := suite.service.PeriodFor(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	suite.True(next.Start.Equal(suite.period.End))
}

func (suite *PayrollServiceTestSuite) TestAggregateActivity_EmptyPeriodYieldsZeroTotals() {
	ctx := context.Background()
	suite.repos.timeLogs.On("ListTimeLogsForEmployee", ctx, "emp-1", suite.period.Start, suite.period.End).Return(nil, nil)
	suite.repos.sales.On("ListSalesForEmployee", ctx, "emp-1", suite.period.Start, suite.period.End).Return(nil, nil)

	totals, err := suite.service.AggregateActivity(ctx, "emp-1", suite.period)

	suite.Require().NoError(err)
	suite.True(totals.TotalHours.IsZero())
	suite.Zero(totals.SalesCount)
	suite.True(totals.TotalSalesAmount.IsZero())
	suite.True(totals.TotalBrokerFees.IsZero())
}

func (suite *PayrollServiceTestSuite) TestComputePeriodSummary_RegularPayAndBonuses() {
	ctx := context.Background()
	day := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	suite.repos.employees.On("FindEmployeeByID", ctx, "emp-1").Return(suite.employee(), nil)
	suite.repos.timeLogs.On("ListTimeLogsForEmployee", ctx, "emp-1", suite.period.Start, suite.period.End).
		Return([]domain.TimeLog{timeLog(day, 8), timeLog(day.AddDate(0, 0, 1), 8)}, nil)
	suite.repos.sales.On("ListSalesForEmployee", ctx, "emp-1", suite.period.Start, suite.period.End).
		Return([]domain.PolicySale{suite.sale("POL-1", 1200, day)}, nil)
	suite.repos.reviews.On("ListReviewsForEmployee", ctx, "emp-1", suite.period.Start, suite.period.End).
		Return([]domain.ClientReview{{ReviewID: "rev-1", EmployeeID: "emp-1", Rating: 5, ReviewDate: day}}, nil)
	suite.repos.notifications.On("ListUnresolvedInPeriod", ctx, suite.period.Start, suite.period.End).Return(nil, nil)

	summary, err := suite.service.ComputePeriodSummary(ctx, "emp-1", suite.period)

	suite.Require().NoError(err)
	suite.True(summary.TotalHours.Equal(decimal.NewFromInt(16)))
	suite.True(summary.RegularPay.Equal(decimal.NewFromInt(320)), "got %s", summary.RegularPay)
	suite.True(summary.OvertimePay.IsZero())
	suite.False(summary.OvertimePending)

	// broker fee 110 + review 10, nothing held.
	suite.True(summary.TotalBonuses.Equal(decimal.NewFromInt(120)), "got %s", summary.TotalBonuses)
	suite.True(summary.PendingBonusAmount.IsZero())
	suite.False(summary.Provisional)
	suite.True(summary.TotalPay.Equal(decimal.NewFromInt(440)), "got %s", summary.TotalPay)

	// Breakdown reconciles with the event total.
	breakdownTotal := decimal.Zero
	for _, st := range summary.BonusBreakdown {
		breakdownTotal = breakdownTotal.Add(st.Amount)
	}
	suite.True(breakdownTotal.Equal(summary.TotalBonuses))
}

func (suite *PayrollServiceTestSuite) TestComputePeriodSummary_HeldBonusesExcludedUntilResolved() {
	ctx := context.Background()
	day := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	suite.repos.employees.On("FindEmployeeByID", ctx, "emp-1").Return(suite.employee(), nil)
	suite.repos.timeLogs.On("ListTimeLogsForEmployee", ctx, "emp-1", suite.period.Start, suite.period.End).Return(nil, nil)
	suite.repos.sales.On("ListSalesForEmployee", ctx, "emp-1", suite.period.Start, suite.period.End).
		Return([]domain.PolicySale{suite.sale("POL-HV", 6000, day)}, nil)
	suite.repos.reviews.On("ListReviewsForEmployee", ctx, "emp-1", suite.period.Start, suite.period.End).Return(nil, nil)
	suite.repos.notifications.On("ListUnresolvedInPeriod", ctx, suite.period.Start, suite.period.End).
		Return([]domain.HighValuePolicyNotification{{PolicyNumber: "POL-HV", Status: domain.NotificationPending}}, nil)

	summary, err := suite.service.ComputePeriodSummary(ctx, "emp-1", suite.period)

	suite.Require().NoError(err)
	// broker fee 590 + high value 100, all gated behind the open review.
	suite.True(summary.TotalBonuses.IsZero())
	suite.True(summary.PendingBonusAmount.Equal(decimal.NewFromInt(690)), "got %s", summary.PendingBonusAmount)
	suite.Equal(1, summary.PendingReviewCount)
	suite.True(summary.Provisional)
	suite.True(summary.TotalPay.IsZero())
	suite.Empty(summary.BonusBreakdown)
}

func (suite *PayrollServiceTestSuite) TestComputePeriodSummary_ResolvedReviewReleasesBonuses() {
	ctx := context.Background()
	day := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	suite.repos.employees.On("FindEmployeeByID", ctx, "emp-1").Return(suite.employee(), nil)
	suite.repos.timeLogs.On("ListTimeLogsForEmployee", ctx, "emp-1", suite.period.Start, suite.period.End).Return(nil, nil)
	suite.repos.sales.On("ListSalesForEmployee", ctx, "emp-1", suite.period.Start, suite.period.End).
		Return([]domain.PolicySale{suite.sale("POL-HV", 6000, day)}, nil)
	suite.repos.reviews.On("ListReviewsForEmployee", ctx, "emp-1", suite.period.Start, suite.period.End).Return(nil, nil)
	// The notification resolved, so it no longer appears as unresolved.
	suite.repos.notifications.On("ListUnresolvedInPeriod", ctx, suite.period.Start, suite.period.End).Return(nil, nil)

	summary, err := suite.service.ComputePeriodSummary(ctx, "emp-1", suite.period)

	suite.Require().NoError(err)
	suite.True(summary.TotalBonuses.Equal(decimal.NewFromInt(690)), "got %s", summary.TotalBonuses)
	suite.True(summary.PendingBonusAmount.IsZero())
	suite.False(summary.Provisional)
}

func (suite *PayrollServiceTestSuite) TestComputePeriodSummary_UnapprovedOvertimeIsTrackedNotPaid() {
	ctx := context.Background()
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	// 9 days x 10h = 90h against an 80h threshold.
	logs := make([]domain.TimeLog, 0, 9)
	for i := 0; i < 9; i++ {
		logs = append(logs, timeLog(day.AddDate(0, 0, i), 10))
	}

	suite.repos.employees.On("FindEmployeeByID", ctx, "emp-1").Return(suite.employee(), nil)
	suite.repos.timeLogs.On("ListTimeLogsForEmployee", ctx, "emp-1", suite.period.Start, suite.period.End).Return(logs, nil)
	suite.repos.sales.On("ListSalesForEmployee", ctx, "emp-1", suite.period.Start, suite.period.End).Return(nil, nil)
	suite.repos.reviews.On("ListReviewsForEmployee", ctx, "emp-1", suite.period.Start, suite.period.End).Return(nil, nil)
	suite.repos.notifications.On("ListUnresolvedInPeriod", ctx, suite.period.Start, suite.period.End).Return(nil, nil)
	suite.repos.overtime.On("FindApprovedForPeriod", ctx, "emp-1", suite.period.Start).
		Return(nil, apperrors.ErrNotFound).Once()

	summary, err := suite.service.ComputePeriodSummary(ctx, "emp-1", suite.period)

	suite.Require().NoError(err)
	suite.True(summary.RegularHours.Equal(decimal.NewFromInt(80)))
	suite.True(summary.OvertimeHours.Equal(decimal.NewFromInt(10)))
	suite.True(summary.OvertimePending)
	suite.True(summary.OvertimePay.IsZero())
	// 80h x $20.
	suite.True(summary.RegularPay.Equal(decimal.NewFromInt(1600)))
	suite.True(summary.TotalPay.Equal(decimal.NewFromInt(1600)))
}

func (suite *PayrollServiceTestSuite) TestComputePeriodSummary_ApprovedOvertimePaysMultiplier() {
	ctx := context.Background()
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	logs := make([]domain.TimeLog, 0, 9)
	for i := 0; i < 9; i++ {
		logs = append(logs, timeLog(day.AddDate(0, 0, i), 10))
	}

	suite.repos.employees.On("FindEmployeeByID", ctx, "emp-1").Return(suite.employee(), nil)
	suite.repos.timeLogs.On("ListTimeLogsForEmployee", ctx, "emp-1", suite.period.Start, suite.period.End).Return(logs, nil)
	suite.repos.sales.On("ListSalesForEmployee", ctx, "emp-1", suite.period.Start, suite.period.End).Return(nil, nil)
	suite.repos.reviews.On("ListReviewsForEmployee", ctx, "emp-1", suite.period.Start, suite.period.End).Return(nil, nil)
	suite.repos.notifications.On("ListUnresolvedInPeriod", ctx, suite.period.Start, suite.period.End).Return(nil, nil)
	suite.repos.overtime.On("FindApprovedForPeriod", ctx, "emp-1", suite.period.Start).
		Return(&domain.OvertimeRequest{RequestID: "ot-1", Status: domain.OvertimeApproved}, nil).Once()

	summary, err := suite.service.ComputePeriodSummary(ctx, "emp-1", suite.period)

	suite.Require().NoError(err)
	suite.False(summary.OvertimePending)
	// 10h x $20 x 1.5.
	suite.True(summary.OvertimePay.Equal(decimal.NewFromInt(300)), "got %s", summary.OvertimePay)
	suite.True(summary.TotalPay.Equal(decimal.NewFromInt(1900)))
}

func (suite *PayrollServiceTestSuite) TestComputePeriodSummary_MissingEmployeeDegradesNotFails() {
	ctx := context.Background()
	day := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	suite.repos.employees.On("FindEmployeeByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound)
	suite.repos.timeLogs.On("ListTimeLogsForEmployee", ctx, "ghost", suite.period.Start, suite.period.End).
		Return([]domain.TimeLog{{LogID: "l1", EmployeeID: "ghost", WorkDate: day, ClockIn: day.Add(9 * time.Hour), ClockOut: day.Add(17 * time.Hour)}}, nil)
	suite.repos.sales.On("ListSalesForEmployee", ctx, "ghost", suite.period.Start, suite.period.End).Return(nil, nil)
	suite.repos.reviews.On("ListReviewsForEmployee", ctx, "ghost", suite.period.Start, suite.period.End).Return(nil, nil)
	suite.repos.notifications.On("ListUnresolvedInPeriod", ctx, suite.period.Start, suite.period.End).Return(nil, nil)

	summary, err := suite.service.ComputePeriodSummary(ctx, "ghost", suite.period)

	suite.Require().NoError(err)
	suite.True(summary.Incomplete)
	// Hours are still aggregated; pay needs the missing reference data.
	suite.True(summary.TotalHours.Equal(decimal.NewFromInt(8)))
	// Without the employee's threshold the split is unknowable: hours stay
	// regular instead of all spilling into overtime.
	suite.True(summary.RegularHours.Equal(decimal.NewFromInt(8)), "got %s", summary.RegularHours)
	suite.True(summary.OvertimeHours.IsZero(), "got %s", summary.OvertimeHours)
	suite.True(summary.RegularPay.IsZero())
	suite.True(summary.TotalPay.IsZero())
}

func (suite *PayrollServiceTestSuite) TestDailyBreakdown_GroupsActivityByDay() {
	ctx := context.Background()
	day1 := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)

	suite.repos.timeLogs.On("ListTimeLogsForEmployee", ctx, "emp-1", suite.period.Start, suite.period.End).
		Return([]domain.TimeLog{timeLog(day2, 8), timeLog(day1, 6)}, nil)
	suite.repos.sales.On("ListSalesForEmployee", ctx, "emp-1", suite.period.Start, suite.period.End).
		Return([]domain.PolicySale{
			suite.sale("POL-1", 1200, day1),
			suite.sale("POL-2", 800, day1),
		}, nil)

	days, err := suite.service.DailyBreakdown(ctx, "emp-1", suite.period)

	suite.Require().NoError(err)
	suite.Require().Len(days, 2)

	// Sorted by date, regardless of repository ordering.
	suite.True(days[0].SummaryDate.Equal(day1))
	suite.True(days[0].HoursWorked.Equal(decimal.NewFromInt(6)))
	suite.Equal(2, days[0].PoliciesSold)
	suite.True(days[0].TotalSalesAmount.Equal(decimal.NewFromInt(2000)))

	suite.True(days[1].SummaryDate.Equal(day2))
	suite.True(days[1].HoursWorked.Equal(decimal.NewFromInt(8)))
	suite.Zero(days[1].PoliciesSold)
}

func (suite *PayrollServiceTestSuite) TestComputePeriodSummary_RejectsMalformedPeriod() {
	ctx := context.Background()
	bad := domain.PayrollPeriod{
		Start: suite.period.Start,
		End:   suite.period.Start.AddDate(0, 0, 7),
	}

	_, err := suite.service.ComputePeriodSummary(ctx, "emp-1", bad)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestPayrollServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PayrollServiceTestSuite))
}
