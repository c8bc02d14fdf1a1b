package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/assureline/payroll_engine/internal/core/domain"
	portsrepo "github.com/assureline/payroll_engine/internal/core/ports/repositories"
	"github.com/assureline/payroll_engine/internal/platform/config"
)

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.PolicySale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) FindSaleByPolicyNumber(ctx context.Context, policyNumber string) (*domain.PolicySale, error) {
	args := m.Called(ctx, policyNumber)
	var sale *domain.PolicySale
	if args.Get(0) != nil {
		sale = args.Get(0).(*domain.PolicySale)
	}
	return sale, args.Error(1)
}

func (m *MockSaleRepository) ListSalesForEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]domain.PolicySale, error) {
	args := m.Called(ctx, employeeID, start, end)
	var sales []domain.PolicySale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.PolicySale)
	}
	return sales, args.Error(1)
}

func (m *MockSaleRepository) ListSalesInPeriod(ctx context.Context, start, end time.Time) ([]domain.PolicySale, error) {
	args := m.Called(ctx, start, end)
	var sales []domain.PolicySale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.PolicySale)
	}
	return sales, args.Error(1)
}

// --- Mock NotificationRepository ---
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) CreateIfAbsent(ctx context.Context, notification domain.HighValuePolicyNotification) (bool, error) {
	args := m.Called(ctx, notification)
	return args.Bool(0), args.Error(1)
}

func (m *MockNotificationRepository) FindByPolicyNumber(ctx context.Context, policyNumber string) (*domain.HighValuePolicyNotification, error) {
	args := m.Called(ctx, policyNumber)
	var notification *domain.HighValuePolicyNotification
	if args.Get(0) != nil {
		notification = args.Get(0).(*domain.HighValuePolicyNotification)
	}
	return notification, args.Error(1)
}

func (m *MockNotificationRepository) ListByStatus(ctx context.Context, status *domain.NotificationStatus) ([]domain.HighValuePolicyNotification, error) {
	args := m.Called(ctx, status)
	var notifications []domain.HighValuePolicyNotification
	if args.Get(0) != nil {
		notifications = args.Get(0).([]domain.HighValuePolicyNotification)
	}
	return notifications, args.Error(1)
}

func (m *MockNotificationRepository) ListUnresolvedInPeriod(ctx context.Context, start, end time.Time) ([]domain.HighValuePolicyNotification, error) {
	args := m.Called(ctx, start, end)
	var notifications []domain.HighValuePolicyNotification
	if args.Get(0) != nil {
		notifications = args.Get(0).([]domain.HighValuePolicyNotification)
	}
	return notifications, args.Error(1)
}

func (m *MockNotificationRepository) TransitionStatus(ctx context.Context, policyNumber string, from, to domain.NotificationStatus, updatedBy string, now time.Time) error {
	args := m.Called(ctx, policyNumber, from, to, updatedBy, now)
	return args.Error(0)
}

// --- Mock TimeLogRepository ---
type MockTimeLogRepository struct {
	mock.Mock
}

func (m *MockTimeLogRepository) SaveTimeLog(ctx context.Context, log domain.TimeLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockTimeLogRepository) ListTimeLogsForEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]domain.TimeLog, error) {
	args := m.Called(ctx, employeeID, start, end)
	var logs []domain.TimeLog
	if args.Get(0) != nil {
		logs = args.Get(0).([]domain.TimeLog)
	}
	return logs, args.Error(1)
}

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) UpsertEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	var employee *domain.Employee
	if args.Get(0) != nil {
		employee = args.Get(0).(*domain.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockEmployeeRepository) ListActiveEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	var employees []domain.Employee
	if args.Get(0) != nil {
		employees = args.Get(0).([]domain.Employee)
	}
	return employees, args.Error(1)
}

// --- Mock OvertimeRepository ---
type MockOvertimeRepository struct {
	mock.Mock
}

func (m *MockOvertimeRepository) SaveOvertimeRequest(ctx context.Context, request domain.OvertimeRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockOvertimeRepository) FindApprovedForPeriod(ctx context.Context, employeeID string, periodStart time.Time) (*domain.OvertimeRequest, error) {
	args := m.Called(ctx, employeeID, periodStart)
	var request *domain.OvertimeRequest
	if args.Get(0) != nil {
		request = args.Get(0).(*domain.OvertimeRequest)
	}
	return request, args.Error(1)
}

// --- Mock ReviewRepository ---
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) SaveReview(ctx context.Context, review domain.ClientReview) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) ListReviewsForEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]domain.ClientReview, error) {
	args := m.Called(ctx, employeeID, start, end)
	var reviews []domain.ClientReview
	if args.Get(0) != nil {
		reviews = args.Get(0).([]domain.ClientReview)
	}
	return reviews, args.Error(1)
}

// --- Shared fixtures ---

type testRepos struct {
	sales         *MockSaleRepository
	notifications *MockNotificationRepository
	timeLogs      *MockTimeLogRepository
	employees     *MockEmployeeRepository
	overtime      *MockOvertimeRepository
	reviews       *MockReviewRepository
}

func newTestRepos() *testRepos {
	return &testRepos{
		sales:         new(MockSaleRepository),
		notifications: new(MockNotificationRepository),
		timeLogs:      new(MockTimeLogRepository),
		employees:     new(MockEmployeeRepository),
		overtime:      new(MockOvertimeRepository),
		reviews:       new(MockReviewRepository),
	}
}

func (r *testRepos) provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SaleRepo:         r.sales,
		NotificationRepo: r.notifications,
		TimeLogRepo:      r.timeLogs,
		EmployeeRepo:     r.employees,
		OvertimeRepo:     r.overtime,
		ReviewRepo:       r.reviews,
	}
}

// testConfig mirrors the default agency policy with a fixed epoch.
func testConfig() *config.Config {
	return &config.Config{
		PayrollEpoch:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		HighValueThreshold: decimal.NewFromInt(5000),
		HighValueBonus:     decimal.NewFromInt(100),
		OvertimeMultiplier: decimal.NewFromFloat(1.5),
	}
}
