package pgsql

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"

	"github.com/assureline/payroll_engine/internal/apperrors"
	"github.com/assureline/payroll_engine/internal/core/domain"
)

func testNotification() domain.HighValuePolicyNotification {
	created := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)
	return domain.HighValuePolicyNotification{
		PolicyNumber: "POL-HV",
		EmployeeID:   "emp-1",
		PolicyAmount: decimal.NewFromInt(6000),
		PeriodStart:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:       domain.NotificationPending,
		IsEditable:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     created,
			CreatedBy:     "svc-import",
			LastUpdatedAt: created,
			LastUpdatedBy: "svc-import",
		},
	}
}

func TestCreateIfAbsent_InsertsNewRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewNotificationRepository(mock)
	n := testNotification()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO high_value_policy_notifications")).
		WithArgs(n.PolicyNumber, n.EmployeeID, n.PolicyAmount, n.PeriodStart, n.PeriodEnd,
			string(n.Status), n.IsEditable, n.CreatedAt, n.CreatedBy, n.LastUpdatedAt, n.LastUpdatedBy).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	created, err := repo.CreateIfAbsent(context.Background(), n)
	if err != nil {
		t.Fatalf("CreateIfAbsent returned error: %v", err)
	}
	if !created {
		t.Fatal("expected created=true for a fresh policy number")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateIfAbsent_ExistingRowIsNoOp(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewNotificationRepository(mock)
	n := testNotification()

	// ON CONFLICT DO NOTHING reports zero affected rows for the loser.
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO high_value_policy_notifications")).
		WithArgs(n.PolicyNumber, n.EmployeeID, n.PolicyAmount, n.PeriodStart, n.PeriodEnd,
			string(n.Status), n.IsEditable, n.CreatedAt, n.CreatedBy, n.LastUpdatedAt, n.LastUpdatedBy).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	created, err := repo.CreateIfAbsent(context.Background(), n)
	if err != nil {
		t.Fatalf("CreateIfAbsent returned error: %v", err)
	}
	if created {
		t.Fatal("expected created=false when the policy number already exists")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTransitionStatus_AppliesCompareAndSet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewNotificationRepository(mock)
	now := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE high_value_policy_notifications")).
		WithArgs(string(domain.NotificationResolved), false, now, "admin-1", "POL-HV", string(domain.NotificationPending)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.TransitionStatus(context.Background(), "POL-HV",
		domain.NotificationPending, domain.NotificationResolved, "admin-1", now)
	if err != nil {
		t.Fatalf("TransitionStatus returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTransitionStatus_StaleExpectationIsConflict(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewNotificationRepository(mock)
	now := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	n := testNotification()
	n.Status = domain.NotificationResolved

	mock.ExpectExec(regexp.QuoteMeta("UPDATE high_value_policy_notifications")).
		WithArgs(string(domain.NotificationReviewed), true, now, "admin-1", "POL-HV", string(domain.NotificationPending)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	// The follow-up lookup distinguishes a conflict from a missing row.
	mock.ExpectQuery(regexp.QuoteMeta("FROM high_value_policy_notifications")).
		WithArgs("POL-HV").
		WillReturnRows(pgxmock.NewRows([]string{
			"policy_number", "employee_id", "policy_amount", "period_start", "period_end",
			"status", "is_editable", "created_at", "created_by", "last_updated_at", "last_updated_by",
		}).AddRow(n.PolicyNumber, n.EmployeeID, n.PolicyAmount, n.PeriodStart, n.PeriodEnd,
			string(n.Status), n.IsEditable, n.CreatedAt, n.CreatedBy, n.LastUpdatedAt, n.LastUpdatedBy))

	err = repo.TransitionStatus(context.Background(), "POL-HV",
		domain.NotificationPending, domain.NotificationReviewed, "admin-1", now)
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTransitionStatus_UnknownPolicyIsNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewNotificationRepository(mock)
	now := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE high_value_policy_notifications")).
		WithArgs(string(domain.NotificationResolved), false, now, "admin-1", "POL-MISSING", string(domain.NotificationPending)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	mock.ExpectQuery(regexp.QuoteMeta("FROM high_value_policy_notifications")).
		WithArgs("POL-MISSING").
		WillReturnRows(pgxmock.NewRows([]string{
			"policy_number", "employee_id", "policy_amount", "period_start", "period_end",
			"status", "is_editable", "created_at", "created_by", "last_updated_at", "last_updated_by",
		}))

	err = repo.TransitionStatus(context.Background(), "POL-MISSING",
		domain.NotificationPending, domain.NotificationResolved, "admin-1", now)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListByStatus_NilFilterPassesNull(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewNotificationRepository(mock)
	n := testNotification()

	mock.ExpectQuery(regexp.QuoteMeta("FROM high_value_policy_notifications")).
		WithArgs((*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{
			"policy_number", "employee_id", "policy_amount", "period_start", "period_end",
			"status", "is_editable", "created_at", "created_by", "last_updated_at", "last_updated_by",
		}).AddRow(n.PolicyNumber, n.EmployeeID, n.PolicyAmount, n.PeriodStart, n.PeriodEnd,
			string(n.Status), n.IsEditable, n.CreatedAt, n.CreatedBy, n.LastUpdatedAt, n.LastUpdatedBy))

	notifications, err := repo.ListByStatus(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListByStatus returned error: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifications))
	}
	if notifications[0].Status != domain.NotificationPending {
		t.Fatalf("unexpected status %s", notifications[0].Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
