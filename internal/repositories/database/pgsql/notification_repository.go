package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/assureline/payroll_engine/internal/apperrors"
	"github.com/assureline/payroll_engine/internal/core/domain"
	portsrepo "github.com/assureline/payroll_engine/internal/core/ports/repositories"
)

type PgxNotificationRepository struct {
	BaseRepository
}

// NewNotificationRepository creates a new high-value notification repository
// backed by Postgres.
func NewNotificationRepository(db DBTX) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{BaseRepository{DB: db}}
}

// Ensure PgxNotificationRepository implements portsrepo.NotificationRepositoryFacade
var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

const notificationColumns = `policy_number, employee_id, policy_amount, period_start, period_end, status, is_editable, created_at, created_by, last_updated_at, last_updated_by`

// CreateIfAbsent relies on the unique key on policy_number: the conflict
// clause makes the insert a single atomic insert-if-absent, so concurrent
// ingestions of the same policy race safely and exactly one wins.
func (r *PgxNotificationRepository) CreateIfAbsent(ctx context.Context, notification domain.HighValuePolicyNotification) (bool, error) {
	query := `
		INSERT INTO high_value_policy_notifications (` + notificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (policy_number) DO NOTHING;
	`
	tag, err := r.DB.Exec(ctx, query,
		notification.PolicyNumber,
		notification.EmployeeID,
		notification.PolicyAmount,
		notification.PeriodStart,
		notification.PeriodEnd,
		string(notification.Status),
		notification.IsEditable,
		notification.CreatedAt,
		notification.CreatedBy,
		notification.LastUpdatedAt,
		notification.LastUpdatedBy,
	)
	if err != nil {
		return false, fmt.Errorf("failed to create notification for policy %s: %w", notification.PolicyNumber, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PgxNotificationRepository) FindByPolicyNumber(ctx context.Context, policyNumber string) (*domain.HighValuePolicyNotification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM high_value_policy_notifications
		WHERE policy_number = $1;
	`
	notification, err := scanNotification(r.DB.QueryRow(ctx, query, policyNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find notification for policy %s: %w", policyNumber, err)
	}
	return notification, nil
}

func (r *PgxNotificationRepository) ListByStatus(ctx context.Context, status *domain.NotificationStatus) ([]domain.HighValuePolicyNotification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM high_value_policy_notifications
		WHERE ($1::text IS NULL OR status = $1)
		ORDER BY created_at DESC, policy_number;
	`
	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}
	rows, err := r.DB.Query(ctx, query, statusArg)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()
	return collectNotifications(rows)
}

func (r *PgxNotificationRepository) ListUnresolvedInPeriod(ctx context.Context, start, end time.Time) ([]domain.HighValuePolicyNotification, error) {
	query := `
		SELECT n.policy_number, n.employee_id, n.policy_amount, n.period_start, n.period_end, n.status, n.is_editable, n.created_at, n.created_by, n.last_updated_at, n.last_updated_by
		FROM high_value_policy_notifications n
		JOIN policy_sales s ON s.policy_number = n.policy_number
		WHERE n.status <> $1 AND s.sale_date >= $2 AND s.sale_date < $3
		ORDER BY n.policy_number;
	`
	rows, err := r.DB.Query(ctx, query, string(domain.NotificationResolved), start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list unresolved notifications: %w", err)
	}
	defer rows.Close()
	return collectNotifications(rows)
}

// TransitionStatus is a compare-and-set on the status column. The WHERE
// clause carries the expected current status, so a concurrent transition
// that got there first leaves zero rows affected and surfaces as a conflict.
func (r *PgxNotificationRepository) TransitionStatus(ctx context.Context, policyNumber string, from, to domain.NotificationStatus, updatedBy string, now time.Time) error {
	query := `
		UPDATE high_value_policy_notifications
		SET status = $1, is_editable = $2, last_updated_at = $3, last_updated_by = $4
		WHERE policy_number = $5 AND status = $6;
	`
	isEditable := to != domain.NotificationResolved
	tag, err := r.DB.Exec(ctx, query,
		string(to),
		isEditable,
		now,
		updatedBy,
		policyNumber,
		string(from),
	)
	if err != nil {
		return fmt.Errorf("failed to transition notification %s: %w", policyNumber, err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	// Zero rows: either the notification does not exist or its status moved.
	if _, err := r.FindByPolicyNumber(ctx, policyNumber); err != nil {
		return err
	}
	return fmt.Errorf("notification %s is no longer %s: %w", policyNumber, from, apperrors.ErrConflict)
}

func scanNotification(row pgx.Row) (*domain.HighValuePolicyNotification, error) {
	var notification domain.HighValuePolicyNotification
	var status string
	err := row.Scan(
		&notification.PolicyNumber,
		&notification.EmployeeID,
		&notification.PolicyAmount,
		&notification.PeriodStart,
		&notification.PeriodEnd,
		&status,
		&notification.IsEditable,
		&notification.CreatedAt,
		&notification.CreatedBy,
		&notification.LastUpdatedAt,
		&notification.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	notification.Status = domain.NotificationStatus(status)
	return &notification, nil
}

func collectNotifications(rows pgx.Rows) ([]domain.HighValuePolicyNotification, error) {
	var notifications []domain.HighValuePolicyNotification
	for rows.Next() {
		notification, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, *notification)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating notification rows: %w", err)
	}
	return notifications, nil
}
