package pgsql

import (
	portsrepo "github.com/assureline/payroll_engine/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository onto one database handle.
func NewRepositoryProvider(db DBTX) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SaleRepo:         NewSaleRepository(db),
		NotificationRepo: NewNotificationRepository(db),
		TimeLogRepo:      NewTimeLogRepository(db),
		EmployeeRepo:     NewEmployeeRepository(db),
		OvertimeRepo:     NewOvertimeRepository(db),
		ReviewRepo:       NewReviewRepository(db),
	}
}
