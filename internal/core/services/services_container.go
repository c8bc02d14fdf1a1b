package services

import (
	portsrepo "github.com/assureline/payroll_engine/internal/core/ports/repositories"
	portssvc "github.com/assureline/payroll_engine/internal/core/ports/services"
	"github.com/assureline/payroll_engine/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Payroll first since reporting builds on it.
	container.Payroll = NewPayrollService(cfg, repos)

	container.Ingestion = NewIngestionService(cfg, repos)
	container.Notification = NewNotificationService(repos.NotificationRepo)
	container.Reporting = NewReportingService(container.Payroll, repos.EmployeeRepo, repos.SaleRepo)
	container.Directory = NewDirectoryService(repos.EmployeeRepo)

	return container
}

// Compile-time interface checks for the service implementations.
var (
	_ portssvc.IngestionSvcFacade    = (*ingestionService)(nil)
	_ portssvc.PayrollSvcFacade      = (*payrollService)(nil)
	_ portssvc.NotificationSvcFacade = (*notificationService)(nil)
	_ portssvc.ReportingSvcFacade    = (*reportingService)(nil)
	_ portssvc.DirectorySvcFacade    = (*directoryService)(nil)
)
