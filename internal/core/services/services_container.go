package services

import (
	portsrepo "github.com/SscSPs/procurement_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procurement_backoffice_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		PurchaseOrder: NewPurchaseOrderService(repos.OrderRepo, repos.DirectoryRepo),
		OrderQuery:    NewOrderQueryService(repos.OrderRepo),
		Reporting:     NewOrderReportingService(repos.OrderRepo),
		Supplier:      NewSupplierDirectoryService(repos.DirectoryRepo),
	}
}
