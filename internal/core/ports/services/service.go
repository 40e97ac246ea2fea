package services

// ServiceContainer holds instances of all the application services.
// Handlers receive this and pick the interfaces they need.
type ServiceContainer struct {
	PurchaseOrder PurchaseOrderSvcFacade
	OrderQuery    OrderQuerySvc
	Reporting     OrderReportingSvc
	Supplier      SupplierDirectorySvc
}
