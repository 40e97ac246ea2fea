package services

import (
	"context"

	"github.com/SscSPs/procurement_backoffice_app/internal/core/domain"
	"github.com/SscSPs/procurement_backoffice_app/internal/dto"
)

// OrderReaderSvc defines read operations for purchase order data
type OrderReaderSvc interface {
	// GetPurchaseOrder retrieves a purchase order by its PO number with
	// supplier and lines attached.
	GetPurchaseOrder(ctx context.Context, poNumber string) (*domain.PurchaseOrder, error)

	// ListPurchaseOrders retrieves a cursor-paginated page of purchase orders.
	ListPurchaseOrders(ctx context.Context, params dto.ListPurchaseOrdersParams) (*dto.ListPurchaseOrdersResponse, error)

	// CountLines returns the number of lines owned by a purchase order.
	CountLines(ctx context.Context, poNumber string) (int64, error)
}

// OrderWriterSvc defines write operations for purchase order data
type OrderWriterSvc interface {
	// CreatePurchaseOrder validates and atomically persists one header plus
	// its lines submitted together. Every violated field is reported in one
	// ValidationErrors; nothing is written unless the whole submission passes.
	CreatePurchaseOrder(ctx context.Context, req dto.CreatePurchaseOrderRequest) (*domain.PurchaseOrder, error)

	// UpdateStatus assigns a new workflow status to a purchase order.
	UpdateStatus(ctx context.Context, poNumber string, req dto.UpdateOrderStatusRequest) (*domain.PurchaseOrder, error)

	// DeletePurchaseOrder removes a purchase order and all of its lines.
	DeletePurchaseOrder(ctx context.Context, poNumber string) error
}

// PurchaseOrderSvcFacade combines all purchase-order service interfaces.
type PurchaseOrderSvcFacade interface {
	OrderReaderSvc
	OrderWriterSvc
}
