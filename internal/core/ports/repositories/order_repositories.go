package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/procurement_backoffice_app/internal/core/domain"
)

// OrderReader defines read operations for purchase order data
type OrderReader interface {
	// FindOrderByPONumber retrieves a purchase order with its supplier name
	// and lines eagerly attached.
	FindOrderByPONumber(ctx context.Context, poNumber string) (*domain.PurchaseOrder, error)

	// ListOrders retrieves a cursor-paginated list of purchase orders ordered
	// by order date descending. It returns the orders, a token for the next
	// page, and an error.
	ListOrders(ctx context.Context, limit int, nextToken *string) ([]domain.PurchaseOrder, *string, error)

	// SearchOrders retrieves headers whose PO number, supplier company name
	// or status matches the keyword. Supplier names are joined in.
	SearchOrders(ctx context.Context, keyword string, limit int, offset int) ([]domain.PurchaseOrder, error)

	// CountLines returns the number of lines owned by a purchase order;
	// 0 when the order has no lines or does not exist.
	CountLines(ctx context.Context, poNumber string) (int64, error)

	// CountAll returns the total purchase order count, unaffected by any filter.
	CountAll(ctx context.Context) (int64, error)

	// CountByStatus returns one aggregate row per status that has at least
	// one purchase order. Statuses with zero orders are omitted.
	CountByStatus(ctx context.Context) ([]domain.StatusCount, error)

	// ReportBySupplierAndDate retrieves the orders of one supplier whose
	// order date lies within the inclusive [start, end] range, most recent
	// first, with supplier and lines eagerly attached.
	ReportBySupplierAndDate(ctx context.Context, supplierID string, start, end time.Time) ([]domain.PurchaseOrder, error)
}

// OrderWriter defines write operations for purchase order data
type OrderWriter interface {
	// SavePurchaseOrder persists a header and all of its lines atomically.
	// A duplicate PO number fails with ErrDuplicate and writes nothing.
	SavePurchaseOrder(ctx context.Context, order domain.PurchaseOrder, lines []domain.PurchaseOrderLine) error

	// UpdateOrderStatus replaces the status of a purchase order.
	UpdateOrderStatus(ctx context.Context, poNumber string, status domain.OrderStatus, updatedAt time.Time) error

	// DeletePurchaseOrder removes a header; its lines are removed with it.
	DeletePurchaseOrder(ctx context.Context, poNumber string) error
}

// OrderRepositoryFacade combines all purchase-order repository interfaces.
// This is a facade for clients that need access to all operations.
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}
