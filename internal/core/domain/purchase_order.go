package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder represents the header of a purchase order placed with a
// supplier. The PO number is assigned by the caller and immutable; the header
// exclusively owns its lines.
type PurchaseOrder struct {
	PONumber   string          `json:"poNumber"`   // Primary key, caller-assigned
	SupplierID string          `json:"supplierID"` // Must reference an existing supplier
	BranchID   int             `json:"branchID"`   // Must reference an existing branch
	OrderDate  time.Time       `json:"orderDate"`
	Total      decimal.Decimal `json:"total"` // Caller-supplied, not recomputed from lines
	Status     OrderStatus     `json:"status"`

	// Populated on eager reads; zero-valued otherwise.
	SupplierName string              `json:"supplierName,omitempty"`
	Lines        []PurchaseOrderLine `json:"lines,omitempty"`

	AuditFields
}

// PurchaseOrderLine is one ordered product entry within a purchase order.
// Lines are created together with their header and never exist without one.
type PurchaseOrderLine struct {
	LineID       string          `json:"lineID"` // Internal identifier (UUID)
	PONumber     string          `json:"poNumber"`
	ProductID    string          `json:"productID"` // SKU of the ordered product
	Quantity     int             `json:"quantity"`  // >= 1
	Amount       decimal.Decimal `json:"amount"`    // >= 0
	ReceivedDays *int            `json:"receivedDays,omitempty"`

	AuditFields
}
