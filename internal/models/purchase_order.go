package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus indicates the workflow state of a purchase order row.
type OrderStatus string

// PurchaseOrder mirrors a row of the purchase_orders table.
type PurchaseOrder struct {
	PONumber   string          `json:"poNumber"`
	SupplierID string          `json:"supplierID"`
	BranchID   int             `json:"branchID"`
	OrderDate  time.Time       `json:"orderDate"`
	Total      decimal.Decimal `json:"total"`
	Status     OrderStatus     `json:"status"`
	// Joined from suppliers on eager reads; not a column of purchase_orders.
	SupplierName string `json:"supplierName,omitempty"`
	AuditFields
}

// PurchaseOrderLine mirrors a row of the purchase_order_lines table.
type PurchaseOrderLine struct {
	LineID       string          `json:"lineID"`
	PONumber     string          `json:"poNumber"`
	ProductID    string          `json:"productID"`
	Quantity     int             `json:"quantity"`
	Amount       decimal.Decimal `json:"amount"`
	ReceivedDays *int            `json:"receivedDays,omitempty"`
	AuditFields
}

// AuditFields holds the audit columns shared by all tables.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
