package dto

import (
	"time"

	"github.com/SscSPs/procurement_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePurchaseOrderHeader carries the header fields of an intake submission.
// Numeric and date fields use pointers so that "absent" and "zero" stay
// distinguishable; a non-numeric branchID fails JSON binding before the
// service sees it.
type CreatePurchaseOrderHeader struct {
	PONumber   string           `json:"poNumber"`
	SupplierID string           `json:"supplierID"`
	BranchID   *int             `json:"branchID"`
	OrderDate  string           `json:"orderDate"` // Calendar date, YYYY-MM-DD
	Total      *decimal.Decimal `json:"total"`
	Status     string           `json:"status,omitempty"` // Optional, defaults to DRAFT
}

// CreatePurchaseOrderLine carries one line of an intake submission.
type CreatePurchaseOrderLine struct {
	ProductID    string           `json:"productID"`
	Quantity     *int             `json:"quantity"`
	Amount       *decimal.Decimal `json:"amount"`
	ReceivedDays *int             `json:"receivedDays,omitempty"`
}

// CreatePurchaseOrderRequest is the intake payload: exactly one header plus
// zero-or-more lines, submitted together as one logical unit. The explicit
// header/lines split replaces field-shape sniffing on a flat record list.
type CreatePurchaseOrderRequest struct {
	Header CreatePurchaseOrderHeader `json:"header" binding:"required"`
	Lines  []CreatePurchaseOrderLine `json:"lines"`
}

// UpdateOrderStatusRequest carries a status mutation.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PurchaseOrderLineResponse is the API shape of one purchase order line.
type PurchaseOrderLineResponse struct {
	LineID       string          `json:"lineID"`
	ProductID    string          `json:"productID"`
	Quantity     int             `json:"quantity"`
	Amount       decimal.Decimal `json:"amount"`
	ReceivedDays *int            `json:"receivedDays,omitempty"`
}

// PurchaseOrderResponse is the API shape of a purchase order header with its
// optionally attached supplier name and lines.
type PurchaseOrderResponse struct {
	PONumber     string                      `json:"poNumber"`
	SupplierID   string                      `json:"supplierID"`
	SupplierName string                      `json:"supplierName,omitempty"`
	BranchID     int                         `json:"branchID"`
	OrderDate    time.Time                   `json:"orderDate"`
	Total        decimal.Decimal             `json:"total"`
	Status       string                      `json:"status"`
	Lines        []PurchaseOrderLineResponse `json:"lines,omitempty"`
	CreatedAt    time.Time                   `json:"createdAt"`
}

// ListPurchaseOrdersParams holds parameters for cursor-paginated listing.
type ListPurchaseOrdersParams struct {
	Limit     int
	NextToken *string
}

// ListPurchaseOrdersResponse is one page of purchase orders plus the token
// for the next page, if any.
type ListPurchaseOrdersResponse struct {
	Orders    []PurchaseOrderResponse `json:"orders"`
	NextToken *string                 `json:"nextToken,omitempty"`
}

// ToPurchaseOrderLineResponse converts a domain line to its response DTO.
func ToPurchaseOrderLineResponse(l *domain.PurchaseOrderLine) PurchaseOrderLineResponse {
	return PurchaseOrderLineResponse{
		LineID:       l.LineID,
		ProductID:    l.ProductID,
		Quantity:     l.Quantity,
		Amount:       l.Amount,
		ReceivedDays: l.ReceivedDays,
	}
}

// ToPurchaseOrderResponse converts a domain purchase order to its response DTO.
func ToPurchaseOrderResponse(o *domain.PurchaseOrder) PurchaseOrderResponse {
	resp := PurchaseOrderResponse{
		PONumber:     o.PONumber,
		SupplierID:   o.SupplierID,
		SupplierName: o.SupplierName,
		BranchID:     o.BranchID,
		OrderDate:    o.OrderDate,
		Total:        o.Total,
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt,
	}
	if len(o.Lines) > 0 {
		resp.Lines = make([]PurchaseOrderLineResponse, len(o.Lines))
		for i := range o.Lines {
			resp.Lines[i] = ToPurchaseOrderLineResponse(&o.Lines[i])
		}
	}
	return resp
}

// ToPurchaseOrderResponses converts a slice of domain purchase orders.
func ToPurchaseOrderResponses(orders []domain.PurchaseOrder) []PurchaseOrderResponse {
	responses := make([]PurchaseOrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToPurchaseOrderResponse(&orders[i])
	}
	return responses
}
