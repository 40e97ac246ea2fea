package dto

import "github.com/SscSPs/procurement_backoffice_app/internal/core/domain"

// SearchOrdersParams holds the keyword filter and page-based pagination for
// the search boundary.
type SearchOrdersParams struct {
	Keyword string
	Page    int
	PerPage int
}

// SearchOrdersResponse couples the filtered matches with the unfiltered
// total order count. TotalOrders is computed independently of the keyword so
// callers always see how many orders exist overall, no matter how narrow the
// filter is.
type SearchOrdersResponse struct {
	Results     []PurchaseOrderResponse `json:"results"`
	TotalOrders int64                   `json:"totalOrders"`
}

// StatusSummaryResponse reports the per-status order counts alongside the
// total order count. Statuses with zero orders are omitted.
type StatusSummaryResponse struct {
	Counts      []domain.StatusCount `json:"counts"`
	TotalOrders int64                `json:"totalOrders"`
}

// LineCountResponse reports how many lines a purchase order owns.
type LineCountResponse struct {
	PONumber  string `json:"poNumber"`
	LineCount int64  `json:"lineCount"`
}
