package services

import (
	"context"

	"github.com/SscSPs/procurement_backoffice_app/internal/dto"
)

// OrderQuerySvc answers keyword searches and status aggregations over the
// purchase order data.
type OrderQuerySvc interface {
	// Search retrieves headers matching the keyword across PO number,
	// supplier company name and status, together with the unfiltered total
	// order count. An empty match set is a valid success.
	Search(ctx context.Context, params dto.SearchOrdersParams) (*dto.SearchOrdersResponse, error)

	// StatusSummary aggregates order counts per workflow status.
	StatusSummary(ctx context.Context) (*dto.StatusSummaryResponse, error)
}
