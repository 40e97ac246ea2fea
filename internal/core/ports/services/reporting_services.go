package services

import (
	"context"

	"github.com/SscSPs/procurement_backoffice_app/internal/dto"
)

// OrderReportingSvc produces the supplier/date-range report consumed by the
// external document renderer.
type OrderReportingSvc interface {
	// ReportBySupplierAndDate retrieves the orders of one supplier within an
	// inclusive date range, supplier and lines eagerly attached, most recent
	// order first. A supplier with no orders in range yields an empty report.
	ReportBySupplierAndDate(ctx context.Context, params dto.SupplierDateReportParams) (*dto.SupplierDateReportResponse, error)
}
