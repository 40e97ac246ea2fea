package services

import (
	"context"

	"github.com/SscSPs/procurement_backoffice_app/internal/core/domain"
)

// SupplierDirectorySvc exposes the read-only supplier directory to the
// presentation layer.
type SupplierDirectorySvc interface {
	// ListSuppliers retrieves all suppliers, ordered by company name.
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)

	// GetCompanyName resolves a supplier ID to its company name.
	GetCompanyName(ctx context.Context, supplierID string) (string, error)
}
