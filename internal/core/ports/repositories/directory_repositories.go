package repositories

import (
	"context"

	"github.com/SscSPs/procurement_backoffice_app/internal/core/domain"
)

// SupplierDirectory is the read-only lookup into the supplier records owned
// by another subsystem.
type SupplierDirectory interface {
	// SupplierExists reports whether a supplier with the given ID exists.
	SupplierExists(ctx context.Context, supplierID string) (bool, error)

	// FindSupplierByID retrieves a supplier record, including its company name.
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)

	// ListSuppliers retrieves all supplier records, ordered by company name.
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
}

// BranchDirectory is the read-only lookup into the branch records owned by
// another subsystem.
type BranchDirectory interface {
	// BranchExists reports whether a branch with the given ID exists.
	BranchExists(ctx context.Context, branchID int) (bool, error)

	// FindBranchByID retrieves a branch record.
	FindBranchByID(ctx context.Context, branchID int) (*domain.Branch, error)
}

// DirectoryRepositoryFacade combines the supplier and branch directories.
type DirectoryRepositoryFacade interface {
	SupplierDirectory
	BranchDirectory
}
