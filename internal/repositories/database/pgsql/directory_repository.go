package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/SscSPs/procurement_backoffice_app/internal/apperrors"
	"github.com/SscSPs/procurement_backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_backoffice_app/internal/core/ports/repositories"
	"github.com/SscSPs/procurement_backoffice_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxDirectoryRepository is a read-only view over the supplier and branch
// tables owned by other subsystems. This core never writes them.
type PgxDirectoryRepository struct {
	BaseRepository
}

// newPgxDirectoryRepository creates a new directory lookup repository.
func newPgxDirectoryRepository(pool *pgxpool.Pool) portsrepo.DirectoryRepositoryFacade {
	return &PgxDirectoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxDirectoryRepository implements portsrepo.DirectoryRepositoryFacade
var _ portsrepo.DirectoryRepositoryFacade = (*PgxDirectoryRepository)(nil)

// SupplierExists reports whether a supplier with the given ID exists.
func (r *PgxDirectoryRepository) SupplierExists(ctx context.Context, supplierID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM suppliers WHERE supplier_id = $1);`, supplierID).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check existence of supplier "+supplierID, err)
	}
	return exists, nil
}

// FindSupplierByID retrieves a supplier record.
func (r *PgxDirectoryRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	var m models.Supplier
	err := r.Pool.QueryRow(ctx, `SELECT supplier_id, company_name FROM suppliers WHERE supplier_id = $1;`, supplierID).
		Scan(&m.SupplierID, &m.CompanyName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find supplier "+supplierID, err)
	}
	return &domain.Supplier{SupplierID: m.SupplierID, CompanyName: m.CompanyName}, nil
}

// ListSuppliers retrieves all suppliers ordered by company name.
func (r *PgxDirectoryRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	rows, err := r.Pool.Query(ctx, `SELECT supplier_id, company_name FROM suppliers ORDER BY company_name;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list suppliers", err)
	}
	defer rows.Close()

	suppliers := []domain.Supplier{}
	for rows.Next() {
		var m models.Supplier
		if err := rows.Scan(&m.SupplierID, &m.CompanyName); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan supplier row", err)
		}
		suppliers = append(suppliers, domain.Supplier{SupplierID: m.SupplierID, CompanyName: m.CompanyName})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating supplier rows", err)
	}

	return suppliers, nil
}

// BranchExists reports whether a branch with the given ID exists.
func (r *PgxDirectoryRepository) BranchExists(ctx context.Context, branchID int) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM branches WHERE branch_id = $1);`, branchID).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check existence of branch "+strconv.Itoa(branchID), err)
	}
	return exists, nil
}

// FindBranchByID retrieves a branch record.
func (r *PgxDirectoryRepository) FindBranchByID(ctx context.Context, branchID int) (*domain.Branch, error) {
	var m models.Branch
	err := r.Pool.QueryRow(ctx, `SELECT branch_id, name FROM branches WHERE branch_id = $1;`, branchID).
		Scan(&m.BranchID, &m.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find branch "+strconv.Itoa(branchID), err)
	}
	return &domain.Branch{BranchID: m.BranchID, Name: m.Name}, nil
}
