package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/procurement_backoffice_app/internal/apperrors"
	"github.com/SscSPs/procurement_backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procurement_backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_backoffice_app/internal/middleware"
)

// supplierDirectoryService exposes read-only supplier lookups.
type supplierDirectoryService struct {
	directory portsrepo.DirectoryRepositoryFacade
}

// NewSupplierDirectoryService creates a new SupplierDirectoryService.
func NewSupplierDirectoryService(directory portsrepo.DirectoryRepositoryFacade) portssvc.SupplierDirectorySvc {
	return &supplierDirectoryService{directory: directory}
}

var _ portssvc.SupplierDirectorySvc = (*supplierDirectoryService)(nil)

// ListSuppliers retrieves all suppliers ordered by company name.
func (s *supplierDirectoryService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	suppliers, err := s.directory.ListSuppliers(ctx)
	if err != nil {
		logger.Error("Failed to list suppliers", "error", err)
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return suppliers, nil
}

// GetCompanyName resolves a supplier ID to its company name.
func (s *supplierDirectoryService) GetCompanyName(ctx context.Context, supplierID string) (string, error) {
	supplier, err := s.directory.FindSupplierByID(ctx, supplierID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", err
		}
		return "", fmt.Errorf("failed to look up supplier %s: %w", supplierID, err)
	}
	return supplier.CompanyName, nil
}
