package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/procurement_backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procurement_backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_backoffice_app/internal/dto"
	"github.com/SscSPs/procurement_backoffice_app/internal/middleware"
)

const (
	defaultSearchPerPage = 20
	maxSearchPerPage     = 100
)

// orderQueryService answers keyword searches and status summaries over
// purchase orders.
type orderQueryService struct {
	orderRepo portsrepo.OrderRepositoryFacade
}

// NewOrderQueryService creates a new OrderQueryService.
func NewOrderQueryService(orderRepo portsrepo.OrderRepositoryFacade) portssvc.OrderQuerySvc {
	return &orderQueryService{orderRepo: orderRepo}
}

var _ portssvc.OrderQuerySvc = (*orderQueryService)(nil)

// Search matches the keyword against PO numbers, supplier company names and
// exact status values. TotalOrders always reflects the whole table, not the
// match set, so callers can show "N of M orders".
func (s *orderQueryService) Search(ctx context.Context, params dto.SearchOrdersParams) (*dto.SearchOrdersResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	page := params.Page
	if page < 1 {
		page = 1
	}
	perPage := params.PerPage
	if perPage < 1 {
		perPage = defaultSearchPerPage
	}
	if perPage > maxSearchPerPage {
		perPage = maxSearchPerPage
	}

	matches := []domain.PurchaseOrder{}
	keyword := strings.TrimSpace(params.Keyword)
	if keyword != "" {
		found, err := s.orderRepo.SearchOrders(ctx, keyword, perPage, (page-1)*perPage)
		if err != nil {
			logger.Error("Failed to search purchase orders", "keyword", keyword, "error", err)
			return nil, fmt.Errorf("failed to search purchase orders: %w", err)
		}
		matches = found
	}

	total, err := s.orderRepo.CountAll(ctx)
	if err != nil {
		logger.Error("Failed to count purchase orders", "error", err)
		return nil, fmt.Errorf("failed to count purchase orders: %w", err)
	}

	logger.Debug("Purchase order search completed", "keyword", keyword, "matches", len(matches), "total_orders", total)
	return &dto.SearchOrdersResponse{
		Results:     dto.ToPurchaseOrderResponses(matches),
		TotalOrders: total,
	}, nil
}

// StatusSummary returns per-status order counts alongside the overall total.
func (s *orderQueryService) StatusSummary(ctx context.Context) (*dto.StatusSummaryResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	counts, err := s.orderRepo.CountByStatus(ctx)
	if err != nil {
		logger.Error("Failed to count purchase orders by status", "error", err)
		return nil, fmt.Errorf("failed to count purchase orders by status: %w", err)
	}

	total, err := s.orderRepo.CountAll(ctx)
	if err != nil {
		logger.Error("Failed to count purchase orders", "error", err)
		return nil, fmt.Errorf("failed to count purchase orders: %w", err)
	}

	return &dto.StatusSummaryResponse{
		Counts:      counts,
		TotalOrders: total,
	}, nil
}
