package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/procurement_backoffice_app/internal/apperrors"
	"github.com/SscSPs/procurement_backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procurement_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procurement_backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_backoffice_app/internal/dto"
	"github.com/SscSPs/procurement_backoffice_app/internal/middleware"
	"github.com/SscSPs/procurement_backoffice_app/internal/utils/procurement"
)

// orderDateLayout is the calendar date format accepted on intake.
const orderDateLayout = "2006-01-02"

// purchaseOrderService provides intake and lifecycle operations for purchase orders.
type purchaseOrderService struct {
	orderRepo portsrepo.OrderRepositoryFacade
	directory portsrepo.DirectoryRepositoryFacade
}

// NewPurchaseOrderService creates a new PurchaseOrderService.
func NewPurchaseOrderService(orderRepo portsrepo.OrderRepositoryFacade, directory portsrepo.DirectoryRepositoryFacade) portssvc.PurchaseOrderSvcFacade {
	return &purchaseOrderService{
		orderRepo: orderRepo,
		directory: directory,
	}
}

// Ensure purchaseOrderService implements the portssvc.PurchaseOrderSvcFacade interface
var _ portssvc.PurchaseOrderSvcFacade = (*purchaseOrderService)(nil)

// CreatePurchaseOrder validates one header plus its lines and persists them
// atomically. Validation runs to completion before any write so the caller
// sees every violated field of the submission, not only the first.
func (s *purchaseOrderService) CreatePurchaseOrder(ctx context.Context, req dto.CreatePurchaseOrderRequest) (*domain.PurchaseOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	violations := &apperrors.ValidationErrors{}

	poNumber := strings.TrimSpace(req.Header.PONumber)
	if poNumber == "" {
		violations.Add("header.poNumber", "is required")
	}

	if req.Header.BranchID == nil {
		violations.Add("header.branchID", "is required and must be an integer")
	} else {
		exists, err := s.directory.BranchExists(ctx, *req.Header.BranchID)
		if err != nil {
			logger.Error("Failed to check branch existence", slog.Int("branch_id", *req.Header.BranchID), slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to verify branch %d: %w", *req.Header.BranchID, err)
		}
		if !exists {
			violations.Addf("header.branchID", "branch %d does not exist", *req.Header.BranchID)
		}
	}

	supplierID := strings.TrimSpace(req.Header.SupplierID)
	if supplierID == "" {
		violations.Add("header.supplierID", "is required")
	} else {
		exists, err := s.directory.SupplierExists(ctx, supplierID)
		if err != nil {
			logger.Error("Failed to check supplier existence", slog.String("supplier_id", supplierID), slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to verify supplier %s: %w", supplierID, err)
		}
		if !exists {
			violations.Addf("header.supplierID", "supplier %s does not exist", supplierID)
		}
	}

	if req.Header.Total == nil {
		violations.Add("header.total", "is required")
	} else if req.Header.Total.IsNegative() {
		violations.Add("header.total", "must be greater than or equal to 0")
	}

	var orderDate time.Time
	if strings.TrimSpace(req.Header.OrderDate) == "" {
		violations.Add("header.orderDate", "is required")
	} else {
		parsed, err := time.Parse(orderDateLayout, req.Header.OrderDate)
		if err != nil {
			violations.Addf("header.orderDate", "%q is not a valid calendar date (expected YYYY-MM-DD)", req.Header.OrderDate)
		} else {
			orderDate = parsed
		}
	}

	status := domain.StatusDraft
	if req.Header.Status != "" {
		parsed, err := domain.ParseOrderStatus(req.Header.Status)
		if err != nil {
			violations.Addf("header.status", "%q is not a valid order status", req.Header.Status)
		} else {
			status = parsed
		}
	}

	// Validate each line independently so every violation is reported.
	for i, line := range req.Lines {
		field := func(name string) string { return fmt.Sprintf("lines[%d].%s", i, name) }
		if strings.TrimSpace(line.ProductID) == "" {
			violations.Add(field("productID"), "is required")
		}
		if line.Quantity == nil {
			violations.Add(field("quantity"), "is required and must be an integer")
		} else if *line.Quantity < 1 {
			violations.Add(field("quantity"), "must be at least 1")
		}
		if line.Amount == nil {
			violations.Add(field("amount"), "is required")
		} else if line.Amount.IsNegative() {
			violations.Add(field("amount"), "must be greater than or equal to 0")
		}
	}

	// Fail closed: nothing is written unless the whole submission is valid.
	if violations.HasViolations() {
		logger.Warn("Purchase order submission failed validation", slog.String("po_number", poNumber), slog.Int("violation_count", len(violations.Violations)))
		return nil, violations
	}

	now := time.Now().UTC()
	domainLines := make([]domain.PurchaseOrderLine, len(req.Lines))
	for i, line := range req.Lines {
		domainLines[i] = domain.PurchaseOrderLine{
			LineID:       uuid.NewString(),
			PONumber:     poNumber,
			ProductID:    strings.TrimSpace(line.ProductID),
			Quantity:     *line.Quantity,
			Amount:       *line.Amount,
			ReceivedDays: line.ReceivedDays,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
	}

	domainOrder := domain.PurchaseOrder{
		PONumber:   poNumber,
		SupplierID: supplierID,
		BranchID:   *req.Header.BranchID,
		OrderDate:  orderDate,
		Total:      *req.Header.Total,
		Status:     status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	// The header total is trusted as submitted; a mismatch against the line
	// sum is reported, not rejected.
	if len(domainLines) > 0 && !procurement.TotalMatches(domainOrder.Total, domainLines) {
		logger.Warn("Header total does not match sum of line amounts",
			slog.String("po_number", poNumber),
			slog.String("header_total", domainOrder.Total.String()),
			slog.String("computed_total", procurement.ComputedTotal(domainLines).String()),
		)
	}

	if err := s.orderRepo.SavePurchaseOrder(ctx, domainOrder, domainLines); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate purchase order number on create", slog.String("po_number", poNumber))
			return nil, err
		}
		logger.Error("Failed to save purchase order", slog.String("po_number", poNumber), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save purchase order %s: %w", poNumber, err)
	}

	logger.Info("Purchase order created successfully", slog.String("po_number", poNumber), slog.Int("line_count", len(domainLines)))
	domainOrder.Lines = domainLines
	return &domainOrder, nil
}

// GetPurchaseOrder retrieves a purchase order with supplier and lines attached.
func (s *purchaseOrderService) GetPurchaseOrder(ctx context.Context, poNumber string) (*domain.PurchaseOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	order, err := s.orderRepo.FindOrderByPONumber(ctx, poNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find purchase order", slog.String("po_number", poNumber), slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Debug("Purchase order retrieved successfully", slog.String("po_number", poNumber), slog.Int("line_count", len(order.Lines)))
	return order, nil
}

// ListPurchaseOrders retrieves a cursor-paginated page of purchase orders.
func (s *purchaseOrderService) ListPurchaseOrders(ctx context.Context, params dto.ListPurchaseOrdersParams) (*dto.ListPurchaseOrdersResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	orders, nextToken, err := s.orderRepo.ListOrders(ctx, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list purchase orders from repository", "error", err)
		return nil, fmt.Errorf("failed to retrieve purchase orders: %w", err)
	}

	resp := &dto.ListPurchaseOrdersResponse{
		Orders:    dto.ToPurchaseOrderResponses(orders),
		NextToken: nextToken,
	}

	logger.Info("Purchase orders listed successfully", "count", len(orders))
	return resp, nil
}

// CountLines returns the number of lines owned by a purchase order.
func (s *purchaseOrderService) CountLines(ctx context.Context, poNumber string) (int64, error) {
	return s.orderRepo.CountLines(ctx, poNumber)
}

// UpdateStatus assigns a new workflow status to a purchase order. The value
// must be one of the enumerated statuses; no transition matrix is enforced.
func (s *purchaseOrderService) UpdateStatus(ctx context.Context, poNumber string, req dto.UpdateOrderStatusRequest) (*domain.PurchaseOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	status, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		violations := &apperrors.ValidationErrors{}
		violations.Addf("status", "%q is not a valid order status", req.Status)
		return nil, violations
	}

	order, err := s.orderRepo.FindOrderByPONumber(ctx, poNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Purchase order not found for status update", slog.String("po_number", poNumber))
		} else {
			logger.Error("Failed to load purchase order for status update", slog.String("po_number", poNumber), slog.String("error", err.Error()))
		}
		return nil, err
	}

	if !transitionAllowed(order.Status, status) {
		violations := &apperrors.ValidationErrors{}
		violations.Addf("status", "transition from %s to %s is not allowed", order.Status, status)
		return nil, violations
	}

	now := time.Now().UTC()
	if err := s.orderRepo.UpdateOrderStatus(ctx, poNumber, status, now); err != nil {
		logger.Error("Failed to update purchase order status", slog.String("po_number", poNumber), slog.String("error", err.Error()))
		return nil, err
	}

	order.Status = status
	order.LastUpdatedAt = now

	logger.Info("Purchase order status updated", slog.String("po_number", poNumber), slog.String("status", string(status)))
	return order, nil
}

// transitionAllowed consults the workflow transition table of the current
// status. The table currently permits every transition; this is the single
// place to tighten once the workflow rules are pinned down.
func transitionAllowed(from, to domain.OrderStatus) bool {
	for _, next := range from.AllowedNext() {
		if next == to {
			return true
		}
	}
	return false
}

// DeletePurchaseOrder removes a purchase order; its lines go with it.
func (s *purchaseOrderService) DeletePurchaseOrder(ctx context.Context, poNumber string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.orderRepo.DeletePurchaseOrder(ctx, poNumber); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Purchase order not found for delete", slog.String("po_number", poNumber))
		} else {
			logger.Error("Failed to delete purchase order", slog.String("po_number", poNumber), slog.String("error", err.Error()))
		}
		return err
	}

	logger.Info("Purchase order deleted", slog.String("po_number", poNumber))
	return nil
}
