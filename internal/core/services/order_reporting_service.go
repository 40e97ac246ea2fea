package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/procurement_backoffice_app/internal/apperrors"
	portsrepo "github.com/SscSPs/procurement_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procurement_backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_backoffice_app/internal/dto"
	"github.com/SscSPs/procurement_backoffice_app/internal/middleware"
)

// orderReportingService produces supplier and date-range reports.
type orderReportingService struct {
	orderRepo portsrepo.OrderRepositoryFacade
}

// NewOrderReportingService creates a new OrderReportingService.
func NewOrderReportingService(orderRepo portsrepo.OrderRepositoryFacade) portssvc.OrderReportingSvc {
	return &orderReportingService{orderRepo: orderRepo}
}

var _ portssvc.OrderReportingSvc = (*orderReportingService)(nil)

// ReportBySupplierAndDate lists a supplier's orders whose order date falls
// within the range. Both bounds are inclusive and cover the whole day, so an
// order placed on the end date itself is part of the report.
func (s *orderReportingService) ReportBySupplierAndDate(ctx context.Context, params dto.SupplierDateReportParams) (*dto.SupplierDateReportResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	start := startOfDay(params.StartDate)
	end := endOfDay(params.EndDate)
	if end.Before(start) {
		violations := &apperrors.ValidationErrors{}
		violations.Add("end_date", "must not be before start_date")
		return nil, violations
	}

	orders, err := s.orderRepo.ReportBySupplierAndDate(ctx, params.SupplierID, start, end)
	if err != nil {
		logger.Error("Failed to build supplier date report", "supplier_id", params.SupplierID, "error", err)
		return nil, fmt.Errorf("failed to report orders for supplier %s: %w", params.SupplierID, err)
	}

	logger.Debug("Supplier date report built", "supplier_id", params.SupplierID, "order_count", len(orders))
	return &dto.SupplierDateReportResponse{
		SupplierID: params.SupplierID,
		StartDate:  params.StartDate.Format(orderDateLayout),
		EndDate:    params.EndDate.Format(orderDateLayout),
		Orders:     dto.ToPurchaseOrderResponses(orders),
	}, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 23, 59, 59, 999999999, time.UTC)
}
