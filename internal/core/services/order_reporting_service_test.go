package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/procurement_backoffice_app/internal/apperrors"
	"github.com/SscSPs/procurement_backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/procurement_backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/procurement_backoffice_app/internal/dto"
)

type OrderReportingServiceTestSuite struct {
	suite.Suite
	mockOrderRepo *MockOrderRepository
	service       portssvc.OrderReportingSvc
	ctx           context.Context
}

func (s *OrderReportingServiceTestSuite) SetupTest() {
	s.mockOrderRepo = new(MockOrderRepository)
	s.service = NewOrderReportingService(s.mockOrderRepo)
	s.ctx = context.Background()
}

func (s *OrderReportingServiceTestSuite) TestReport_InclusiveFullDayBounds() {
	start := time.Date(2026, 8, 1, 15, 30, 0, 0, time.UTC)
	end := time.Date(2026, 8, 14, 9, 0, 0, 0, time.UTC)

	wantStart := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2026, 8, 14, 23, 59, 59, 999999999, time.UTC)

	s.mockOrderRepo.On("ReportBySupplierAndDate", s.ctx, "SUP-1", wantStart, wantEnd).
		Return([]domain.PurchaseOrder{}, nil)

	resp, err := s.service.ReportBySupplierAndDate(s.ctx, dto.SupplierDateReportParams{
		SupplierID: "SUP-1",
		StartDate:  start,
		EndDate:    end,
	})

	s.Require().NoError(err)
	s.Equal("SUP-1", resp.SupplierID)
	s.Equal("2026-08-01", resp.StartDate)
	s.Equal("2026-08-14", resp.EndDate)
	s.Empty(resp.Orders)
	s.mockOrderRepo.AssertExpectations(s.T())
}

func (s *OrderReportingServiceTestSuite) TestReport_OrderingPreserved() {
	day := func(d int) time.Time { return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC) }
	orders := []domain.PurchaseOrder{
		{PONumber: "PO-3", OrderDate: day(14)},
		{PONumber: "PO-2", OrderDate: day(10)},
		{PONumber: "PO-1", OrderDate: day(1)},
	}
	s.mockOrderRepo.On("ReportBySupplierAndDate", s.ctx, "SUP-1", day(1), time.Date(2026, 8, 14, 23, 59, 59, 999999999, time.UTC)).
		Return(orders, nil)

	resp, err := s.service.ReportBySupplierAndDate(s.ctx, dto.SupplierDateReportParams{
		SupplierID: "SUP-1",
		StartDate:  day(1),
		EndDate:    day(14),
	})

	s.Require().NoError(err)
	s.Require().Len(resp.Orders, 3)
	s.Equal("PO-3", resp.Orders[0].PONumber)
	s.Equal("PO-2", resp.Orders[1].PONumber)
	s.Equal("PO-1", resp.Orders[2].PONumber)
}

func (s *OrderReportingServiceTestSuite) TestReport_EndBeforeStartRejected() {
	resp, err := s.service.ReportBySupplierAndDate(s.ctx, dto.SupplierDateReportParams{
		SupplierID: "SUP-1",
		StartDate:  time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	})

	s.Require().Error(err)
	s.Nil(resp)
	s.True(errors.Is(err, apperrors.ErrValidation))
	s.mockOrderRepo.AssertNotCalled(s.T(), "ReportBySupplierAndDate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *OrderReportingServiceTestSuite) TestReport_RepositoryError() {
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	s.mockOrderRepo.On("ReportBySupplierAndDate", s.ctx, "SUP-1", day, time.Date(2026, 8, 1, 23, 59, 59, 999999999, time.UTC)).
		Return(nil, errors.New("connection refused"))

	resp, err := s.service.ReportBySupplierAndDate(s.ctx, dto.SupplierDateReportParams{
		SupplierID: "SUP-1",
		StartDate:  day,
		EndDate:    day,
	})

	s.Require().Error(err)
	s.Nil(resp)
}

func TestOrderReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderReportingServiceTestSuite))
}
