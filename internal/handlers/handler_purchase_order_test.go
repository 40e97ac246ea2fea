package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/procurement_backoffice_app/internal/apperrors"
	"github.com/SscSPs/procurement_backoffice_app/internal/core/domain"
	"github.com/SscSPs/procurement_backoffice_app/internal/dto"
)

// MockPurchaseOrderService is a mock implementation of portssvc.PurchaseOrderSvcFacade
type MockPurchaseOrderService struct {
	mock.Mock
}

func (m *MockPurchaseOrderService) CreatePurchaseOrder(ctx context.Context, req dto.CreatePurchaseOrderRequest) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderService) UpdateStatus(ctx context.Context, poNumber string, req dto.UpdateOrderStatusRequest) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, poNumber, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderService) DeletePurchaseOrder(ctx context.Context, poNumber string) error {
	args := m.Called(ctx, poNumber)
	return args.Error(0)
}

func (m *MockPurchaseOrderService) GetPurchaseOrder(ctx context.Context, poNumber string) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, poNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderService) ListPurchaseOrders(ctx context.Context, params dto.ListPurchaseOrdersParams) (*dto.ListPurchaseOrdersResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListPurchaseOrdersResponse), args.Error(1)
}

func (m *MockPurchaseOrderService) CountLines(ctx context.Context, poNumber string) (int64, error) {
	args := m.Called(ctx, poNumber)
	return args.Get(0).(int64), args.Error(1)
}

// MockOrderQueryService is a mock implementation of portssvc.OrderQuerySvc
type MockOrderQueryService struct {
	mock.Mock
}

func (m *MockOrderQueryService) Search(ctx context.Context, params dto.SearchOrdersParams) (*dto.SearchOrdersResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SearchOrdersResponse), args.Error(1)
}

func (m *MockOrderQueryService) StatusSummary(ctx context.Context) (*dto.StatusSummaryResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StatusSummaryResponse), args.Error(1)
}

type PurchaseOrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockPOSvc    *MockPurchaseOrderService
	mockQuerySvc *MockOrderQueryService
}

func (s *PurchaseOrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockPOSvc = new(MockPurchaseOrderService)
	s.mockQuerySvc = new(MockOrderQueryService)
	s.router = gin.New()
	v1 := s.router.Group("/api/v1")
	registerPurchaseOrderRoutes(v1, s.mockPOSvc, s.mockQuerySvc)
}

func (s *PurchaseOrderHandlerTestSuite) perform(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *PurchaseOrderHandlerTestSuite) TestCreatePurchaseOrder_Created() {
	total := decimal.RequireFromString("150.00")
	branchID := 3
	req := dto.CreatePurchaseOrderRequest{
		Header: dto.CreatePurchaseOrderHeader{
			PONumber:   "PO-1001",
			SupplierID: "SUP-1",
			BranchID:   &branchID,
			OrderDate:  "2026-08-14",
			Total:      &total,
		},
	}
	created := &domain.PurchaseOrder{PONumber: "PO-1001", SupplierID: "SUP-1", BranchID: 3, Total: total, Status: domain.StatusDraft}
	s.mockPOSvc.On("CreatePurchaseOrder", mock.Anything, mock.AnythingOfType("dto.CreatePurchaseOrderRequest")).Return(created, nil)

	w := s.perform(http.MethodPost, "/api/v1/purchase-orders", req)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.PurchaseOrderResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("PO-1001", resp.PONumber)
	s.Equal("DRAFT", resp.Status)
	s.mockPOSvc.AssertExpectations(s.T())
}

func (s *PurchaseOrderHandlerTestSuite) TestCreatePurchaseOrder_ValidationFailureListsAllViolations() {
	violations := &apperrors.ValidationErrors{}
	violations.Add("header.poNumber", "is required")
	violations.Add("lines[0].quantity", "must be at least 1")
	s.mockPOSvc.On("CreatePurchaseOrder", mock.Anything, mock.AnythingOfType("dto.CreatePurchaseOrderRequest")).Return(nil, violations)

	w := s.perform(http.MethodPost, "/api/v1/purchase-orders", dto.CreatePurchaseOrderRequest{})

	s.Equal(http.StatusBadRequest, w.Code)
	var body struct {
		Error      string                     `json:"error"`
		Violations []apperrors.FieldViolation `json:"violations"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Len(body.Violations, 2)
	s.Equal("header.poNumber", body.Violations[0].Field)
}

func (s *PurchaseOrderHandlerTestSuite) TestCreatePurchaseOrder_MalformedJSON() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/purchase-orders", bytes.NewReader([]byte(`{"header": {"branchID": "abc"}}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockPOSvc.AssertNotCalled(s.T(), "CreatePurchaseOrder", mock.Anything, mock.Anything)
}

func (s *PurchaseOrderHandlerTestSuite) TestCreatePurchaseOrder_DuplicateConflict() {
	s.mockPOSvc.On("CreatePurchaseOrder", mock.Anything, mock.AnythingOfType("dto.CreatePurchaseOrderRequest")).
		Return(nil, apperrors.NewConflictError("purchase order PO-1001 already exists"))

	w := s.perform(http.MethodPost, "/api/v1/purchase-orders", dto.CreatePurchaseOrderRequest{})

	s.Equal(http.StatusConflict, w.Code)
}

func (s *PurchaseOrderHandlerTestSuite) TestGetPurchaseOrder_NotFound() {
	s.mockPOSvc.On("GetPurchaseOrder", mock.Anything, "PO-404").Return(nil, apperrors.ErrNotFound)

	w := s.perform(http.MethodGet, "/api/v1/purchase-orders/PO-404", nil)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *PurchaseOrderHandlerTestSuite) TestUpdateStatus_OK() {
	updated := &domain.PurchaseOrder{PONumber: "PO-1001", Status: domain.StatusApproved}
	s.mockPOSvc.On("UpdateStatus", mock.Anything, "PO-1001", dto.UpdateOrderStatusRequest{Status: "APPROVED"}).Return(updated, nil)

	w := s.perform(http.MethodPatch, "/api/v1/purchase-orders/PO-1001/status", dto.UpdateOrderStatusRequest{Status: "APPROVED"})

	s.Equal(http.StatusOK, w.Code)
	var resp dto.PurchaseOrderResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("APPROVED", resp.Status)
}

func (s *PurchaseOrderHandlerTestSuite) TestDeletePurchaseOrder_NoContent() {
	s.mockPOSvc.On("DeletePurchaseOrder", mock.Anything, "PO-1001").Return(nil)

	w := s.perform(http.MethodDelete, "/api/v1/purchase-orders/PO-1001", nil)

	s.Equal(http.StatusNoContent, w.Code)
	s.mockPOSvc.AssertExpectations(s.T())
}

func (s *PurchaseOrderHandlerTestSuite) TestGetLineCount_OK() {
	s.mockPOSvc.On("CountLines", mock.Anything, "PO-1001").Return(int64(4), nil)

	w := s.perform(http.MethodGet, "/api/v1/purchase-orders/PO-1001/line-count", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.LineCountResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(int64(4), resp.LineCount)
	s.Equal("PO-1001", resp.PONumber)
}

func (s *PurchaseOrderHandlerTestSuite) TestSearchOrders_PassesParams() {
	resp := &dto.SearchOrdersResponse{Results: []dto.PurchaseOrderResponse{}, TotalOrders: 42}
	s.mockQuerySvc.On("Search", mock.Anything, dto.SearchOrdersParams{Keyword: "Acme", Page: 2, PerPage: 10}).Return(resp, nil)

	w := s.perform(http.MethodGet, "/api/v1/purchase-orders/search?keyword=Acme&page=2&per_page=10", nil)

	s.Equal(http.StatusOK, w.Code)
	var body dto.SearchOrdersResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal(int64(42), body.TotalOrders)
	s.mockQuerySvc.AssertExpectations(s.T())
}

func (s *PurchaseOrderHandlerTestSuite) TestStatusCounts_OK() {
	resp := &dto.StatusSummaryResponse{
		Counts:      []domain.StatusCount{{Status: domain.StatusDraft, Count: 2}},
		TotalOrders: 2,
	}
	s.mockQuerySvc.On("StatusSummary", mock.Anything).Return(resp, nil)

	w := s.perform(http.MethodGet, "/api/v1/purchase-orders/status-counts", nil)

	s.Equal(http.StatusOK, w.Code)
	var body dto.StatusSummaryResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal(int64(2), body.TotalOrders)
	s.Require().Len(body.Counts, 1)
	s.Equal(domain.StatusDraft, body.Counts[0].Status)
}

func TestPurchaseOrderHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PurchaseOrderHandlerTestSuite))
}
