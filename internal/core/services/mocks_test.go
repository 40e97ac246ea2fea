package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/procurement_backoffice_app/internal/core/domain"
)

// MockOrderRepository is a mock implementation of portsrepo.OrderRepositoryFacade
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindOrderByPONumber(ctx context.Context, poNumber string) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, poNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}

func (m *MockOrderRepository) ListOrders(ctx context.Context, limit int, nextToken *string) ([]domain.PurchaseOrder, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var orders []domain.PurchaseOrder
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.PurchaseOrder)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return orders, token, args.Error(2)
}

func (m *MockOrderRepository) SearchOrders(ctx context.Context, keyword string, limit int, offset int) ([]domain.PurchaseOrder, error) {
	args := m.Called(ctx, keyword, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseOrder), args.Error(1)
}

func (m *MockOrderRepository) CountLines(ctx context.Context, poNumber string) (int64, error) {
	args := m.Called(ctx, poNumber)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusCount), args.Error(1)
}

func (m *MockOrderRepository) ReportBySupplierAndDate(ctx context.Context, supplierID string, start, end time.Time) ([]domain.PurchaseOrder, error) {
	args := m.Called(ctx, supplierID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseOrder), args.Error(1)
}

func (m *MockOrderRepository) SavePurchaseOrder(ctx context.Context, order domain.PurchaseOrder, lines []domain.PurchaseOrderLine) error {
	args := m.Called(ctx, order, lines)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateOrderStatus(ctx context.Context, poNumber string, status domain.OrderStatus, updatedAt time.Time) error {
	args := m.Called(ctx, poNumber, status, updatedAt)
	return args.Error(0)
}

func (m *MockOrderRepository) DeletePurchaseOrder(ctx context.Context, poNumber string) error {
	args := m.Called(ctx, poNumber)
	return args.Error(0)
}

// MockDirectoryRepository is a mock implementation of portsrepo.DirectoryRepositoryFacade
type MockDirectoryRepository struct {
	mock.Mock
}

func (m *MockDirectoryRepository) SupplierExists(ctx context.Context, supplierID string) (bool, error) {
	args := m.Called(ctx, supplierID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDirectoryRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockDirectoryRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

func (m *MockDirectoryRepository) BranchExists(ctx context.Context, branchID int) (bool, error) {
	args := m.Called(ctx, branchID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDirectoryRepository) FindBranchByID(ctx context.Context, branchID int) (*domain.Branch, error) {
	args := m.Called(ctx, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}
