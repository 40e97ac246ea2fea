package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/procurement_backoffice_app/internal/apperrors"
	"github.com/SscSPs/procurement_backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/procurement_backoffice_app/internal/core/ports/services"
)

type SupplierDirectoryServiceTestSuite struct {
	suite.Suite
	mockDirectory *MockDirectoryRepository
	service       portssvc.SupplierDirectorySvc
	ctx           context.Context
}

func (s *SupplierDirectoryServiceTestSuite) SetupTest() {
	s.mockDirectory = new(MockDirectoryRepository)
	s.service = NewSupplierDirectoryService(s.mockDirectory)
	s.ctx = context.Background()
}

func (s *SupplierDirectoryServiceTestSuite) TestListSuppliers() {
	suppliers := []domain.Supplier{
		{SupplierID: "SUP-1", CompanyName: "Acme Ltd"},
		{SupplierID: "SUP-2", CompanyName: "Brimstone Co"},
	}
	s.mockDirectory.On("ListSuppliers", s.ctx).Return(suppliers, nil)

	got, err := s.service.ListSuppliers(s.ctx)

	s.Require().NoError(err)
	s.Equal(suppliers, got)
}

func (s *SupplierDirectoryServiceTestSuite) TestGetCompanyName() {
	s.mockDirectory.On("FindSupplierByID", s.ctx, "SUP-1").
		Return(&domain.Supplier{SupplierID: "SUP-1", CompanyName: "Acme Ltd"}, nil)

	name, err := s.service.GetCompanyName(s.ctx, "SUP-1")

	s.Require().NoError(err)
	s.Equal("Acme Ltd", name)
}

func (s *SupplierDirectoryServiceTestSuite) TestGetCompanyName_NotFound() {
	s.mockDirectory.On("FindSupplierByID", s.ctx, "SUP-404").Return(nil, apperrors.ErrNotFound)

	name, err := s.service.GetCompanyName(s.ctx, "SUP-404")

	s.Require().Error(err)
	s.Empty(name)
	s.True(errors.Is(err, apperrors.ErrNotFound))
}

func TestSupplierDirectoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SupplierDirectoryServiceTestSuite))
}
