package dto

import "github.com/SscSPs/procurement_backoffice_app/internal/core/domain"

// SupplierResponse is the API shape of a supplier directory record.
type SupplierResponse struct {
	SupplierID  string `json:"supplierID"`
	CompanyName string `json:"companyName"`
}

// ToSupplierResponse converts a domain Supplier to its response DTO.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID:  s.SupplierID,
		CompanyName: s.CompanyName,
	}
}

// ToSupplierResponses converts a slice of domain Suppliers.
func ToSupplierResponses(suppliers []domain.Supplier) []SupplierResponse {
	responses := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = ToSupplierResponse(&suppliers[i])
	}
	return responses
}
