package mapping

import (
	"github.com/SscSPs/procurement_backoffice_app/internal/core/domain"
	"github.com/SscSPs/procurement_backoffice_app/internal/models"
)

// ToModelPurchaseOrder converts a domain PurchaseOrder to a model PurchaseOrder.
func ToModelPurchaseOrder(d domain.PurchaseOrder) models.PurchaseOrder {
	return models.PurchaseOrder{
		PONumber:     d.PONumber,
		SupplierID:   d.SupplierID,
		BranchID:     d.BranchID,
		OrderDate:    d.OrderDate,
		Total:        d.Total,
		Status:       models.OrderStatus(d.Status),
		SupplierName: d.SupplierName,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchaseOrder converts a model PurchaseOrder to a domain PurchaseOrder.
func ToDomainPurchaseOrder(m models.PurchaseOrder) domain.PurchaseOrder {
	return domain.PurchaseOrder{
		PONumber:     m.PONumber,
		SupplierID:   m.SupplierID,
		BranchID:     m.BranchID,
		OrderDate:    m.OrderDate,
		Total:        m.Total,
		Status:       domain.OrderStatus(m.Status),
		SupplierName: m.SupplierName,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPurchaseOrderLine converts a domain PurchaseOrderLine to a model PurchaseOrderLine.
func ToModelPurchaseOrderLine(d domain.PurchaseOrderLine) models.PurchaseOrderLine {
	return models.PurchaseOrderLine{
		LineID:       d.LineID,
		PONumber:     d.PONumber,
		ProductID:    d.ProductID,
		Quantity:     d.Quantity,
		Amount:       d.Amount,
		ReceivedDays: d.ReceivedDays,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchaseOrderLine converts a model PurchaseOrderLine to a domain PurchaseOrderLine.
func ToDomainPurchaseOrderLine(m models.PurchaseOrderLine) domain.PurchaseOrderLine {
	return domain.PurchaseOrderLine{
		LineID:       m.LineID,
		PONumber:     m.PONumber,
		ProductID:    m.ProductID,
		Quantity:     m.Quantity,
		Amount:       m.Amount,
		ReceivedDays: m.ReceivedDays,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPurchaseOrderLineSlice converts a slice of model lines to domain lines.
func ToDomainPurchaseOrderLineSlice(ms []models.PurchaseOrderLine) []domain.PurchaseOrderLine {
	ds := make([]domain.PurchaseOrderLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPurchaseOrderLine(m)
	}
	return ds
}
