package dto

import "time"

// SupplierDateReportParams holds the filter of the supplier/date-range report.
// Both dates are calendar dates; the range is inclusive on both ends.
type SupplierDateReportParams struct {
	SupplierID string
	StartDate  time.Time
	EndDate    time.Time
}

// SupplierDateReportResponse is the report payload handed to the external
// document renderer: headers with supplier and lines already attached, most
// recent order first.
type SupplierDateReportResponse struct {
	SupplierID string                  `json:"supplierID"`
	StartDate  string                  `json:"startDate"`
	EndDate    string                  `json:"endDate"`
	Orders     []PurchaseOrderResponse `json:"orders"`
}
