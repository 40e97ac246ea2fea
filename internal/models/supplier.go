package models

// Supplier mirrors a row of the suppliers directory table.
type Supplier struct {
	SupplierID  string `json:"supplierID"`
	CompanyName string `json:"companyName"`
}

// Branch mirrors a row of the branches directory table.
type Branch struct {
	BranchID int    `json:"branchID"`
	Name     string `json:"name"`
}
