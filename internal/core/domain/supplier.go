package domain

// Supplier is a read-only view of a supplier directory record. The directory
// is owned by another subsystem; this core only looks suppliers up by ID and
// joins their company name into search and report results.
type Supplier struct {
	SupplierID  string `json:"supplierID"`
	CompanyName string `json:"companyName"`
}

// Branch is a read-only view of a branch directory record.
type Branch struct {
	BranchID int    `json:"branchID"`
	Name     string `json:"name"`
}
