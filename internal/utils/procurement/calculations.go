package procurement

import (
	"github.com/SscSPs/procurement_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputedTotal sums the line amounts of a purchase order. The header total
// is caller-supplied and stored as-is; this derived value exists so intake
// can flag a mismatch without rejecting the submission.
func ComputedTotal(lines []domain.PurchaseOrderLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Amount)
	}
	return total
}

// TotalMatches reports whether the caller-supplied header total equals the
// sum of the line amounts.
func TotalMatches(headerTotal decimal.Decimal, lines []domain.PurchaseOrderLine) bool {
	return headerTotal.Equal(ComputedTotal(lines))
}
