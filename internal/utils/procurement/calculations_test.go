package procurement_test

import (
	"testing"

	"github.com/SscSPs/procurement_backoffice_app/internal/core/domain"
	"github.com/SscSPs/procurement_backoffice_app/internal/utils/procurement"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func line(amount string) domain.PurchaseOrderLine {
	return domain.PurchaseOrderLine{Amount: decimal.RequireFromString(amount)}
}

func TestComputedTotal(t *testing.T) {
	tests := []struct {
		name  string
		lines []domain.PurchaseOrderLine
		want  string
	}{
		{"no lines", nil, "0"},
		{"single line", []domain.PurchaseOrderLine{line("100000")}, "100000"},
		{"multiple lines", []domain.PurchaseOrderLine{line("150000"), line("250000"), line("100000")}, "500000"},
		{"fractional amounts", []domain.PurchaseOrderLine{line("0.1"), line("0.2")}, "0.3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := procurement.ComputedTotal(tt.lines)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestTotalMatches(t *testing.T) {
	lines := []domain.PurchaseOrderLine{line("150000"), line("350000")}
	assert.True(t, procurement.TotalMatches(decimal.RequireFromString("500000"), lines))
	assert.False(t, procurement.TotalMatches(decimal.RequireFromString("499999"), lines))
}
