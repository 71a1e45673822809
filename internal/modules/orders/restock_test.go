package orders

import (
	"testing"

	"github.com/TamTranZrgz/ecom-nest/internal/modules/products"
)

func skuPtr(id int64) *int64 { return &id }

func TestRestockLines(t *testing.T) {
	tests := []struct {
		name string
		in   []Order
		want []products.StockLine
	}{
		{"no orders", nil, nil},
		{
			"single order",
			[]Order{
				{Items: []ProductSKUSnapshot{
					{SKUID: skuPtr(10), Quantity: 2},
					{SKUID: skuPtr(11), Quantity: 1},
				}},
			},
			[]products.StockLine{{SKUID: 10, Qty: 2}, {SKUID: 11, Qty: 1}},
		},
		{
			"only the given orders contribute",
			[]Order{
				{Items: []ProductSKUSnapshot{{SKUID: skuPtr(10), Quantity: 2}}},
				{Items: []ProductSKUSnapshot{{SKUID: skuPtr(12), Quantity: 3}}},
			},
			[]products.StockLine{{SKUID: 10, Qty: 2}, {SKUID: 12, Qty: 3}},
		},
		{
			"deleted sku skipped",
			[]Order{
				{Items: []ProductSKUSnapshot{
					{SKUID: nil, Quantity: 5},
					{SKUID: skuPtr(10), Quantity: 1},
				}},
			},
			[]products.StockLine{{SKUID: 10, Qty: 1}},
		},
		{
			"order without lines contributes nothing",
			[]Order{{}, {Items: []ProductSKUSnapshot{{SKUID: skuPtr(7), Quantity: 4}}}},
			[]products.StockLine{{SKUID: 7, Qty: 4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RestockLines(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("RestockLines() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("RestockLines() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}
