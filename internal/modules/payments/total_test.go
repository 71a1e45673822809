package payments

import (
	"testing"

	"github.com/TamTranZrgz/ecom-nest/internal/modules/orders"
)

func TestExpectedTotal(t *testing.T) {
	tests := []struct {
		name   string
		orders []orders.Order
		want   int64
	}{
		{"no orders", nil, 0},
		{
			"single order single line",
			[]orders.Order{
				{Items: []orders.ProductSKUSnapshot{{SKUPrice: 150000, Quantity: 2}}},
			},
			300000,
		},
		{
			"multiple orders summed",
			[]orders.Order{
				{Items: []orders.ProductSKUSnapshot{
					{SKUPrice: 150000, Quantity: 1},
					{SKUPrice: 90000, Quantity: 3},
				}},
				{Items: []orders.ProductSKUSnapshot{{SKUPrice: 55000, Quantity: 2}}},
			},
			530000,
		},
		{
			"order without lines contributes nothing",
			[]orders.Order{
				{},
				{Items: []orders.ProductSKUSnapshot{{SKUPrice: 10000, Quantity: 1}}},
			},
			10000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpectedTotal(tt.orders); got != tt.want {
				t.Fatalf("ExpectedTotal() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSplitAmount(t *testing.T) {
	tests := []struct {
		transferType    string
		amount          int64
		wantIn, wantOut int64
	}{
		{"in", 250000, 250000, 0},
		{"out", 250000, 0, 250000},
	}

	for _, tt := range tests {
		in, out := SplitAmount(tt.transferType, tt.amount)
		if in != tt.wantIn || out != tt.wantOut {
			t.Fatalf("SplitAmount(%q, %d) = (%d, %d), want (%d, %d)",
				tt.transferType, tt.amount, in, out, tt.wantIn, tt.wantOut)
		}
	}
}
