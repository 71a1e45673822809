package products

import (
	"errors"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
)

func TestMergeStockLines(t *testing.T) {
	tests := []struct {
		name string
		in   []StockLine
		want []StockLine
	}{
		{"empty", nil, []StockLine{}},
		{
			"duplicates merged",
			[]StockLine{{SKUID: 2, Qty: 1}, {SKUID: 2, Qty: 3}},
			[]StockLine{{SKUID: 2, Qty: 4}},
		},
		{
			"sorted by sku id",
			[]StockLine{{SKUID: 9, Qty: 1}, {SKUID: 3, Qty: 2}, {SKUID: 5, Qty: 1}},
			[]StockLine{{SKUID: 3, Qty: 2}, {SKUID: 5, Qty: 1}, {SKUID: 9, Qty: 1}},
		},
		{
			"zero quantity clamped to one",
			[]StockLine{{SKUID: 1, Qty: 0}},
			[]StockLine{{SKUID: 1, Qty: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeStockLines(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("MergeStockLines() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("MergeStockLines() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestPurchasable(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name string
		p    *Product
		want bool
	}{
		{"nil product", nil, false},
		{"published in the past", &Product{PublishedAt: &past}, true},
		{"published right now", &Product{PublishedAt: &now}, true},
		{"not yet published", &Product{PublishedAt: &future}, false},
		{"never published", &Product{}, false},
		{"soft deleted", &Product{PublishedAt: &past, DeletedAt: &past}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Purchasable(now); got != tt.want {
				t.Fatalf("Purchasable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsRetryableMySQLError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"deadlock", &mysql.MySQLError{Number: 1213}, true},
		{"lock wait timeout", &mysql.MySQLError{Number: 1205}, true},
		{"duplicate key", &mysql.MySQLError{Number: 1062}, false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRetryableMySQLError(tt.err); got != tt.want {
				t.Fatalf("isRetryableMySQLError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
