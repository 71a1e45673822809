package products

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type StockLine struct {
	SKUID int64
	Qty   int
}

type OutOfStockItem struct {
	SKUID     int64
	Requested int
	Available int
}

type OutOfStockError struct {
	Items []OutOfStockItem
}

func (e *OutOfStockError) Error() string {
	if len(e.Items) == 1 {
		return fmt.Sprintf("sku %d out of stock", e.Items[0].SKUID)
	}
	return "out of stock"
}

// MergeStockLines collapses duplicate SKU ids and orders the result by SKU
// id so every transaction locks rows in the same order.
func MergeStockLines(lines []StockLine) []StockLine {
	want := make(map[int64]int, len(lines))
	for _, ln := range lines {
		q := ln.Qty
		if q < 1 {
			q = 1
		}
		want[ln.SKUID] += q
	}

	out := make([]StockLine, 0, len(want))
	for id, q := range want {
		out = append(out, StockLine{SKUID: id, Qty: q})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKUID < out[j].SKUID })
	return out
}

// DeductStockInTx runs inside the caller's transaction (no nested tx).
// Each decrement is a conditional write guarded on stock >= qty; a guard
// miss aborts the whole transaction.
func DeductStockInTx(ctx context.Context, tx *gorm.DB, lines []StockLine) error {
	merged := MergeStockLines(lines)
	if len(merged) == 0 {
		return nil
	}

	for _, ln := range merged {
		res := tx.WithContext(ctx).
			Model(&SKU{}).
			Where("id = ? AND stock >= ?", ln.SKUID, ln.Qty).
			UpdateColumn("stock", gorm.Expr("stock - ?", ln.Qty))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return &OutOfStockError{Items: []OutOfStockItem{{SKUID: ln.SKUID, Requested: ln.Qty}}}
		}
	}
	return nil
}

// RestockInTx reverses an earlier deduction. Missing SKUs (soft-deleted
// since purchase) are skipped; the snapshot keeps the historical record.
func RestockInTx(ctx context.Context, tx *gorm.DB, lines []StockLine) error {
	merged := MergeStockLines(lines)
	for _, ln := range merged {
		res := tx.WithContext(ctx).
			Model(&SKU{}).
			Where("id = ?", ln.SKUID).
			UpdateColumn("stock", gorm.Expr("stock + ?", ln.Qty))
		if res.Error != nil {
			return res.Error
		}
	}
	return nil
}

// WithTxRetry retries a transaction on MySQL deadlock / lock wait timeout.
func WithTxRetry(ctx context.Context, db *gorm.DB, attempts int, fn func(tx *gorm.DB) error) error {
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error

	for i := 0; i < attempts; i++ {
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(tx)
		})
		if err == nil {
			return nil
		}
		lastErr = err

		if isRetryableMySQLError(err) && i < attempts-1 {
			time.Sleep(time.Duration(50*(i+1)) * time.Millisecond)
			continue
		}
		return err
	}
	return lastErr
}

func isRetryableMySQLError(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		// 1213: Deadlock found; 1205: Lock wait timeout
		return me.Number == 1213 || me.Number == 1205
	}
	return false
}
