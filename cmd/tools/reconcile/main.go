// reconcile is the operational fallback for stale unpaid payments: when a
// cancellation job was never enqueued (or the worker was down past the
// job's retention), this sweeps every PENDING payment older than the
// cancel delay through the same cancellation path the worker uses.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/TamTranZrgz/ecom-nest/internal/config"
	"github.com/TamTranZrgz/ecom-nest/internal/modules/payments"
)

func main() {
	olderThan := flag.Duration("older-than", 0, "Override the cutoff (default: PAYMENT_CANCEL_DELAY)")
	dryRun := flag.Bool("dry-run", false, "List stale payments without cancelling")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN environment variable is required")
	}
	db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	window := cfg.PaymentCancelDelay
	if *olderThan > 0 {
		window = *olderThan
	}
	cutoff := time.Now().Add(-window)

	ctx := context.Background()
	svc := payments.NewCancelService(db, logger)

	stale, err := svc.ListStalePending(ctx, cutoff)
	if err != nil {
		log.Fatalf("listing stale payments: %v", err)
	}
	log.Printf("found %d stale pending payment(s) older than %s", len(stale), window)

	if *dryRun {
		for _, p := range stale {
			log.Printf("would cancel payment %d (created %s)", p.ID, p.CreatedAt.Format(time.RFC3339))
		}
		return
	}

	for _, p := range stale {
		if err := svc.CancelExpired(ctx, p.ID); err != nil {
			log.Printf("cancel payment %d failed: %v", p.ID, err)
			continue
		}
		log.Printf("cancelled payment %d", p.ID)
	}
}
