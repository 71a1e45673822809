package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/TamTranZrgz/ecom-nest/internal/config"
	"github.com/TamTranZrgz/ecom-nest/internal/modules/payments"
	"github.com/TamTranZrgz/ecom-nest/internal/queue"
)

// worker consumes the delayed payment-cancellation jobs enqueued by the
// API at checkout time.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		asynq.Config{
			Concurrency: 10,
			Queues:      map[string]int{queue.QueuePayment: 1},
		},
	)

	cancelSvc := payments.NewCancelService(db, logger)
	mux := queue.NewMux(cancelSvc, logger)

	if err := srv.Run(mux); err != nil {
		log.Fatalf("worker stopped: %v", err)
	}
}
