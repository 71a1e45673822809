package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries everything the binaries read from the environment.
// .env loading happens in the entrypoints (godotenv); prod uses real env vars.
type Config struct {
	HTTPAddr string
	GinMode  string

	DBDSN     string
	RedisAddr string

	JWTSecret     string
	PaymentAPIKey string

	// Delay before an unpaid payment is cancelled by the worker.
	PaymentCancelDelay time.Duration

	// Payment confirmation emails. SMTP.Host empty disables sending.
	SMTP          SMTP
	EmailFrom     string
	EmailFromName string
}

type SMTP struct {
	Host string
	Port string
	User string
	Pass string
	// "", "tls" or "starttls"
	TLSMode       string
	SkipVerifyTLS bool
}

func Load() Config {
	return Config{
		HTTPAddr: getenv("HTTP_ADDR", ":8080"),
		GinMode:  getenv("GIN_MODE", "debug"),

		DBDSN:     os.Getenv("DB_DSN"),
		RedisAddr: getenv("REDIS_ADDR", "127.0.0.1:6379"),

		JWTSecret:     getenv("JWT_SECRET", "dev-secret"),
		PaymentAPIKey: getenv("PAYMENT_API_KEY", ""),

		PaymentCancelDelay: getenvDuration("PAYMENT_CANCEL_DELAY", 10*time.Second),

		SMTP: SMTP{
			Host:          os.Getenv("SMTP_HOST"),
			Port:          getenv("SMTP_PORT", "1025"),
			User:          os.Getenv("SMTP_USER"),
			Pass:          os.Getenv("SMTP_PASS"),
			TLSMode:       os.Getenv("SMTP_TLS_MODE"),
			SkipVerifyTLS: os.Getenv("SMTP_SKIP_VERIFY_TLS") == "true",
		},
		EmailFrom:     getenv("EMAIL_FROM", "no-reply@local.test"),
		EmailFromName: getenv("EMAIL_FROM_NAME", "Shop"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	// plain seconds also accepted (e.g. PAYMENT_CANCEL_DELAY=10)
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return def
}
