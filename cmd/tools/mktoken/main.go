// mktoken mints a dev access token with the same claims the auth service
// issues. For local testing only.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/TamTranZrgz/ecom-nest/internal/auth"
	"github.com/TamTranZrgz/ecom-nest/internal/config"
)

func main() {
	userID := flag.Int64("user-id", 0, "User id")
	role := flag.String("role", "CLIENT", "Role name (ADMIN|SELLER|CLIENT)")
	ttl := flag.Duration("ttl", 24*time.Hour, "Token lifetime")
	flag.Parse()

	if *userID == 0 {
		fmt.Fprintln(os.Stderr, "Error: -user-id is required")
		os.Exit(1)
	}

	_ = godotenv.Load()
	cfg := config.Load()

	token, err := auth.GenerateToken(cfg.JWTSecret, *userID, *role, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
