// mockwebhook posts a fake bank gateway notification at the payment
// receiver endpoint, the way the real gateway would after the buyer
// transfers the order total.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/TamTranZrgz/ecom-nest/internal/modules/payments"
)

func main() {
	url := flag.String("url", "http://localhost:8080/payment/receiver", "Webhook URL")
	apiKey := flag.String("api-key", os.Getenv("PAYMENT_API_KEY"), "Payment API key")
	paymentID := flag.Int64("payment-id", 0, "Payment id to settle")
	amount := flag.Int64("amount", 0, "Transfer amount")
	gateway := flag.String("gateway", "vcb", "Gateway name")
	useContent := flag.Bool("use-content", false, "Put the payment code in content instead of code")
	dryRun := flag.Bool("dry-run", false, "Only print the payload, don't send")

	flag.Parse()

	if *paymentID == 0 || *amount == 0 {
		fmt.Fprintln(os.Stderr, "Error: -payment-id and -amount are required")
		os.Exit(1)
	}
	if *apiKey == "" && !*dryRun {
		fmt.Fprintln(os.Stderr, "Error: api key not provided and PAYMENT_API_KEY not set")
		os.Exit(1)
	}

	code := payments.FormatPaymentCode(*paymentID)
	accountNumber := "0123456789"
	referenceCode := uuid.NewString()

	payload := map[string]any{
		"gateway":         *gateway,
		"transactionDate": time.Now().Format("2006-01-02 15:04:05"),
		"accountNumber":   accountNumber,
		"transferType":    "in",
		"transferAmount":  *amount,
		"accumulated":     *amount,
		"referenceCode":   referenceCode,
	}
	if *useContent {
		payload["content"] = "Thanh toan don hang " + code
	} else {
		payload["code"] = code
	}

	body, err := json.Marshal(payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling payload: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Body: %s\n", string(body))
	if *dryRun {
		fmt.Println("\n[DRY RUN] Not sending request")
		return
	}

	fmt.Printf("\nSending to %s...\n", *url)
	req, err := http.NewRequest(http.MethodPost, *url, bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Apikey "+*apiKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error sending request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	fmt.Printf("Status: %s\nResponse: %s\n", resp.Status, string(respBody))
}
