package main

import (
	"bytes"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
)

type webhookPayload struct {
	Event string `json:"event"`
	Data  struct {
		ID        int64  `json:"id"`
		Reference string `json:"reference"`
		Status    string `json:"status"`
		Amount    int    `json:"amount"`
		Currency  string `json:"currency"`
	} `json:"data"`
}

func main() {
	url := flag.String("url", "http://localhost:8080/webhooks/paystack", "Webhook URL")
	secret := flag.String("secret", os.Getenv("PAYSTACK_SECRET_KEY"), "Paystack secret key")
	eventType := flag.String("type", "charge.success", "Event type (charge.success, charge.failed)")
	reference := flag.String("reference", "", "Purchase reference (required)")
	amount := flag.Int("amount", 2500, "Amount in pesewas")
	dryRun := flag.Bool("dry-run", false, "Only print signature header, don't send")

	flag.Parse()

	if *secret == "" {
		fmt.Fprintf(os.Stderr, "Error: secret not provided and PAYSTACK_SECRET_KEY not set\n")
		os.Exit(1)
	}
	if *reference == "" {
		fmt.Fprintf(os.Stderr, "Error: -reference is required\n")
		os.Exit(1)
	}

	payload := webhookPayload{Event: *eventType}
	payload.Data.ID = randomID()
	payload.Data.Reference = *reference
	payload.Data.Status = "success"
	if *eventType == "charge.failed" {
		payload.Data.Status = "failed"
	}
	payload.Data.Amount = *amount
	payload.Data.Currency = "GHS"

	body, err := json.Marshal(payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling payload: %v\n", err)
		os.Exit(1)
	}

	sig := computeSig([]byte(*secret), body)

	fmt.Printf("x-paystack-signature: %s\n", sig)
	fmt.Printf("Body: %s\n", string(body))

	if *dryRun {
		fmt.Println("\n[DRY RUN] Not sending request")
		return
	}

	fmt.Printf("\nSending to %s...\n", *url)
	req, err := http.NewRequest("POST", *url, bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating request: %v\n", err)
		os.Exit(1)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-paystack-signature", sig)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error sending request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	fmt.Printf("Status: %d\n", resp.StatusCode)
	fmt.Printf("Response: %s\n", string(respBody))

	if resp.StatusCode != http.StatusOK {
		os.Exit(1)
	}
}

func computeSig(secret, body []byte) string {
	m := hmac.New(sha512.New, secret)
	m.Write(body)
	return hex.EncodeToString(m.Sum(nil))
}

func randomID() int64 {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	n := int64(b[0])<<24 | int64(b[1])<<16 | int64(b[2])<<8 | int64(b[3])
	if n < 0 {
		n = -n
	}
	return n
}
