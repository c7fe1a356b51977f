package payments

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/authenticcheckers/waecvoucherpfront/internal/config"
)

const SignatureHeader = "x-paystack-signature"

type Paystack struct {
	secretKey string
	baseURL   string
	client    *http.Client
}

func NewPaystack(cfg config.PaystackConfig) *Paystack {
	return &Paystack{
		secretKey: cfg.SecretKey,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *Paystack) Name() string { return "paystack" }

type paystackInitBody struct {
	Email       string            `json:"email"`
	Amount      string            `json:"amount"` // smallest unit, as string per API docs
	Currency    string            `json:"currency,omitempty"`
	Reference   string            `json:"reference,omitempty"`
	CallbackURL string            `json:"callback_url,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type paystackEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (p *Paystack) Initialize(ctx context.Context, req InitializeRequest) (InitializeResponse, error) {
	body := paystackInitBody{
		Email:       req.Email,
		Amount:      strconv.Itoa(req.AmountPesewas),
		Currency:    req.Currency,
		Reference:   req.Reference,
		CallbackURL: req.CallbackURL,
		Metadata:    req.Metadata,
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return InitializeResponse{}, err
	}

	env, err := p.do(ctx, http.MethodPost, "/transaction/initialize", bytes.NewReader(raw))
	if err != nil {
		return InitializeResponse{}, err
	}

	var data struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return InitializeResponse{}, fmt.Errorf("paystack initialize: bad data shape: %w", err)
	}
	if data.AuthorizationURL == "" {
		return InitializeResponse{}, fmt.Errorf("paystack initialize: no authorization_url (%s)", env.Message)
	}

	return InitializeResponse{
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		Reference:        data.Reference,
	}, nil
}

func (p *Paystack) Verify(ctx context.Context, reference string) (VerifyResponse, error) {
	env, err := p.do(ctx, http.MethodGet, "/transaction/verify/"+reference, nil)
	if err != nil {
		return VerifyResponse{}, err
	}

	var data struct {
		Status    string `json:"status"`
		Reference string `json:"reference"`
		Amount    int    `json:"amount"`
		Currency  string `json:"currency"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return VerifyResponse{}, fmt.Errorf("paystack verify: bad data shape: %w", err)
	}

	return VerifyResponse{
		Status:        data.Status,
		Reference:     data.Reference,
		AmountPesewas: data.Amount,
		Currency:      data.Currency,
	}, nil
}

// VerifyAndParseWebhook checks the HMAC-SHA512 body signature against
// x-paystack-signature before trusting the payload.
func (p *Paystack) VerifyAndParseWebhook(headers http.Header, body []byte) (WebhookEvent, error) {
	sig := headers.Get(SignatureHeader)
	if sig == "" {
		return WebhookEvent{}, fmt.Errorf("missing %s header", SignatureHeader)
	}

	mac := hmac.New(sha512.New, []byte(p.secretKey))
	mac.Write(body)
	want := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(want), []byte(strings.ToLower(sig))) {
		return WebhookEvent{}, fmt.Errorf("invalid webhook signature")
	}

	return ParseWebhookBody(body)
}

// ParseWebhookBody decodes a Paystack event payload. Split out so the
// mock provider and tests share the parser.
func ParseWebhookBody(body []byte) (WebhookEvent, error) {
	var payload struct {
		Event string `json:"event"`
		Data  struct {
			ID        int64  `json:"id"`
			Reference string `json:"reference"`
			Amount    int    `json:"amount"`
			Currency  string `json:"currency"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return WebhookEvent{}, fmt.Errorf("invalid webhook payload: %w", err)
	}
	if payload.Event == "" || payload.Data.Reference == "" {
		return WebhookEvent{}, fmt.Errorf("webhook payload missing event or reference")
	}

	eventID := strconv.FormatInt(payload.Data.ID, 10)
	if payload.Data.ID == 0 {
		// some test events omit data.id; the reference still dedupes per event type
		eventID = payload.Event + ":" + payload.Data.Reference
	}

	return WebhookEvent{
		EventID:       eventID,
		Type:          payload.Event,
		Reference:     payload.Data.Reference,
		AmountPesewas: payload.Data.Amount,
		Currency:      payload.Data.Currency,
	}, nil
}

func (p *Paystack) do(ctx context.Context, method, path string, body io.Reader) (paystackEnvelope, error) {
	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, body)
	if err != nil {
		return paystackEnvelope{}, err
	}
	req.Header.Set("Authorization", "Bearer "+p.secretKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return paystackEnvelope{}, fmt.Errorf("paystack request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return paystackEnvelope{}, err
	}

	var env paystackEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return paystackEnvelope{}, fmt.Errorf("paystack: non-JSON response (status %d)", resp.StatusCode)
	}
	if resp.StatusCode >= 400 || !env.Status {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return paystackEnvelope{}, fmt.Errorf("paystack: %s", msg)
	}
	return env, nil
}
