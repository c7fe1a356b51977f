package payments

import (
	"context"
	"net/http"
)

type InitializeRequest struct {
	Reference     string
	Email         string // gateway requires one; synthesized from the phone when absent
	AmountPesewas int
	Currency      string
	CallbackURL   string
	Metadata      map[string]string
}

type InitializeResponse struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

type VerifyResponse struct {
	Status        string // success|failed|abandoned|pending
	Reference     string
	AmountPesewas int
	Currency      string
}

type WebhookEvent struct {
	EventID string
	Type    string // charge.success|charge.failed

	Reference     string
	AmountPesewas int
	Currency      string
}

type Provider interface {
	Name() string
	Initialize(ctx context.Context, req InitializeRequest) (InitializeResponse, error)
	Verify(ctx context.Context, reference string) (VerifyResponse, error)

	// Webhook: verify signature + parse event
	VerifyAndParseWebhook(headers http.Header, body []byte) (WebhookEvent, error)
}
