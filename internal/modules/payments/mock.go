package payments

import (
	"context"
	"net/http"
	"sync"
)

// Mock provider for dev and tests. Every initialized transaction
// verifies as success unless FailNext is set.
type Mock struct {
	mu       sync.Mutex
	inits    map[string]InitializeRequest
	FailNext bool

	AuthBase string // defaults to https://checkout.test/pay/
}

func NewMock() *Mock {
	return &Mock{inits: make(map[string]InitializeRequest), AuthBase: "https://checkout.test/pay/"}
}

func (m *Mock) Name() string { return "mock" }

func (m *Mock) Initialize(ctx context.Context, req InitializeRequest) (InitializeResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inits[req.Reference] = req
	return InitializeResponse{
		AuthorizationURL: m.AuthBase + req.Reference,
		AccessCode:       "ac_" + req.Reference,
		Reference:        req.Reference,
	}, nil
}

func (m *Mock) Verify(ctx context.Context, reference string) (VerifyResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	status := "success"
	if m.FailNext {
		status = "failed"
		m.FailNext = false
	}

	in, ok := m.inits[reference]
	if !ok {
		return VerifyResponse{Status: "abandoned", Reference: reference}, nil
	}
	return VerifyResponse{
		Status:        status,
		Reference:     reference,
		AmountPesewas: in.AmountPesewas,
		Currency:      in.Currency,
	}, nil
}

func (m *Mock) VerifyAndParseWebhook(headers http.Header, body []byte) (WebhookEvent, error) {
	return ParseWebhookBody(body)
}
