package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/authenticcheckers/waecvoucherpfront/internal/config"
)

type SMSProvider interface {
	Send(ctx context.Context, phone, message, idempotencyKey string) (providerMessageID string, err error)
}

// HTTPProvider posts to a JSON SMS gateway (Arkesel-style API).
type HTTPProvider struct {
	cfg    config.SMSConfig
	client *http.Client
}

func NewHTTPProvider(cfg config.SMSConfig) *HTTPProvider {
	return &HTTPProvider{cfg: cfg, client: &http.Client{Timeout: 10 * time.Second}}
}

func (p *HTTPProvider) Send(ctx context.Context, phone, message, idempotencyKey string) (string, error) {
	if p.cfg.BaseURL == "" || p.cfg.APIKey == "" {
		return "", fmt.Errorf("sms gateway not configured")
	}

	body, err := json.Marshal(map[string]any{
		"sender":     p.cfg.SenderID,
		"recipients": []string{phone},
		"message":    message,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(p.cfg.BaseURL, "/")+"/sms/send", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", p.cfg.APIKey)
	req.Header.Set("Idempotency-Key", idempotencyKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("sms send failed: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("sms gateway status %d: %s", resp.StatusCode, truncate(string(raw), 120))
	}

	var out struct {
		MessageID string `json:"message_id"`
	}
	_ = json.Unmarshal(raw, &out)
	return out.MessageID, nil
}

type Mock struct {
	mu   sync.Mutex
	Sent []MockMessage
	Err  error
}

type MockMessage struct {
	Phone   string
	Message string
}

func (m *Mock) Send(ctx context.Context, phone, message, idempotencyKey string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	m.Sent = append(m.Sent, MockMessage{Phone: phone, Message: message})
	return fmt.Sprintf("mock-%d", len(m.Sent)), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
