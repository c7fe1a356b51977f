package payments

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authenticcheckers/waecvoucherpfront/internal/config"
)

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyAndParseWebhook_ValidSignature(t *testing.T) {
	p := NewPaystack(config.PaystackConfig{SecretKey: "sk_test_secret"})
	body := []byte(`{"event":"charge.success","data":{"id":42,"reference":"VHB-ABC","amount":5000,"currency":"GHS"}}`)

	h := http.Header{}
	h.Set(SignatureHeader, signBody("sk_test_secret", body))

	ev, err := p.VerifyAndParseWebhook(h, body)
	require.NoError(t, err)
	assert.Equal(t, "42", ev.EventID)
	assert.Equal(t, "charge.success", ev.Type)
	assert.Equal(t, "VHB-ABC", ev.Reference)
	assert.Equal(t, 5000, ev.AmountPesewas)
	assert.Equal(t, "GHS", ev.Currency)
}

func TestVerifyAndParseWebhook_BadSignature(t *testing.T) {
	p := NewPaystack(config.PaystackConfig{SecretKey: "sk_test_secret"})
	body := []byte(`{"event":"charge.success","data":{"reference":"VHB-ABC"}}`)

	h := http.Header{}
	h.Set(SignatureHeader, signBody("wrong_secret", body))

	_, err := p.VerifyAndParseWebhook(h, body)
	assert.Error(t, err)
}

func TestVerifyAndParseWebhook_MissingHeader(t *testing.T) {
	p := NewPaystack(config.PaystackConfig{SecretKey: "sk_test_secret"})
	_, err := p.VerifyAndParseWebhook(http.Header{}, []byte(`{}`))
	assert.Error(t, err)
}

func TestParseWebhookBody_EventIDFallback(t *testing.T) {
	body := []byte(`{"event":"charge.failed","data":{"reference":"VHB-XYZ"}}`)
	ev, err := ParseWebhookBody(body)
	require.NoError(t, err)
	assert.Equal(t, "charge.failed:VHB-XYZ", ev.EventID)
	assert.Equal(t, "charge.failed", ev.Type)
}

func TestParseWebhookBody_Invalid(t *testing.T) {
	_, err := ParseWebhookBody([]byte(`not json`))
	assert.Error(t, err)

	_, err = ParseWebhookBody([]byte(`{"event":"charge.success","data":{}}`))
	assert.Error(t, err)
}
