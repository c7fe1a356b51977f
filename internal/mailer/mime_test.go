package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMIMEMessage_TextAndHTML(t *testing.T) {
	raw, err := buildMIMEMessage(Email{
		From:     "no-reply@local.test",
		FromName: "VoucherHub",
		To:       []string{"ops@example.com"},
		Subject:  "Low stock",
		TextBody: "plain body",
		HTMLBody: "<p>html body</p>",
	}, "local.test")
	require.NoError(t, err)

	assert.Contains(t, raw, "From: VoucherHub <no-reply@local.test>")
	assert.Contains(t, raw, "To: ops@example.com")
	assert.Contains(t, raw, "Subject: Low stock")
	assert.Contains(t, raw, "multipart/alternative")
	assert.Contains(t, raw, "plain body")
	assert.Contains(t, raw, "<p>html body</p>")
	assert.Contains(t, raw, "Message-ID: <")
}

func TestBuildMIMEMessage_TextOnly(t *testing.T) {
	raw, err := buildMIMEMessage(Email{
		From:     "no-reply@local.test",
		To:       []string{"ops@example.com"},
		Subject:  "hi",
		TextBody: "just text",
	}, "local.test")
	require.NoError(t, err)
	assert.Contains(t, raw, "Content-Type: text/plain; charset=UTF-8")
	assert.NotContains(t, raw, "multipart")
}

func TestBuildMIMEMessage_Validation(t *testing.T) {
	_, err := buildMIMEMessage(Email{From: "a@b", Subject: "s", TextBody: "x"}, "d")
	assert.Error(t, err) // no recipient

	_, err = buildMIMEMessage(Email{To: []string{"a@b"}, Subject: "s", TextBody: "x"}, "d")
	assert.Error(t, err) // no from

	_, err = buildMIMEMessage(Email{From: "a@b", To: []string{"c@d"}, TextBody: "x"}, "d")
	assert.Error(t, err) // no subject

	_, err = buildMIMEMessage(Email{From: "a@b", To: []string{"c@d"}, Subject: "s"}, "d")
	assert.Error(t, err) // no body
}

func TestAllRecipients(t *testing.T) {
	e := Email{To: []string{"a@b"}, Cc: []string{"c@d"}, Bcc: []string{"e@f"}}
	assert.Equal(t, []string{"a@b", "c@d", "e@f"}, e.AllRecipients())
}

func TestBuildMIMEMessage_NonASCIISubject(t *testing.T) {
	raw, err := buildMIMEMessage(Email{
		From:     "a@b",
		To:       []string{"c@d"},
		Subject:  "Stok bitti ₵",
		TextBody: "x",
	}, "d")
	require.NoError(t, err)
	assert.True(t, strings.Contains(raw, "=?utf-8?q?") || strings.Contains(raw, "=?utf-8?Q?"))
}
