package email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authenticcheckers/waecvoucherpfront/internal/mailer"
)

func TestLowStockAlert(t *testing.T) {
	mock := &mailer.Mock{}
	a := NewAlerts(mock, "alerts@voucherhub.test", "VoucherHub", "ops@voucherhub.test")
	require.True(t, a.Enabled())

	err := a.LowStock(context.Background(), "SCHOOLPLACEMENT", 4)
	require.NoError(t, err)

	sent, ok := mock.Last()
	require.True(t, ok)
	assert.Equal(t, []string{"ops@voucherhub.test"}, sent.To)
	assert.Equal(t, "Low stock: Placement (4 left)", sent.Subject)
	assert.Contains(t, sent.TextBody, "Available: 4")
	assert.Contains(t, sent.HTMLBody, "Placement")
}

func TestLowStockDisabledWithoutRecipient(t *testing.T) {
	mock := &mailer.Mock{}
	a := NewAlerts(mock, "alerts@voucherhub.test", "VoucherHub", "")
	assert.False(t, a.Enabled())

	require.NoError(t, a.LowStock(context.Background(), "WASSCE", 1))
	_, ok := mock.Last()
	assert.False(t, ok, "no mail goes out when no recipient is configured")
}

func TestAlertsNilReceiver(t *testing.T) {
	var a *Alerts
	assert.False(t, a.Enabled())
	assert.NoError(t, a.LowStock(context.Background(), "BECE", 0))
}
