package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authenticcheckers/waecvoucherpfront/internal/http/middleware"
	"github.com/authenticcheckers/waecvoucherpfront/internal/modules/purchases"
	"github.com/authenticcheckers/waecvoucherpfront/internal/modules/vouchers"
)

func performVerifyError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := gin.New()
	r.Use(middleware.ErrorHandler(logger))

	h := &VerifyHandler{Logger: logger}
	r.GET("/verify", func(c *gin.Context) { h.renderVerifyError(c, err) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/verify", nil))
	return w
}

func TestRenderVerifyError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantSubstr string
	}{
		{
			name:       "unknown reference",
			err:        purchases.ErrUnknownReference,
			wantStatus: http.StatusNotFound,
			wantSubstr: "could not find this payment",
		},
		{
			name:       "not paid",
			err:        fmt.Errorf("%w: gateway status %q", purchases.ErrNotPaid, "abandoned"),
			wantStatus: http.StatusBadRequest,
			wantSubstr: "has not been completed",
		},
		{
			name:       "gateway failure",
			err:        fmt.Errorf("%w: timeout", purchases.ErrGatewayFailed),
			wantStatus: http.StatusBadGateway,
			wantSubstr: "Could not confirm the payment",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := performVerifyError(t, tc.err)
			assert.Equal(t, tc.wantStatus, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Contains(t, body["message"], tc.wantSubstr)
		})
	}
}

// A buyer whose charge captured while stock ran out must not see a
// generic failure. They get told the payment landed and how to get
// their vouchers once stock is back.
func TestRenderVerifyErrorOutOfStockAfterPayment(t *testing.T) {
	err := &vouchers.OutOfStockError{Type: "WASSCE", Requested: 3, Available: 1}
	w := performVerifyError(t, err)

	assert.Equal(t, http.StatusConflict, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["message"], "payment was received")
	assert.Contains(t, body["message"], "phone number")
	assert.NotContains(t, body["message"], "Something went wrong")
}

// Anything unmapped still goes through the generic error handler.
func TestRenderVerifyErrorUnexpected(t *testing.T) {
	w := performVerifyError(t, errors.New("connection reset"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Something went wrong. Please try again.", body["error"])
}
