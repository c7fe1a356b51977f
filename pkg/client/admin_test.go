package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminTestServer(t *testing.T, key string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-admin-key") != key {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Incorrect admin key"})
			return
		}
		switch r.URL.Path {
		case "/api/admin/stats":
			w.Write([]byte(`{"revenue":125000,"stock":[{"type":"WASSCE","total":10,"available":4,"sold_count":6}],"daily":[{"date":"2026-08-30","count":2,"revenue":5000}]}`))
		case "/api/admin/sales":
			w.Write([]byte(`[{"id":"1","type":"BECE","serial_number":"GH-1","purchaser_name":"Ama","purchaser_phone":"0241234567","paystack_reference":"VHB-A"}]`))
		case "/api/admin/upload":
			w.Write([]byte(`{"message":"2 vouchers uploaded, 1 duplicates skipped."}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "not found"})
		}
	}))
}

func TestAdminProbe(t *testing.T) {
	srv := adminTestServer(t, "goodkey")
	defer srv.Close()

	c := New(srv.URL)

	assert.NoError(t, c.Admin("goodkey").Probe(context.Background()))
	assert.ErrorIs(t, c.Admin("badkey").Probe(context.Background()), ErrIncorrectKey)
}

func TestAdminProbe_Unreachable(t *testing.T) {
	srv := httptest.NewServer(nil)
	srv.Close() // connection refused

	c := New(srv.URL)
	err := c.Admin("anykey").Probe(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrIncorrectKey)
}

func TestAdminStats(t *testing.T) {
	srv := adminTestServer(t, "goodkey")
	defer srv.Close()

	stats, err := New(srv.URL).Admin("goodkey").Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 125000, stats.RevenuePesewas)
	require.Len(t, stats.Stock, 1)
	assert.Equal(t, 4, stats.Stock[0].Available)
	require.Len(t, stats.Daily, 1)
	assert.Equal(t, "2026-08-30", stats.Daily[0].Date)
}

func TestAdminSales(t *testing.T) {
	srv := adminTestServer(t, "goodkey")
	defer srv.Close()

	sales, err := New(srv.URL).Admin("goodkey").Sales(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "GH-1", sales[0].SerialNumber)
}

func TestAdminUpload(t *testing.T) {
	srv := adminTestServer(t, "goodkey")
	defer srv.Close()

	msg, err := New(srv.URL).Admin("goodkey").Upload(context.Background(), []UploadRecord{
		{SerialNumber: "GH-1", PIN: "111111", Type: "WASSCE"},
	})
	require.NoError(t, err)
	assert.Equal(t, "2 vouchers uploaded, 1 duplicates skipped.", msg)
}

func TestAdminWrongKeyOnEveryCall(t *testing.T) {
	srv := adminTestServer(t, "goodkey")
	defer srv.Close()

	a := New(srv.URL).Admin("badkey")

	_, err := a.Stats(context.Background())
	assert.ErrorIs(t, err, ErrIncorrectKey)
	_, err = a.Sales(context.Background(), 10)
	assert.ErrorIs(t, err, ErrIncorrectKey)
	_, err = a.Upload(context.Background(), nil)
	assert.ErrorIs(t, err, ErrIncorrectKey)
}
