package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrieveBySerial_EmptyNotSubmitted(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.RetrieveBySerial(context.Background(), "   ")
	assert.Error(t, err)
	assert.Equal(t, int32(0), hits.Load())
}

func TestRetrieveBySerial_Found(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/voucher/retrieve/GH-1", r.URL.Path)
		w.Write([]byte(`{"serial_number":"GH-1","pin":"111111","type":"WASSCE"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	v, err := c.RetrieveBySerial(context.Background(), " GH-1 ")
	require.NoError(t, err)
	assert.Equal(t, "GH-1", v.SerialNumber)
	assert.Equal(t, "WASSCE", v.Type)
}

func TestRetrieveBySerial_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Voucher not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.RetrieveBySerial(context.Background(), "GH-404")
	assert.ErrorIs(t, err, ErrVoucherNotFound)
}

func TestRetrieveByPhone_ArrayShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"serial_number":"GH-1","pin":"111111"},{"serial_number":"GH-2","pin":"222222"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	vs, err := c.RetrieveByPhone(context.Background(), "0241234567")
	require.NoError(t, err)
	assert.Len(t, vs, 2)
}

func TestRetrieveByPhone_SingleObjectBecomesSlice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"serial_number":"GH-1","pin":"111111"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	vs, err := c.RetrieveByPhone(context.Background(), "0241234567")
	require.NoError(t, err)
	require.Len(t, vs, 1)
	assert.Equal(t, "GH-1", vs[0].SerialNumber)
}

func TestRetrieveByPhone_NotFoundIsEmptySlice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"No vouchers found for this phone number"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	vs, err := c.RetrieveByPhone(context.Background(), "0241234567")
	require.NoError(t, err)
	assert.Empty(t, vs)
}

func TestStock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/voucher/stock", r.URL.Path)
		w.Write([]byte(`{"WASSCE":12,"BECE":0,"SCHOOLPLACEMENT":3}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	stock, err := c.Stock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, stock["WASSCE"])
	assert.Equal(t, 0, stock["BECE"])
	assert.Equal(t, 3, stock["SCHOOLPLACEMENT"])
}
