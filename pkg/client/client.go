// Package client is a typed client for the voucher storefront API. It
// carries the storefront's own rules: inputs are validated locally
// before any request is made, and server "message" strings are passed
// through verbatim so the UI can show them.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrMissingReference: neither "reference" nor "trxref" was present
	// in the callback URL. No request is made.
	ErrMissingReference = errors.New("missing payment reference")

	// ErrNonJSON: the server answered with something other than JSON
	// (proxy error page, HTML 502). The vouchers are still retrievable
	// by phone number.
	ErrNonJSON = errors.New("unexpected response; use phone retrieval to get your vouchers")

	// ErrVoucherNotFound mirrors the API's 404 message.
	ErrVoucherNotFound = errors.New("Voucher not found")

	// ErrIncorrectKey: the admin key was rejected.
	ErrIncorrectKey = errors.New("Incorrect admin key")
)

type Client struct {
	baseURL string
	hc      *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// apiError carries the server's {message} payload with its status code.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// doJSON performs a request and decodes the body into out. Non-JSON
// bodies return ErrNonJSON; non-2xx JSON bodies become an *apiError
// with the server message.
func (c *Client) doJSON(ctx context.Context, method, path string, headers map[string]string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var msg struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if jsonErr := json.Unmarshal(raw, &msg); jsonErr != nil {
			return ErrNonJSON
		}
		m := msg.Message
		if m == "" {
			m = msg.Error
		}
		return &apiError{Status: resp.StatusCode, Message: m}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return ErrNonJSON
	}
	return nil
}
