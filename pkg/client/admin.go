package client

import (
	"context"
	"errors"
	"net/http"
	"strconv"
)

// AdminClient scopes the dashboard key: the key lives here and nowhere
// else, attached to every request. SignOut drops it.
type AdminClient struct {
	c   *Client
	key string
}

func (c *Client) Admin(key string) *AdminClient {
	return &AdminClient{c: c, key: key}
}

func (a *AdminClient) headers() map[string]string {
	return map[string]string{"x-admin-key": a.key}
}

// Probe checks the key against the stats endpoint. A 401 means the key
// is wrong; anything else means the server could not be reached.
func (a *AdminClient) Probe(ctx context.Context) error {
	err := a.c.doJSON(ctx, http.MethodGet, "/api/admin/stats", a.headers(), nil, nil)
	if err == nil {
		return nil
	}
	var ae *apiError
	if errors.As(err, &ae) && ae.Status == http.StatusUnauthorized {
		return ErrIncorrectKey
	}
	return errors.New("could not reach the server")
}

func (a *AdminClient) SignOut() { a.key = "" }

func (a *AdminClient) Stats(ctx context.Context) (Stats, error) {
	var out Stats
	if err := a.do(ctx, http.MethodGet, "/api/admin/stats", nil, &out); err != nil {
		return Stats{}, err
	}
	return out, nil
}

func (a *AdminClient) Sales(ctx context.Context, limit int) ([]Sale, error) {
	path := "/api/admin/sales"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var out []Sale
	if err := a.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type UploadRecord struct {
	SerialNumber string `json:"serial_number"`
	PIN          string `json:"pin"`
	Type         string `json:"type"`
}

// Upload sends inventory rows; the returned message reports inserted
// and skipped counts.
func (a *AdminClient) Upload(ctx context.Context, records []UploadRecord) (string, error) {
	in := map[string]any{"vouchers": records}
	var out struct {
		Message string `json:"message"`
	}
	if err := a.do(ctx, http.MethodPost, "/api/admin/upload", in, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// UploadCSV sends raw CSV text for server-side parsing.
func (a *AdminClient) UploadCSV(ctx context.Context, csvText string) (string, error) {
	in := map[string]any{"csv": csvText}
	var out struct {
		Message string `json:"message"`
	}
	if err := a.do(ctx, http.MethodPost, "/api/admin/upload", in, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (a *AdminClient) do(ctx context.Context, method, path string, in, out any) error {
	err := a.c.doJSON(ctx, method, path, a.headers(), in, out)
	if err != nil {
		var ae *apiError
		if errors.As(err, &ae) && ae.Status == http.StatusUnauthorized {
			return ErrIncorrectKey
		}
	}
	return err
}
