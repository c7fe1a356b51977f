package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
)

// RetrieveBySerial looks up a sold voucher. Empty input is rejected
// locally; the API's 404 becomes ErrVoucherNotFound.
func (c *Client) RetrieveBySerial(ctx context.Context, serial string) (Voucher, error) {
	serial = strings.TrimSpace(serial)
	if serial == "" {
		return Voucher{}, errors.New("enter a serial number")
	}

	var v Voucher
	err := c.doJSON(ctx, http.MethodGet, "/api/voucher/retrieve/"+url.PathEscape(serial), nil, nil, &v)
	if err != nil {
		var ae *apiError
		if errors.As(err, &ae) && ae.Status == http.StatusNotFound {
			return Voucher{}, ErrVoucherNotFound
		}
		return Voucher{}, err
	}
	return v, nil
}

// RetrieveByPhone returns every voucher sold to a phone number. The
// result is always a slice, whether the server sent one object or an
// array; the API's empty-result 404 maps to an empty slice.
func (c *Client) RetrieveByPhone(ctx context.Context, phone string) ([]Voucher, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, errors.New("enter a phone number")
	}

	var raw json.RawMessage
	err := c.doJSON(ctx, http.MethodGet, "/api/voucher/retrieve/phone/"+url.PathEscape(phone), nil, nil, &raw)
	if err != nil {
		var ae *apiError
		if errors.As(err, &ae) && ae.Status == http.StatusNotFound {
			return []Voucher{}, nil
		}
		return nil, err
	}

	var list []Voucher
	if jsonErr := json.Unmarshal(raw, &list); jsonErr == nil {
		return list, nil
	}
	var single Voucher
	if jsonErr := json.Unmarshal(raw, &single); jsonErr == nil && single.SerialNumber != "" {
		return []Voucher{single}, nil
	}
	return nil, ErrNonJSON
}

// Stock returns available counts per voucher type.
func (c *Client) Stock(ctx context.Context) (map[string]int, error) {
	var out map[string]int
	if err := c.doJSON(ctx, http.MethodGet, "/api/voucher/stock", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
