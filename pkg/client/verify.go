package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// VerifyFromURL confirms a payment using the query values Paystack
// appended to the callback URL. The reference may arrive as either
// "reference" or "trxref"; with neither present no request is made.
//
// The wire shape has drifted across storefront builds, so all three
// are normalized into a []Voucher:
//   - wrapped: {type, purchaser_name, vouchers:[{serial_number,pin}]}
//   - legacy bare array: [{serial_number,pin}]
//   - single object: {serial_number,pin,...}
func (c *Client) VerifyFromURL(ctx context.Context, values url.Values) ([]Voucher, error) {
	ref := values.Get("reference")
	if ref == "" {
		ref = values.Get("trxref")
	}
	if ref == "" {
		return nil, ErrMissingReference
	}

	var raw json.RawMessage
	err := c.doJSON(ctx, http.MethodGet, "/api/voucher/verify?reference="+url.QueryEscape(ref), nil, nil, &raw)
	if err != nil {
		return nil, err
	}
	return normalizeVouchers(raw)
}

func normalizeVouchers(raw json.RawMessage) ([]Voucher, error) {
	// legacy bare array
	var list []Voucher
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	// wrapped multi-voucher shape
	var wrapped struct {
		Type          string    `json:"type"`
		PurchaserName string    `json:"purchaser_name"`
		Vouchers      []Voucher `json:"vouchers"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && len(wrapped.Vouchers) > 0 {
		for i := range wrapped.Vouchers {
			if wrapped.Vouchers[i].Type == "" {
				wrapped.Vouchers[i].Type = wrapped.Type
			}
			if wrapped.Vouchers[i].PurchaserName == "" {
				wrapped.Vouchers[i].PurchaserName = wrapped.PurchaserName
			}
		}
		return wrapped.Vouchers, nil
	}

	// single object
	var single Voucher
	if err := json.Unmarshal(raw, &single); err == nil && single.SerialNumber != "" {
		return []Voucher{single}, nil
	}

	return nil, ErrNonJSON
}
