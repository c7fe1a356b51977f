package handlers

import (
	"time"

	"github.com/authenticcheckers/waecvoucherpfront/internal/modules/vouchers"
)

type voucherJSON struct {
	SerialNumber      string     `json:"serial_number"`
	PIN               string     `json:"pin"`
	Type              string     `json:"type"`
	PurchaserName     string     `json:"purchaser_name,omitempty"`
	PurchaserPhone    string     `json:"purchaser_phone,omitempty"`
	PaystackReference string     `json:"paystack_reference,omitempty"`
	PurchasedAt       *time.Time `json:"purchased_at,omitempty"`
	ReceiptURL        string     `json:"receipt_url,omitempty"`
}

func toVoucherJSON(v vouchers.Voucher) voucherJSON {
	return voucherJSON{
		SerialNumber:      v.SerialNumber,
		PIN:               v.PIN,
		Type:              v.Type,
		PurchaserName:     deref(v.PurchaserName),
		PurchaserPhone:    deref(v.PurchaserPhone),
		PaystackReference: deref(v.PaystackReference),
		PurchasedAt:       v.PurchasedAt,
		ReceiptURL:        deref(v.ReceiptURL),
	}
}

func toVoucherJSONList(vs []vouchers.Voucher) []voucherJSON {
	out := make([]voucherJSON, 0, len(vs))
	for _, v := range vs {
		out = append(out, toVoucherJSON(v))
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
