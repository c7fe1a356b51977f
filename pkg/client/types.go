package client

import "time"

// Voucher is the normalized shape every retrieval path resolves to,
// whatever the server's wire shape was.
type Voucher struct {
	SerialNumber      string     `json:"serial_number"`
	PIN               string     `json:"pin"`
	Type              string     `json:"type,omitempty"`
	PurchaserName     string     `json:"purchaser_name,omitempty"`
	PurchaserPhone    string     `json:"purchaser_phone,omitempty"`
	PaystackReference string     `json:"paystack_reference,omitempty"`
	PurchasedAt       *time.Time `json:"purchased_at,omitempty"`
	ReceiptURL        string     `json:"receipt_url,omitempty"`
}

// Sale matches GET /api/admin/sales rows.
type Sale struct {
	ID                string     `json:"id"`
	Type              string     `json:"type"`
	SerialNumber      string     `json:"serial_number"`
	PurchaserName     string     `json:"purchaser_name"`
	PurchaserPhone    string     `json:"purchaser_phone"`
	PaystackReference string     `json:"paystack_reference"`
	PurchasedAt       *time.Time `json:"purchased_at"`
}

// StockRow matches the admin stats stock breakdown.
type StockRow struct {
	Type      string `json:"type"`
	Total     int    `json:"total"`
	Available int    `json:"available"`
	SoldCount int    `json:"sold_count"`
}

type DailyRow struct {
	Date           string `json:"date"`
	Count          int    `json:"count"`
	RevenuePesewas int    `json:"revenue"`
}

type Stats struct {
	RevenuePesewas int        `json:"revenue"`
	Stock          []StockRow `json:"stock"`
	Daily          []DailyRow `json:"daily"`
}
