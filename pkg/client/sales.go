package client

import (
	"strings"
	"time"
)

// ExportSalesCSV builds CSV text from an in-memory sales slice, no
// round-trip. Fields are quoted, embedded quotes doubled.
func ExportSalesCSV(sales []Sale) string {
	var b strings.Builder
	b.WriteString("serial_number,type,purchaser_name,purchaser_phone,reference,purchased_at\n")
	for _, s := range sales {
		cells := []string{
			s.SerialNumber,
			s.Type,
			s.PurchaserName,
			s.PurchaserPhone,
			s.PaystackReference,
			formatSaleTime(s.PurchasedAt),
		}
		for i, cell := range cells {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(csvQuote(cell))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func formatSaleTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func csvQuote(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// FilterSales keeps rows whose name, phone, serial, or reference
// contains the query, case-insensitively. An empty query keeps all.
func FilterSales(sales []Sale, query string) []Sale {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return sales
	}
	out := make([]Sale, 0, len(sales))
	for _, s := range sales {
		if strings.Contains(strings.ToLower(s.PurchaserName), query) ||
			strings.Contains(strings.ToLower(s.PurchaserPhone), query) ||
			strings.Contains(strings.ToLower(s.SerialNumber), query) ||
			strings.Contains(strings.ToLower(s.PaystackReference), query) {
			out = append(out, s)
		}
	}
	return out
}
