// Package receipt renders voucher PDFs. Generation is a pure function
// over the given records: no lookups, no validation. Malformed input
// renders with empty fields instead of failing, because a broken
// receipt must never block a paid customer from seeing their PIN.
package receipt

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/authenticcheckers/waecvoucherpfront/internal/modules/vouchers"
)

type Record struct {
	SerialNumber string
	PIN          string
}

type Options struct {
	PurchaserName string
	Type          string // voucher type for the subtitle, optional
}

// page geometry matches the card the storefront used to draw: 400x250pt
const (
	pageW = 400
	pageH = 250
)

// Build renders one page per voucher.
func Build(records []Record, opts Options) ([]byte, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: pageW, Ht: pageH},
	})
	pdf.SetTitle("WAEC Official Voucher", false)
	pdf.SetAutoPageBreak(false, 0)

	if len(records) == 0 {
		records = []Record{{}}
	}

	subtitle := ""
	if opts.Type != "" {
		subtitle = vouchers.DisplayName(opts.Type) + " Result Checker"
	}

	for _, r := range records {
		pdf.AddPage()

		pdf.SetTextColor(15, 23, 42)
		pdf.SetFont("Helvetica", "B", 18)
		pdf.Text(50, 50, "WAEC OFFICIAL VOUCHER")

		if subtitle != "" {
			pdf.SetFont("Helvetica", "", 11)
			pdf.SetTextColor(100, 116, 139)
			pdf.Text(50, 68, subtitle)
		}

		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(15, 23, 42)
		pdf.Text(50, 100, fmt.Sprintf("Serial: %s", r.SerialNumber))

		pdf.SetFont("Helvetica", "B", 18)
		pdf.SetTextColor(245, 115, 13)
		pdf.Text(50, 130, fmt.Sprintf("PIN: %s", r.PIN))

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(100, 116, 139)
		if opts.PurchaserName != "" {
			pdf.Text(50, 180, "Purchased by: "+opts.PurchaserName)
		}
		pdf.Text(50, 210, "Keep this PIN private. Use it once at the official results portal.")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename derives the download name from the serial(s). Deterministic:
// the same records always name the same file.
func Filename(records []Record) string {
	switch len(records) {
	case 0:
		return "Voucher.pdf"
	case 1:
		return fmt.Sprintf("Voucher-%s.pdf", records[0].SerialNumber)
	default:
		return fmt.Sprintf("Vouchers-%s-plus-%d.pdf", records[0].SerialNumber, len(records)-1)
	}
}
