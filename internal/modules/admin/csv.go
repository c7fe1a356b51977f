package admin

import (
	"strings"

	"github.com/authenticcheckers/waecvoucherpfront/internal/modules/vouchers"
)

type VoucherRecord struct {
	SerialNumber string `json:"serial_number" binding:"required"`
	PIN          string `json:"pin" binding:"required"`
	Type         string `json:"type" binding:"required"`
}

// ParseVoucherCSV turns pasted dashboard text into upload records.
// The format is deliberately lenient: an optional header row (first
// cell containing "serial", any case) is dropped, cells are trimmed and
// stripped of surrounding quotes, and rows missing any of
// serial/pin/type are skipped rather than failing the batch.
//
// encoding/csv is not used on purpose: it rejects ragged rows and bare
// quotes, and the dashboard contract is to salvage what it can.
func ParseVoucherCSV(text string) []VoucherRecord {
	lines := strings.Split(text, "\n")
	out := make([]VoucherRecord, 0, len(lines))

	for i, line := range lines {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}

		cells := strings.Split(line, ",")
		for j := range cells {
			cells[j] = stripQuotes(strings.TrimSpace(cells[j]))
		}

		if i == 0 && strings.Contains(strings.ToLower(cells[0]), "serial") {
			continue // header row
		}
		if len(cells) < 3 {
			continue
		}

		serial, pin := cells[0], cells[1]
		typ, ok := vouchers.ParseType(cells[2])
		if serial == "" || pin == "" || !ok {
			continue
		}

		out = append(out, VoucherRecord{SerialNumber: serial, PIN: pin, Type: typ})
	}
	return out
}

func stripQuotes(s string) string {
	for len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			s = s[1 : len(s)-1]
			continue
		}
		break
	}
	return s
}
