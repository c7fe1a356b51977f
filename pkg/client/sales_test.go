package client

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportSalesCSV(t *testing.T) {
	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	out := ExportSalesCSV([]Sale{
		{SerialNumber: "GH-1", Type: "WASSCE", PurchaserName: "Ama Mensah", PurchaserPhone: "0241234567", PaystackReference: "VHB-A", PurchasedAt: &at},
		{SerialNumber: "GH-2", Type: "BECE", PurchaserName: `Kofi "KJ" Mensah`, PurchaserPhone: "0209876543", PaystackReference: "VHB-B"},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "serial_number,type,purchaser_name,purchaser_phone,reference,purchased_at", lines[0])
	assert.Equal(t, "GH-1,WASSCE,Ama Mensah,0241234567,VHB-A,2026-08-30T12:00:00Z", lines[1])
	// embedded quotes doubled and the field quoted
	assert.Contains(t, lines[2], `"Kofi ""KJ"" Mensah"`)
	// missing timestamp stays empty
	assert.True(t, strings.HasSuffix(lines[2], ","))
}

func TestExportSalesCSV_Empty(t *testing.T) {
	out := ExportSalesCSV(nil)
	assert.Equal(t, "serial_number,type,purchaser_name,purchaser_phone,reference,purchased_at\n", out)
}

func TestFilterSales(t *testing.T) {
	sales := []Sale{
		{SerialNumber: "GH-1", PurchaserName: "Ama Mensah", PurchaserPhone: "0241234567", PaystackReference: "VHB-AAA"},
		{SerialNumber: "GH-2", PurchaserName: "Kofi Owusu", PurchaserPhone: "0209876543", PaystackReference: "VHB-BBB"},
	}

	assert.Len(t, FilterSales(sales, ""), 2)
	assert.Len(t, FilterSales(sales, "  "), 2)

	got := FilterSales(sales, "ama")
	require.Len(t, got, 1)
	assert.Equal(t, "GH-1", got[0].SerialNumber)

	assert.Len(t, FilterSales(sales, "0209"), 1)
	assert.Len(t, FilterSales(sales, "gh-"), 2)
	assert.Len(t, FilterSales(sales, "vhb-bbb"), 1)
	assert.Empty(t, FilterSales(sales, "nothing"))
}
