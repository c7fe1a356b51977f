package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildProducesPDF(t *testing.T) {
	pdf, err := Build([]Record{{SerialNumber: "GH-1", PIN: "123456"}}, Options{
		PurchaserName: "Ama Mensah",
		Type:          "WASSCE",
	})
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestBuildEmptyRecordsBestEffort(t *testing.T) {
	pdf, err := Build(nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestBuildMultipleRecords(t *testing.T) {
	pdf, err := Build([]Record{
		{SerialNumber: "GH-1", PIN: "111111"},
		{SerialNumber: "GH-2", PIN: "222222"},
		{SerialNumber: "GH-3", PIN: ""},
	}, Options{Type: "SCHOOLPLACEMENT"})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Voucher.pdf", Filename(nil))
	assert.Equal(t, "Voucher-GH-1.pdf", Filename([]Record{{SerialNumber: "GH-1"}}))
	assert.Equal(t, "Vouchers-GH-1-plus-2.pdf", Filename([]Record{
		{SerialNumber: "GH-1"}, {SerialNumber: "GH-2"}, {SerialNumber: "GH-3"},
	}))

	// deterministic
	recs := []Record{{SerialNumber: "GH-9"}}
	assert.Equal(t, Filename(recs), Filename(recs))
}
