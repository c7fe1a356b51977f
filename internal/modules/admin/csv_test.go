package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVoucherCSV_HeaderAndRow(t *testing.T) {
	recs := ParseVoucherCSV("serial_number,pin,type\nGH-1,111111,BECE")

	require.Len(t, recs, 1)
	assert.Equal(t, "GH-1", recs[0].SerialNumber)
	assert.Equal(t, "111111", recs[0].PIN)
	assert.Equal(t, "BECE", recs[0].Type)
}

func TestParseVoucherCSV_NoHeader(t *testing.T) {
	recs := ParseVoucherCSV("GH-1,111111,WASSCE\nGH-2,222222,BECE")

	require.Len(t, recs, 2)
	assert.Equal(t, "GH-1", recs[0].SerialNumber)
	assert.Equal(t, "GH-2", recs[1].SerialNumber)
}

func TestParseVoucherCSV_HeaderCaseInsensitive(t *testing.T) {
	recs := ParseVoucherCSV("SERIAL NUMBER,PIN,TYPE\nGH-1,111111,WASSCE")
	require.Len(t, recs, 1)
}

func TestParseVoucherCSV_QuotedCells(t *testing.T) {
	recs := ParseVoucherCSV(`"GH-1","111111","WASSCE"` + "\n'GH-2','222222','BECE'")

	require.Len(t, recs, 2)
	assert.Equal(t, "GH-1", recs[0].SerialNumber)
	assert.Equal(t, "111111", recs[0].PIN)
	assert.Equal(t, "GH-2", recs[1].SerialNumber)
}

func TestParseVoucherCSV_DropsIncompleteRows(t *testing.T) {
	recs := ParseVoucherCSV("GH-1,111111\nGH-2,222222,BECE\n,333333,WASSCE\nGH-4,,WASSCE")

	require.Len(t, recs, 1)
	assert.Equal(t, "GH-2", recs[0].SerialNumber)
}

func TestParseVoucherCSV_DropsUnknownType(t *testing.T) {
	recs := ParseVoucherCSV("GH-1,111111,NOVDEC\nGH-2,222222,placement")

	require.Len(t, recs, 1)
	assert.Equal(t, "SCHOOLPLACEMENT", recs[0].Type)
}

func TestParseVoucherCSV_BlankLinesAndCRLF(t *testing.T) {
	recs := ParseVoucherCSV("serial,pin,type\r\n\r\nGH-1, 111111 , WASSCE \r\n\r\n")

	require.Len(t, recs, 1)
	assert.Equal(t, "GH-1", recs[0].SerialNumber)
	assert.Equal(t, "111111", recs[0].PIN)
	assert.Equal(t, "WASSCE", recs[0].Type)
}

func TestParseVoucherCSV_Empty(t *testing.T) {
	assert.Empty(t, ParseVoucherCSV(""))
	assert.Empty(t, ParseVoucherCSV("serial_number,pin,type"))
}
