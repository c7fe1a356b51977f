package admin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadResultMessage(t *testing.T) {
	assert.Equal(t, "5 vouchers uploaded.", UploadResult{Inserted: 5}.Message())
	assert.Equal(t, "3 vouchers uploaded, 2 duplicates skipped.", UploadResult{Inserted: 3, Skipped: 2}.Message())
	assert.Equal(t, "0 vouchers uploaded.", UploadResult{}.Message())
}

func TestFillDaily(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	data := map[string][2]int{
		"2026-08-01": {2, 5000},
		"2026-08-03": {1, 2500},
	}
	rows := FillDaily(from, 5, func(day string) (int, int) {
		d := data[day]
		return d[0], d[1]
	})

	require.Len(t, rows, 5)
	assert.Equal(t, DailyRow{Date: "2026-08-01", Count: 2, RevenuePesewas: 5000}, rows[0])
	assert.Equal(t, DailyRow{Date: "2026-08-02"}, rows[1])
	assert.Equal(t, DailyRow{Date: "2026-08-03", Count: 1, RevenuePesewas: 2500}, rows[2])
	assert.Equal(t, "2026-08-05", rows[4].Date)
}
