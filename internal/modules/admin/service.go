package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/authenticcheckers/waecvoucherpfront/internal/modules/purchases"
	"github.com/authenticcheckers/waecvoucherpfront/internal/modules/vouchers"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

type UploadResult struct {
	Inserted int
	Skipped  int // duplicate serials
}

func (r UploadResult) Message() string {
	if r.Skipped == 0 {
		return fmt.Sprintf("%d vouchers uploaded.", r.Inserted)
	}
	return fmt.Sprintf("%d vouchers uploaded, %d duplicates skipped.", r.Inserted, r.Skipped)
}

// Upload inserts inventory rows one by one so a duplicate serial skips
// that row instead of rolling back the whole batch.
func (s *Service) Upload(ctx context.Context, records []VoucherRecord) (UploadResult, error) {
	var res UploadResult
	now := time.Now()

	for _, rec := range records {
		typ, ok := vouchers.ParseType(rec.Type)
		if !ok || rec.SerialNumber == "" || rec.PIN == "" {
			res.Skipped++
			continue
		}

		v := vouchers.Voucher{
			ID:           uuid.NewString(),
			SerialNumber: rec.SerialNumber,
			PIN:          rec.PIN,
			Type:         typ,
			Status:       vouchers.StatusAvailable,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.db.WithContext(ctx).Create(&v).Error; err != nil {
			if vouchers.IsDuplicate(err) {
				res.Skipped++
				continue
			}
			return res, err
		}
		res.Inserted++
	}
	return res, nil
}

type SaleRecord struct {
	ID                string     `json:"id"`
	Type              string     `json:"type"`
	SerialNumber      string     `json:"serial_number"`
	PurchaserName     string     `json:"purchaser_name"`
	PurchaserPhone    string     `json:"purchaser_phone"`
	PaystackReference string     `json:"paystack_reference"`
	PurchasedAt       *time.Time `json:"purchased_at"`
}

func (s *Service) Sales(ctx context.Context, limit int) ([]SaleRecord, error) {
	if limit < 1 || limit > 500 {
		limit = 200
	}

	var rows []vouchers.Voucher
	err := s.db.WithContext(ctx).
		Where("status = ?", vouchers.StatusSold).
		Order("purchased_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]SaleRecord, 0, len(rows))
	for _, v := range rows {
		out = append(out, SaleRecord{
			ID:                v.ID,
			Type:              v.Type,
			SerialNumber:      v.SerialNumber,
			PurchaserName:     deref(v.PurchaserName),
			PurchaserPhone:    deref(v.PurchaserPhone),
			PaystackReference: deref(v.PaystackReference),
			PurchasedAt:       v.PurchasedAt,
		})
	}
	return out, nil
}

type DailyRow struct {
	Date           string `json:"date"` // YYYY-MM-DD
	Count          int    `json:"count"`
	RevenuePesewas int    `json:"revenue"`
}

type Stats struct {
	RevenuePesewas int                 `json:"revenue"`
	Stock          []vouchers.StockRow `json:"stock"`
	Daily          []DailyRow          `json:"daily"`
}

// Stats aggregates revenue from paid purchases, stock per type, and a
// 14-day daily breakdown. Empty days are filled in so the dashboard
// chart has a continuous axis.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	var revenue *int
	err := s.db.WithContext(ctx).
		Model(&purchases.Purchase{}).
		Select("SUM(amount_pesewas)").
		Where("status = ?", purchases.StatusPaid).
		Scan(&revenue).Error
	if err != nil {
		return Stats{}, err
	}

	stock, err := vouchers.NewRepo(s.db).StockByType(ctx)
	if err != nil {
		return Stats{}, err
	}

	since := time.Now().AddDate(0, 0, -13).Truncate(24 * time.Hour)

	type dbDaily struct {
		Day     string
		N       int
		Revenue int
	}
	var rows []dbDaily
	err = s.db.WithContext(ctx).
		Model(&purchases.Purchase{}).
		Select("DATE_FORMAT(paid_at, '%Y-%m-%d') AS day, SUM(qty) AS n, SUM(amount_pesewas) AS revenue").
		Where("status = ? AND paid_at >= ?", purchases.StatusPaid, since).
		Group("day").
		Scan(&rows).Error
	if err != nil {
		return Stats{}, err
	}

	byDay := make(map[string]dbDaily, len(rows))
	for _, r := range rows {
		byDay[r.Day] = r
	}

	daily := FillDaily(since, 14, func(day string) (int, int) {
		r := byDay[day]
		return r.N, r.Revenue
	})

	rev := 0
	if revenue != nil {
		rev = *revenue
	}
	return Stats{RevenuePesewas: rev, Stock: stock, Daily: daily}, nil
}

// FillDaily builds n consecutive daily buckets starting at `from`,
// asking lookup for each day's count and revenue.
func FillDaily(from time.Time, n int, lookup func(day string) (count, revenue int)) []DailyRow {
	out := make([]DailyRow, 0, n)
	for i := 0; i < n; i++ {
		day := from.AddDate(0, 0, i).Format("2006-01-02")
		c, r := lookup(day)
		out = append(out, DailyRow{Date: day, Count: c, RevenuePesewas: r})
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
