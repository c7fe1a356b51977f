package vouchers

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) BySerial(ctx context.Context, serial string) (Voucher, error) {
	serial = strings.TrimSpace(serial)

	var v Voucher
	err := r.db.WithContext(ctx).First(&v, "serial_number = ? AND status = ?", serial, StatusSold).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Voucher{}, ErrNotFound
	}
	if err != nil {
		return Voucher{}, err
	}
	return v, nil
}

// ByPhone returns every voucher sold to a phone number, newest sale first.
func (r *Repo) ByPhone(ctx context.Context, phone string) ([]Voucher, error) {
	phone = strings.TrimSpace(phone)

	var out []Voucher
	err := r.db.WithContext(ctx).
		Where("purchaser_phone = ? AND status = ?", phone, StatusSold).
		Order("purchased_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) ByReference(ctx context.Context, reference string) ([]Voucher, error) {
	var out []Voucher
	err := r.db.WithContext(ctx).
		Where("paystack_reference = ?", reference).
		Order("serial_number ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

type StockRow struct {
	Type      string `json:"type"`
	Total     int    `json:"total"`
	Available int    `json:"available"`
	SoldCount int    `json:"sold_count"`
}

// StockByType returns one row per known type, zero rows included so the
// dashboard always sees the full enum.
func (r *Repo) StockByType(ctx context.Context) ([]StockRow, error) {
	type aggRow struct {
		Type   string
		Status string
		N      int
	}
	var rows []aggRow
	err := r.db.WithContext(ctx).
		Model(&Voucher{}).
		Select("type, status, COUNT(*) AS n").
		Group("type, status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byType := make(map[string]*StockRow, 3)
	out := make([]StockRow, 0, 3)
	for _, t := range Types() {
		byType[t] = &StockRow{Type: t}
	}
	for _, row := range rows {
		sr, ok := byType[row.Type]
		if !ok {
			continue
		}
		sr.Total += row.N
		switch row.Status {
		case StatusAvailable:
			sr.Available += row.N
		case StatusSold:
			sr.SoldCount += row.N
		}
	}
	for _, t := range Types() {
		out = append(out, *byType[t])
	}
	return out, nil
}

// AvailableByType is the public stock endpoint's shape: type -> count.
func (r *Repo) AvailableByType(ctx context.Context) (map[string]int, error) {
	rows, err := r.StockByType(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(rows))
	for _, sr := range rows {
		out[sr.Type] = sr.Available
	}
	return out, nil
}

func (r *Repo) SetReceiptURL(ctx context.Context, serial, url string) error {
	return r.db.WithContext(ctx).
		Model(&Voucher{}).
		Where("serial_number = ?", serial).
		Update("receipt_url", url).Error
}
