package vouchers

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AllocateInput struct {
	Type           string
	Qty            int
	PurchaserName  string
	PurchaserPhone string
	Reference      string
}

// AllocateInTx runs inside a caller-owned tx (no nested tx). It claims
// qty available vouchers of the given type and marks them sold to the
// purchaser. Rows are locked in deterministic serial order so concurrent
// allocations cannot deadlock each other.
func AllocateInTx(ctx context.Context, tx *gorm.DB, in AllocateInput) ([]Voucher, error) {
	qty := in.Qty
	if qty < 1 {
		qty = 1
	}

	var rows []Voucher
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("type = ? AND status = ?", in.Type, StatusAvailable).
		Order("serial_number ASC").
		Limit(qty).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	if len(rows) < qty {
		return nil, &OutOfStockError{Type: in.Type, Requested: qty, Available: len(rows)}
	}

	now := time.Now()
	ids := make([]string, 0, qty)
	for i := range rows {
		ids = append(ids, rows[i].ID)
		rows[i].Status = StatusSold
		rows[i].PurchaserName = &in.PurchaserName
		rows[i].PurchaserPhone = &in.PurchaserPhone
		rows[i].PaystackReference = &in.Reference
		rows[i].PurchasedAt = &now
		rows[i].UpdatedAt = now
	}

	res := tx.WithContext(ctx).
		Model(&Voucher{}).
		Where("id IN ? AND status = ?", ids, StatusAvailable).
		Updates(map[string]any{
			"status":             StatusSold,
			"purchaser_name":     in.PurchaserName,
			"purchaser_phone":    in.PurchaserPhone,
			"paystack_reference": in.Reference,
			"purchased_at":       now,
			"updated_at":         now,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected != int64(qty) {
		return nil, &OutOfStockError{Type: in.Type, Requested: qty, Available: int(res.RowsAffected)}
	}

	return rows, nil
}

// WithTxRetry runs fn in a transaction, retrying on deadlock or lock
// wait timeout with a short linear backoff.
func WithTxRetry(ctx context.Context, db *gorm.DB, attempts int, fn func(tx *gorm.DB) error) error {
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error

	for i := 0; i < attempts; i++ {
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(tx)
		})
		if err == nil {
			return nil
		}
		lastErr = err

		if isRetryableMySQLError(err) && i < attempts-1 {
			time.Sleep(time.Duration(50*(i+1)) * time.Millisecond)
			continue
		}
		return err
	}
	return lastErr
}

func isRetryableMySQLError(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		// 1213: Deadlock found; 1205: Lock wait timeout
		return me.Number == 1213 || me.Number == 1205
	}
	return false
}

// IsDuplicate reports a unique-key violation (serial already uploaded).
func IsDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
