// Package fulfillment runs the side effects of a completed sale: SMS
// delivery, receipt hosting, and low-stock alerts. Everything here is
// best-effort; a failure is logged and never unwinds the paid purchase.
package fulfillment

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/authenticcheckers/waecvoucherpfront/internal/modules/email"
	"github.com/authenticcheckers/waecvoucherpfront/internal/modules/purchases"
	"github.com/authenticcheckers/waecvoucherpfront/internal/modules/vouchers"
	"github.com/authenticcheckers/waecvoucherpfront/internal/receipt"
	"github.com/authenticcheckers/waecvoucherpfront/internal/sms"
	"github.com/authenticcheckers/waecvoucherpfront/internal/storage"
)

type Service struct {
	logger   *slog.Logger
	repo     *vouchers.Repo
	delivery *sms.DeliveryService // nil disables SMS
	store    storage.Storage      // nil disables hosted receipts
	alerts   *email.Alerts        // nil disables low-stock mail

	lowStockThreshold int
}

func New(logger *slog.Logger, repo *vouchers.Repo, delivery *sms.DeliveryService, store storage.Storage, alerts *email.Alerts, lowStockThreshold int) *Service {
	return &Service{
		logger:            logger,
		repo:              repo,
		delivery:          delivery,
		store:             store,
		alerts:            alerts,
		lowStockThreshold: lowStockThreshold,
	}
}

// AfterSale satisfies purchases.AfterSaleHook.
func (s *Service) AfterSale(ctx context.Context, p purchases.Purchase, vs []vouchers.Voucher) {
	s.deliverSMS(ctx, p, vs)
	s.hostReceipt(ctx, p, vs)
	s.checkStock(ctx, p.Type)
}

func (s *Service) deliverSMS(ctx context.Context, p purchases.Purchase, vs []vouchers.Voucher) {
	if s.delivery == nil {
		return
	}
	lines := make([]sms.VoucherLine, 0, len(vs))
	for _, v := range vs {
		lines = append(lines, sms.VoucherLine{SerialNumber: v.SerialNumber, PIN: v.PIN})
	}
	if err := s.delivery.DeliverVouchers(ctx, p.PurchaserPhone, p.Reference, vouchers.DisplayName(p.Type), lines); err != nil {
		s.logger.ErrorContext(ctx, "voucher sms delivery failed", "reference", p.Reference, "err", err)
	}
}

func (s *Service) hostReceipt(ctx context.Context, p purchases.Purchase, vs []vouchers.Voucher) {
	if s.store == nil {
		return
	}

	records := make([]receipt.Record, 0, len(vs))
	for _, v := range vs {
		records = append(records, receipt.Record{SerialNumber: v.SerialNumber, PIN: v.PIN})
	}

	pdf, err := receipt.Build(records, receipt.Options{PurchaserName: p.PurchaserName, Type: p.Type})
	if err != nil {
		s.logger.ErrorContext(ctx, "receipt build failed", "reference", p.Reference, "err", err)
		return
	}

	res, err := s.store.Put(ctx, bytes.NewReader(pdf), storage.PutInput{
		Filename:    receipt.Filename(records),
		ContentType: "application/pdf",
		Size:        int64(len(pdf)),
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "receipt upload failed", "reference", p.Reference, "err", err)
		return
	}

	for _, v := range vs {
		if err := s.repo.SetReceiptURL(ctx, v.SerialNumber, res.URL); err != nil {
			s.logger.ErrorContext(ctx, "receipt url update failed", "serial", v.SerialNumber, "err", err)
		}
	}
}

func (s *Service) checkStock(ctx context.Context, voucherType string) {
	if !s.alerts.Enabled() || s.lowStockThreshold <= 0 {
		return
	}
	avail, err := s.repo.AvailableByType(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "stock check failed", "err", err)
		return
	}
	if n := avail[voucherType]; n < s.lowStockThreshold {
		if err := s.alerts.LowStock(ctx, voucherType, n); err != nil {
			s.logger.ErrorContext(ctx, "low stock alert failed", "type", voucherType, "err", err)
		}
	}
}
