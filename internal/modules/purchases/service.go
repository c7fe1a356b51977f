package purchases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/authenticcheckers/waecvoucherpfront/internal/modules/payments"
	"github.com/authenticcheckers/waecvoucherpfront/internal/modules/vouchers"
)

// AfterSaleHook runs best-effort side effects (SMS delivery, receipt
// upload, low-stock alerts) once a purchase has committed as paid.
type AfterSaleHook func(ctx context.Context, p Purchase, vs []vouchers.Voucher)

type Service struct {
	db        *gorm.DB
	provider  payments.Provider
	logger    *slog.Logger
	afterSale AfterSaleHook

	callbackURL string
	emailDomain string
}

func NewService(db *gorm.DB, p payments.Provider, callbackURL string) *Service {
	return &Service{
		db:          db,
		provider:    p,
		logger:      slog.Default(),
		callbackURL: callbackURL,
		emailDomain: "customers.authenticcheckers.com",
	}
}

func (s *Service) SetLogger(l *slog.Logger)     { s.logger = l }
func (s *Service) SetAfterSale(h AfterSaleHook) { s.afterSale = h }

type InitiateInput struct {
	Name  string
	Phone string
	Type  string
	Qty   int
}

type InitiateResult struct {
	Reference        string
	AuthorizationURL string
	AmountPesewas    int
}

// Digits strips every non-digit from a phone number.
func Digits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}

// ValidateInitiate mirrors the storefront's local validation: the
// server re-checks so a bypassed form can never create a purchase.
func ValidateInitiate(in InitiateInput) (InitiateInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)

	if in.Name == "" {
		return in, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(Digits(in.Phone)) < 10 {
		return in, fmt.Errorf("%w: phone must have at least 10 digits", ErrInvalidInput)
	}
	t, ok := vouchers.ParseType(in.Type)
	if !ok {
		return in, fmt.Errorf("%w: unknown voucher type %q", ErrInvalidInput, in.Type)
	}
	in.Type = t
	if in.Qty < 1 || in.Qty > 10 {
		return in, fmt.Errorf("%w: qty must be between 1 and 10", ErrInvalidInput)
	}
	return in, nil
}

// Initiate creates a pending purchase and asks the gateway for a hosted
// payment page. The provider call happens outside the transaction; the
// row is finalized with the authorization URL (or the failure) after.
func (s *Service) Initiate(ctx context.Context, in InitiateInput) (InitiateResult, error) {
	in, err := ValidateInitiate(in)
	if err != nil {
		return InitiateResult{}, err
	}

	now := time.Now()
	p := Purchase{
		ID:             uuid.NewString(),
		Reference:      "VHB-" + strings.ToUpper(uuid.NewString()[:13]),
		Type:           in.Type,
		Qty:            in.Qty,
		UnitPesewas:    UnitPricePesewas,
		AmountPesewas:  in.Qty * UnitPricePesewas,
		Currency:       Currency,
		PurchaserName:  in.Name,
		PurchaserPhone: in.Phone,
		Status:         StatusInitiated,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return InitiateResult{}, err
	}

	// Phase-2: gateway call (outside tx)
	resp, perr := s.provider.Initialize(ctx, payments.InitializeRequest{
		Reference:     p.Reference,
		Email:         Digits(in.Phone) + "@" + s.emailDomain,
		AmountPesewas: p.AmountPesewas,
		Currency:      p.Currency,
		CallbackURL:   s.callbackURL,
		Metadata: map[string]string{
			"voucher_type": p.Type,
			"purchaser":    p.PurchaserName,
		},
	})

	// Phase-3: persist outcome
	updates := map[string]any{"updated_at": time.Now()}
	if perr != nil {
		msg := truncate(perr.Error(), 250)
		updates["status"] = StatusFailed
		updates["error_message"] = msg
		if err := s.db.WithContext(ctx).Model(&Purchase{}).Where("id = ?", p.ID).Updates(updates).Error; err != nil {
			return InitiateResult{}, err
		}
		s.logger.ErrorContext(ctx, "purchase initialize failed", "reference", p.Reference, "err", perr)
		return InitiateResult{}, fmt.Errorf("%w: %v", ErrGatewayFailed, perr)
	}

	updates["authorization_url"] = resp.AuthorizationURL
	if err := s.db.WithContext(ctx).Model(&Purchase{}).Where("id = ?", p.ID).Updates(updates).Error; err != nil {
		return InitiateResult{}, err
	}

	return InitiateResult{
		Reference:        p.Reference,
		AuthorizationURL: resp.AuthorizationURL,
		AmountPesewas:    p.AmountPesewas,
	}, nil
}

type VerifyResult struct {
	Purchase Purchase
	Vouchers []vouchers.Voucher
}

// Verify confirms a reference with the gateway and issues vouchers.
// Safe to call repeatedly: a paid purchase always returns the same set.
func (s *Service) Verify(ctx context.Context, reference string) (VerifyResult, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return VerifyResult{}, ErrUnknownReference
	}

	var p Purchase
	err := s.db.WithContext(ctx).First(&p, "reference = ?", reference).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return VerifyResult{}, ErrUnknownReference
	}
	if err != nil {
		return VerifyResult{}, err
	}

	if p.Status == StatusPaid {
		vs, err := vouchers.NewRepo(s.db).ByReference(ctx, reference)
		if err != nil {
			return VerifyResult{}, err
		}
		return VerifyResult{Purchase: p, Vouchers: vs}, nil
	}

	vr, err := s.provider.Verify(ctx, reference)
	if err != nil {
		return VerifyResult{}, fmt.Errorf("%w: %v", ErrGatewayFailed, err)
	}
	if vr.Status != "success" {
		return VerifyResult{}, fmt.Errorf("%w: gateway status %q", ErrNotPaid, vr.Status)
	}

	return s.Finalize(ctx, reference)
}

// Finalize marks a purchase paid and allocates its vouchers, exactly
// once. The purchase row lock plus the status gate make the webhook and
// the success-page verify race idempotent.
func (s *Service) Finalize(ctx context.Context, reference string) (VerifyResult, error) {
	var out VerifyResult

	err := vouchers.WithTxRetry(ctx, s.db, 3, func(tx *gorm.DB) error {
		var p Purchase
		if err := tx.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&p, "reference = ?", reference).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnknownReference
			}
			return err
		}

		if p.Status == StatusPaid {
			vs, err := fetchByReferenceInTx(ctx, tx, reference)
			if err != nil {
				return err
			}
			out = VerifyResult{Purchase: p, Vouchers: vs}
			return nil
		}

		vs, err := vouchers.AllocateInTx(ctx, tx, vouchers.AllocateInput{
			Type:           p.Type,
			Qty:            p.Qty,
			PurchaserName:  p.PurchaserName,
			PurchaserPhone: p.PurchaserPhone,
			Reference:      p.Reference,
		})
		if err != nil {
			return err
		}

		now := time.Now()
		if err := tx.WithContext(ctx).Model(&Purchase{}).
			Where("id = ? AND status <> ?", p.ID, StatusPaid).
			Updates(map[string]any{
				"status":        StatusPaid,
				"paid_at":       &now,
				"error_message": nil,
				"updated_at":    now,
			}).Error; err != nil {
			return err
		}

		p.Status = StatusPaid
		p.PaidAt = &now
		out = VerifyResult{Purchase: p, Vouchers: vs}
		return nil
	})
	if err != nil {
		return VerifyResult{}, err
	}

	if s.afterSale != nil && len(out.Vouchers) > 0 {
		s.afterSale(ctx, out.Purchase, out.Vouchers)
	}
	return out, nil
}

// MarkFailed records a terminal gateway failure (webhook charge.failed).
// Paid purchases are never demoted.
func (s *Service) MarkFailed(ctx context.Context, reference, reason string) error {
	msg := truncate(reason, 250)
	return s.db.WithContext(ctx).Model(&Purchase{}).
		Where("reference = ? AND status = ?", reference, StatusInitiated).
		Updates(map[string]any{
			"status":        StatusFailed,
			"error_message": msg,
			"updated_at":    time.Now(),
		}).Error
}

func fetchByReferenceInTx(ctx context.Context, tx *gorm.DB, reference string) ([]vouchers.Voucher, error) {
	var vs []vouchers.Voucher
	err := tx.WithContext(ctx).
		Where("paystack_reference = ?", reference).
		Order("serial_number ASC").
		Find(&vs).Error
	return vs, err
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
