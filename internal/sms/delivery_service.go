package sms

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

type SentLog struct {
	ID                int64      `gorm:"primaryKey" json:"id"`
	PhoneNumber       string     `gorm:"column:phone_number" json:"phone_number"`
	Reference         string     `gorm:"column:reference" json:"reference"`
	MessageType       string     `gorm:"column:message_type" json:"message_type"`
	Status            string     `gorm:"column:status" json:"status"`
	ProviderMessageID *string    `gorm:"column:provider_message_id" json:"provider_message_id,omitempty"`
	ErrorMessage      *string    `gorm:"column:error_message" json:"error_message,omitempty"`
	SentAt            *time.Time `gorm:"column:sent_at" json:"sent_at,omitempty"`
	CreatedAt         time.Time  `gorm:"column:created_at" json:"created_at"`
}

func (SentLog) TableName() string { return "sms_sent_logs" }

type DeliveryService struct {
	db       *gorm.DB
	provider SMSProvider
}

func NewDeliveryService(db *gorm.DB, provider SMSProvider) *DeliveryService {
	return &DeliveryService{db: db, provider: provider}
}

type VoucherLine struct {
	SerialNumber string
	PIN          string
}

// DeliverVouchers texts serial+PIN pairs to the purchaser. Best-effort:
// the outcome lands in sms_sent_logs either way, and the caller treats
// a failure as non-fatal (the success page and retrieval still work).
func (s *DeliveryService) DeliverVouchers(ctx context.Context, phone, reference, voucherType string, lines []VoucherLine) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Your %s voucher", voucherType)
	if len(lines) > 1 {
		b.WriteString("s")
	}
	b.WriteString(":\n")
	for _, ln := range lines {
		fmt.Fprintf(&b, "Serial %s PIN %s\n", ln.SerialNumber, ln.PIN)
	}
	b.WriteString("Keep your PIN private.")

	idempotencyKey := fmt.Sprintf("voucher-%s", reference)
	providerMsgID, err := s.provider.Send(ctx, phone, b.String(), idempotencyKey)

	logEntry := SentLog{
		PhoneNumber: phone,
		Reference:   reference,
		MessageType: "voucher_delivery",
		Status:      "sent",
		CreatedAt:   time.Now(),
	}
	if err != nil {
		logEntry.Status = "failed"
		errMsg := err.Error()
		logEntry.ErrorMessage = &errMsg
	} else {
		logEntry.ProviderMessageID = &providerMsgID
		sentAt := time.Now()
		logEntry.SentAt = &sentAt
	}

	_ = s.db.WithContext(ctx).Create(&logEntry).Error
	return err
}

// History returns recent delivery attempts for a phone number.
func (s *DeliveryService) History(ctx context.Context, phone string, limit int) ([]SentLog, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	var logs []SentLog
	err := s.db.WithContext(ctx).Where("phone_number = ?", phone).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
