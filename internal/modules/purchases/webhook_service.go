package purchases

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/authenticcheckers/waecvoucherpfront/internal/modules/payments"
	"github.com/authenticcheckers/waecvoucherpfront/internal/modules/vouchers"
)

type ProviderEvent struct {
	ID          string         `gorm:"type:char(36);primaryKey"`
	Provider    string         `gorm:"type:varchar(64);not null;uniqueIndex:ux_provider_events_provider_event,priority:1"`
	EventID     string         `gorm:"type:varchar(128);not null;uniqueIndex:ux_provider_events_provider_event,priority:2"`
	EventType   string         `gorm:"type:varchar(64);not null"`
	PayloadJSON datatypes.JSON `gorm:"type:json;not null"`

	ReceivedAt   time.Time  `gorm:"type:datetime(3);not null"`
	ProcessedAt  *time.Time `gorm:"type:datetime(3)"`
	ProcessError *string    `gorm:"type:varchar(255)"`
}

func (ProviderEvent) TableName() string { return "provider_events" }

type WebhookService struct {
	db        *gorm.DB
	purchases *Service
	logger    *slog.Logger
}

func NewWebhookService(db *gorm.DB, svc *Service) *WebhookService {
	return &WebhookService{db: db, purchases: svc, logger: slog.Default()}
}

func (s *WebhookService) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Handle persists the raw event with a unique (provider, event_id)
// guard, then applies it. A duplicate delivery short-circuits to 200.
// Processing errors are recorded and propagated so the gateway retries.
func (s *WebhookService) Handle(ctx context.Context, providerName string, ev payments.WebhookEvent, rawBody []byte) error {
	payload, _ := json.RawMessage(rawBody).MarshalJSON()

	now := time.Now()
	pe := ProviderEvent{
		ID:          uuid.NewString(),
		Provider:    providerName,
		EventID:     ev.EventID,
		EventType:   ev.Type,
		PayloadJSON: datatypes.JSON(payload),
		ReceivedAt:  now,
	}

	if err := s.db.WithContext(ctx).Create(&pe).Error; err != nil {
		if vouchers.IsDuplicate(err) {
			s.logger.InfoContext(ctx, "webhook event deduplicated", "provider", providerName, "event_id", ev.EventID, "type", ev.Type)
			return nil
		}
		s.logger.ErrorContext(ctx, "failed to persist provider event", "provider", providerName, "event_id", ev.EventID, "err", err)
		return err
	}

	var applyErr error
	switch ev.Type {
	case "charge.success":
		_, applyErr = s.purchases.Finalize(ctx, ev.Reference)
	case "charge.failed":
		applyErr = s.purchases.MarkFailed(ctx, ev.Reference, "provider webhook: charge failed")
	default:
		applyErr = errors.New("unknown webhook event type")
	}

	if applyErr != nil {
		// an unknown reference will never succeed on retry; record and ack
		if errors.Is(applyErr, ErrUnknownReference) {
			msg := truncate(applyErr.Error(), 250)
			_ = s.db.WithContext(ctx).Model(&ProviderEvent{}).
				Where("id = ?", pe.ID).
				Updates(map[string]any{"process_error": msg}).Error
			s.logger.WarnContext(ctx, "webhook for unknown reference", "provider", providerName, "reference", ev.Reference)
			return nil
		}

		msg := truncate(applyErr.Error(), 250)
		if err := s.db.WithContext(ctx).Model(&ProviderEvent{}).
			Where("id = ?", pe.ID).
			Updates(map[string]any{"process_error": msg}).Error; err != nil {
			return err
		}
		s.logger.ErrorContext(ctx, "webhook event apply failed", "provider", providerName, "event_id", ev.EventID, "type", ev.Type, "error", msg)
		return applyErr
	}

	processed := time.Now()
	if err := s.db.WithContext(ctx).Model(&ProviderEvent{}).
		Where("id = ?", pe.ID).
		Updates(map[string]any{"processed_at": &processed, "process_error": nil}).Error; err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "webhook event processed", "provider", providerName, "event_id", ev.EventID, "type", ev.Type)
	return nil
}
