package purchases

import "time"

const (
	StatusInitiated = "initiated"
	StatusPaid      = "paid"
	StatusFailed    = "failed"
)

// UnitPricePesewas: every checker type sells at ₵25.
const UnitPricePesewas = 2500

const Currency = "GHS"

type Purchase struct {
	ID        string `gorm:"type:char(36);primaryKey"`
	Reference string `gorm:"type:varchar(128);not null;uniqueIndex:ux_purchases_reference"`

	Type          string `gorm:"type:varchar(32);not null"`
	Qty           int    `gorm:"not null"`
	UnitPesewas   int    `gorm:"not null"`
	AmountPesewas int    `gorm:"not null"`
	Currency      string `gorm:"type:char(3);not null"`

	PurchaserName  string `gorm:"type:varchar(255);not null"`
	PurchaserPhone string `gorm:"type:varchar(32);not null;index:ix_purchases_phone"`

	Status           string     `gorm:"type:varchar(32);not null"`
	AuthorizationURL *string    `gorm:"type:varchar(512)"`
	ErrorMessage     *string    `gorm:"type:varchar(255)"`
	PaidAt           *time.Time `gorm:"type:datetime(3)"`

	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (Purchase) TableName() string { return "purchases" }
