package vouchers

import (
	"strings"
	"time"
)

const (
	TypeWASSCE          = "WASSCE"
	TypeBECE            = "BECE"
	TypeSchoolPlacement = "SCHOOLPLACEMENT"
)

const (
	StatusAvailable = "available"
	StatusSold      = "sold"
)

// Types lists the closed set of checker types, in display order.
func Types() []string {
	return []string{TypeWASSCE, TypeBECE, TypeSchoolPlacement}
}

// ParseType normalizes user/CSV input into a known type. ok=false for
// anything outside the closed enum.
func ParseType(s string) (string, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case TypeWASSCE:
		return TypeWASSCE, true
	case TypeBECE:
		return TypeBECE, true
	case TypeSchoolPlacement, "SCHOOL-PLACEMENT", "SCHOOL_PLACEMENT", "PLACEMENT":
		return TypeSchoolPlacement, true
	default:
		return "", false
	}
}

// DisplayName: SCHOOLPLACEMENT reads as "Placement" in the storefront.
func DisplayName(t string) string {
	if t == TypeSchoolPlacement {
		return "Placement"
	}
	return t
}

type Voucher struct {
	ID           string `gorm:"type:char(36);primaryKey"`
	SerialNumber string `gorm:"column:serial_number;type:varchar(64);not null;uniqueIndex:ux_vouchers_serial"`
	PIN          string `gorm:"column:pin;type:varchar(64);not null"`
	Type         string `gorm:"type:varchar(32);not null;index:ix_vouchers_type_status,priority:1"`
	Status       string `gorm:"type:varchar(16);not null;index:ix_vouchers_type_status,priority:2"`

	PurchaserName     *string    `gorm:"type:varchar(255)"`
	PurchaserPhone    *string    `gorm:"type:varchar(32);index:ix_vouchers_phone"`
	PaystackReference *string    `gorm:"type:varchar(128);index:ix_vouchers_reference"`
	PurchasedAt       *time.Time `gorm:"type:datetime(3)"`
	ReceiptURL        *string    `gorm:"type:varchar(512)"`

	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (Voucher) TableName() string { return "vouchers" }
