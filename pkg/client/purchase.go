package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// UnitPriceCedis is the flat per-voucher price shown in the storefront.
const UnitPriceCedis = 25

type PurchaseInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Type  string `json:"type"`
	Qty   int    `json:"qty"`
}

type PurchaseResult struct {
	AuthorizationURL string `json:"authorization_url"`
	Reference        string `json:"reference"`
	AmountPesewas    int    `json:"amount"`
}

func digits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}

// ValidatePurchase applies the storefront's form rules. A failing
// input never reaches the network.
func ValidatePurchase(in PurchaseInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("name is required")
	}
	if len(digits(in.Phone)) < 10 {
		return errors.New("enter a valid phone number")
	}
	switch strings.ToUpper(strings.TrimSpace(in.Type)) {
	case "WASSCE", "BECE", "SCHOOLPLACEMENT", "SCHOOL-PLACEMENT", "SCHOOL_PLACEMENT", "PLACEMENT":
	default:
		return fmt.Errorf("unknown voucher type %q", in.Type)
	}
	if in.Qty < 1 || in.Qty > 10 {
		return errors.New("quantity must be between 1 and 10")
	}
	return nil
}

// Purchase initiates a payment and returns the gateway URL for a
// full-page redirect.
func (c *Client) Purchase(ctx context.Context, in PurchaseInput) (PurchaseResult, error) {
	if err := ValidatePurchase(in); err != nil {
		return PurchaseResult{}, err
	}

	var out PurchaseResult
	err := c.doJSON(ctx, http.MethodPost, "/api/voucher/purchase", nil, in, &out)
	if err != nil {
		var ae *apiError
		if errors.As(err, &ae) && ae.Message != "" {
			// server message shown verbatim
			return PurchaseResult{}, errors.New(ae.Message)
		}
		if errors.Is(err, ErrNonJSON) {
			return PurchaseResult{}, errors.New("could not start the payment, please try again")
		}
		return PurchaseResult{}, err
	}
	if out.AuthorizationURL == "" {
		return PurchaseResult{}, errors.New("could not start the payment, please try again")
	}
	return out, nil
}

// ClampQty keeps the quantity stepper inside the allowed range.
func ClampQty(qty int) int {
	if qty < 1 {
		return 1
	}
	if qty > 10 {
		return 10
	}
	return qty
}

// DisplayTotal formats the order total for the storefront. Display
// only; the server computes the charged amount itself.
func DisplayTotal(qty int) string {
	return fmt.Sprintf("GH₵%d.00", ClampQty(qty)*UnitPriceCedis)
}
