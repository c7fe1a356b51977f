package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/authenticcheckers/waecvoucherpfront/internal/http/middleware"
	"github.com/authenticcheckers/waecvoucherpfront/internal/modules/purchases"
	"github.com/authenticcheckers/waecvoucherpfront/internal/modules/vouchers"
	"github.com/authenticcheckers/waecvoucherpfront/internal/shared/apperr"
)

type VerifyHandler struct {
	Logger    *slog.Logger
	Purchases *purchases.Service
}

func NewVerifyHandler(logger *slog.Logger, svc *purchases.Service) *VerifyHandler {
	return &VerifyHandler{Logger: logger, Purchases: svc}
}

// referenceParam reads the payment reference. Paystack redirects back
// with both "reference" and "trxref"; either works.
func referenceParam(c *gin.Context) string {
	if ref := c.Query("reference"); ref != "" {
		return ref
	}
	return c.Query("trxref")
}

type verifyVoucher struct {
	SerialNumber string `json:"serial_number"`
	PIN          string `json:"pin"`
}

// GET /api/voucher/verify?reference=... (or ?trxref=...)
func (h *VerifyHandler) Verify(c *gin.Context) {
	ref := referenceParam(c)
	if ref == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing payment reference."})
		return
	}

	res, err := h.Purchases.Verify(c.Request.Context(), ref)
	if err != nil {
		h.renderVerifyError(c, err)
		return
	}

	vs := make([]verifyVoucher, 0, len(res.Vouchers))
	for _, v := range res.Vouchers {
		vs = append(vs, verifyVoucher{SerialNumber: v.SerialNumber, PIN: v.PIN})
	}

	c.JSON(http.StatusOK, gin.H{
		"type":           res.Purchase.Type,
		"purchaser_name": res.Purchase.PurchaserName,
		"reference":      res.Purchase.Reference,
		"vouchers":       vs,
	})
}

// GET /api/vouchers?reference=...
// Legacy shape kept for older storefront builds: a bare array.
func (h *VerifyHandler) VerifyLegacy(c *gin.Context) {
	ref := referenceParam(c)
	if ref == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing payment reference."})
		return
	}

	res, err := h.Purchases.Verify(c.Request.Context(), ref)
	if err != nil {
		h.renderVerifyError(c, err)
		return
	}

	vs := make([]verifyVoucher, 0, len(res.Vouchers))
	for _, v := range res.Vouchers {
		vs = append(vs, verifyVoucher{SerialNumber: v.SerialNumber, PIN: v.PIN})
	}
	c.JSON(http.StatusOK, vs)
}

func (h *VerifyHandler) renderVerifyError(c *gin.Context, err error) {
	var oos *vouchers.OutOfStockError
	switch {
	case errors.Is(err, purchases.ErrUnknownReference):
		c.JSON(http.StatusNotFound, gin.H{"message": "We could not find this payment."})
	case errors.Is(err, purchases.ErrNotPaid):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Payment has not been completed."})
	case errors.As(err, &oos):
		// The charge captured but stock ran out before allocation.
		// The purchase stays initiated and finalizes on the webhook
		// retry once stock is loaded, so point the buyer at phone
		// retrieval instead of a generic failure.
		h.Logger.Error("paid purchase hit empty stock", "type", oos.Type, "requested", oos.Requested, "available", oos.Available)
		c.JSON(http.StatusConflict, gin.H{"message": "Your payment was received, but this voucher type just sold out. Your vouchers will be sent to your phone as soon as stock is reloaded. You can also retrieve them later with your phone number."})
	case errors.Is(err, purchases.ErrGatewayFailed):
		c.JSON(http.StatusBadGateway, gin.H{"message": "Could not confirm the payment. Please try again."})
	default:
		middleware.Fail(c, apperr.Wrap(err))
	}
}
