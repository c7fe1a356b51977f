package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/authenticcheckers/waecvoucherpfront/internal/http/middleware"
	"github.com/authenticcheckers/waecvoucherpfront/internal/http/validation"
	"github.com/authenticcheckers/waecvoucherpfront/internal/modules/purchases"
	"github.com/authenticcheckers/waecvoucherpfront/internal/shared/apperr"
)

type PurchaseHandler struct {
	Logger    *slog.Logger
	Purchases *purchases.Service
}

func NewPurchaseHandler(logger *slog.Logger, svc *purchases.Service) *PurchaseHandler {
	return &PurchaseHandler{Logger: logger, Purchases: svc}
}

type purchaseInput struct {
	Name  string `json:"name" binding:"required,max=255"`
	Phone string `json:"phone" binding:"required,max=32"`
	Type  string `json:"type" binding:"required,max=32"`
	Qty   int    `json:"qty" binding:"required,min=1,max=10"`
}

// POST /api/voucher/purchase
// Domain errors come back as {message} so the storefront can show them
// verbatim; unexpected failures fall through to the error middleware.
func (h *PurchaseHandler) Create(c *gin.Context) {
	var in purchaseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fields := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Please check the purchase details.", fields))
		return
	}

	res, err := h.Purchases.Initiate(c.Request.Context(), purchases.InitiateInput{
		Name:  in.Name,
		Phone: in.Phone,
		Type:  in.Type,
		Qty:   in.Qty,
	})
	if err != nil {
		switch {
		case errors.Is(err, purchases.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		case errors.Is(err, purchases.ErrGatewayFailed):
			c.JSON(http.StatusBadGateway, gin.H{"message": "Could not reach the payment gateway. Please try again."})
		default:
			middleware.Fail(c, apperr.Wrap(err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authorization_url": res.AuthorizationURL,
		"reference":         res.Reference,
		"amount":            res.AmountPesewas,
	})
}
