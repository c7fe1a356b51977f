package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/authenticcheckers/waecvoucherpfront/internal/http/middleware"
	"github.com/authenticcheckers/waecvoucherpfront/internal/modules/vouchers"
	"github.com/authenticcheckers/waecvoucherpfront/internal/receipt"
	"github.com/authenticcheckers/waecvoucherpfront/internal/shared/apperr"
)

type ReceiptHandler struct {
	Repo *vouchers.Repo
}

func NewReceiptHandler(repo *vouchers.Repo) *ReceiptHandler {
	return &ReceiptHandler{Repo: repo}
}

// GET /api/voucher/receipt/:serial
// Renders the PDF on demand; only sold vouchers have receipts.
func (h *ReceiptHandler) Download(c *gin.Context) {
	v, err := h.Repo.BySerial(c.Request.Context(), c.Param("serial"))
	if err != nil {
		if errors.Is(err, vouchers.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Voucher not found"})
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	records := []receipt.Record{{SerialNumber: v.SerialNumber, PIN: v.PIN}}
	pdf, err := receipt.Build(records, receipt.Options{
		PurchaserName: deref(v.PurchaserName),
		Type:          v.Type,
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", receipt.Filename(records)))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
