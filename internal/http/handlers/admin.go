package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/authenticcheckers/waecvoucherpfront/internal/http/middleware"
	"github.com/authenticcheckers/waecvoucherpfront/internal/http/validation"
	"github.com/authenticcheckers/waecvoucherpfront/internal/modules/admin"
	"github.com/authenticcheckers/waecvoucherpfront/internal/shared/apperr"
	"github.com/authenticcheckers/waecvoucherpfront/internal/sms"
)

type AdminHandler struct {
	Logger *slog.Logger
	Admin  *admin.Service
	SMS    *sms.DeliveryService // nil when no SMS gateway is configured
}

func NewAdminHandler(logger *slog.Logger, svc *admin.Service, delivery *sms.DeliveryService) *AdminHandler {
	return &AdminHandler{Logger: logger, Admin: svc, SMS: delivery}
}

// GET /api/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.Admin.Stats(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/admin/sales?limit=200
func (h *AdminHandler) Sales(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "200"))
	sales, err := h.Admin.Sales(c.Request.Context(), limit)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, sales)
}

type uploadInput struct {
	// Structured records, or raw CSV text as exported from the supplier.
	Vouchers []admin.VoucherRecord `json:"vouchers" binding:"omitempty,dive"`
	CSV      string                `json:"csv" binding:"omitempty"`
}

// POST /api/admin/upload
func (h *AdminHandler) Upload(c *gin.Context) {
	var in uploadInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fields := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Upload payload is invalid.", fields))
		return
	}

	records := in.Vouchers
	if in.CSV != "" {
		records = append(records, admin.ParseVoucherCSV(in.CSV)...)
	}
	if len(records) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No valid voucher rows found."})
		return
	}

	res, err := h.Admin.Upload(c.Request.Context(), records)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	h.Logger.Info("voucher upload", "inserted", res.Inserted, "skipped", res.Skipped)
	c.JSON(http.StatusOK, gin.H{"message": res.Message()})
}

// GET /api/admin/sms/:phone
// Recent delivery attempts, for support lookups.
func (h *AdminHandler) SMSLogs(c *gin.Context) {
	if h.SMS == nil {
		c.JSON(http.StatusOK, []any{})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	logs, err := h.SMS.History(c.Request.Context(), c.Param("phone"), limit)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, logs)
}
