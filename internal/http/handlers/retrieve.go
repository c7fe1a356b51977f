package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/authenticcheckers/waecvoucherpfront/internal/http/middleware"
	"github.com/authenticcheckers/waecvoucherpfront/internal/modules/vouchers"
	"github.com/authenticcheckers/waecvoucherpfront/internal/shared/apperr"
)

type RetrieveHandler struct {
	Repo *vouchers.Repo
}

func NewRetrieveHandler(repo *vouchers.Repo) *RetrieveHandler {
	return &RetrieveHandler{Repo: repo}
}

// GET /api/voucher/retrieve/:serial
func (h *RetrieveHandler) BySerial(c *gin.Context) {
	v, err := h.Repo.BySerial(c.Request.Context(), c.Param("serial"))
	if err != nil {
		if errors.Is(err, vouchers.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Voucher not found"})
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, toVoucherJSON(v))
}

// GET /api/voucher/retrieve/phone/:phone
func (h *RetrieveHandler) ByPhone(c *gin.Context) {
	vs, err := h.Repo.ByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	if len(vs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No vouchers found for this phone number"})
		return
	}
	c.JSON(http.StatusOK, toVoucherJSONList(vs))
}
