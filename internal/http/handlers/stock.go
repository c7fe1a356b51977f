package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/authenticcheckers/waecvoucherpfront/internal/http/middleware"
	"github.com/authenticcheckers/waecvoucherpfront/internal/modules/vouchers"
	"github.com/authenticcheckers/waecvoucherpfront/internal/shared/apperr"
)

type StockHandler struct {
	Repo *vouchers.Repo
}

func NewStockHandler(repo *vouchers.Repo) *StockHandler {
	return &StockHandler{Repo: repo}
}

// GET /api/voucher/stock -> {"WASSCE": n, "BECE": n, "SCHOOLPLACEMENT": n}
func (h *StockHandler) Get(c *gin.Context) {
	avail, err := h.Repo.AvailableByType(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, avail)
}
