package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/authenticcheckers/waecvoucherpfront/internal/config"
	"github.com/authenticcheckers/waecvoucherpfront/internal/shared/apperr"
)

const HeaderAdminKey = "x-admin-key"

// RequireAdminKey guards the dashboard endpoints. The key travels in
// the x-admin-key header on every request; there are no sessions.
func RequireAdminKey(cfg config.AdminKeyConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderAdminKey)
		if key == "" || !adminKeyMatches(cfg, key) {
			Fail(c, apperr.UnauthorizedErr("Incorrect admin key"))
			return
		}
		c.Next()
	}
}

func adminKeyMatches(cfg config.AdminKeyConfig, key string) bool {
	if cfg.KeyHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(cfg.KeyHash), []byte(key)) == nil
	}
	if cfg.Key != "" {
		return subtle.ConstantTimeCompare([]byte(cfg.Key), []byte(key)) == 1
	}
	return false
}
