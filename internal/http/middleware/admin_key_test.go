package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/authenticcheckers/waecvoucherpfront/internal/config"
)

func newAdminTestRouter(cfg config.AdminKeyConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler(slog.Default()))
	r.GET("/api/admin/ping", RequireAdminKey(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRequireAdminKey_PlainKey(t *testing.T) {
	r := newAdminTestRouter(config.AdminKeyConfig{Key: "topsecret"})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.Header.Set(HeaderAdminKey, "topsecret")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminKey_WrongKey(t *testing.T) {
	r := newAdminTestRouter(config.AdminKeyConfig{Key: "topsecret"})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.Header.Set(HeaderAdminKey, "nope")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Incorrect admin key")
}

func TestRequireAdminKey_MissingKey(t *testing.T) {
	r := newAdminTestRouter(config.AdminKeyConfig{Key: "topsecret"})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminKey_BcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("topsecret"), bcrypt.MinCost)
	assert.NoError(t, err)

	r := newAdminTestRouter(config.AdminKeyConfig{KeyHash: string(hash)})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.Header.Set(HeaderAdminKey, "topsecret")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.Header.Set(HeaderAdminKey, "wrong")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// hash precedence: when both are set, only the hash is consulted
func TestRequireAdminKey_HashWinsOverPlain(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("hashed-key"), bcrypt.MinCost)
	r := newAdminTestRouter(config.AdminKeyConfig{KeyHash: string(hash), Key: "plain-key"})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.Header.Set(HeaderAdminKey, "plain-key")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
