package middleware

import (
	"Boomer/internal/api/config"
	"Boomer/internal/pkg/consts"
	"Boomer/internal/pkg/security"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(revoked RevocationCheck) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceMiddleware())
	r.GET("/guarded", AuthMiddleware(revoked), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":   c.GetString(consts.UserIDKey),
			"user_name": c.GetString(consts.UserNameKey),
		})
	})
	r.GET("/open", AuthOptionalMiddleware(revoked), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(consts.UserIDKey))
	})
	return r
}

func doGet(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	security.InitJWT(config.JWTConfig{Secret: "middleware-test", ExpireHours: 1, Issuer: "Boomer"})
	token, err := security.GenerateToken("alice_0a1b2c3d", "alice")
	require.NoError(t, err)

	notRevoked := func(context.Context, string) (bool, error) { return false, nil }

	t.Run("valid token", func(t *testing.T) {
		w := doGet(newAuthRouter(notRevoked), "/guarded", token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":"alice_0a1b2c3d","user_name":"alice"}`, w.Body.String())
		assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
	})

	t.Run("missing token", func(t *testing.T) {
		w := doGet(newAuthRouter(notRevoked), "/guarded", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"status":401`)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := doGet(newAuthRouter(notRevoked), "/guarded", "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("revoked token", func(t *testing.T) {
		revoked := func(context.Context, string) (bool, error) { return true, nil }
		w := doGet(newAuthRouter(revoked), "/guarded", token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("blacklist unavailable", func(t *testing.T) {
		broken := func(context.Context, string) (bool, error) { return false, errors.New("redis down") }
		w := doGet(newAuthRouter(broken), "/guarded", token)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("optional auth", func(t *testing.T) {
		r := newAuthRouter(notRevoked)
		assert.Equal(t, "alice_0a1b2c3d", doGet(r, "/open", token).Body.String())
		assert.Equal(t, "", doGet(r, "/open", "").Body.String())
		assert.Equal(t, "", doGet(r, "/open", "garbage").Body.String())
	})

	t.Run("optional auth ignores revoked token", func(t *testing.T) {
		revoked := func(context.Context, string) (bool, error) { return true, nil }
		w := doGet(newAuthRouter(revoked), "/open", token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "", w.Body.String())
	})

	t.Run("optional auth without blacklist", func(t *testing.T) {
		broken := func(context.Context, string) (bool, error) { return false, errors.New("redis down") }
		w := doGet(newAuthRouter(broken), "/open", token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "", w.Body.String())
	})
}

func TestTraceMiddleware_KeepsIncomingID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Trace-ID", "trace-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "trace-123", w.Header().Get("X-Trace-ID"))
}

func TestTraceMiddleware_ReplacesOversizedID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceHeader, strings.Repeat("x", 200))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	got := w.Header().Get(TraceHeader)
	assert.Len(t, got, 36)
	assert.NotContains(t, got, "xxx")
}
