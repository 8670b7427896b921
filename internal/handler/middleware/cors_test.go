//go:build unit

package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORSAlwaysAllowsChannelHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.CORSConfig{
		AllowOrigins: []string{"https://salon.example"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Origin"},
	}
	engine := gin.New()
	engine.Use(middleware.NewCORSMiddleware(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))))
	engine.POST("/api/reservations", func(c *gin.Context) { c.Status(http.StatusCreated) })

	req := httptest.NewRequest(http.MethodOptions, "/api/reservations", nil)
	req.Header.Set("Origin", "https://salon.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "x-channel-key,x-user-id")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	allowed := w.Header().Get("Access-Control-Allow-Headers")
	assert.Contains(t, allowed, http.CanonicalHeaderKey(middleware.HeaderChannelKey))
	assert.Contains(t, allowed, http.CanonicalHeaderKey(middleware.HeaderUserID))

	t.Run("simple request exposes request id and location", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/reservations", nil)
		req.Header.Set("Origin", "https://salon.example")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		exposed := w.Header().Get("Access-Control-Expose-Headers")
		assert.Contains(t, exposed, http.CanonicalHeaderKey(middleware.HeaderRequestID))
		assert.Contains(t, exposed, "Location")
	})
}
