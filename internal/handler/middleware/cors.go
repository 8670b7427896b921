package middleware

import (
	"log/slog"
	"slices"

	"salon-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Headers every browser-based front end needs regardless of deployment config.
var (
	channelRequestHeaders = []string{HeaderChannelKey, HeaderUserID, "Authorization", "Content-Type"}
	bookingExposeHeaders  = []string{HeaderRequestID, "Location", "Content-Disposition"}
)

func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     mergeHeaders(cfg.AllowHeaders, channelRequestHeaders),
		ExposeHeaders:    mergeHeaders(cfg.ExposeHeaders, bookingExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	logger.Info("CORS middleware initialized",
		"allow_origins", corsCfg.AllowOrigins,
		"expose_headers", corsCfg.ExposeHeaders)
	return cors.New(corsCfg)
}

func mergeHeaders(configured, required []string) []string {
	out := slices.Clone(configured)
	for _, h := range required {
		if !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}
