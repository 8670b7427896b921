package handler

import (
	"net/http"

	"salon-booking/internal/handler/api"
	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Booking *api.BookingHandler
	Admin   *api.AdminHandler
	Dialog  *api.DialogHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	m *metrics.Metrics,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
) error {
	if err := reqdto.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, m, handlers, authMiddleware)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(logger.CORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.MetricsMiddleware(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, m *metrics.Metrics, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
		})

		channel := apiGroup.Group("")
		channel.Use(authMiddleware.RequireChannel())
		addRoutes(channel, []route{
			{Method: http.MethodGet, Path: "/services", Handler: h.Booking.ListServices},
			{Method: http.MethodGet, Path: "/services/:id/slots", Handler: h.Booking.FreeSlots},
			{Method: http.MethodPost, Path: "/reservations", Handler: h.Booking.Hold},
			{Method: http.MethodPost, Path: "/reservations/:id/confirm", Handler: h.Booking.Confirm},
			{Method: http.MethodDelete, Path: "/reservations/:id", Handler: h.Booking.Discard},
			{Method: http.MethodGet, Path: "/appointments", Handler: h.Booking.ListAppointments},
			{Method: http.MethodGet, Path: "/appointments/:date/:time/quote", Handler: h.Booking.Quote},
			{Method: http.MethodPost, Path: "/appointments/:date/:time/cancel", Handler: h.Booking.Cancel},
			{Method: http.MethodGet, Path: "/cancellations", Handler: h.Booking.ListCancellations},
			{Method: http.MethodPost, Path: "/dialog/start", Handler: h.Dialog.Start},
			{Method: http.MethodPost, Path: "/dialog/input", Handler: h.Dialog.Input},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireOperator())
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/summary", Handler: h.Admin.Summary},
			{Method: http.MethodGet, Path: "/appointments", Handler: h.Admin.ListAppointments},
			{Method: http.MethodGet, Path: "/appointments/:date/:time/quote", Handler: h.Admin.Quote},
			{Method: http.MethodPost, Path: "/appointments/:date/:time/cancel", Handler: h.Admin.Cancel},
			{Method: http.MethodPost, Path: "/purge", Handler: h.Admin.Purge},
			{Method: http.MethodGet, Path: "/export", Handler: h.Admin.Export},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
