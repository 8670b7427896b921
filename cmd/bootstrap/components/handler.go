package components

import (
	"salon-booking/internal/handler"
	"salon-booking/internal/handler/api"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewAdminHandler,
		api.NewDialogHandler,
		NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthMiddleware(cfg config.Config, tokenValidator usecase.TokenValidator) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(tokenValidator, cfg.Channel)
}

func NewHandlers(auth *api.AuthHandler, booking *api.BookingHandler, admin *api.AdminHandler, dialog *api.DialogHandler) handler.Handlers {
	return handler.Handlers{Auth: auth, Booking: booking, Admin: admin, Dialog: dialog}
}
