package components

import (
	"estatebook/internal/handler"
	"estatebook/internal/handler/api"
	"estatebook/internal/handler/middleware"
	"estatebook/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewResourceHandler,
		middleware.NewAuthMiddleware,
		NewBookingRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

func NewBookingRateLimiter(cfg config.Config) *middleware.BookingRateLimiter {
	return middleware.NewBookingRateLimiter(cfg.Limit)
}
