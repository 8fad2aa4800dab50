package components

import (
	"hotel-reservation-core/internal/handler"
	"hotel-reservation-core/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHotelHandler,
		api.NewBookingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
