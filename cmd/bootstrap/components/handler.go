package components

import (
	"hall-booking/internal/handler"
	"hall-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHallHandler,
		api.NewBookingHandler,
		api.NewAdminHandler,
		func(hall *api.HallHandler, bk *api.BookingHandler, admin *api.AdminHandler) handler.Handlers {
			return handler.Handlers{Hall: hall, Booking: bk, Admin: admin}
		},
	),
	fx.Invoke(handler.NewRouter),
)
