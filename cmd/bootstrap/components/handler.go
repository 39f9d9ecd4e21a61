package components

import (
	"github.com/antoninkin/parkmate-app/internal/handler"
	"github.com/antoninkin/parkmate-app/internal/handler/api"
	"github.com/antoninkin/parkmate-app/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewQuoteHandler,
		api.NewLocationHandler,
		api.NewPaymentHandler,
		api.NewAdminHandler,
		api.NewCarHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	reservation *api.ReservationHandler,
	quote *api.QuoteHandler,
	location *api.LocationHandler,
	payment *api.PaymentHandler,
	admin *api.AdminHandler,
	car *api.CarHandler,
) handler.Handlers {
	return handler.Handlers{
		Reservation: reservation,
		Quote:       quote,
		Location:    location,
		Payment:     payment,
		Admin:       admin,
		Car:         car,
	}
}
