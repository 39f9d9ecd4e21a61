package components

import (
	"log/slog"

	"github.com/antoninkin/parkmate-app/internal/domain/reservation"
	"github.com/antoninkin/parkmate-app/internal/pkg/clock"
	"github.com/antoninkin/parkmate-app/internal/pkg/config"
	"github.com/antoninkin/parkmate-app/internal/usecase"
	"github.com/antoninkin/parkmate-app/internal/usecase/commands"
	"github.com/antoninkin/parkmate-app/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	reservation.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewLocationCommands,
		commands.NewCarCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewQuoteQueries,
		func(repo queries.ReservationViewRepo, cfg config.Config) queries.ReservationQueries {
			return queries.NewReservationQueries(repo, cfg.Lifecycle.GatewayTimeout)
		},
		func(repo queries.PaymentViewRepo, cfg config.Config) queries.PaymentQueries {
			return queries.NewPaymentQueries(repo, cfg.Lifecycle.GatewayTimeout)
		},
		func(repo queries.LocationViewRepo, cache queries.LocationCache, logger *slog.Logger, cfg config.Config) queries.LocationQueries {
			return queries.NewLocationQueries(repo, cache, logger, cfg.Lifecycle.GatewayTimeout)
		},
		func(repo queries.CarViewRepo, cfg config.Config) queries.CarQueries {
			return queries.NewCarQueries(repo, cfg.Lifecycle.GatewayTimeout)
		},
		func(repo queries.RevenueRepo, cfg config.Config) queries.RevenueQueries {
			return queries.NewRevenueQueries(repo, cfg.Lifecycle.GatewayTimeout)
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
