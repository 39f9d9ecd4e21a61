package components

import (
	"log/slog"

	"github.com/antoninkin/parkmate-app/internal/infra/memory"
	"github.com/antoninkin/parkmate-app/internal/infra/readstore"
	"github.com/antoninkin/parkmate-app/internal/infra/uow"
	"github.com/antoninkin/parkmate-app/internal/pkg/config"
	"github.com/antoninkin/parkmate-app/internal/usecase/queries"
	"github.com/antoninkin/parkmate-app/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewPersistence,
	),
)

// Persistence is every store port the use cases and workers depend on,
// all backed by the same driver.
type Persistence struct {
	fx.Out

	UoW          shared.UnitOfWork
	Outbox       shared.Outbox
	Reservations queries.ReservationViewRepo
	Payments     queries.PaymentViewRepo
	Locations    queries.LocationViewRepo
	Revenue      queries.RevenueRepo
	Cars         queries.CarViewRepo
}

func NewPersistence(cfg config.Config, pool *pgxpool.Pool, logger *slog.Logger) Persistence {
	if cfg.Store.Driver == config.StoreDriverMemory {
		return newMemoryPersistence(memory.NewStore())
	}
	return newPostgresPersistence(pool, logger)
}

func newPostgresPersistence(pool *pgxpool.Pool, logger *slog.Logger) Persistence {
	return Persistence{
		UoW:          uow.NewPostgresUoW(pool, logger),
		Outbox:       readstore.NewOutbox(pool),
		Reservations: readstore.NewReservationReadStore(pool),
		Payments:     readstore.NewPaymentReadStore(pool),
		Locations:    readstore.NewLocationReadStore(pool),
		Revenue:      readstore.NewRevenueReadStore(pool),
		Cars:         readstore.NewCarReadStore(pool),
	}
}

func newMemoryPersistence(store *memory.Store) Persistence {
	return Persistence{
		UoW:          store,
		Outbox:       memory.NewOutbox(store),
		Reservations: memory.NewReservationReadStore(store),
		Payments:     memory.NewPaymentReadStore(store),
		Locations:    memory.NewLocationReadStore(store),
		Revenue:      memory.NewRevenueReadStore(store),
		Cars:         memory.NewCarReadStore(store),
	}
}
