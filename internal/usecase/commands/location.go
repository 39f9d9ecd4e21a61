package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/location"
	"github.com/antoninkin/parkmate-app/internal/domain/user"
	"github.com/antoninkin/parkmate-app/internal/pkg/clock"
	"github.com/antoninkin/parkmate-app/internal/pkg/errs"
	"github.com/antoninkin/parkmate-app/internal/usecase/shared"
)

type LocationCommands interface {
	Create(ctx context.Context, actor user.Actor, in CreateLocationInput) (*LocationResult, error)
}

type locationCommandsImpl struct {
	uow    shared.UnitOfWork
	cache  LocationCacheInvalidator
	clock  clock.Clock
	logger *slog.Logger
	cfg    Config
}

func NewLocationCommands(
	uow shared.UnitOfWork,
	cache LocationCacheInvalidator,
	clock clock.Clock,
	logger *slog.Logger,
	cfg Config,
) LocationCommands {
	return &locationCommandsImpl{
		uow:    uow,
		cache:  cache,
		clock:  clock,
		logger: logger,
		cfg:    cfg,
	}
}

// Create registers a parking location. Available spots default to the capacity.
func (c *locationCommandsImpl) Create(ctx context.Context, actor user.Actor, in CreateLocationInput) (*LocationResult, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}

	coords, err := location.NewCoordinates(in.Latitude, in.Longitude)
	if err != nil {
		return nil, err
	}

	available := 0
	switch {
	case in.AvailableSpots != nil:
		available = *in.AvailableSpots
	case in.Capacity != nil:
		available = *in.Capacity
	}

	loc, err := location.NewLocation(in.Name, in.Address, coords, in.Capacity, available, c.clock.Now())
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Locations().Create(ctx, loc); err != nil {
			return errs.Wrap(err, "failed to store location")
		}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	if c.cache != nil {
		if err := c.cache.Invalidate(ctx); err != nil {
			c.logger.WarnContext(ctx, "failed to invalidate location list cache", slog.String("error", err.Error()))
		}
	}
	c.logger.InfoContext(ctx, "location created",
		slog.String("location_id", loc.ID().String()),
		slog.Int("available_spots", loc.AvailableSpots()))

	return &LocationResult{Location: loc}, nil
}

func (c *locationCommandsImpl) timeout() time.Duration {
	if c.cfg.GatewayTimeout <= 0 {
		return defaultGatewayTimeout
	}
	return c.cfg.GatewayTimeout
}
