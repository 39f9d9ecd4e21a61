package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/car"
	"github.com/antoninkin/parkmate-app/internal/domain/user"
	"github.com/antoninkin/parkmate-app/internal/pkg/clock"
	"github.com/antoninkin/parkmate-app/internal/pkg/errs"
	"github.com/antoninkin/parkmate-app/internal/usecase/shared"

	"github.com/google/uuid"
)

type CarCommands interface {
	Create(ctx context.Context, actor user.Actor, in CarInput) (*CarResult, error)
	Update(ctx context.Context, actor user.Actor, carID uuid.UUID, in CarInput) (*CarResult, error)
	// Delete refuses cars that pending or paid reservations still point at.
	Delete(ctx context.Context, actor user.Actor, carID uuid.UUID) error
}

type carCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
	cfg    Config
}

func NewCarCommands(
	uow shared.UnitOfWork,
	clock clock.Clock,
	logger *slog.Logger,
	cfg Config,
) CarCommands {
	return &carCommandsImpl{
		uow:    uow,
		clock:  clock,
		logger: logger,
		cfg:    cfg,
	}
}

func (c *carCommandsImpl) Create(ctx context.Context, actor user.Actor, in CarInput) (*CarResult, error) {
	created, err := car.NewCar(actor.ID, in.details(), c.clock.Now())
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Cars().Create(ctx, created); err != nil {
			return errs.Wrap(err, "failed to store car")
		}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	c.logger.InfoContext(ctx, "car registered",
		slog.String("car_id", created.ID().String()),
		slog.String("user_id", actor.ID.String()))

	return &CarResult{Car: created}, nil
}

func (c *carCommandsImpl) Update(ctx context.Context, actor user.Actor, carID uuid.UUID, in CarInput) (*CarResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	var updated *car.Car
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		owned, err := lockOwnedCar(ctx, tx, actor, carID)
		if err != nil {
			return err
		}
		if err := owned.Update(in.details(), c.clock.Now()); err != nil {
			return err
		}
		if err := tx.Cars().Update(ctx, owned); err != nil {
			return errs.Wrap(err, "failed to update car")
		}
		updated = owned
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return &CarResult{Car: updated}, nil
}

func (c *carCommandsImpl) Delete(ctx context.Context, actor user.Actor, carID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := lockOwnedCar(ctx, tx, actor, carID); err != nil {
			return err
		}
		active, err := tx.Reservations().CountActiveByCar(ctx, carID)
		if err != nil {
			return errs.Wrap(err, "failed to count reservations for car")
		}
		if active > 0 {
			return ErrCarInUse
		}
		if err := tx.Cars().Delete(ctx, carID); err != nil {
			return notFoundAs(err, ErrCarNotFound)
		}
		return nil
	})
	if err != nil {
		return classify(err)
	}

	c.logger.InfoContext(ctx, "car deleted", slog.String("car_id", carID.String()))
	return nil
}

func (c *carCommandsImpl) timeout() time.Duration {
	if c.cfg.GatewayTimeout <= 0 {
		return defaultGatewayTimeout
	}
	return c.cfg.GatewayTimeout
}

// lockOwnedCar lets admins manage any car; other users only their own.
func lockOwnedCar(ctx context.Context, tx shared.Tx, actor user.Actor, carID uuid.UUID) (*car.Car, error) {
	owned, err := tx.Cars().GetForUpdate(ctx, carID)
	if err != nil {
		return nil, notFoundAs(err, ErrCarNotFound)
	}
	if !actor.CanAccess(owned.UserID()) {
		return nil, ErrNotCarOwner
	}
	return owned, nil
}
