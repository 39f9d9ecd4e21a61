package commands

import (
	"context"
	"log/slog"

	"github.com/antoninkin/parkmate-app/internal/domain/payment"
	"github.com/antoninkin/parkmate-app/internal/domain/reservation"
	"github.com/antoninkin/parkmate-app/internal/domain/user"
	"github.com/antoninkin/parkmate-app/internal/pkg/clock"
	"github.com/antoninkin/parkmate-app/internal/pkg/errs"
	"github.com/antoninkin/parkmate-app/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationCommands interface {
	Create(ctx context.Context, actor user.Actor, in CreateReservationInput) (*ReservationResult, error)
	ConfirmPayment(ctx context.Context, actor user.Actor, reservationID uuid.UUID, method payment.Method) (*ReservationResult, error)
	Cancel(ctx context.Context, actor user.Actor, reservationID uuid.UUID) (*ReservationResult, error)
	Expire(ctx context.Context, reservationID uuid.UUID) (*ReservationResult, error)
	ExpireDue(ctx context.Context) (ExpireSummary, error)
}

type reservationCommandsImpl struct {
	uow     shared.UnitOfWork
	factory *reservation.Factory
	cache   LocationCacheInvalidator
	clock   clock.Clock
	logger  *slog.Logger
	cfg     Config
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	cache LocationCacheInvalidator,
	clock clock.Clock,
	logger *slog.Logger,
	cfg Config,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:     uow,
		factory: factory,
		cache:   cache,
		clock:   clock,
		logger:  logger,
		cfg:     cfg,
	}
}

func (c *reservationCommandsImpl) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := c.cfg.GatewayTimeout
	if timeout <= 0 {
		timeout = defaultGatewayTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

func (c *reservationCommandsImpl) Create(ctx context.Context, actor user.Actor, in CreateReservationInput) (*ReservationResult, error) {
	interval, err := reservation.NewInterval(in.Arrival, in.Exit)
	if err != nil {
		return nil, err
	}
	if in.CarID == uuid.Nil {
		return nil, reservation.ErrCarRequired
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	var created *reservation.Reservation
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		loc, err := tx.Locations().Get(ctx, in.LocationID)
		if err != nil {
			return notFoundAs(err, ErrLocationNotFound)
		}

		// the booking is made for the caller, so the car must be theirs even for admins
		booked, err := tx.Cars().GetForUpdate(ctx, in.CarID)
		if err != nil {
			return notFoundAs(err, ErrCarNotFound)
		}
		if !booked.OwnedBy(actor.ID) {
			return ErrNotCarOwner
		}

		r, err := c.factory.Create(loc, actor.ID, in.CarID, interval)
		if err != nil {
			return err
		}
		if err := tx.Reservations().Create(ctx, r); err != nil {
			return errs.Wrap(err, "failed to store reservation")
		}
		if err := enqueueEvent(ctx, tx, c.cfg.EventTopic, newReservationEvent(EventReservationCreated, r, nil, c.clock.Now())); err != nil {
			return err
		}
		created = r
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	c.logger.InfoContext(ctx, "reservation created",
		slog.String("reservation_id", created.ID().String()),
		slog.String("location_id", created.LocationID().String()),
		slog.String("price", created.Price().String()))

	return &ReservationResult{Reservation: created}, nil
}

// ConfirmPayment records the payment, takes the spot and marks the reservation paid
// in one transaction. A retry after success returns the stored payment.
func (c *reservationCommandsImpl) ConfirmPayment(ctx context.Context, actor user.Actor, reservationID uuid.UUID, method payment.Method) (*ReservationResult, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	var result ReservationResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := c.lockOwned(ctx, tx, actor, reservationID)
		if err != nil {
			return err
		}

		if r.IsPaid() {
			existing, err := tx.Payments().GetByReservationID(ctx, r.ID())
			if err != nil && !errs.Is(err, errs.ErrNotFound) {
				return err
			}
			if existing != nil && existing.Status() == payment.StatusCompleted {
				result = ReservationResult{Reservation: r, Payment: existing, IsReplayed: true}
				return nil
			}
		}

		from := r.Status()
		p, err := r.ConfirmPayment(method, c.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Ledger().Debit(ctx, r.LocationID()); err != nil {
			return notFoundAs(err, ErrLocationNotFound)
		}
		if err := tx.Payments().Create(ctx, p); err != nil {
			return errs.Wrap(err, "failed to store payment")
		}
		if err := tx.Reservations().UpdateStatus(ctx, r.ID(), from, r.Status(), r.UpdatedAt()); err != nil {
			return conflictAsTransition(err, shared.ErrStatusConflict)
		}
		if err := enqueueEvent(ctx, tx, c.cfg.EventTopic, newReservationEvent(EventReservationPaid, r, p, p.PaidAt())); err != nil {
			return err
		}
		result = ReservationResult{Reservation: r, Payment: p}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	if result.IsReplayed {
		c.logger.InfoContext(ctx, "payment confirmation replayed",
			slog.String("reservation_id", reservationID.String()))
		return &result, nil
	}

	c.invalidateLocation(ctx, result.Reservation.LocationID())
	c.logger.InfoContext(ctx, "reservation paid",
		slog.String("reservation_id", reservationID.String()),
		slog.String("payment_id", result.Payment.ID().String()),
		slog.String("method", method.String()))

	return &result, nil
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, actor user.Actor, reservationID uuid.UUID) (*ReservationResult, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	var (
		result   ReservationResult
		refunded bool
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := c.lockOwned(ctx, tx, actor, reservationID)
		if err != nil {
			return err
		}

		now := c.clock.Now()
		from := r.Status()
		wasPaid, err := r.Cancel(now)
		if err != nil {
			return err
		}

		var p *payment.Payment
		if wasPaid {
			p, err = tx.Payments().GetByReservationID(ctx, r.ID())
			if err != nil {
				return notFoundAs(err, ErrPaymentNotFound)
			}
			if err := p.MarkReturned(now); err != nil {
				return err
			}
			if err := tx.Payments().UpdateStatus(ctx, p.ID(), p.Status(), now); err != nil {
				return errs.Wrap(err, "failed to return payment")
			}
			if err := tx.Ledger().Credit(ctx, r.LocationID()); err != nil {
				return notFoundAs(err, ErrLocationNotFound)
			}
		}

		if err := tx.Reservations().UpdateStatus(ctx, r.ID(), from, r.Status(), r.UpdatedAt()); err != nil {
			return conflictAsTransition(err, shared.ErrStatusConflict)
		}
		if err := enqueueEvent(ctx, tx, c.cfg.EventTopic, newReservationEvent(EventReservationCancelled, r, p, now)); err != nil {
			return err
		}
		result = ReservationResult{Reservation: r, Payment: p}
		refunded = wasPaid
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	if refunded {
		c.invalidateLocation(ctx, result.Reservation.LocationID())
	}
	c.logger.InfoContext(ctx, "reservation cancelled",
		slog.String("reservation_id", reservationID.String()),
		slog.Bool("refunded", refunded))

	return &result, nil
}

// Expire completes a paid reservation whose exit time has passed and frees its spot.
func (c *reservationCommandsImpl) Expire(ctx context.Context, reservationID uuid.UUID) (*ReservationResult, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	var result ReservationResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reservations().GetForUpdate(ctx, reservationID)
		if err != nil {
			return notFoundAs(err, ErrReservationNotFound)
		}

		now := c.clock.Now()
		from := r.Status()
		if err := r.Complete(now); err != nil {
			return err
		}
		if err := tx.Ledger().Credit(ctx, r.LocationID()); err != nil {
			return notFoundAs(err, ErrLocationNotFound)
		}
		if err := tx.Reservations().UpdateStatus(ctx, r.ID(), from, r.Status(), r.UpdatedAt()); err != nil {
			return conflictAsTransition(err, shared.ErrStatusConflict)
		}
		if err := enqueueEvent(ctx, tx, c.cfg.EventTopic, newReservationEvent(EventReservationCompleted, r, nil, now)); err != nil {
			return err
		}
		result = ReservationResult{Reservation: r}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	c.invalidateLocation(ctx, result.Reservation.LocationID())
	return &result, nil
}

// ExpireDue completes one batch of ended reservations. Reservations that another
// transition already moved are counted as skipped.
func (c *reservationCommandsImpl) ExpireDue(ctx context.Context) (ExpireSummary, error) {
	var summary ExpireSummary

	limit := c.cfg.ExpiryBatchSize
	if limit <= 0 {
		limit = 100
	}

	listCtx, cancel := c.withTimeout(ctx)
	var ids []uuid.UUID
	err := c.uow.Within(listCtx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ids, err = tx.Reservations().ListDueForExpiry(ctx, c.clock.Now(), limit)
		return err
	})
	cancel()
	if err != nil {
		return summary, classify(err)
	}

	for _, id := range ids {
		if ctx.Err() != nil {
			return summary, classify(ctx.Err())
		}
		_, err := c.Expire(ctx, id)
		switch {
		case err == nil:
			summary.Completed++
		case errs.IsAny(err, reservation.ErrInvalidTransition, reservation.ErrNotYetEnded, errs.ErrNotFound):
			summary.Skipped++
		default:
			summary.Failed++
			c.logger.WarnContext(ctx, "failed to expire reservation",
				slog.String("reservation_id", id.String()),
				slog.String("error", err.Error()))
		}
	}

	return summary, nil
}

func (c *reservationCommandsImpl) lockOwned(ctx context.Context, tx shared.Tx, actor user.Actor, id uuid.UUID) (*reservation.Reservation, error) {
	r, err := tx.Reservations().GetForUpdate(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrReservationNotFound)
	}
	if !actor.CanAccess(r.UserID()) {
		return nil, ErrNotReservationOwner
	}
	return r, nil
}

func (c *reservationCommandsImpl) invalidateLocation(ctx context.Context, id uuid.UUID) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Invalidate(ctx, id); err != nil {
		c.logger.WarnContext(ctx, "failed to invalidate location cache",
			slog.String("location_id", id.String()),
			slog.String("error", err.Error()))
	}
}
