//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/car"
	"github.com/antoninkin/parkmate-app/internal/domain/location"
	"github.com/antoninkin/parkmate-app/internal/domain/payment"
	"github.com/antoninkin/parkmate-app/internal/domain/pricing"
	"github.com/antoninkin/parkmate-app/internal/domain/reservation"
	"github.com/antoninkin/parkmate-app/internal/domain/user"
	"github.com/antoninkin/parkmate-app/internal/infra/memory"
	"github.com/antoninkin/parkmate-app/internal/pkg/clock"
	"github.com/antoninkin/parkmate-app/internal/pkg/errs"
	"github.com/antoninkin/parkmate-app/internal/usecase/commands"
	"github.com/antoninkin/parkmate-app/internal/usecase/shared"
	"github.com/antoninkin/parkmate-app/tests/common/builder"
	commandsmock "github.com/antoninkin/parkmate-app/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var (
	bookingNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	dayArrival = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	dayExit    = time.Date(2026, 3, 2, 11, 30, 0, 0, time.UTC)
)

// slowUoW holds every transaction open until its context expires.
type slowUoW struct {
	inner shared.UnitOfWork
}

func (u slowUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.inner.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := fn(ctx, tx); err != nil {
			return err
		}
		<-ctx.Done()
		return nil
	})
}

type ReservationCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	store    *memory.Store
	clock    *clock.MockClock
	mockCtrl *gomock.Controller
	cache    *commandsmock.MockLocationCacheInvalidator
	cmds     commands.ReservationCommands
	owner    user.Actor
	car      *car.Car
	loc      *location.Location
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore()
	s.clock = clock.NewMockClock(bookingNow)
	s.mockCtrl = gomock.NewController(s.T())
	s.cache = commandsmock.NewMockLocationCacheInvalidator(s.mockCtrl)
	s.cache.EXPECT().Invalidate(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.cmds = s.newCommands(s.store, time.Second)
	s.owner = user.NewActor(uuid.New(), user.RoleUser)
	s.car = s.seedCar(s.owner.ID)
	s.loc = s.seedLocation(10)
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) newCommands(uow shared.UnitOfWork, timeout time.Duration) commands.ReservationCommands {
	return commands.NewReservationCommands(
		uow,
		reservation.NewFactory(s.clock, pricing.DefaultRateTable()),
		s.cache,
		s.clock,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		commands.Config{GatewayTimeout: timeout, EventTopic: "parkmate.reservations", ExpiryBatchSize: 10},
	)
}

func (s *ReservationCommandsTestSuite) seedLocation(spots int) *location.Location {
	loc := builder.NewLocationBuilder().WithSpots(spots).BuildDomain()
	err := s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Locations().Create(ctx, loc)
	})
	s.Require().NoError(err)
	return loc
}

func (s *ReservationCommandsTestSuite) seedCar(userID uuid.UUID) *car.Car {
	c := builder.NewCarBuilder().OwnedBy(userID).BuildDomain()
	err := s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Cars().Create(ctx, c)
	})
	s.Require().NoError(err)
	return c
}

func (s *ReservationCommandsTestSuite) spots(id uuid.UUID) int {
	view, err := memory.NewLocationReadStore(s.store).FindByID(s.ctx, id)
	s.Require().NoError(err)
	return view.AvailableSpots
}

func (s *ReservationCommandsTestSuite) status(id uuid.UUID) string {
	view, err := memory.NewReservationReadStore(s.store).FindByID(s.ctx, id)
	s.Require().NoError(err)
	return view.Status
}

func (s *ReservationCommandsTestSuite) create(actor user.Actor, locID uuid.UUID, arrival, exit time.Time) *reservation.Reservation {
	res, err := s.cmds.Create(s.ctx, actor, commands.CreateReservationInput{
		LocationID: locID,
		CarID:      s.carFor(actor),
		Arrival:    arrival,
		Exit:       exit,
	})
	s.Require().NoError(err)
	return res.Reservation
}

func (s *ReservationCommandsTestSuite) carFor(actor user.Actor) uuid.UUID {
	if actor.ID == s.owner.ID {
		return s.car.ID()
	}
	return s.seedCar(actor.ID).ID()
}

func (s *ReservationCommandsTestSuite) createPaid() *reservation.Reservation {
	r := s.create(s.owner, s.loc.ID(), dayArrival, dayExit)
	_, err := s.cmds.ConfirmPayment(s.ctx, s.owner, r.ID(), payment.MethodCard)
	s.Require().NoError(err)
	return r
}

func (s *ReservationCommandsTestSuite) TestCreate() {
	s.Run("success: pending reservation priced at creation", func() {
		r := s.create(s.owner, s.loc.ID(), dayArrival, dayExit)

		s.Equal(reservation.StatusPending, r.Status())
		s.Equal("23.50", r.Price().String())
		s.Equal(s.owner.ID, r.UserID())
		s.Equal("pending", s.status(r.ID()))
		s.Equal(10, s.spots(s.loc.ID()), "creation must not take a spot")
	})

	s.Run("error: exit not after arrival", func() {
		_, err := s.cmds.Create(s.ctx, s.owner, commands.CreateReservationInput{
			LocationID: s.loc.ID(), CarID: s.car.ID(), Arrival: dayExit, Exit: dayArrival,
		})
		s.True(errs.Is(err, reservation.ErrInvalidInterval))
	})

	s.Run("error: car is required", func() {
		_, err := s.cmds.Create(s.ctx, s.owner, commands.CreateReservationInput{
			LocationID: s.loc.ID(), CarID: uuid.Nil, Arrival: dayArrival, Exit: dayExit,
		})
		s.True(errs.Is(err, reservation.ErrCarRequired))
	})

	s.Run("error: stay longer than the maximum", func() {
		_, err := s.cmds.Create(s.ctx, s.owner, commands.CreateReservationInput{
			LocationID: s.loc.ID(), CarID: s.car.ID(), Arrival: dayArrival, Exit: dayArrival.Add(32 * 24 * time.Hour),
		})
		s.True(errs.Is(err, reservation.ErrIntervalTooLong))
	})

	s.Run("error: unknown car", func() {
		_, err := s.cmds.Create(s.ctx, s.owner, commands.CreateReservationInput{
			LocationID: s.loc.ID(), CarID: uuid.New(), Arrival: dayArrival, Exit: dayExit,
		})
		s.ErrorIs(err, commands.ErrCarNotFound)
	})

	s.Run("error: car registered by another user", func() {
		other := s.seedCar(uuid.New())
		_, err := s.cmds.Create(s.ctx, s.owner, commands.CreateReservationInput{
			LocationID: s.loc.ID(), CarID: other.ID(), Arrival: dayArrival, Exit: dayExit,
		})
		s.ErrorIs(err, commands.ErrNotCarOwner)
	})

	s.Run("error: admins book only with their own cars", func() {
		admin := user.NewActor(uuid.New(), user.RoleAdmin)
		_, err := s.cmds.Create(s.ctx, admin, commands.CreateReservationInput{
			LocationID: s.loc.ID(), CarID: s.car.ID(), Arrival: dayArrival, Exit: dayExit,
		})
		s.ErrorIs(err, commands.ErrNotCarOwner)
	})

	s.Run("error: unknown location", func() {
		_, err := s.cmds.Create(s.ctx, s.owner, commands.CreateReservationInput{
			LocationID: uuid.New(), CarID: s.car.ID(), Arrival: dayArrival, Exit: dayExit,
		})
		s.True(errs.Is(err, errs.ErrNotFound))
		s.False(errs.Is(err, errs.ErrGatewayUnavailable))
	})

	s.Run("error: location without free spots", func() {
		full := s.seedLocation(0)
		_, err := s.cmds.Create(s.ctx, s.owner, commands.CreateReservationInput{
			LocationID: full.ID(), CarID: s.car.ID(), Arrival: dayArrival, Exit: dayExit,
		})
		s.True(errs.Is(err, location.ErrLocationFull))
	})
}

func (s *ReservationCommandsTestSuite) TestConfirmPayment() {
	s.Run("success: takes a spot and records the payment", func() {
		r := s.create(s.owner, s.loc.ID(), dayArrival, dayExit)
		before := s.spots(s.loc.ID())

		res, err := s.cmds.ConfirmPayment(s.ctx, s.owner, r.ID(), payment.MethodApplePay)
		s.Require().NoError(err)

		s.False(res.IsReplayed)
		s.Equal(reservation.StatusPaid, res.Reservation.Status())
		s.Equal(r.Price(), res.Payment.Amount())
		s.Equal(payment.MethodApplePay, res.Payment.Method())
		s.Equal(bookingNow, res.Payment.PaidAt())
		s.Equal("paid", s.status(r.ID()))
		s.Equal(before-1, s.spots(s.loc.ID()))
	})

	s.Run("replay: second confirmation returns the same payment", func() {
		r := s.create(s.owner, s.loc.ID(), dayArrival, dayExit)
		first, err := s.cmds.ConfirmPayment(s.ctx, s.owner, r.ID(), payment.MethodCard)
		s.Require().NoError(err)
		spots := s.spots(s.loc.ID())

		second, err := s.cmds.ConfirmPayment(s.ctx, s.owner, r.ID(), payment.MethodCard)
		s.Require().NoError(err)

		s.True(second.IsReplayed)
		s.Equal(first.Payment.ID(), second.Payment.ID())
		s.Equal(spots, s.spots(s.loc.ID()), "replay must not debit again")

		history, err := memory.NewPaymentReadStore(s.store).FindByUserID(s.ctx, s.owner.ID)
		s.Require().NoError(err)
		count := 0
		for _, p := range history {
			if p.ReservationID == r.ID() {
				count++
			}
		}
		s.Equal(1, count)
	})

	s.Run("error: location full leaves the reservation pending", func() {
		loc := s.seedLocation(1)
		r := s.create(s.owner, loc.ID(), dayArrival, dayExit)

		// another booking takes the last spot first
		other := user.NewActor(uuid.New(), user.RoleUser)
		taken := s.create(other, loc.ID(), dayArrival, dayExit)
		_, err := s.cmds.ConfirmPayment(s.ctx, other, taken.ID(), payment.MethodCard)
		s.Require().NoError(err)
		s.Equal(0, s.spots(loc.ID()))

		_, err = s.cmds.ConfirmPayment(s.ctx, s.owner, r.ID(), payment.MethodCard)
		s.True(errs.Is(err, location.ErrLocationFull))
		s.Equal("pending", s.status(r.ID()))
		s.Equal(0, s.spots(loc.ID()))

		history, err := memory.NewPaymentReadStore(s.store).FindByUserID(s.ctx, s.owner.ID)
		s.Require().NoError(err)
		for _, p := range history {
			s.NotEqual(r.ID(), p.ReservationID, "no payment may be stored for a failed confirmation")
		}
	})

	s.Run("error: missing and unsupported payment methods", func() {
		r := s.create(s.owner, s.loc.ID(), dayArrival, dayExit)

		_, err := s.cmds.ConfirmPayment(s.ctx, s.owner, r.ID(), payment.Method(""))
		s.True(errs.Is(err, payment.ErrMissingPaymentMethod))

		_, err = s.cmds.ConfirmPayment(s.ctx, s.owner, r.ID(), payment.Method("cash"))
		s.True(errs.Is(err, payment.ErrUnsupportedPaymentMethod))
		s.Equal("pending", s.status(r.ID()))
	})

	s.Run("error: cancelled reservation cannot be paid", func() {
		r := s.create(s.owner, s.loc.ID(), dayArrival, dayExit)
		_, err := s.cmds.Cancel(s.ctx, s.owner, r.ID())
		s.Require().NoError(err)

		_, err = s.cmds.ConfirmPayment(s.ctx, s.owner, r.ID(), payment.MethodCard)
		s.True(errs.Is(err, reservation.ErrInvalidTransition))
	})

	s.Run("error: another user's reservation", func() {
		r := s.create(s.owner, s.loc.ID(), dayArrival, dayExit)
		stranger := user.NewActor(uuid.New(), user.RoleUser)

		_, err := s.cmds.ConfirmPayment(s.ctx, stranger, r.ID(), payment.MethodCard)
		s.True(errs.Is(err, errs.ErrForbidden))
		s.Equal("pending", s.status(r.ID()))
	})

	s.Run("error: unknown reservation", func() {
		_, err := s.cmds.ConfirmPayment(s.ctx, s.owner, uuid.New(), payment.MethodCard)
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}

func (s *ReservationCommandsTestSuite) TestConfirmPayment_ConcurrentLastSpot() {
	loc := s.seedLocation(1)
	first := s.create(s.owner, loc.ID(), dayArrival, dayExit)
	other := user.NewActor(uuid.New(), user.RoleUser)
	second := s.create(other, loc.ID(), dayArrival, dayExit)

	type outcome struct {
		id  uuid.UUID
		err error
	}
	results := make(chan outcome, 2)
	var wg sync.WaitGroup
	for _, c := range []struct {
		actor user.Actor
		id    uuid.UUID
	}{{s.owner, first.ID()}, {other, second.ID()}} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.cmds.ConfirmPayment(s.ctx, c.actor, c.id, payment.MethodCard)
			results <- outcome{id: c.id, err: err}
		}()
	}
	wg.Wait()
	close(results)

	var paid, full int
	for o := range results {
		switch {
		case o.err == nil:
			paid++
			s.Equal("paid", s.status(o.id))
		case errs.Is(o.err, location.ErrLocationFull):
			full++
			s.Equal("pending", s.status(o.id))
		default:
			s.Failf("unexpected error", "%v", o.err)
		}
	}
	s.Equal(1, paid)
	s.Equal(1, full)
	s.Equal(0, s.spots(loc.ID()))
}

func (s *ReservationCommandsTestSuite) TestCancel() {
	s.Run("pending: cancelled without refund or credit", func() {
		r := s.create(s.owner, s.loc.ID(), dayArrival, dayExit)
		before := s.spots(s.loc.ID())

		res, err := s.cmds.Cancel(s.ctx, s.owner, r.ID())
		s.Require().NoError(err)

		s.Equal(reservation.StatusCancelled, res.Reservation.Status())
		s.Nil(res.Payment)
		s.Equal(before, s.spots(s.loc.ID()))
	})

	s.Run("paid: payment returned and spot credited", func() {
		r := s.createPaid()
		before := s.spots(s.loc.ID())

		res, err := s.cmds.Cancel(s.ctx, s.owner, r.ID())
		s.Require().NoError(err)

		s.Equal("cancelled", s.status(r.ID()))
		s.Require().NotNil(res.Payment)
		s.Equal(payment.StatusReturned, res.Payment.Status())
		s.Equal(before+1, s.spots(s.loc.ID()))
	})

	s.Run("error: too late once arrival has passed", func() {
		r := s.createPaid()
		before := s.spots(s.loc.ID())
		s.clock.Set(dayArrival)
		defer s.clock.Set(bookingNow)

		_, err := s.cmds.Cancel(s.ctx, s.owner, r.ID())
		s.True(errs.Is(err, reservation.ErrTooLateToCancel))
		s.Equal("paid", s.status(r.ID()))
		s.Equal(before, s.spots(s.loc.ID()))
	})

	s.Run("error: cancelling twice", func() {
		r := s.create(s.owner, s.loc.ID(), dayArrival, dayExit)
		_, err := s.cmds.Cancel(s.ctx, s.owner, r.ID())
		s.Require().NoError(err)

		_, err = s.cmds.Cancel(s.ctx, s.owner, r.ID())
		s.True(errs.Is(err, reservation.ErrInvalidTransition))
	})

	s.Run("admin may cancel on behalf of the owner", func() {
		r := s.create(s.owner, s.loc.ID(), dayArrival, dayExit)
		admin := user.NewActor(uuid.New(), user.RoleAdmin)

		_, err := s.cmds.Cancel(s.ctx, admin, r.ID())
		s.Require().NoError(err)
		s.Equal("cancelled", s.status(r.ID()))
	})
}

func (s *ReservationCommandsTestSuite) TestExpire() {
	s.Run("completes an ended paid reservation and frees the spot", func() {
		r := s.createPaid()
		before := s.spots(s.loc.ID())
		s.clock.Set(dayExit)
		defer s.clock.Set(bookingNow)

		res, err := s.cmds.Expire(s.ctx, r.ID())
		s.Require().NoError(err)

		s.Equal(reservation.StatusCompleted, res.Reservation.Status())
		s.Equal(before+1, s.spots(s.loc.ID()))
	})

	s.Run("error: not yet ended", func() {
		r := s.createPaid()

		_, err := s.cmds.Expire(s.ctx, r.ID())
		s.True(errs.Is(err, reservation.ErrNotYetEnded))
		s.Equal("paid", s.status(r.ID()))
	})

	s.Run("error: pending reservation cannot complete", func() {
		r := s.create(s.owner, s.loc.ID(), dayArrival, dayExit)
		s.clock.Set(dayExit.Add(time.Hour))
		defer s.clock.Set(bookingNow)

		_, err := s.cmds.Expire(s.ctx, r.ID())
		s.True(errs.Is(err, reservation.ErrInvalidTransition))
	})
}

func (s *ReservationCommandsTestSuite) TestExpireDue() {
	loc := s.seedLocation(5)
	var paid []*reservation.Reservation
	for i := 0; i < 2; i++ {
		r := s.create(s.owner, loc.ID(), dayArrival, dayExit)
		_, err := s.cmds.ConfirmPayment(s.ctx, s.owner, r.ID(), payment.MethodCard)
		s.Require().NoError(err)
		paid = append(paid, r)
	}
	later := s.create(s.owner, loc.ID(), dayArrival, dayExit.Add(24*time.Hour))
	_, err := s.cmds.ConfirmPayment(s.ctx, s.owner, later.ID(), payment.MethodCard)
	s.Require().NoError(err)
	pending := s.create(s.owner, loc.ID(), dayArrival, dayExit)
	s.Equal(2, s.spots(loc.ID()))

	s.clock.Set(dayExit.Add(time.Minute))
	summary, err := s.cmds.ExpireDue(s.ctx)
	s.Require().NoError(err)

	s.Equal(2, summary.Completed)
	s.Zero(summary.Failed)
	for _, r := range paid {
		s.Equal("completed", s.status(r.ID()))
	}
	s.Equal("paid", s.status(later.ID()))
	s.Equal("pending", s.status(pending.ID()))
	s.Equal(4, s.spots(loc.ID()))

	again, err := s.cmds.ExpireDue(s.ctx)
	s.Require().NoError(err)
	s.Zero(again.Completed)
}

func (s *ReservationCommandsTestSuite) TestGatewayTimeout() {
	r := s.create(s.owner, s.loc.ID(), dayArrival, dayExit)
	before := s.spots(s.loc.ID())
	slow := s.newCommands(slowUoW{inner: s.store}, 20*time.Millisecond)

	_, err := slow.ConfirmPayment(s.ctx, s.owner, r.ID(), payment.MethodCard)

	s.True(errs.Is(err, errs.ErrGatewayUnavailable))
	s.Equal("pending", s.status(r.ID()))
	s.Equal(before, s.spots(s.loc.ID()))
}

func (s *ReservationCommandsTestSuite) TestEventsAreQueued() {
	r := s.createPaid()
	_, err := s.cmds.Cancel(s.ctx, s.owner, r.ID())
	s.Require().NoError(err)

	jobs, err := memory.NewOutbox(s.store).ClaimDue(s.ctx, bookingNow.Add(time.Hour), time.Minute, 100)
	s.Require().NoError(err)

	kinds := make([]string, 0, len(jobs))
	for _, j := range jobs {
		s.Equal("parkmate.reservations", j.Topic)
		kinds = append(kinds, j.Kind)
	}
	s.ElementsMatch([]string{
		commands.EventReservationCreated,
		commands.EventReservationPaid,
		commands.EventReservationCancelled,
	}, kinds)
}
