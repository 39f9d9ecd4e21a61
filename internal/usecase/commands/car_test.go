//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/car"
	"github.com/antoninkin/parkmate-app/internal/domain/pricing"
	"github.com/antoninkin/parkmate-app/internal/domain/reservation"
	"github.com/antoninkin/parkmate-app/internal/domain/user"
	"github.com/antoninkin/parkmate-app/internal/infra/memory"
	"github.com/antoninkin/parkmate-app/internal/pkg/clock"
	"github.com/antoninkin/parkmate-app/internal/usecase/commands"
	"github.com/antoninkin/parkmate-app/internal/usecase/shared"
	"github.com/antoninkin/parkmate-app/tests/common/builder"
	commandsmock "github.com/antoninkin/parkmate-app/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type carFixture struct {
	ctx   context.Context
	store *memory.Store
	clock *clock.MockClock
	cmds  commands.CarCommands
	owner user.Actor
}

func newCarFixture(t *testing.T) *carFixture {
	t.Helper()
	store := memory.NewStore()
	mockClock := clock.NewMockClock(time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &carFixture{
		ctx:   context.Background(),
		store: store,
		clock: mockClock,
		cmds:  commands.NewCarCommands(store, mockClock, logger, commands.Config{GatewayTimeout: time.Second}),
		owner: user.NewActor(uuid.New(), user.RoleUser),
	}
}

func (f *carFixture) register(t *testing.T) *car.Car {
	t.Helper()
	res, err := f.cmds.Create(f.ctx, f.owner, carInput())
	require.NoError(t, err)
	return res.Car
}

func (f *carFixture) view(t *testing.T, id uuid.UUID) (string, error) {
	t.Helper()
	v, err := memory.NewCarReadStore(f.store).FindByID(f.ctx, id)
	if err != nil {
		return "", err
	}
	return v.LicensePlate, nil
}

func carInput() commands.CarInput {
	return commands.CarInput{
		Name:         "Weekend",
		LicensePlate: " ka-05-9876 ",
		Make:         "Honda",
		Model:        "Jazz",
		Year:         2021,
		Color:        "Red",
	}
}

func TestCarCommands_Create(t *testing.T) {
	t.Run("success: stored for the caller with a normalized plate", func(t *testing.T) {
		f := newCarFixture(t)

		c := f.register(t)

		assert.Equal(t, f.owner.ID, c.UserID())
		assert.Equal(t, "KA-05-9876", c.Details().LicensePlate)
		plate, err := f.view(t, c.ID())
		require.NoError(t, err)
		assert.Equal(t, "KA-05-9876", plate)
	})

	t.Run("error: invalid details are not stored", func(t *testing.T) {
		f := newCarFixture(t)
		in := carInput()
		in.Year = 1800

		_, err := f.cmds.Create(f.ctx, f.owner, in)

		require.ErrorIs(t, err, car.ErrInvalidYear)
		views, err := memory.NewCarReadStore(f.store).FindByUserID(f.ctx, f.owner.ID)
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}

func TestCarCommands_Update(t *testing.T) {
	t.Run("success: owner replaces the details", func(t *testing.T) {
		f := newCarFixture(t)
		c := f.register(t)
		f.clock.Add(time.Hour)
		in := carInput()
		in.LicensePlate = "mh-12-0001"

		res, err := f.cmds.Update(f.ctx, f.owner, c.ID(), in)

		require.NoError(t, err)
		assert.Equal(t, "MH-12-0001", res.Car.Details().LicensePlate)
		assert.True(t, res.Car.UpdatedAt().After(res.Car.CreatedAt()))
		plate, err := f.view(t, c.ID())
		require.NoError(t, err)
		assert.Equal(t, "MH-12-0001", plate)
	})

	t.Run("admin may edit any car", func(t *testing.T) {
		f := newCarFixture(t)
		c := f.register(t)
		admin := user.NewActor(uuid.New(), user.RoleAdmin)

		res, err := f.cmds.Update(f.ctx, admin, c.ID(), carInput())

		require.NoError(t, err)
		assert.Equal(t, f.owner.ID, res.Car.UserID())
	})

	t.Run("error: another user's car", func(t *testing.T) {
		f := newCarFixture(t)
		c := f.register(t)
		stranger := user.NewActor(uuid.New(), user.RoleUser)

		_, err := f.cmds.Update(f.ctx, stranger, c.ID(), carInput())

		require.ErrorIs(t, err, commands.ErrNotCarOwner)
	})

	t.Run("error: unknown car", func(t *testing.T) {
		f := newCarFixture(t)

		_, err := f.cmds.Update(f.ctx, f.owner, uuid.New(), carInput())

		require.ErrorIs(t, err, commands.ErrCarNotFound)
	})

	t.Run("error: invalid details keep the stored car", func(t *testing.T) {
		f := newCarFixture(t)
		c := f.register(t)
		in := carInput()
		in.LicensePlate = "  "

		_, err := f.cmds.Update(f.ctx, f.owner, c.ID(), in)

		require.ErrorIs(t, err, car.ErrLicensePlateRequired)
		plate, err := f.view(t, c.ID())
		require.NoError(t, err)
		assert.Equal(t, "KA-05-9876", plate)
	})
}

func TestCarCommands_Delete(t *testing.T) {
	t.Run("success: removed from the registry", func(t *testing.T) {
		f := newCarFixture(t)
		c := f.register(t)

		require.NoError(t, f.cmds.Delete(f.ctx, f.owner, c.ID()))

		_, err := f.view(t, c.ID())
		assert.Error(t, err)
	})

	t.Run("error: another user's car", func(t *testing.T) {
		f := newCarFixture(t)
		c := f.register(t)
		stranger := user.NewActor(uuid.New(), user.RoleUser)

		err := f.cmds.Delete(f.ctx, stranger, c.ID())

		require.ErrorIs(t, err, commands.ErrNotCarOwner)
		_, err = f.view(t, c.ID())
		assert.NoError(t, err)
	})

	t.Run("error: unknown car", func(t *testing.T) {
		f := newCarFixture(t)

		err := f.cmds.Delete(f.ctx, f.owner, uuid.New())

		require.ErrorIs(t, err, commands.ErrCarNotFound)
	})

	t.Run("error: car with a pending reservation", func(t *testing.T) {
		f := newCarFixture(t)
		c := f.register(t)
		loc := builder.NewLocationBuilder().WithSpots(3).BuildDomain()
		require.NoError(t, f.store.Within(f.ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Locations().Create(ctx, loc)
		}))
		ctrl := gomock.NewController(t)
		cache := commandsmock.NewMockLocationCacheInvalidator(ctrl)
		cache.EXPECT().Invalidate(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		bookings := commands.NewReservationCommands(
			f.store,
			reservation.NewFactory(f.clock, pricing.DefaultRateTable()),
			cache,
			f.clock,
			slog.New(slog.NewTextHandler(io.Discard, nil)),
			commands.Config{GatewayTimeout: time.Second, EventTopic: "parkmate.reservations", ExpiryBatchSize: 10},
		)
		arrival := f.clock.Now().Add(24 * time.Hour)
		r, err := bookings.Create(f.ctx, f.owner, commands.CreateReservationInput{
			LocationID: loc.ID(), CarID: c.ID(), Arrival: arrival, Exit: arrival.Add(2 * time.Hour),
		})
		require.NoError(t, err)

		err = f.cmds.Delete(f.ctx, f.owner, c.ID())
		require.ErrorIs(t, err, commands.ErrCarInUse)

		_, err = bookings.Cancel(f.ctx, f.owner, r.Reservation.ID())
		require.NoError(t, err)
		assert.NoError(t, f.cmds.Delete(f.ctx, f.owner, c.ID()), "cancelled bookings no longer hold the car")
	})
}
