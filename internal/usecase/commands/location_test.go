//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/antoninkin/parkmate-app/internal/domain/location"
	"github.com/antoninkin/parkmate-app/internal/domain/user"
	"github.com/antoninkin/parkmate-app/internal/infra/memory"
	"github.com/antoninkin/parkmate-app/internal/pkg/clock"
	"github.com/antoninkin/parkmate-app/internal/pkg/errs"
	"github.com/antoninkin/parkmate-app/internal/usecase/commands"
	commandsmock "github.com/antoninkin/parkmate-app/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int { return &v }

func TestLocationCommands_Create(t *testing.T) {
	admin := user.NewActor(uuid.New(), user.RoleAdmin)
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	valid := func() commands.CreateLocationInput {
		return commands.CreateLocationInput{
			Name:      "Harbor Lot",
			Address:   "12 Pier Road",
			Latitude:  35.44,
			Longitude: 139.64,
			Capacity:  intPtr(40),
		}
	}

	tests := []struct {
		name      string
		actor     user.Actor
		mutate    func(in *commands.CreateLocationInput)
		wantErr   error
		wantSpots int
	}{
		{name: "spots default to capacity", actor: admin, wantSpots: 40},
		{
			name:      "explicit availability",
			actor:     admin,
			mutate:    func(in *commands.CreateLocationInput) { in.AvailableSpots = intPtr(12) },
			wantSpots: 12,
		},
		{
			name:      "unknown capacity",
			actor:     admin,
			mutate:    func(in *commands.CreateLocationInput) { in.Capacity = nil; in.AvailableSpots = intPtr(7) },
			wantSpots: 7,
		},
		{
			name:    "availability above capacity",
			actor:   admin,
			mutate:  func(in *commands.CreateLocationInput) { in.AvailableSpots = intPtr(41) },
			wantErr: location.ErrInvalidAvailability,
		},
		{
			name:    "empty name",
			actor:   admin,
			mutate:  func(in *commands.CreateLocationInput) { in.Name = "" },
			wantErr: location.ErrNameRequired,
		},
		{
			name:    "latitude out of range",
			actor:   admin,
			mutate:  func(in *commands.CreateLocationInput) { in.Latitude = 91 },
			wantErr: location.ErrInvalidCoordinates,
		},
		{
			name:    "regular user",
			actor:   user.NewActor(uuid.New(), user.RoleUser),
			wantErr: errs.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cache := commandsmock.NewMockLocationCacheInvalidator(ctrl)
			store := memory.NewStore()
			cmds := commands.NewLocationCommands(store, cache, clock.NewMockClock(now), logger, commands.Config{GatewayTimeout: time.Second})

			in := valid()
			if tt.mutate != nil {
				tt.mutate(&in)
			}

			if tt.wantErr == nil {
				cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
			}

			res, err := cmds.Create(context.Background(), tt.actor, in)
			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)

			view, err := memory.NewLocationReadStore(store).FindByID(context.Background(), res.Location.ID())
			require.NoError(t, err)
			assert.Equal(t, tt.wantSpots, view.AvailableSpots)
			assert.Equal(t, in.Name, view.Name)
			assert.Equal(t, in.Capacity, view.Capacity)
		})
	}
}

func TestLocationCommands_CacheFailureDoesNotFailCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := commandsmock.NewMockLocationCacheInvalidator(ctrl)
	cache.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down"))

	cmds := commands.NewLocationCommands(
		memory.NewStore(),
		cache,
		clock.NewMockClock(time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		commands.Config{},
	)

	res, err := cmds.Create(context.Background(), user.NewActor(uuid.New(), user.RoleAdmin), commands.CreateLocationInput{
		Name: "Depot", Address: "3 Rail St", Capacity: intPtr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Location.AvailableSpots())
}
