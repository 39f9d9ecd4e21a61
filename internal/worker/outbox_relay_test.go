//go:build unit

package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/antoninkin/parkmate-app/internal/infra/memory"
	"github.com/antoninkin/parkmate-app/internal/pkg/clock"
	"github.com/antoninkin/parkmate-app/internal/usecase/shared"
	"github.com/antoninkin/parkmate-app/internal/worker"
	workermock "github.com/antoninkin/parkmate-app/tests/mock/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var relayNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func seedJob(t *testing.T, store *memory.Store, kind string, runAt time.Time) {
	t.Helper()
	err := store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().CreateJob(ctx, kind, "parkmate.reservations", []byte(`{"type":"`+kind+`"}`), runAt)
	})
	require.NoError(t, err)
}

func TestOutboxRelay_Flush(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes due jobs and marks them sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := memory.NewStore()
		outbox := memory.NewOutbox(store)
		seedJob(t, store, "reservation.created", relayNow.Add(-time.Minute))
		seedJob(t, store, "reservation.paid", relayNow)
		seedJob(t, store, "reservation.completed", relayNow.Add(time.Hour))

		pub := workermock.NewMockPublisher(ctrl)
		pub.EXPECT().Publish(gomock.Any(), "parkmate.reservations", gomock.Any(), gomock.Any()).Return(nil).Times(2)

		relay := worker.NewOutboxRelay(outbox, pub, clock.NewMockClock(relayNow), time.Second, 10, discardLogger())
		stats, err := relay.Flush(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Sent)

		pending, err := outbox.ClaimDue(ctx, relayNow.Add(2*time.Hour), time.Minute, 10)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, "reservation.completed", pending[0].Kind)
	})

	t.Run("publish failure reschedules the job with backoff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := memory.NewStore()
		outbox := memory.NewOutbox(store)
		seedJob(t, store, "reservation.paid", relayNow)

		pub := workermock.NewMockPublisher(ctrl)
		pub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))

		relay := worker.NewOutboxRelay(outbox, pub, clock.NewMockClock(relayNow), time.Second, 10, discardLogger())
		stats, err := relay.Flush(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Retrying)

		due, err := outbox.ClaimDue(ctx, relayNow, time.Minute, 10)
		require.NoError(t, err)
		assert.Empty(t, due, "job must not be retried before its backoff")

		later, err := outbox.ClaimDue(ctx, relayNow.Add(5*time.Second), time.Minute, 10)
		require.NoError(t, err)
		require.Len(t, later, 1)
		assert.Equal(t, 1, later[0].Attempts)
		require.NotNil(t, later[0].LastError)
		assert.Equal(t, "broker unavailable", *later[0].LastError)
	})

	t.Run("gives up after the last attempt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := memory.NewStore()
		outbox := memory.NewOutbox(store)
		seedJob(t, store, "reservation.paid", relayNow)

		pub := workermock.NewMockPublisher(ctrl)
		pub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable")).AnyTimes()

		clk := clock.NewMockClock(relayNow)
		relay := worker.NewOutboxRelay(outbox, pub, clk, time.Second, 10, discardLogger())

		var given int
		for i := 0; i < 20 && given == 0; i++ {
			stats, err := relay.Flush(ctx)
			require.NoError(t, err)
			given = stats.GivenUp
			clk.Add(time.Hour)
		}
		assert.Equal(t, 1, given)

		pending, err := outbox.ClaimDue(ctx, clk.Now().Add(24*time.Hour), time.Minute, 10)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})
}

func TestOutbox_ClaimDue(t *testing.T) {
	ctx := context.Background()

	t.Run("a claimed job is hidden from the next claimer", func(t *testing.T) {
		store := memory.NewStore()
		outbox := memory.NewOutbox(store)
		seedJob(t, store, "reservation.created", relayNow.Add(-time.Minute))
		seedJob(t, store, "reservation.paid", relayNow)

		first, err := outbox.ClaimDue(ctx, relayNow, time.Minute, 1)
		require.NoError(t, err)
		require.Len(t, first, 1)
		assert.Equal(t, "reservation.created", first[0].Kind)

		second, err := outbox.ClaimDue(ctx, relayNow, time.Minute, 10)
		require.NoError(t, err)
		require.Len(t, second, 1)
		assert.Equal(t, "reservation.paid", second[0].Kind)

		third, err := outbox.ClaimDue(ctx, relayNow.Add(30*time.Second), time.Minute, 10)
		require.NoError(t, err)
		assert.Empty(t, third)
	})

	t.Run("an unmarked claim is due again once the lease ends", func(t *testing.T) {
		store := memory.NewStore()
		outbox := memory.NewOutbox(store)
		seedJob(t, store, "reservation.paid", relayNow)

		claimed, err := outbox.ClaimDue(ctx, relayNow, time.Minute, 10)
		require.NoError(t, err)
		require.Len(t, claimed, 1)

		again, err := outbox.ClaimDue(ctx, relayNow.Add(time.Minute), time.Minute, 10)
		require.NoError(t, err)
		require.Len(t, again, 1)
		assert.Equal(t, claimed[0].ID, again[0].ID)
		assert.Zero(t, again[0].Attempts)
	})

	t.Run("concurrent relays publish each job once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := memory.NewStore()
		outbox := memory.NewOutbox(store)
		for range 6 {
			seedJob(t, store, "reservation.created", relayNow)
		}

		var mu sync.Mutex
		keys := map[string]int{}
		pub := workermock.NewMockPublisher(ctrl)
		pub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, key string, _ []byte) error {
				mu.Lock()
				defer mu.Unlock()
				keys[key]++
				return nil
			}).Times(6)

		var wg sync.WaitGroup
		for range 3 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				relay := worker.NewOutboxRelay(outbox, pub, clock.NewMockClock(relayNow), time.Second, 2, discardLogger())
				for range 3 {
					_, _ = relay.Flush(ctx)
				}
			}()
		}
		wg.Wait()

		assert.Len(t, keys, 6)
		for key, n := range keys {
			assert.Equal(t, 1, n, "job %s", key)
		}
	})
}
