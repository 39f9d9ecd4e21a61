package bootstrap

import (
	"context"
	"log/slog"
	"sync"

	"github.com/antoninkin/parkmate-app/internal/pkg/clock"
	"github.com/antoninkin/parkmate-app/internal/pkg/config"
	"github.com/antoninkin/parkmate-app/internal/usecase/commands"
	"github.com/antoninkin/parkmate-app/internal/usecase/shared"
	"github.com/antoninkin/parkmate-app/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewExpirySweeper,
		NewOutboxRelay,
	),
	fx.Invoke(runWorkers),
)

func NewExpirySweeper(cmds commands.ReservationCommands, cfg config.Config, logger *slog.Logger) *worker.ExpirySweeper {
	return worker.NewExpirySweeper(cmds, cfg.Lifecycle.ExpirySweepInterval, logger)
}

func NewOutboxRelay(outbox shared.Outbox, publisher worker.Publisher, clk clock.Clock, cfg config.Config, logger *slog.Logger) *worker.OutboxRelay {
	return worker.NewOutboxRelay(outbox, publisher, clk, cfg.Lifecycle.OutboxPollInterval, cfg.Lifecycle.OutboxBatchSize, logger)
}

// runWorkers ties both loops to the app lifecycle; OnStop waits for them to return.
func runWorkers(lc fx.Lifecycle, sweeper *worker.ExpirySweeper, relay *worker.OutboxRelay) {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			wg.Add(2)
			go func() {
				defer wg.Done()
				sweeper.Run(ctx)
			}()
			go func() {
				defer wg.Done()
				relay.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
