package worker

//go:generate mockgen -destination=../../tests/mock/worker/worker.go -package=workermock . ExpiryRunner,Publisher

import (
	"context"
	"log/slog"
	"time"

	"github.com/antoninkin/parkmate-app/internal/usecase/commands"
)

type ExpiryRunner interface {
	ExpireDue(ctx context.Context) (commands.ExpireSummary, error)
}

// ExpirySweeper completes paid reservations whose exit time has passed.
type ExpirySweeper struct {
	runner   ExpiryRunner
	interval time.Duration
	logger   *slog.Logger
}

func NewExpirySweeper(runner ExpiryRunner, interval time.Duration, logger *slog.Logger) *ExpirySweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ExpirySweeper{runner: runner, interval: interval, logger: logger}
}

// Run blocks until ctx is cancelled.
func (w *ExpirySweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.InfoContext(ctx, "expiry sweeper started", slog.Duration("interval", w.interval))
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("expiry sweeper stopped")
			return
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

func (w *ExpirySweeper) Sweep(ctx context.Context) commands.ExpireSummary {
	summary, err := w.runner.ExpireDue(ctx)
	if err != nil {
		w.logger.ErrorContext(ctx, "expiry sweep failed", slog.String("error", err.Error()))
		return summary
	}
	if summary.Completed > 0 || summary.Failed > 0 {
		w.logger.InfoContext(ctx, "expiry sweep finished",
			slog.Int("completed", summary.Completed),
			slog.Int("skipped", summary.Skipped),
			slog.Int("failed", summary.Failed))
	}
	return summary
}
