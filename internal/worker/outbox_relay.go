package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/antoninkin/parkmate-app/internal/pkg/clock"
	"github.com/antoninkin/parkmate-app/internal/usecase/shared"
)

const (
	maxDeliveryAttempts = 8
	baseRetryDelay      = 5 * time.Second
	maxRetryDelay       = 10 * time.Minute
	// a claimed job that is neither marked sent nor failed within this window
	// is handed to the next relay that polls
	claimLease = time.Minute
)

type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload []byte) error
}

type RelayStats struct {
	Sent      int
	Retrying  int
	GivenUp   int
	MarkFails int
}

// OutboxRelay moves notification jobs from the outbox to the event publisher.
// Delivery is at least once; the message key is the job id so consumers can dedupe.
// Several relays may poll the same outbox since each batch is claimed under a lease.
type OutboxRelay struct {
	outbox    shared.Outbox
	publisher Publisher
	clock     clock.Clock
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
}

func NewOutboxRelay(
	outbox shared.Outbox,
	publisher Publisher,
	clock clock.Clock,
	interval time.Duration,
	batchSize int,
	logger *slog.Logger,
) *OutboxRelay {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	if batchSize <= 0 {
		batchSize = 50
	}
	return &OutboxRelay{
		outbox:    outbox,
		publisher: publisher,
		clock:     clock,
		interval:  interval,
		batchSize: batchSize,
		logger:    logger,
	}
}

func (r *OutboxRelay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.InfoContext(ctx, "outbox relay started", slog.Duration("interval", r.interval))
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("outbox relay stopped")
			return
		case <-ticker.C:
			if _, err := r.Flush(ctx); err != nil {
				r.logger.ErrorContext(ctx, "outbox flush failed", slog.String("error", err.Error()))
			}
		}
	}
}

// Flush delivers one batch of due jobs.
func (r *OutboxRelay) Flush(ctx context.Context) (RelayStats, error) {
	var stats RelayStats

	jobs, err := r.outbox.ClaimDue(ctx, r.clock.Now(), claimLease, r.batchSize)
	if err != nil {
		return stats, err
	}

	for _, job := range jobs {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}

		pubErr := r.publisher.Publish(ctx, job.Topic, job.ID.String(), job.Payload)
		now := r.clock.Now()
		if pubErr == nil {
			if err := r.outbox.MarkSent(ctx, job.ID, now); err != nil {
				stats.MarkFails++
				r.logger.WarnContext(ctx, "failed to mark job sent",
					slog.String("job_id", job.ID.String()),
					slog.String("error", err.Error()))
				continue
			}
			stats.Sent++
			continue
		}

		attempt := job.Attempts + 1
		giveUp := attempt >= maxDeliveryAttempts
		if err := r.outbox.MarkFailed(ctx, job.ID, pubErr.Error(), now.Add(retryDelay(attempt)), giveUp); err != nil {
			stats.MarkFails++
			r.logger.WarnContext(ctx, "failed to mark job failed",
				slog.String("job_id", job.ID.String()),
				slog.String("error", err.Error()))
			continue
		}
		if giveUp {
			stats.GivenUp++
			r.logger.ErrorContext(ctx, "giving up on notification job",
				slog.String("job_id", job.ID.String()),
				slog.String("kind", job.Kind),
				slog.Int("attempts", attempt),
				slog.String("error", pubErr.Error()))
			continue
		}
		stats.Retrying++
	}
	return stats, nil
}

func retryDelay(attempt int) time.Duration {
	delay := baseRetryDelay
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	return delay
}
