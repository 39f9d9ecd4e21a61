package bootstrap

import (
	"context"
	"log/slog"

	"github.com/antoninkin/parkmate-app/internal/infra/messaging"
	"github.com/antoninkin/parkmate-app/internal/pkg/config"
	"github.com/antoninkin/parkmate-app/internal/worker"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewPublisher,
	),
)

type closingPublisher interface {
	worker.Publisher
	Close() error
}

// NewPublisher logs events instead of publishing them when no brokers are configured.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) worker.Publisher {
	var p closingPublisher
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Info("no kafka brokers configured; events are logged only")
		p = messaging.NewLogPublisher(logger)
	} else {
		logger.Info("publishing events to kafka", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
		p = messaging.NewKafkaPublisher(cfg.Kafka.Brokers)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p
}
