package messaging

import (
	"context"
	"log/slog"
)

// LogPublisher writes events to the application log when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, topic, key string, payload []byte) error {
	p.logger.InfoContext(ctx, "event published",
		slog.String("topic", topic),
		slog.String("key", key),
		slog.String("payload", string(payload)))
	return nil
}

func (p *LogPublisher) Close() error { return nil }
