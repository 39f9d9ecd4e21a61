package bootstrap

import (
	"log/slog"

	"github.com/antoninkin/parkmate-app/internal/handler/middleware"
	"github.com/antoninkin/parkmate-app/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()
	slog.SetDefault(logger)
	return logger
}
