// Package observability provides the shared zap logger.
package observability

import (
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

var Module = fx.Module("observability",
	fx.Provide(NewLogger),
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log.Named("fx")}
	}),
)

func NewLogger() (*zap.Logger, error) {
	if os.Getenv("COURIERD_LOG_DEV") != "" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
