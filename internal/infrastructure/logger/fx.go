package logger

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/voicetips/tips-service/config"
)

var Module = fx.Module(
	"logger",
	fx.Provide(NewLogger),
)

func NewLogger(cfg *config.LoggingConfig) zerolog.Logger {
	return New(cfg.Level)
}
