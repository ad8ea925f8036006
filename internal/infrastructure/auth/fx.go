package auth

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/voicetips/tips-service/config"
)

var Module = fx.Module(
	"auth",
	fx.Provide(NewSource),
)

func NewSource(cfg *config.PushConfig, log zerolog.Logger) (*TokenSource, error) {
	return NewTokenSource(cfg.ServiceAccountFile, cfg.TokenScope, log)
}
