package push

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/voicetips/tips-service/config"
)

var Module = fx.Module(
	"push",
	fx.Provide(
		New,
		NewAdapter,
	),
)

func New(cfg *config.PushConfig, log zerolog.Logger) *Client {
	return NewClient(cfg.Endpoint, cfg.Timeout, log)
}

func NewAdapter(client *Client, cfg *config.PushConfig) *SenderAdapter {
	return NewSenderAdapter(client, cfg.Sandbox)
}
