package http

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/voicetips/tips-service/config"
	delivery "github.com/voicetips/tips-service/internal/delivery/http"
	"github.com/voicetips/tips-service/internal/infrastructure/http/server"
)

var Module = fx.Module(
	"http",
	fx.Provide(NewServer),
	fx.Invoke(
		registerHealth,
		registerServer,
	),
)

func NewServer(cfg *config.ServiceConfig, log zerolog.Logger) *server.Server {
	return server.NewServer(cfg.Port, log)
}

func registerHealth(srv *server.Server, db *gorm.DB, log zerolog.Logger) {
	srv.Mux.Handle("/health", delivery.NewHealthHandler(db, log))
}

func registerServer(lc fx.Lifecycle, srv *server.Server, log zerolog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return srv.Start()
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
