package app

import (
	"go.uber.org/fx"

	"github.com/voicetips/tips-service/config"
	"github.com/voicetips/tips-service/internal/domain"
	"github.com/voicetips/tips-service/internal/infrastructure/auth"
	"github.com/voicetips/tips-service/internal/infrastructure/database"
	"github.com/voicetips/tips-service/internal/infrastructure/http"
	"github.com/voicetips/tips-service/internal/infrastructure/kafka"
	"github.com/voicetips/tips-service/internal/infrastructure/logger"
	"github.com/voicetips/tips-service/internal/infrastructure/push"
)

func CreateApp() fx.Option {
	return fx.Options(
		fx.Provide(config.Out),

		logger.Module,
		database.Module,
		kafka.Module,
		auth.Module,
		push.Module,

		domain.Module,

		http.Module,
	)
}
