package tip

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	tiphttp "github.com/voicetips/tips-service/internal/domain/tip/delivery/http"
	"github.com/voicetips/tips-service/internal/domain/tip/deps"
	"github.com/voicetips/tips-service/internal/domain/tip/repository/postgres"
	"github.com/voicetips/tips-service/internal/domain/tip/usecase/business"
	"github.com/voicetips/tips-service/internal/infrastructure/http/server"
	kafkaInfra "github.com/voicetips/tips-service/internal/infrastructure/kafka"
)

var Module = fx.Module(
	"tip",
	fx.Provide(
		NewRepository,
		NewEventPublisher,
		NewUseCase,
		tiphttp.NewHandler,
	),
	fx.Invoke(registerRoutes),
)

func NewRepository(db *gorm.DB) deps.TipRepository {
	return postgres.NewRepository(db)
}

func NewEventPublisher(producer *kafkaInfra.TipEventProducer) deps.EventPublisher {
	return producer
}

func NewUseCase(
	repo deps.TipRepository,
	publisher deps.EventPublisher,
	logger zerolog.Logger,
) deps.TipUseCase {
	return business.NewUseCase(repo, publisher, logger)
}

func registerRoutes(srv *server.Server, handler *tiphttp.Handler) {
	srv.Mux.Handle("/v1/tips", handler)
}
