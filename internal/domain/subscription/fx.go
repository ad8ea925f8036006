package subscription

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/voicetips/tips-service/internal/domain/subscription/deps"
	"github.com/voicetips/tips-service/internal/domain/subscription/repository/postgres"
	"github.com/voicetips/tips-service/internal/domain/subscription/usecase/business"
)

var Module = fx.Module(
	"subscription",
	fx.Provide(
		NewRepository,
		NewUseCase,
	),
)

func NewRepository(db *gorm.DB) deps.SubscriptionRepository {
	return postgres.NewRepository(db)
}

func NewUseCase(repo deps.SubscriptionRepository, logger zerolog.Logger) deps.SubscriptionUseCase {
	return business.NewUseCase(repo, logger)
}
