package deps

import (
	"context"

	"github.com/voicetips/tips-service/internal/domain/subscription/entities"
)

type SubscriptionRepository interface {
	Add(ctx context.Context, subscription *entities.Subscription) error
	FindByIntent(ctx context.Context, intent string) ([]entities.Subscription, error)
}

type SubscriptionUseCase interface {
	Subscribe(ctx context.Context, userID, intent, category string) (uint, error)
	FindByIntent(ctx context.Context, intent string) ([]entities.Subscription, error)
}
