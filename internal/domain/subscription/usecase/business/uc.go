package business

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/voicetips/tips-service/internal/domain/subscription/deps"
	"github.com/voicetips/tips-service/internal/domain/subscription/entities"
	suberrors "github.com/voicetips/tips-service/internal/domain/subscription/errors"
)

type UseCase struct {
	repo   deps.SubscriptionRepository
	logger zerolog.Logger
}

func NewUseCase(repo deps.SubscriptionRepository, logger zerolog.Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		logger: logger,
	}
}

// Subscribe records a user's consent to be notified via the given intent
func (u *UseCase) Subscribe(ctx context.Context, userID, intent, category string) (uint, error) {
	if userID == "" {
		return 0, suberrors.ErrInvalidUserID
	}

	if intent == "" {
		return 0, suberrors.ErrInvalidIntent
	}

	subscription := &entities.Subscription{
		UserID:   userID,
		Intent:   intent,
		Category: category,
	}

	if err := u.repo.Add(ctx, subscription); err != nil {
		u.logger.Error().Err(err).
			Str("user_id", userID).
			Str("intent", intent).
			Msg("failed to add subscription")
		return 0, err
	}

	u.logger.Info().
		Uint("subscription_id", subscription.ID).
		Str("user_id", userID).
		Str("intent", intent).
		Msg("subscription created successfully")

	return subscription.ID, nil
}

// FindByIntent returns every subscription for the given intent, in no
// guaranteed order
func (u *UseCase) FindByIntent(ctx context.Context, intent string) ([]entities.Subscription, error) {
	if intent == "" {
		return nil, suberrors.ErrInvalidIntent
	}

	subscriptions, err := u.repo.FindByIntent(ctx, intent)
	if err != nil {
		u.logger.Error().Err(err).
			Str("intent", intent).
			Msg("failed to find subscriptions by intent")
		return nil, err
	}

	return subscriptions, nil
}
