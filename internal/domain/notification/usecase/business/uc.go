package business

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	dialogconsts "github.com/voicetips/tips-service/internal/domain/dialog/consts"
	"github.com/voicetips/tips-service/internal/domain/notification/consts"
	"github.com/voicetips/tips-service/internal/domain/notification/deps"
	"github.com/voicetips/tips-service/internal/domain/notification/dto"
	notiferrors "github.com/voicetips/tips-service/internal/domain/notification/errors"
	subentities "github.com/voicetips/tips-service/internal/domain/subscription/entities"
)

// UseCase fans a new-tip notification out to every push subscriber
type UseCase struct {
	subscriptions deps.SubscriptionFinder
	tokens        deps.TokenSource
	sender        deps.PushSender
	logger        zerolog.Logger
}

func NewUseCase(
	subscriptions deps.SubscriptionFinder,
	tokens deps.TokenSource,
	sender deps.PushSender,
	logger zerolog.Logger,
) *UseCase {
	return &UseCase{
		subscriptions: subscriptions,
		tokens:        tokens,
		sender:        sender,
		logger:        logger,
	}
}

// DispatchTipCreated authenticates once, reads the subscriber set and
// issues one delivery per subscriber. All deliveries run concurrently; a
// failed delivery is logged and recorded but never blocks or cancels the
// others, and it does not fail the dispatch. Only the credential exchange
// is fatal: without a token no message can be sent.
func (u *UseCase) DispatchTipCreated(ctx context.Context, event *dto.TipCreatedEvent) error {
	token, err := u.tokens.AccessToken(ctx)
	if err != nil {
		u.logger.Error().Err(err).
			Uint("tip_id", event.TipID).
			Msg("credential exchange failed, aborting dispatch")
		return fmt.Errorf("%w: %s", notiferrors.ErrCredentialExchange, err)
	}

	subscriptions, err := u.subscriptions.FindByIntent(ctx, dialogconsts.IntentTellLatestTip)
	if err != nil {
		u.logger.Error().Err(err).
			Uint("tip_id", event.TipID).
			Msg("failed to read subscriber set")
		return err
	}

	if len(subscriptions) == 0 {
		u.logger.Info().
			Uint("tip_id", event.TipID).
			Msg("no push subscribers, nothing to dispatch")
		return nil
	}

	results := u.fanOut(ctx, token, subscriptions)

	delivered := 0
	for _, result := range results {
		if result.Err == nil {
			delivered++
			continue
		}
		u.logger.Error().
			Err(fmt.Errorf("%w: %s", notiferrors.ErrDeliveryFailed, result.Err)).
			Str("user_id", result.UserID).
			Uint("tip_id", event.TipID).
			Msg("push delivery failed for subscriber")
	}

	u.logger.Info().
		Uint("tip_id", event.TipID).
		Int("subscribers", len(subscriptions)).
		Int("delivered", delivered).
		Int("failed", len(subscriptions)-delivered).
		Msg("dispatch completed")

	return nil
}

// fanOut issues every delivery in its own goroutine and joins only to
// collect results for logging, never for control flow
func (u *UseCase) fanOut(ctx context.Context, token string, subscriptions []subentities.Subscription) []dto.DeliveryResult {
	results := make([]dto.DeliveryResult, len(subscriptions))

	var wg sync.WaitGroup
	for i, sub := range subscriptions {
		wg.Add(1)
		go func(i int, sub subentities.Subscription) {
			defer wg.Done()

			notification := deps.Notification{
				Title:  consts.NotificationTitle,
				UserID: sub.UserID,
				Intent: sub.Intent,
			}

			results[i] = dto.DeliveryResult{
				UserID: sub.UserID,
				Err:    u.sender.Send(ctx, token, notification),
			}
		}(i, sub)
	}
	wg.Wait()

	return results
}
