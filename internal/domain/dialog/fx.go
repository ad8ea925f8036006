package dialog

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	dialoghttp "github.com/voicetips/tips-service/internal/domain/dialog/delivery/http"
	"github.com/voicetips/tips-service/internal/domain/dialog/deps"
	"github.com/voicetips/tips-service/internal/domain/dialog/session"
	"github.com/voicetips/tips-service/internal/domain/dialog/usecase/business"
	subdeps "github.com/voicetips/tips-service/internal/domain/subscription/deps"
	tipdeps "github.com/voicetips/tips-service/internal/domain/tip/deps"
	"github.com/voicetips/tips-service/internal/infrastructure/http/server"
)

const sessionTTL = 30 * time.Minute

var Module = fx.Module(
	"dialog",
	fx.Provide(
		NewSessionStore,
		NewTipProvider,
		NewSubscriber,
		NewUseCase,
		dialoghttp.NewHandler,
	),
	fx.Invoke(registerRoutes),
)

func NewSessionStore(lc fx.Lifecycle, logger zerolog.Logger) deps.SessionStore {
	store := session.NewStore(sessionTTL, logger)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			store.Close()
			return nil
		},
	})

	return store
}

func NewTipProvider(tips tipdeps.TipUseCase) deps.TipProvider {
	return tips
}

func NewSubscriber(subscriptions subdeps.SubscriptionUseCase) deps.Subscriber {
	return subscriptions
}

func NewUseCase(
	tips deps.TipProvider,
	subscriber deps.Subscriber,
	sessions deps.SessionStore,
	logger zerolog.Logger,
) deps.DialogUseCase {
	return business.NewUseCase(tips, subscriber, sessions, logger)
}

func registerRoutes(srv *server.Server, handler *dialoghttp.Handler) {
	srv.Mux.Handle("/v1/fulfillment", handler)
}
