package notification

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/voicetips/tips-service/config"
	"github.com/voicetips/tips-service/internal/domain/notification/consts"
	notifkafka "github.com/voicetips/tips-service/internal/domain/notification/delivery/kafka"
	"github.com/voicetips/tips-service/internal/domain/notification/deps"
	"github.com/voicetips/tips-service/internal/domain/notification/usecase/business"
	subdeps "github.com/voicetips/tips-service/internal/domain/subscription/deps"
	"github.com/voicetips/tips-service/internal/infrastructure/auth"
	kafkaInfra "github.com/voicetips/tips-service/internal/infrastructure/kafka"
	"github.com/voicetips/tips-service/internal/infrastructure/push"
)

var Module = fx.Module(
	"notification",
	fx.Provide(
		NewSubscriptionFinder,
		NewTokenSource,
		NewPushSender,
		NewDispatcher,
		notifkafka.NewEventHandler,
	),
	fx.Invoke(registerKafkaConsumer),
)

func NewSubscriptionFinder(subscriptions subdeps.SubscriptionUseCase) deps.SubscriptionFinder {
	return subscriptions
}

func NewTokenSource(source *auth.TokenSource) deps.TokenSource {
	return source
}

func NewPushSender(adapter *push.SenderAdapter) deps.PushSender {
	return adapter
}

func NewDispatcher(
	subscriptions deps.SubscriptionFinder,
	tokens deps.TokenSource,
	sender deps.PushSender,
	logger zerolog.Logger,
) deps.NotificationDispatcher {
	return business.NewUseCase(subscriptions, tokens, sender, logger)
}

func registerKafkaConsumer(
	lc fx.Lifecycle,
	cfg *config.KafkaConfig,
	handler *notifkafka.EventHandler,
	log zerolog.Logger,
) error {
	consumer, err := kafkaInfra.NewKafkaConsumer(
		cfg.Brokers,
		cfg.GroupID,
		consts.ConsumerTopics,
		handler,
		log,
	)
	if err != nil {
		return err
	}

	consumerCtx, cancelConsumer := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			consumer.Start(consumerCtx)
			log.Info().Msg("kafka consumer started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("stopping kafka consumer...")
			cancelConsumer()
			return consumer.Close()
		},
	})

	return nil
}
