package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog"

	"github.com/voicetips/tips-service/internal/domain/notification/consts"
	"github.com/voicetips/tips-service/internal/domain/notification/dto"
	"github.com/voicetips/tips-service/internal/domain/tip/entities"
)

// TipEventProducer publishes tip lifecycle events. Events are keyed by tip
// ID and acked by all in-sync replicas before the authoring request returns.
type TipEventProducer struct {
	producer sarama.SyncProducer
	logger   zerolog.Logger
	sent     uint64
	failed   uint64
}

func NewTipEventProducer(brokers []string, clientID string, logger zerolog.Logger) (*TipEventProducer, error) {
	config := sarama.NewConfig()
	config.ClientID = clientID
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 5
	config.Producer.Retry.Backoff = 500 * time.Millisecond
	config.Producer.Timeout = 10 * time.Second
	config.Producer.RequiredAcks = sarama.WaitForAll

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		logger.Error().Err(err).
			Strs("brokers", brokers).
			Msg("failed to create tip event producer")
		return nil, err
	}

	logger.Info().
		Strs("brokers", brokers).
		Str("client_id", clientID).
		Msg("tip event producer initialized")

	return &TipEventProducer{
		producer: producer,
		logger:   logger,
	}, nil
}

func (p *TipEventProducer) Close() error {
	if p.producer == nil {
		return nil
	}

	if err := p.producer.Close(); err != nil {
		p.logger.Error().Err(err).Msg("failed to close tip event producer")
		return err
	}

	p.logger.Info().Msg("tip event producer closed")
	return nil
}

// SendTipCreated publishes the creation event that triggers push dispatch
func (p *TipEventProducer) SendTipCreated(ctx context.Context, tip *entities.Tip) error {
	event := dto.TipCreatedEvent{
		TipID:     tip.ID,
		Text:      tip.Text,
		URL:       tip.URL,
		Category:  tip.Category,
		CreatedAt: tip.CreatedAt.Unix(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		atomic.AddUint64(&p.failed, 1)
		p.logger.Error().Err(err).
			Uint("tip_id", tip.ID).
			Msg("failed to marshal tip created event")
		return fmt.Errorf("failed to marshal tip created event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: consts.TopicTipCreated,
		Key:   sarama.StringEncoder(strconv.FormatUint(uint64(tip.ID), 10)),
		Value: sarama.ByteEncoder(value),
	}

	start := time.Now()
	partition, offset, err := p.producer.SendMessage(msg)
	latency := time.Since(start)

	if err != nil {
		atomic.AddUint64(&p.failed, 1)
		p.logger.Error().Err(err).
			Str("topic", consts.TopicTipCreated).
			Uint("tip_id", tip.ID).
			Dur("latency", latency).
			Uint64("failed_total", atomic.LoadUint64(&p.failed)).
			Msg("failed to publish tip created event")
		return err
	}

	p.logger.Info().
		Str("topic", consts.TopicTipCreated).
		Uint("tip_id", tip.ID).
		Str("category", tip.Category).
		Int32("partition", partition).
		Int64("offset", offset).
		Dur("latency", latency).
		Uint64("sent_total", atomic.AddUint64(&p.sent, 1)).
		Msg("tip created event published")

	return nil
}
