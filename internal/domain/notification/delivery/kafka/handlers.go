package kafka

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/voicetips/tips-service/internal/domain/notification/consts"
	"github.com/voicetips/tips-service/internal/domain/notification/deps"
	"github.com/voicetips/tips-service/internal/domain/notification/dto"
)

// EventHandler consumes tip-creation events and hands them to the dispatcher
type EventHandler struct {
	dispatcher deps.NotificationDispatcher
	logger     zerolog.Logger
	processed  uint64
	errors     uint64
}

func NewEventHandler(dispatcher deps.NotificationDispatcher, logger zerolog.Logger) *EventHandler {
	return &EventHandler{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (h *EventHandler) HandleMessage(ctx context.Context, topic string, value []byte) error {
	switch topic {
	case consts.TopicTipCreated:
		return h.handleTipCreated(ctx, value)
	default:
		h.logger.Warn().
			Str("topic", topic).
			Msg("received message from unknown topic")
		return nil
	}
}

func (h *EventHandler) handleTipCreated(ctx context.Context, value []byte) error {
	start := time.Now()
	defer func() {
		atomic.AddUint64(&h.processed, 1)
		h.logger.Info().
			Dur("duration", time.Since(start)).
			Uint64("processed_total", atomic.LoadUint64(&h.processed)).
			Uint64("errors_total", atomic.LoadUint64(&h.errors)).
			Msg("tip created event processed")
	}()

	var event dto.TipCreatedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		atomic.AddUint64(&h.errors, 1)
		h.logger.Error().Err(err).Msg("failed to unmarshal tip created event")
		return nil // Don't retry unmarshal errors
	}

	if err := h.dispatcher.DispatchTipCreated(ctx, &event); err != nil {
		atomic.AddUint64(&h.errors, 1)
		return err
	}

	return nil
}
