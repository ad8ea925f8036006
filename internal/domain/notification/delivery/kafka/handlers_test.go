package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/voicetips/tips-service/internal/domain/notification/consts"
	"github.com/voicetips/tips-service/internal/domain/notification/dto"
)

type mockDispatcher struct {
	dispatchFunc func(ctx context.Context, event *dto.TipCreatedEvent) error
	calls        int
	lastEvent    *dto.TipCreatedEvent
}

func (m *mockDispatcher) DispatchTipCreated(ctx context.Context, event *dto.TipCreatedEvent) error {
	m.calls++
	m.lastEvent = event
	if m.dispatchFunc != nil {
		return m.dispatchFunc(ctx, event)
	}
	return nil
}

func TestHandleMessage(t *testing.T) {
	t.Run("TipCreated_Dispatches", func(t *testing.T) {
		dispatcher := &mockDispatcher{}
		handler := NewEventHandler(dispatcher, zerolog.Nop())

		value := []byte(`{"tip_id":42,"tip":"use suggestion chips","category":"design"}`)
		if err := handler.HandleMessage(context.Background(), consts.TopicTipCreated, value); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if dispatcher.calls != 1 {
			t.Fatalf("expected one dispatch, got %d", dispatcher.calls)
		}
		if dispatcher.lastEvent.TipID != 42 || dispatcher.lastEvent.Text != "use suggestion chips" {
			t.Fatalf("unexpected event: %+v", dispatcher.lastEvent)
		}
	})

	t.Run("MalformedPayload_NotRetried", func(t *testing.T) {
		dispatcher := &mockDispatcher{}
		handler := NewEventHandler(dispatcher, zerolog.Nop())

		if err := handler.HandleMessage(context.Background(), consts.TopicTipCreated, []byte("{broken")); err != nil {
			t.Fatalf("unmarshal failures must not be retried, got %v", err)
		}
		if dispatcher.calls != 0 {
			t.Fatal("malformed payload must not reach the dispatcher")
		}
	})

	t.Run("DispatchFailure_Surfaces", func(t *testing.T) {
		dispatcher := &mockDispatcher{
			dispatchFunc: func(ctx context.Context, event *dto.TipCreatedEvent) error {
				return errors.New("credential exchange failed")
			},
		}
		handler := NewEventHandler(dispatcher, zerolog.Nop())

		value := []byte(`{"tip_id":42,"tip":"use suggestion chips"}`)
		if err := handler.HandleMessage(context.Background(), consts.TopicTipCreated, value); err == nil {
			t.Fatal("expected dispatch failure to surface for retry")
		}
	})

	t.Run("UnknownTopic_Ignored", func(t *testing.T) {
		dispatcher := &mockDispatcher{}
		handler := NewEventHandler(dispatcher, zerolog.Nop())

		if err := handler.HandleMessage(context.Background(), "orders.created", []byte("{}")); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if dispatcher.calls != 0 {
			t.Fatal("unknown topics must not be dispatched")
		}
	})
}
