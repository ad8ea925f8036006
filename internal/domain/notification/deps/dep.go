package deps

import (
	"context"

	"github.com/voicetips/tips-service/internal/domain/notification/dto"
	subentities "github.com/voicetips/tips-service/internal/domain/subscription/entities"
)

// Notification is one outbound push payload
type Notification struct {
	Title  string
	UserID string
	Intent string
}

type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

type PushSender interface {
	Send(ctx context.Context, accessToken string, notification Notification) error
}

type SubscriptionFinder interface {
	FindByIntent(ctx context.Context, intent string) ([]subentities.Subscription, error)
}

type NotificationDispatcher interface {
	DispatchTipCreated(ctx context.Context, event *dto.TipCreatedEvent) error
}
