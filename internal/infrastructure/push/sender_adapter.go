package push

import (
	"context"

	"github.com/voicetips/tips-service/internal/domain/notification/deps"
)

// SenderAdapter maps domain notifications onto the push endpoint's wire format
type SenderAdapter struct {
	client  *Client
	sandbox bool
}

func NewSenderAdapter(client *Client, sandbox bool) *SenderAdapter {
	return &SenderAdapter{
		client:  client,
		sandbox: sandbox,
	}
}

func (a *SenderAdapter) Send(ctx context.Context, accessToken string, notification deps.Notification) error {
	msg := Message{
		CustomPushMessage: CustomPushMessage{
			UserNotification: UserNotification{
				Title: notification.Title,
			},
			Target: Target{
				UserID: notification.UserID,
				Intent: notification.Intent,
			},
		},
		IsInSandbox: a.sandbox,
	}

	return a.client.Send(ctx, accessToken, msg)
}
