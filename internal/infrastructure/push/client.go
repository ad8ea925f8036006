package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Message is the payload of a single push delivery call
type Message struct {
	CustomPushMessage CustomPushMessage `json:"customPushMessage"`
	IsInSandbox       bool              `json:"isInSandbox"`
}

type CustomPushMessage struct {
	UserNotification UserNotification `json:"userNotification"`
	Target           Target           `json:"target"`
}

type UserNotification struct {
	Title string `json:"title"`
}

type Target struct {
	UserID string `json:"userId"`
	Intent string `json:"intent"`
}

// Client posts push messages to the assistant push endpoint
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewClient(endpoint string, timeout time.Duration, logger zerolog.Logger) *Client {
	client := &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}

	logger.Info().
		Str("endpoint", endpoint).
		Msg("push client initialized")

	return client
}

// Send posts one push message authenticated with the given bearer token.
// The response status and body are logged; only transport errors and
// non-2xx statuses are returned as errors.
func (c *Client) Send(ctx context.Context, accessToken string, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal push message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("push request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	c.logger.Info().
		Int("status_code", resp.StatusCode).
		Str("user_id", msg.CustomPushMessage.Target.UserID).
		Str("response_body", string(respBody)).
		Msg("push delivery response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("push endpoint returned status %d", resp.StatusCode)
	}

	return nil
}
