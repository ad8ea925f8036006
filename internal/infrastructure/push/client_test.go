package push

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/voicetips/tips-service/internal/domain/notification/deps"
)

func testMessage() Message {
	return Message{
		CustomPushMessage: CustomPushMessage{
			UserNotification: UserNotification{Title: "Tips latest tip"},
			Target: Target{
				UserID: "user-42",
				Intent: "tell_latest_tip",
			},
		},
		IsInSandbox: true,
	}
}

func TestClientSend(t *testing.T) {
	t.Run("PostsBearerAuthenticatedJSON", func(t *testing.T) {
		var gotAuth, gotContentType string
		var gotBody Message

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotContentType = r.Header.Get("Content-Type")
			if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
				t.Errorf("failed to decode request body: %v", err)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second, zerolog.Nop())
		if err := client.Send(context.Background(), "test-token", testMessage()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if gotAuth != "Bearer test-token" {
			t.Fatalf("expected bearer auth header, got %q", gotAuth)
		}
		if gotContentType != "application/json" {
			t.Fatalf("expected JSON content type, got %q", gotContentType)
		}
		if gotBody.CustomPushMessage.Target.UserID != "user-42" ||
			gotBody.CustomPushMessage.UserNotification.Title != "Tips latest tip" ||
			!gotBody.IsInSandbox {
			t.Fatalf("unexpected wire payload: %+v", gotBody)
		}
	})

	t.Run("NonSuccessStatus_ReturnsError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "permission denied", http.StatusForbidden)
		}))
		defer server.Close()

		client := NewClient(server.URL, 5*time.Second, zerolog.Nop())
		if err := client.Send(context.Background(), "test-token", testMessage()); err == nil {
			t.Fatal("expected error for non-2xx status")
		}
	})

	t.Run("UnreachableEndpoint_ReturnsError", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", time.Second, zerolog.Nop())
		if err := client.Send(context.Background(), "test-token", testMessage()); err == nil {
			t.Fatal("expected transport error")
		}
	})
}

func TestSenderAdapter(t *testing.T) {
	var gotBody Message

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, zerolog.Nop())
	adapter := NewSenderAdapter(client, true)

	notification := deps.Notification{
		Title:  "Tips latest tip",
		UserID: "user-42",
		Intent: "tell_latest_tip",
	}
	if err := adapter.Send(context.Background(), "test-token", notification); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if gotBody.CustomPushMessage.Target.UserID != notification.UserID ||
		gotBody.CustomPushMessage.Target.Intent != notification.Intent ||
		gotBody.CustomPushMessage.UserNotification.Title != notification.Title {
		t.Fatalf("adapter produced unexpected payload: %+v", gotBody)
	}
	if !gotBody.IsInSandbox {
		t.Fatal("sandbox flag must be carried onto the wire")
	}
}
