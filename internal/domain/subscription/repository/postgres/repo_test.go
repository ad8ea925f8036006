package postgres

import (
	"errors"
	"strings"
	"testing"

	suberrors "github.com/voicetips/tips-service/internal/domain/subscription/errors"
)

func TestStoreErr(t *testing.T) {
	cause := errors.New("connection refused")
	err := storeErr(cause)

	if !errors.Is(err, suberrors.ErrStoreUnavailable) {
		t.Fatalf("wrapped error must keep the sentinel, got %v", err)
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("wrapped error must carry the cause, got %v", err)
	}
}
