package deps

import (
	"context"

	"github.com/voicetips/tips-service/internal/domain/dialog/dto"
	"github.com/voicetips/tips-service/internal/domain/dialog/session"
	tipentities "github.com/voicetips/tips-service/internal/domain/tip/entities"
)

type TipProvider interface {
	PickByCategory(ctx context.Context, category string) (*tipentities.Tip, error)
	MostRecent(ctx context.Context) (*tipentities.Tip, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type Subscriber interface {
	Subscribe(ctx context.Context, userID, intent, category string) (uint, error)
}

type SessionStore interface {
	Get(sessionID string) *session.State
	End(sessionID string)
}

type DialogUseCase interface {
	HandleTurn(ctx context.Context, req *dto.TurnRequest) (*dto.TurnResponse, error)
}
