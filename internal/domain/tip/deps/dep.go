package deps

import (
	"context"

	"github.com/voicetips/tips-service/internal/domain/tip/entities"
)

type TipRepository interface {
	Create(ctx context.Context, tip *entities.Tip) error
	GetAll(ctx context.Context) ([]entities.Tip, error)
	GetByCategory(ctx context.Context, category string) ([]entities.Tip, error)
	GetMostRecent(ctx context.Context) (*entities.Tip, error)
}

type TipUseCase interface {
	CreateTip(ctx context.Context, text, url, category string) (*entities.Tip, error)
	PickByCategory(ctx context.Context, category string) (*entities.Tip, error)
	MostRecent(ctx context.Context) (*entities.Tip, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type EventPublisher interface {
	SendTipCreated(ctx context.Context, tip *entities.Tip) error
}
