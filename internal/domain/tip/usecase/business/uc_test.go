package business

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/voicetips/tips-service/internal/domain/tip/consts"
	"github.com/voicetips/tips-service/internal/domain/tip/entities"
	tiperrors "github.com/voicetips/tips-service/internal/domain/tip/errors"
)

type mockTipRepository struct {
	createFunc        func(ctx context.Context, tip *entities.Tip) error
	getAllFunc        func(ctx context.Context) ([]entities.Tip, error)
	getByCategoryFunc func(ctx context.Context, category string) ([]entities.Tip, error)
	getMostRecentFunc func(ctx context.Context) (*entities.Tip, error)

	getAllCalls        int
	getByCategoryCalls int
}

func (m *mockTipRepository) Create(ctx context.Context, tip *entities.Tip) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, tip)
	}
	tip.ID = 1
	return nil
}

func (m *mockTipRepository) GetAll(ctx context.Context) ([]entities.Tip, error) {
	m.getAllCalls++
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockTipRepository) GetByCategory(ctx context.Context, category string) ([]entities.Tip, error) {
	m.getByCategoryCalls++
	if m.getByCategoryFunc != nil {
		return m.getByCategoryFunc(ctx, category)
	}
	return nil, nil
}

func (m *mockTipRepository) GetMostRecent(ctx context.Context) (*entities.Tip, error) {
	if m.getMostRecentFunc != nil {
		return m.getMostRecentFunc(ctx)
	}
	return nil, tiperrors.ErrNoTips
}

type mockEventPublisher struct {
	sendTipCreatedFunc func(ctx context.Context, tip *entities.Tip) error
	sentCount          int
}

func (m *mockEventPublisher) SendTipCreated(ctx context.Context, tip *entities.Tip) error {
	m.sentCount++
	if m.sendTipCreatedFunc != nil {
		return m.sendTipCreatedFunc(ctx, tip)
	}
	return nil
}

func sampleTips() []entities.Tip {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return []entities.Tip{
		{ID: 1, Text: "tip one", Category: "tools", CreatedAt: base},
		{ID: 2, Text: "tip two", Category: "design", CreatedAt: base.Add(time.Hour)},
		{ID: 3, Text: "tip three", Category: "tools", CreatedAt: base.Add(2 * time.Hour)},
		{ID: 4, Text: "tip four", Category: "promotion", CreatedAt: base.Add(3 * time.Hour)},
	}
}

func TestPickByCategory(t *testing.T) {
	t.Run("NamedCategory_ReturnsMatchingTip", func(t *testing.T) {
		repo := &mockTipRepository{
			getByCategoryFunc: func(ctx context.Context, category string) ([]entities.Tip, error) {
				var filtered []entities.Tip
				for _, tip := range sampleTips() {
					if tip.Category == category {
						filtered = append(filtered, tip)
					}
				}
				return filtered, nil
			},
		}
		uc := NewUseCase(repo, &mockEventPublisher{}, zerolog.Nop())

		for i := 0; i < 20; i++ {
			tip, err := uc.PickByCategory(context.Background(), "tools")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if tip.Category != "tools" {
				t.Fatalf("expected category tools, got %q", tip.Category)
			}
		}

		if repo.getAllCalls != 0 {
			t.Fatalf("named category must not query the full collection")
		}
	})

	t.Run("RandomSentinel_DrawsFromFullSet", func(t *testing.T) {
		repo := &mockTipRepository{
			getAllFunc: func(ctx context.Context) ([]entities.Tip, error) {
				return sampleTips(), nil
			},
		}
		uc := NewUseCase(repo, &mockEventPublisher{}, zerolog.Nop())

		seen := make(map[uint]bool)
		for i := 0; i < 200; i++ {
			tip, err := uc.PickByCategory(context.Background(), consts.CategoryRandom)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			seen[tip.ID] = true
		}

		if repo.getByCategoryCalls != 0 {
			t.Fatalf("random sentinel must not be used as a category filter")
		}
		if len(seen) < 2 {
			t.Fatalf("random draw never left a single tip, seen=%v", seen)
		}
	})

	t.Run("EmptyResult_ReturnsErrNoTips", func(t *testing.T) {
		repo := &mockTipRepository{
			getByCategoryFunc: func(ctx context.Context, category string) ([]entities.Tip, error) {
				return nil, nil
			},
		}
		uc := NewUseCase(repo, &mockEventPublisher{}, zerolog.Nop())

		_, err := uc.PickByCategory(context.Background(), "missing")
		if !errors.Is(err, tiperrors.ErrNoTips) {
			t.Fatalf("expected ErrNoTips, got %v", err)
		}
	})

	t.Run("StoreFailure_Propagates", func(t *testing.T) {
		repo := &mockTipRepository{
			getAllFunc: func(ctx context.Context) ([]entities.Tip, error) {
				return nil, tiperrors.ErrStoreUnavailable
			},
		}
		uc := NewUseCase(repo, &mockEventPublisher{}, zerolog.Nop())

		_, err := uc.PickByCategory(context.Background(), consts.CategoryRandom)
		if !errors.Is(err, tiperrors.ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
	})
}

func TestMostRecent(t *testing.T) {
	t.Run("ReturnsNewestTip", func(t *testing.T) {
		tips := sampleTips()
		newest := tips[len(tips)-1]
		repo := &mockTipRepository{
			getMostRecentFunc: func(ctx context.Context) (*entities.Tip, error) {
				return &newest, nil
			},
		}
		uc := NewUseCase(repo, &mockEventPublisher{}, zerolog.Nop())

		tip, err := uc.MostRecent(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if tip.ID != newest.ID {
			t.Fatalf("expected tip %d, got %d", newest.ID, tip.ID)
		}
	})

	t.Run("EmptyCollection_ReturnsErrNoTips", func(t *testing.T) {
		uc := NewUseCase(&mockTipRepository{}, &mockEventPublisher{}, zerolog.Nop())

		_, err := uc.MostRecent(context.Background())
		if !errors.Is(err, tiperrors.ErrNoTips) {
			t.Fatalf("expected ErrNoTips, got %v", err)
		}
	})
}

func TestListCategories(t *testing.T) {
	t.Run("OrderAndDeduplication", func(t *testing.T) {
		repo := &mockTipRepository{
			getAllFunc: func(ctx context.Context) ([]entities.Tip, error) {
				return sampleTips(), nil
			},
		}
		uc := NewUseCase(repo, &mockEventPublisher{}, zerolog.Nop())

		categories, err := uc.ListCategories(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		expected := []string{consts.CategoryMostRecent, "tools", "design", "promotion", consts.CategoryRandom}
		if len(categories) != len(expected) {
			t.Fatalf("expected %v, got %v", expected, categories)
		}
		for i, category := range expected {
			if categories[i] != category {
				t.Fatalf("expected %v, got %v", expected, categories)
			}
		}
	})

	t.Run("SentinelsPlacedOnEmptyCollection", func(t *testing.T) {
		repo := &mockTipRepository{
			getAllFunc: func(ctx context.Context) ([]entities.Tip, error) {
				return nil, nil
			},
		}
		uc := NewUseCase(repo, &mockEventPublisher{}, zerolog.Nop())

		categories, err := uc.ListCategories(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(categories) != 2 {
			t.Fatalf("expected only the two sentinels, got %v", categories)
		}
		if categories[0] != consts.CategoryMostRecent || categories[1] != consts.CategoryRandom {
			t.Fatalf("sentinels misplaced: %v", categories)
		}
	})
}

func TestCreateTip(t *testing.T) {
	t.Run("PublishesCreationEvent", func(t *testing.T) {
		repo := &mockTipRepository{}
		publisher := &mockEventPublisher{}
		uc := NewUseCase(repo, publisher, zerolog.Nop())

		tip, err := uc.CreateTip(context.Background(), "new tip", "https://example.com", "tools")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if tip.ID == 0 {
			t.Fatalf("expected persisted tip to carry an ID")
		}
		if publisher.sentCount != 1 {
			t.Fatalf("expected 1 published event, got %d", publisher.sentCount)
		}
	})

	t.Run("PublishFailure_StillCreates", func(t *testing.T) {
		publisher := &mockEventPublisher{
			sendTipCreatedFunc: func(ctx context.Context, tip *entities.Tip) error {
				return errors.New("broker down")
			},
		}
		uc := NewUseCase(&mockTipRepository{}, publisher, zerolog.Nop())

		if _, err := uc.CreateTip(context.Background(), "new tip", "", "tools"); err != nil {
			t.Fatalf("publish failure must not fail the create, got %v", err)
		}
	})

	t.Run("ReservedCategories_Rejected", func(t *testing.T) {
		uc := NewUseCase(&mockTipRepository{}, &mockEventPublisher{}, zerolog.Nop())

		for _, category := range []string{consts.CategoryRandom, consts.CategoryMostRecent} {
			_, err := uc.CreateTip(context.Background(), "text", "", category)
			if !errors.Is(err, tiperrors.ErrReservedCategory) {
				t.Fatalf("category %q: expected ErrReservedCategory, got %v", category, err)
			}
		}
	})

	t.Run("EmptyFields_Rejected", func(t *testing.T) {
		uc := NewUseCase(&mockTipRepository{}, &mockEventPublisher{}, zerolog.Nop())

		if _, err := uc.CreateTip(context.Background(), "", "", "tools"); !errors.Is(err, tiperrors.ErrInvalidTip) {
			t.Fatalf("expected ErrInvalidTip, got %v", err)
		}
	})
}
