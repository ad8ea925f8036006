package business

import (
	"context"
	"math/rand"
	"strings"

	"github.com/rs/zerolog"

	"github.com/voicetips/tips-service/internal/domain/tip/consts"
	"github.com/voicetips/tips-service/internal/domain/tip/deps"
	"github.com/voicetips/tips-service/internal/domain/tip/entities"
	tiperrors "github.com/voicetips/tips-service/internal/domain/tip/errors"
)

type UseCase struct {
	repo      deps.TipRepository
	publisher deps.EventPublisher
	logger    zerolog.Logger
}

func NewUseCase(
	repo deps.TipRepository,
	publisher deps.EventPublisher,
	logger zerolog.Logger,
) *UseCase {
	return &UseCase{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateTip persists a new tip and publishes the tip-created event that
// triggers push dispatch. The event is best-effort: a publish failure is
// logged but the persisted tip is still reported as created.
func (u *UseCase) CreateTip(ctx context.Context, text, url, category string) (*entities.Tip, error) {
	text = strings.TrimSpace(text)
	category = strings.TrimSpace(category)

	if text == "" || category == "" {
		return nil, tiperrors.ErrInvalidTip
	}

	if category == consts.CategoryRandom || category == consts.CategoryMostRecent {
		return nil, tiperrors.ErrReservedCategory
	}

	tip := &entities.Tip{
		Text:     text,
		URL:      url,
		Category: category,
	}

	if err := u.repo.Create(ctx, tip); err != nil {
		u.logger.Error().Err(err).
			Str("category", category).
			Msg("failed to create tip")
		return nil, err
	}

	if err := u.publisher.SendTipCreated(ctx, tip); err != nil {
		u.logger.Error().Err(err).
			Uint("tip_id", tip.ID).
			Msg("failed to publish tip created event")
	}

	u.logger.Info().
		Uint("tip_id", tip.ID).
		Str("category", category).
		Msg("tip created successfully")

	return tip, nil
}

// PickByCategory selects a tip uniformly at random. The random sentinel
// widens the draw to the full collection instead of filtering.
func (u *UseCase) PickByCategory(ctx context.Context, category string) (*entities.Tip, error) {
	var (
		tips []entities.Tip
		err  error
	)

	if category == consts.CategoryRandom {
		tips, err = u.repo.GetAll(ctx)
	} else {
		tips, err = u.repo.GetByCategory(ctx, category)
	}

	if err != nil {
		u.logger.Error().Err(err).
			Str("category", category).
			Msg("failed to query tips")
		return nil, err
	}

	if len(tips) == 0 {
		u.logger.Warn().
			Str("category", category).
			Msg("no tips found for category")
		return nil, tiperrors.ErrNoTips
	}

	tip := tips[rand.Intn(len(tips))]

	return &tip, nil
}

// MostRecent returns the tip with the newest creation timestamp
func (u *UseCase) MostRecent(ctx context.Context) (*entities.Tip, error) {
	tip, err := u.repo.GetMostRecent(ctx)
	if err != nil {
		u.logger.Error().Err(err).Msg("failed to get most recent tip")
		return nil, err
	}

	return tip, nil
}

// ListCategories returns the distinct tip categories in first-seen order,
// with the most-recent pseudo-category first and the random sentinel last.
func (u *UseCase) ListCategories(ctx context.Context) ([]string, error) {
	tips, err := u.repo.GetAll(ctx)
	if err != nil {
		u.logger.Error().Err(err).Msg("failed to list tips for categories")
		return nil, err
	}

	seen := make(map[string]struct{}, len(tips))
	categories := make([]string, 0, len(tips)+2)

	categories = append(categories, consts.CategoryMostRecent)
	for _, tip := range tips {
		if _, ok := seen[tip.Category]; ok {
			continue
		}
		seen[tip.Category] = struct{}{}
		categories = append(categories, tip.Category)
	}
	categories = append(categories, consts.CategoryRandom)

	return categories, nil
}
