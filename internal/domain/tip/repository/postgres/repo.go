package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/voicetips/tips-service/internal/domain/tip/deps"
	"github.com/voicetips/tips-service/internal/domain/tip/entities"
	tiperrors "github.com/voicetips/tips-service/internal/domain/tip/errors"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) deps.TipRepository {
	return &Repository{db: db}
}

// storeErr keeps the sentinel for errors.Is checks while preserving the
// driver-level cause for the logs
func storeErr(cause error) error {
	return fmt.Errorf("%w: %v", tiperrors.ErrStoreUnavailable, cause)
}

func (r *Repository) Create(ctx context.Context, tip *entities.Tip) error {
	result := r.db.WithContext(ctx).Create(tip)
	if result.Error != nil {
		return storeErr(result.Error)
	}
	return nil
}

// GetAll returns every tip in insertion order
func (r *Repository) GetAll(ctx context.Context) ([]entities.Tip, error) {
	var tips []entities.Tip
	result := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&tips)

	if result.Error != nil {
		return nil, storeErr(result.Error)
	}

	return tips, nil
}

func (r *Repository) GetByCategory(ctx context.Context, category string) ([]entities.Tip, error) {
	var tips []entities.Tip
	result := r.db.WithContext(ctx).
		Where("category = ?", category).
		Find(&tips)

	if result.Error != nil {
		return nil, storeErr(result.Error)
	}

	return tips, nil
}

// GetMostRecent returns the newest tip. Ties on created_at are broken by
// id so repeated calls over unchanged data return the same row.
func (r *Repository) GetMostRecent(ctx context.Context) (*entities.Tip, error) {
	var tip entities.Tip
	result := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		First(&tip)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, tiperrors.ErrNoTips
		}
		return nil, storeErr(result.Error)
	}

	return &tip, nil
}
