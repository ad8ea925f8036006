package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/voicetips/tips-service/internal/domain/subscription/deps"
	"github.com/voicetips/tips-service/internal/domain/subscription/entities"
	suberrors "github.com/voicetips/tips-service/internal/domain/subscription/errors"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) deps.SubscriptionRepository {
	return &Repository{db: db}
}

// storeErr keeps the sentinel for errors.Is checks while preserving the
// driver-level cause for the logs
func storeErr(cause error) error {
	return fmt.Errorf("%w: %v", suberrors.ErrStoreUnavailable, cause)
}

// Add appends a subscription record. No existence check, no upsert:
// repeat calls create duplicate rows.
func (r *Repository) Add(ctx context.Context, subscription *entities.Subscription) error {
	result := r.db.WithContext(ctx).Create(subscription)
	if result.Error != nil {
		return storeErr(result.Error)
	}
	return nil
}

func (r *Repository) FindByIntent(ctx context.Context, intent string) ([]entities.Subscription, error) {
	var subscriptions []entities.Subscription
	result := r.db.WithContext(ctx).
		Where("intent = ?", intent).
		Find(&subscriptions)

	if result.Error != nil {
		return nil, storeErr(result.Error)
	}

	return subscriptions, nil
}
