package entities

import "time"

// Subscription is a standing consent: a user wants to be notified via the
// named intent, optionally parameterized by a category. Records are never
// updated and duplicates are not collapsed; idempotency belongs to callers.
type Subscription struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    string    `gorm:"column:user_id;not null"`
	Intent    string    `gorm:"column:intent;not null;index"`
	Category  string    `gorm:"column:category;not null;default:''"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
