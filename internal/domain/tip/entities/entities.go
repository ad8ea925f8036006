package entities

import "time"

// Tip is a short piece of content with a reference URL and a category label.
// Immutable once created.
type Tip struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"column:tip;not null" json:"tip"`
	URL       string    `gorm:"column:url;not null" json:"url"`
	Category  string    `gorm:"column:category;not null;index" json:"category"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Tip) TableName() string {
	return "tips"
}
