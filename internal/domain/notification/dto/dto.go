package dto

// TipCreatedEvent is the dispatch trigger: one per newly created tip
type TipCreatedEvent struct {
	TipID     uint   `json:"tip_id"`
	Text      string `json:"tip"`
	URL       string `json:"url"`
	Category  string `json:"category"`
	CreatedAt int64  `json:"created_at"`
}

// DeliveryResult records the outcome of one subscriber's delivery within a
// single dispatch invocation
type DeliveryResult struct {
	UserID string
	Err    error
}
