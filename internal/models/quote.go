package models

import "time"

type Quote struct {
	ID          int         `json:"id"`
	RequestID   int         `json:"request_id"`
	ProID       int         `json:"pro_id"`
	TotalAmount float64     `json:"total_amount"`
	Status      string      `json:"status"` // offered, accepted, declined, expired
	Notes       string      `json:"notes,omitempty"`
	ExpiresAt   *time.Time  `json:"expires_at,omitempty"`
	Items       []QuoteItem `json:"items"`
	CreatedAt   time.Time   `json:"created_at"`
}

const (
	QuoteOffered  = "offered"
	QuoteAccepted = "accepted"
	QuoteDeclined = "declined"
	QuoteExpired  = "expired"
)

type QuoteItem struct {
	ID          int     `json:"id"`
	QuoteID     int     `json:"quote_id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// Expired reports whether the quote has passed its expiry; evaluated on
// read, nothing rewrites the stored status.
func (q Quote) Expired(now time.Time) bool {
	return q.Status == QuoteOffered && q.ExpiresAt != nil && now.After(*q.ExpiresAt)
}

// ItemsTotal prices the quote from its line items.
func (q Quote) ItemsTotal() float64 {
	var total float64
	for _, it := range q.Items {
		total += it.Quantity * it.UnitPrice
	}
	return total
}
