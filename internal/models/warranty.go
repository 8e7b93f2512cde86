package models

import "time"

type Warranty struct {
	ID        int        `json:"id"`
	HomeID    int        `json:"home_id"`
	RecordID  *int       `json:"record_id,omitempty"`
	Item      string     `json:"item"`
	Provider  string     `json:"provider"`
	StartsAt  time.Time  `json:"starts_at"`
	ExpiresAt time.Time  `json:"expires_at"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ExpiringSoon reports whether the warranty expires within the window.
func (w Warranty) ExpiringSoon(now time.Time, window time.Duration) bool {
	return now.Before(w.ExpiresAt) && w.ExpiresAt.Sub(now) <= window
}
