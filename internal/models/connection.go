package models

import "time"

// Connection is the trust relationship between a home and a pro. Requests
// and records can only be created inside an active connection. The counters
// are derived from verified records and rewritten on every approval.
type Connection struct {
	ID                int        `json:"id"`
	HomeID            int        `json:"home_id"`
	ProID             int        `json:"pro_id"`
	Status            string     `json:"status"` // active, revoked
	VerifiedWorkCount int        `json:"verified_work_count"`
	TotalSpent        float64    `json:"total_spent"`
	LastServiceDate   *time.Time `json:"last_service_date,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`

	Pro struct {
		ID           int     `json:"id"`
		Name         string  `json:"name"`
		Surname      string  `json:"surname"`
		CompanyName  *string `json:"company_name,omitempty"`
		Trade        *string `json:"trade,omitempty"`
		ReviewRating float64 `json:"review_rating"`
		AvatarPath   *string `json:"avatar_path,omitempty"`
	} `json:"pro"`
}

const (
	ConnectionActive  = "active"
	ConnectionRevoked = "revoked"
)

// ConnectionSummary is the cached card shown on a pro profile.
type ConnectionSummary struct {
	ConnectionID      int        `json:"connection_id"`
	HomeID            int        `json:"home_id"`
	ProID             int        `json:"pro_id"`
	VerifiedWorkCount int        `json:"verified_work_count"`
	TotalSpent        float64    `json:"total_spent"`
	LastServiceDate   *time.Time `json:"last_service_date,omitempty"`
}
