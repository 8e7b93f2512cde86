package models

import "time"

type Home struct {
	ID        int        `json:"id"`
	OwnerID   int        `json:"owner_id"`
	Title     string     `json:"title"`
	Address   string     `json:"address"`
	City      string     `json:"city"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
