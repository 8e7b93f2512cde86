package models

import "time"

// ServiceRecord documents completed work. A record is verified only after
// explicit homeowner approval; verified records feed connection aggregates.
type ServiceRecord struct {
	ID           int          `json:"id"`
	ConnectionID int          `json:"connection_id"`
	HomeID       int          `json:"home_id"`
	ProID        int          `json:"pro_id"`
	RequestID    *int         `json:"request_id,omitempty"`
	ServiceType  string       `json:"service_type"`
	Description  string       `json:"description"`
	ServiceDate  time.Time    `json:"service_date"`
	Cost         float64      `json:"cost"`
	IsVerified   bool         `json:"is_verified"`
	Status       string       `json:"status"`
	Attachments  []Attachment `json:"attachments"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    *time.Time   `json:"updated_at,omitempty"`
}
