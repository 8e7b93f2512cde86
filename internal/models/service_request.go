package models

import "time"

type ServiceRequest struct {
	ID           int        `json:"id"`
	HomeID       int        `json:"home_id"`
	ConnectionID int        `json:"connection_id"`
	ProID        int        `json:"pro_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	Urgency      string     `json:"urgency"` // low, normal, high, emergency
	BudgetMin    *float64   `json:"budget_min,omitempty"`
	BudgetMax    *float64   `json:"budget_max,omitempty"`
	DesiredDate  *time.Time `json:"desired_date,omitempty"`
	Status       string     `json:"status"`
	QuoteID      *int       `json:"quote_id,omitempty"`
	RecordID     *int       `json:"record_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`

	Quote *Quote `json:"quote,omitempty"`
}

const (
	UrgencyLow       = "low"
	UrgencyNormal    = "normal"
	UrgencyHigh      = "high"
	UrgencyEmergency = "emergency"
)

// TransitionRequest is the body of POST /request/transition.
type TransitionRequest struct {
	ID     int    `json:"id"`
	Action string `json:"action"`
}

type ServiceRequestFilter struct {
	HomeID   int      `json:"home_id,omitempty"`
	ProID    int      `json:"pro_id,omitempty"`
	Statuses []string `json:"statuses,omitempty"`
	Page     int      `json:"page"`
	Limit    int      `json:"limit"`
}
