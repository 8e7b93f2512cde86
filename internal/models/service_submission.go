package models

import "time"

// ServiceSubmission is a pro's claim of completed work pending homeowner
// review. Approval promotes it into a verified ServiceRecord; rejection and
// dispute are terminal and leave no record.
type ServiceSubmission struct {
	ID           int          `json:"id"`
	ConnectionID int          `json:"connection_id"`
	HomeID       int          `json:"home_id"`
	ProID        int          `json:"pro_id"`
	RequestID    *int         `json:"request_id,omitempty"`
	ServiceType  string       `json:"service_type"`
	Description  string       `json:"description"`
	ServiceDate  time.Time    `json:"service_date"`
	Cost         float64      `json:"cost"`
	Status       string       `json:"status"`
	RecordID     *int         `json:"record_id,omitempty"`
	DecidedAt    *time.Time   `json:"decided_at,omitempty"`
	Attachments  []Attachment `json:"attachments"`
	CreatedAt    time.Time    `json:"created_at"`
}

// DecisionRequest is the body of POST /submission/decision.
type DecisionRequest struct {
	ID     int    `json:"id"`
	Action string `json:"action"` // approve, reject, dispute
}
