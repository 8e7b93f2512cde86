package models

import "time"

// Invitation lets a homeowner invite a pro to connect with a home. Accepting
// a pending invitation creates the connection.
type Invitation struct {
	ID           int        `json:"id"`
	InviterID    int        `json:"inviter_id"`
	HomeID       int        `json:"home_id"`
	InviteeEmail string     `json:"invitee_email"`
	Token        string     `json:"token"`
	Status       string     `json:"status"` // pending, accepted, declined, expired
	ExpiresAt    time.Time  `json:"expires_at"`
	AcceptedBy   *int       `json:"accepted_by,omitempty"`
	ConnectionID *int       `json:"connection_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	DecidedAt    *time.Time `json:"decided_at,omitempty"`
}

const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationDeclined = "declined"
	InvitationExpired  = "expired"
)
