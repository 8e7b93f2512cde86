package models

import "time"

type Chat struct {
	ID        int       `json:"id"`
	User1ID   int       `json:"user1_id"`
	User2ID   int       `json:"user2_id"`
	CreatedAt time.Time `json:"created_at"`

	LastMessage *Message `json:"last_message,omitempty"`
	Unread      int      `json:"unread,omitempty"`
}
