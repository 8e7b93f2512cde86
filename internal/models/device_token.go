package models

import "time"

// DeviceToken maps a user to an FCM registration token for push delivery.
type DeviceToken struct {
	UserID    int       `json:"user_id"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}
