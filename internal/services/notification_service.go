package services

import (
	"context"
	"log"

	"firebase.google.com/go/messaging"

	"dwelloBack/internal/repositories"
)

// NotificationService delivers push notifications over FCM. Delivery is best
// effort: a failed or impossible send is logged and never surfaces to the
// caller, so state transitions are never rolled back over notification
// trouble.
type NotificationService struct {
	Client    *messaging.Client
	TokenRepo *repositories.DeviceTokenRepository
	ErrorLog  *log.Logger
}

func (s *NotificationService) Notify(ctx context.Context, userID int, title, body, link string) {
	if s == nil || s.Client == nil {
		return
	}
	token, err := s.TokenRepo.GetToken(ctx, userID)
	if err != nil {
		s.ErrorLog.Printf("notify user=%d: load token: %v", userID, err)
		return
	}
	if token == "" {
		return
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: map[string]string{
			"link": link,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}
	if _, err := s.Client.Send(ctx, msg); err != nil {
		s.ErrorLog.Printf("notify user=%d: send: %v", userID, err)
	}
}

func (s *NotificationService) RegisterToken(ctx context.Context, userID int, token string) error {
	return s.TokenRepo.SaveToken(ctx, userID, token)
}
