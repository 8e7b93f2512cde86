package services

import (
	"context"
	"time"

	"dwelloBack/internal/models"
	"dwelloBack/internal/repositories"
)

type MessageService struct {
	MessageRepo *repositories.MessageRepository
	ChatRepo    *repositories.ChatRepository
	Notifier    *NotificationService
}

func (s *MessageService) SendMessage(ctx context.Context, actor models.Actor, m models.Message) (models.Message, error) {
	chat, err := s.ChatRepo.GetChatByID(ctx, m.ChatID)
	if err != nil {
		return models.Message{}, err
	}
	if chat.User1ID != actor.UserID && chat.User2ID != actor.UserID {
		return models.Message{}, models.ErrPermissionDenied
	}
	m.SenderID = actor.UserID
	m.ReceiverID = chat.User1ID
	if m.ReceiverID == actor.UserID {
		m.ReceiverID = chat.User2ID
	}

	created, err := s.MessageRepo.CreateMessage(ctx, m)
	if err != nil {
		return models.Message{}, err
	}
	go s.Notifier.Notify(context.WithoutCancel(ctx), created.ReceiverID,
		"New message", created.Text, "/chats")
	return created, nil
}

func (s *MessageService) GetMessages(ctx context.Context, actor models.Actor, chatID int) ([]models.Message, error) {
	chat, err := s.ChatRepo.GetChatByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if chat.User1ID != actor.UserID && chat.User2ID != actor.UserID {
		return nil, models.ErrPermissionDenied
	}
	if err := s.MessageRepo.MarkRead(ctx, chatID, actor.UserID, time.Now()); err != nil {
		return nil, err
	}
	return s.MessageRepo.GetMessagesByChat(ctx, chatID)
}

func (s *MessageService) DeleteMessage(ctx context.Context, actor models.Actor, id int) error {
	return s.MessageRepo.DeleteMessage(ctx, id, actor.UserID)
}
