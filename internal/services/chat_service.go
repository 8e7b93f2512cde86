package services

import (
	"context"

	"dwelloBack/internal/models"
	"dwelloBack/internal/repositories"
)

type ChatService struct {
	ChatRepo *repositories.ChatRepository
}

func (s *ChatService) GetOrCreateChat(ctx context.Context, actor models.Actor, peerID int) (models.Chat, error) {
	if peerID == actor.UserID {
		return models.Chat{}, models.ErrPreconditionFailed
	}
	return s.ChatRepo.GetOrCreateChat(ctx, actor.UserID, peerID)
}

func (s *ChatService) GetChat(ctx context.Context, actor models.Actor, id int) (models.Chat, error) {
	chat, err := s.ChatRepo.GetChatByID(ctx, id)
	if err != nil {
		return models.Chat{}, err
	}
	if chat.User1ID != actor.UserID && chat.User2ID != actor.UserID {
		return models.Chat{}, models.ErrPermissionDenied
	}
	return chat, nil
}

func (s *ChatService) GetMyChats(ctx context.Context, actor models.Actor) ([]models.Chat, error) {
	return s.ChatRepo.GetChatsByUser(ctx, actor.UserID)
}

func (s *ChatService) DeleteChat(ctx context.Context, actor models.Actor, id int) error {
	if _, err := s.GetChat(ctx, actor, id); err != nil {
		return err
	}
	return s.ChatRepo.DeleteChat(ctx, id)
}
