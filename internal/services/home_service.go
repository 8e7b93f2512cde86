package services

import (
	"context"

	"dwelloBack/internal/models"
	"dwelloBack/internal/repositories"
)

type HomeService struct {
	HomeRepo *repositories.HomeRepository
}

func (s *HomeService) CreateHome(ctx context.Context, actor models.Actor, h models.Home) (models.Home, error) {
	h.OwnerID = actor.UserID
	return s.HomeRepo.CreateHome(ctx, h)
}

func (s *HomeService) GetHome(ctx context.Context, actor models.Actor, id int) (models.Home, error) {
	home, err := s.HomeRepo.GetHomeByID(ctx, id)
	if err != nil {
		return models.Home{}, err
	}
	if actor.Role != "admin" && home.OwnerID != actor.UserID {
		return models.Home{}, models.ErrPermissionDenied
	}
	return home, nil
}

func (s *HomeService) GetMyHomes(ctx context.Context, actor models.Actor) ([]models.Home, error) {
	return s.HomeRepo.GetHomesByOwner(ctx, actor.UserID)
}

func (s *HomeService) UpdateHome(ctx context.Context, actor models.Actor, h models.Home) (models.Home, error) {
	h.OwnerID = actor.UserID
	return s.HomeRepo.UpdateHome(ctx, h)
}

func (s *HomeService) DeleteHome(ctx context.Context, actor models.Actor, id int) error {
	return s.HomeRepo.DeleteHome(ctx, id, actor.UserID)
}
