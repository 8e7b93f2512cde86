package services

import (
	"context"

	"dwelloBack/internal/models"
	"dwelloBack/internal/repositories"
)

type ConnectionService struct {
	ConnectionRepo *repositories.ConnectionRepository
	HomeRepo       *repositories.HomeRepository
	Cache          *repositories.SummaryCache
}

func (s *ConnectionService) GetConnectionsByHome(ctx context.Context, actor models.Actor, homeID int) ([]models.Connection, error) {
	if err := ensureHomeOwner(ctx, s.HomeRepo, actor, homeID); err != nil {
		return nil, err
	}
	return s.ConnectionRepo.GetConnectionsByHome(ctx, homeID)
}

func (s *ConnectionService) GetConnectionsByPro(ctx context.Context, actor models.Actor, proID int) ([]models.Connection, error) {
	if actor.Role != "admin" && actor.UserID != proID {
		return nil, models.ErrPermissionDenied
	}
	return s.ConnectionRepo.GetConnectionsByPro(ctx, proID)
}

func (s *ConnectionService) RevokeConnection(ctx context.Context, actor models.Actor, id int) error {
	conn, err := s.ConnectionRepo.GetConnectionByID(ctx, id)
	if err != nil {
		return err
	}
	if err := ensureHomeOwner(ctx, s.HomeRepo, actor, conn.HomeID); err != nil {
		return err
	}
	if err := s.ConnectionRepo.RevokeConnection(ctx, id); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, id)
	return nil
}

// GetSummary serves the aggregate card for a connection, cache first.
func (s *ConnectionService) GetSummary(ctx context.Context, id int) (models.ConnectionSummary, error) {
	if summary, ok := s.Cache.Get(ctx, id); ok {
		return summary, nil
	}
	conn, err := s.ConnectionRepo.GetConnectionByID(ctx, id)
	if err != nil {
		return models.ConnectionSummary{}, err
	}
	summary := models.ConnectionSummary{
		ConnectionID:      conn.ID,
		HomeID:            conn.HomeID,
		ProID:             conn.ProID,
		VerifiedWorkCount: conn.VerifiedWorkCount,
		TotalSpent:        conn.TotalSpent,
		LastServiceDate:   conn.LastServiceDate,
	}
	s.Cache.Set(ctx, summary)
	return summary, nil
}
