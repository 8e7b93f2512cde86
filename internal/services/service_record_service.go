package services

import (
	"context"

	"dwelloBack/internal/models"
	"dwelloBack/internal/repositories"
)

type ServiceRecordService struct {
	RecordRepo     *repositories.ServiceRecordRepository
	ConnectionRepo *repositories.ConnectionRepository
	HomeRepo       *repositories.HomeRepository
}

// CreateDocumented stores work a pro documents outside the request flow; it
// stays unverified until the homeowner reviews it.
func (s *ServiceRecordService) CreateDocumented(ctx context.Context, actor models.Actor, rec models.ServiceRecord) (models.ServiceRecord, error) {
	conn, err := ensureActiveConnection(ctx, s.ConnectionRepo, rec.ConnectionID, 0, actor.UserID)
	if err != nil {
		return models.ServiceRecord{}, err
	}
	rec.HomeID = conn.HomeID
	rec.ProID = actor.UserID
	return s.RecordRepo.CreateDocumented(ctx, rec)
}

func (s *ServiceRecordService) GetRecord(ctx context.Context, actor models.Actor, id int) (models.ServiceRecord, error) {
	rec, err := s.RecordRepo.GetRecordByID(ctx, id)
	if err != nil {
		return models.ServiceRecord{}, err
	}
	if actor.UserID != rec.ProID {
		if err := ensureHomeOwner(ctx, s.HomeRepo, actor, rec.HomeID); err != nil {
			return models.ServiceRecord{}, err
		}
	}
	return rec, nil
}

// GetHomeHistory lists a home's records; verifiedOnly restricts to the
// approved history that feeds connection aggregates.
func (s *ServiceRecordService) GetHomeHistory(ctx context.Context, actor models.Actor, homeID int, verifiedOnly bool) ([]models.ServiceRecord, error) {
	if err := ensureHomeOwner(ctx, s.HomeRepo, actor, homeID); err != nil {
		return nil, err
	}
	return s.RecordRepo.GetRecordsByHome(ctx, homeID, verifiedOnly)
}
