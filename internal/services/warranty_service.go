package services

import (
	"context"
	"time"

	"dwelloBack/internal/models"
	"dwelloBack/internal/repositories"
)

type WarrantyService struct {
	WarrantyRepo *repositories.WarrantyRepository
	HomeRepo     *repositories.HomeRepository
}

func (s *WarrantyService) CreateWarranty(ctx context.Context, actor models.Actor, w models.Warranty) (models.Warranty, error) {
	if err := ensureHomeOwner(ctx, s.HomeRepo, actor, w.HomeID); err != nil {
		return models.Warranty{}, err
	}
	return s.WarrantyRepo.CreateWarranty(ctx, w)
}

func (s *WarrantyService) GetWarrantiesByHome(ctx context.Context, actor models.Actor, homeID int) ([]models.Warranty, error) {
	if err := ensureHomeOwner(ctx, s.HomeRepo, actor, homeID); err != nil {
		return nil, err
	}
	return s.WarrantyRepo.GetWarrantiesByHome(ctx, homeID)
}

// GetExpiringSoon filters a home's warranties to those inside the window.
func (s *WarrantyService) GetExpiringSoon(ctx context.Context, actor models.Actor, homeID int, window time.Duration) ([]models.Warranty, error) {
	all, err := s.GetWarrantiesByHome(ctx, actor, homeID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	var out []models.Warranty
	for _, w := range all {
		if w.ExpiringSoon(now, window) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *WarrantyService) UpdateWarranty(ctx context.Context, actor models.Actor, w models.Warranty) (models.Warranty, error) {
	if err := ensureHomeOwner(ctx, s.HomeRepo, actor, w.HomeID); err != nil {
		return models.Warranty{}, err
	}
	return s.WarrantyRepo.UpdateWarranty(ctx, w)
}

func (s *WarrantyService) DeleteWarranty(ctx context.Context, actor models.Actor, id, homeID int) error {
	if err := ensureHomeOwner(ctx, s.HomeRepo, actor, homeID); err != nil {
		return err
	}
	return s.WarrantyRepo.DeleteWarranty(ctx, id, homeID)
}
