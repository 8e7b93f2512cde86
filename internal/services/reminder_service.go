package services

import (
	"context"

	"dwelloBack/internal/models"
	"dwelloBack/internal/repositories"
)

type ReminderService struct {
	ReminderRepo *repositories.ReminderRepository
	HomeRepo     *repositories.HomeRepository
}

func (s *ReminderService) CreateReminder(ctx context.Context, actor models.Actor, rem models.Reminder) (models.Reminder, error) {
	if err := ensureHomeOwner(ctx, s.HomeRepo, actor, rem.HomeID); err != nil {
		return models.Reminder{}, err
	}
	rem.UserID = actor.UserID
	switch rem.Frequency {
	case models.FrequencyOnce, models.FrequencyMonthly, models.FrequencyQuarterly, models.FrequencyYearly:
	case "":
		rem.Frequency = models.FrequencyOnce
	default:
		return models.Reminder{}, models.ErrPreconditionFailed
	}
	return s.ReminderRepo.CreateReminder(ctx, rem)
}

func (s *ReminderService) GetRemindersByHome(ctx context.Context, actor models.Actor, homeID int) ([]models.Reminder, error) {
	if err := ensureHomeOwner(ctx, s.HomeRepo, actor, homeID); err != nil {
		return nil, err
	}
	return s.ReminderRepo.GetRemindersByHome(ctx, homeID)
}

func (s *ReminderService) SetStatus(ctx context.Context, actor models.Actor, id int, status string) error {
	switch status {
	case models.ReminderDone, models.ReminderDismissed, models.ReminderActive:
	default:
		return models.ErrPreconditionFailed
	}
	return s.ReminderRepo.SetStatus(ctx, id, actor.UserID, status)
}

func (s *ReminderService) DeleteReminder(ctx context.Context, actor models.Actor, id int) error {
	return s.ReminderRepo.DeleteReminder(ctx, id, actor.UserID)
}
