package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"dwelloBack/internal/models"
	"dwelloBack/internal/repositories"
)

const invitationTTL = 14 * 24 * time.Hour

type InvitationService struct {
	InvitationRepo *repositories.InvitationRepository
	HomeRepo       *repositories.HomeRepository
	Notifier       *NotificationService
}

func (s *InvitationService) CreateInvitation(ctx context.Context, actor models.Actor, inv models.Invitation) (models.Invitation, error) {
	if err := ensureHomeOwner(ctx, s.HomeRepo, actor, inv.HomeID); err != nil {
		return models.Invitation{}, err
	}
	inv.InviterID = actor.UserID
	inv.Token = uuid.NewString()
	inv.ExpiresAt = time.Now().Add(invitationTTL)
	return s.InvitationRepo.CreateInvitation(ctx, inv)
}

func (s *InvitationService) GetInvitationsByHome(ctx context.Context, actor models.Actor, homeID int) ([]models.Invitation, error) {
	if err := ensureHomeOwner(ctx, s.HomeRepo, actor, homeID); err != nil {
		return nil, err
	}
	invs, err := s.InvitationRepo.GetInvitationsByHome(ctx, homeID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for i := range invs {
		if invs[i].Status == models.InvitationPending && now.After(invs[i].ExpiresAt) {
			invs[i].Status = models.InvitationExpired
		}
	}
	return invs, nil
}

// AcceptInvitation consumes the token and creates the connection. Expiry is
// evaluated on read; nothing advances invitation rows in the background.
func (s *InvitationService) AcceptInvitation(ctx context.Context, actor models.Actor, token string) (models.Connection, error) {
	if actor.Role != "pro" {
		return models.Connection{}, models.ErrPermissionDenied
	}
	inv, err := s.InvitationRepo.GetInvitationByToken(ctx, token)
	if err != nil {
		return models.Connection{}, err
	}
	if inv.Status != models.InvitationPending {
		return models.Connection{}, models.ErrPreconditionFailed
	}
	now := time.Now()
	if now.After(inv.ExpiresAt) {
		return models.Connection{}, models.ErrInvitationExpired
	}

	conn, err := s.InvitationRepo.AcceptInvitation(ctx, inv, actor.UserID, now)
	if err != nil {
		return models.Connection{}, err
	}
	go s.Notifier.Notify(context.WithoutCancel(ctx), inv.InviterID,
		"Invitation accepted", "A pro joined your home", "/connections")
	return conn, nil
}

func (s *InvitationService) DeclineInvitation(ctx context.Context, actor models.Actor, token string) error {
	inv, err := s.InvitationRepo.GetInvitationByToken(ctx, token)
	if err != nil {
		return err
	}
	if err := s.InvitationRepo.DeclineInvitation(ctx, inv.ID, time.Now()); err != nil {
		return err
	}
	go s.Notifier.Notify(context.WithoutCancel(ctx), inv.InviterID,
		"Invitation declined", inv.InviteeEmail, "/connections")
	return nil
}
