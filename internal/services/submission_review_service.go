package services

import (
	"context"
	"fmt"
	"time"

	"dwelloBack/internal/lifecycle"
	"dwelloBack/internal/models"
	"dwelloBack/internal/repositories"
)

// SubmissionReviewService handles the homeowner's review of submitted work:
// approval promotes the submission into a verified record and rewrites the
// connection aggregates; reject and dispute are terminal with no aggregate
// effect. The pro is notified after the decision commits, best effort.
type SubmissionReviewService struct {
	SubmissionRepo *repositories.ServiceSubmissionRepository
	ConnectionRepo *repositories.ConnectionRepository
	HomeRepo       *repositories.HomeRepository
	Cache          *repositories.SummaryCache
	Notifier       *NotificationService

	// ReviewWindow bounds how long a submission stays decidable; past it
	// the submission reads as expired. Zero disables expiry.
	ReviewWindow time.Duration
}

func (s *SubmissionReviewService) CreateSubmission(ctx context.Context, actor models.Actor, sub models.ServiceSubmission) (models.ServiceSubmission, error) {
	conn, err := ensureActiveConnection(ctx, s.ConnectionRepo, sub.ConnectionID, 0, actor.UserID)
	if err != nil {
		return models.ServiceSubmission{}, err
	}
	sub.HomeID = conn.HomeID
	sub.ProID = actor.UserID

	created, err := s.SubmissionRepo.CreateSubmission(ctx, sub)
	if err != nil {
		return models.ServiceSubmission{}, err
	}

	home, err := s.HomeRepo.GetHomeByID(ctx, created.HomeID)
	if err == nil {
		go s.Notifier.Notify(context.WithoutCancel(ctx), home.OwnerID,
			"Work submitted for review", created.ServiceType, fmt.Sprintf("/submission/%d", created.ID))
	}
	return created, nil
}

func (s *SubmissionReviewService) GetSubmission(ctx context.Context, actor models.Actor, id int) (models.ServiceSubmission, error) {
	sub, err := s.SubmissionRepo.GetSubmissionByID(ctx, id)
	if err != nil {
		return models.ServiceSubmission{}, err
	}
	if actor.UserID != sub.ProID {
		if err := ensureHomeOwner(ctx, s.HomeRepo, actor, sub.HomeID); err != nil {
			return models.ServiceSubmission{}, err
		}
	}
	sub.Status = string(lifecycle.EffectiveSubmissionStatus(
		lifecycle.SubmissionStatus(sub.Status), sub.CreatedAt, time.Now(), s.ReviewWindow))
	return sub, nil
}

func (s *SubmissionReviewService) GetPendingByHome(ctx context.Context, actor models.Actor, homeID int) ([]models.ServiceSubmission, error) {
	if err := ensureHomeOwner(ctx, s.HomeRepo, actor, homeID); err != nil {
		return nil, err
	}
	subs, err := s.SubmissionRepo.GetPendingByHome(ctx, homeID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for i := range subs {
		subs[i].Status = string(lifecycle.EffectiveSubmissionStatus(
			lifecycle.SubmissionStatus(subs[i].Status), subs[i].CreatedAt, now, s.ReviewWindow))
	}
	return subs, nil
}

// Decide applies the homeowner's approve/reject/dispute decision. The
// guarded status update inside the repository serializes racing decisions:
// exactly one wins, the rest get a precondition failure.
func (s *SubmissionReviewService) Decide(ctx context.Context, actor models.Actor, id int, action lifecycle.DecisionAction) (models.ServiceSubmission, error) {
	sub, err := s.SubmissionRepo.GetSubmissionByID(ctx, id)
	if err != nil {
		return models.ServiceSubmission{}, err
	}
	if err := ensureHomeOwner(ctx, s.HomeRepo, actor, sub.HomeID); err != nil {
		return models.ServiceSubmission{}, err
	}

	now := time.Now()
	effective := lifecycle.EffectiveSubmissionStatus(
		lifecycle.SubmissionStatus(sub.Status), sub.CreatedAt, now, s.ReviewWindow)
	to, err := lifecycle.Decide(effective, action)
	if err != nil {
		return models.ServiceSubmission{}, err
	}

	link := fmt.Sprintf("/submission/%d", sub.ID)
	switch to {
	case lifecycle.SubmissionApproved:
		recordID, _, err := s.SubmissionRepo.ApproveSubmission(ctx, sub, now)
		if err != nil {
			return models.ServiceSubmission{}, err
		}
		s.Cache.Invalidate(ctx, sub.ConnectionID)
		sub.RecordID = &recordID
		go s.Notifier.Notify(context.WithoutCancel(ctx), sub.ProID,
			"Work approved", sub.ServiceType, link)
	default:
		if err := s.SubmissionRepo.ResolveSubmission(ctx, sub.ID, to, now); err != nil {
			return models.ServiceSubmission{}, err
		}
		title := "Work rejected"
		if to == lifecycle.SubmissionDisputed {
			title = "Work disputed"
		}
		go s.Notifier.Notify(context.WithoutCancel(ctx), sub.ProID, title, sub.ServiceType, link)
	}

	sub.Status = string(to)
	sub.DecidedAt = &now
	return sub, nil
}
