package services

import (
	"context"
	"fmt"
	"time"

	"dwelloBack/internal/lifecycle"
	"dwelloBack/internal/models"
	"dwelloBack/internal/repositories"
)

type QuoteService struct {
	QuoteRepo   *repositories.QuoteRepository
	RequestRepo *repositories.ServiceRequestRepository
	HomeRepo    *repositories.HomeRepository
	Notifier    *NotificationService
}

// CreateQuote attaches a priced quote to a pending request, which fires the
// pending -> quoted transition inside the same transaction.
func (s *QuoteService) CreateQuote(ctx context.Context, actor models.Actor, q models.Quote) (models.Quote, error) {
	req, err := s.RequestRepo.GetRequestByID(ctx, q.RequestID)
	if err != nil {
		return models.Quote{}, err
	}
	if actor.Role != "admin" && actor.UserID != req.ProID {
		return models.Quote{}, models.ErrPermissionDenied
	}

	// Line items price the quote when present.
	if len(q.Items) > 0 {
		q.TotalAmount = q.ItemsTotal()
	}
	if err := lifecycle.ValidateQuoteTotal(q.TotalAmount); err != nil {
		return models.Quote{}, err
	}
	q.ProID = actor.UserID

	created, err := s.QuoteRepo.CreateQuote(ctx, q)
	if err != nil {
		return models.Quote{}, err
	}

	home, err := s.HomeRepo.GetHomeByID(ctx, req.HomeID)
	if err == nil {
		go s.Notifier.Notify(context.WithoutCancel(ctx), home.OwnerID,
			"Quote received", req.Title, fmt.Sprintf("/request/%d", req.ID))
	}
	return created, nil
}

func (s *QuoteService) GetQuoteByID(ctx context.Context, actor models.Actor, id int) (models.Quote, error) {
	q, err := s.QuoteRepo.GetQuoteByID(ctx, id)
	if err != nil {
		return models.Quote{}, err
	}
	if actor.UserID != q.ProID {
		req, err := s.RequestRepo.GetRequestByID(ctx, q.RequestID)
		if err != nil {
			return models.Quote{}, err
		}
		if err := ensureHomeOwner(ctx, s.HomeRepo, actor, req.HomeID); err != nil {
			return models.Quote{}, err
		}
	}
	if q.Expired(time.Now()) {
		q.Status = models.QuoteExpired
	}
	return q, nil
}
