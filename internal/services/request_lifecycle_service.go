package services

import (
	"context"
	"fmt"
	"time"

	"dwelloBack/internal/lifecycle"
	"dwelloBack/internal/models"
	"dwelloBack/internal/repositories"
)

// RequestLifecycleService drives a service request through its status
// machine. Quote attachment rides on quote creation (QuoteService); every
// other action goes through Transition.
type RequestLifecycleService struct {
	RequestRepo    *repositories.ServiceRequestRepository
	QuoteRepo      *repositories.QuoteRepository
	RecordRepo     *repositories.ServiceRecordRepository
	ConnectionRepo *repositories.ConnectionRepository
	HomeRepo       *repositories.HomeRepository
	Notifier       *NotificationService
}

func (s *RequestLifecycleService) CreateRequest(ctx context.Context, actor models.Actor, req models.ServiceRequest) (models.ServiceRequest, error) {
	if err := ensureHomeOwner(ctx, s.HomeRepo, actor, req.HomeID); err != nil {
		return models.ServiceRequest{}, err
	}
	conn, err := ensureActiveConnection(ctx, s.ConnectionRepo, req.ConnectionID, req.HomeID, 0)
	if err != nil {
		return models.ServiceRequest{}, err
	}
	req.ProID = conn.ProID

	created, err := s.RequestRepo.CreateRequest(ctx, req)
	if err != nil {
		return models.ServiceRequest{}, err
	}
	go s.Notifier.Notify(context.WithoutCancel(ctx), created.ProID,
		"New service request", created.Title, fmt.Sprintf("/request/%d", created.ID))
	return created, nil
}

func (s *RequestLifecycleService) GetRequest(ctx context.Context, actor models.Actor, id int) (models.ServiceRequest, error) {
	req, err := s.RequestRepo.GetRequestByID(ctx, id)
	if err != nil {
		return models.ServiceRequest{}, err
	}
	if err := s.ensureParty(ctx, actor, req); err != nil {
		return models.ServiceRequest{}, err
	}
	if req.QuoteID != nil {
		quote, err := s.QuoteRepo.GetQuoteByID(ctx, *req.QuoteID)
		if err == nil {
			req.Quote = &quote
		}
	}
	return req, nil
}

func (s *RequestLifecycleService) GetRequests(ctx context.Context, actor models.Actor, f models.ServiceRequestFilter) ([]models.ServiceRequest, error) {
	if f.HomeID != 0 {
		if err := ensureHomeOwner(ctx, s.HomeRepo, actor, f.HomeID); err != nil {
			return nil, err
		}
	} else if f.ProID != 0 {
		if actor.Role != "admin" && f.ProID != actor.UserID {
			return nil, models.ErrPermissionDenied
		}
	} else {
		return nil, models.ErrPermissionDenied
	}
	return s.RequestRepo.GetRequests(ctx, f)
}

// Transition applies a lifecycle action on behalf of the actor. The actor
// side is checked per action: homeowners accept, cancel and complete; the
// assigned pro starts and declines.
func (s *RequestLifecycleService) Transition(ctx context.Context, actor models.Actor, id int, action lifecycle.RequestAction) (models.ServiceRequest, error) {
	req, err := s.RequestRepo.GetRequestByID(ctx, id)
	if err != nil {
		return models.ServiceRequest{}, err
	}

	switch action {
	case lifecycle.ActionAccept, lifecycle.ActionCancel, lifecycle.ActionComplete:
		if err := ensureHomeOwner(ctx, s.HomeRepo, actor, req.HomeID); err != nil {
			return models.ServiceRequest{}, err
		}
	case lifecycle.ActionStart, lifecycle.ActionDecline:
		if actor.Role != "admin" && actor.UserID != req.ProID {
			return models.ServiceRequest{}, models.ErrPermissionDenied
		}
	default:
		return models.ServiceRequest{}, fmt.Errorf("%w: %s is not a transition action", models.ErrInvalidTransition, action)
	}

	st := lifecycle.RequestState{
		Status:   lifecycle.RequestStatus(req.Status),
		HasQuote: req.QuoteID != nil,
	}
	if action == lifecycle.ActionAccept && req.QuoteID != nil {
		quote, err := s.QuoteRepo.GetQuoteByID(ctx, *req.QuoteID)
		if err != nil {
			return models.ServiceRequest{}, err
		}
		st.QuoteExpired = quote.Expired(time.Now())
	}
	if action == lifecycle.ActionComplete && req.RecordID != nil {
		record, err := s.RecordRepo.GetRecordByID(ctx, *req.RecordID)
		if err != nil {
			return models.ServiceRequest{}, err
		}
		st.RecordVerified = record.IsVerified
	}

	to, err := lifecycle.ApplyRequest(st, action)
	if err != nil {
		return models.ServiceRequest{}, err
	}
	if err := s.RequestRepo.UpdateStatus(ctx, id, st.Status, to); err != nil {
		return models.ServiceRequest{}, err
	}

	if req.QuoteID != nil {
		switch action {
		case lifecycle.ActionAccept:
			s.setQuoteStatus(ctx, *req.QuoteID, models.QuoteAccepted)
		case lifecycle.ActionDecline, lifecycle.ActionCancel:
			s.setQuoteStatus(ctx, *req.QuoteID, models.QuoteDeclined)
		}
	}

	s.notifyTransition(ctx, req, action)

	req.Status = string(to)
	return req, nil
}

func (s *RequestLifecycleService) setQuoteStatus(ctx context.Context, quoteID int, status string) {
	tx, err := s.QuoteRepo.DB.BeginTx(ctx, nil)
	if err != nil {
		return
	}
	defer tx.Rollback()
	if err := s.QuoteRepo.SetStatusTx(ctx, tx, quoteID, status); err != nil {
		return
	}
	tx.Commit()
}

func (s *RequestLifecycleService) notifyTransition(ctx context.Context, req models.ServiceRequest, action lifecycle.RequestAction) {
	link := fmt.Sprintf("/request/%d", req.ID)
	ctx = context.WithoutCancel(ctx)
	switch action {
	case lifecycle.ActionAccept:
		go s.Notifier.Notify(ctx, req.ProID, "Quote accepted", req.Title, link)
	case lifecycle.ActionCancel:
		go s.Notifier.Notify(ctx, req.ProID, "Request cancelled", req.Title, link)
	case lifecycle.ActionComplete:
		go s.Notifier.Notify(ctx, req.ProID, "Request completed", req.Title, link)
	case lifecycle.ActionStart, lifecycle.ActionDecline:
		home, err := s.HomeRepo.GetHomeByID(ctx, req.HomeID)
		if err != nil {
			return
		}
		title := "Work started"
		if action == lifecycle.ActionDecline {
			title = "Request declined"
		}
		go s.Notifier.Notify(ctx, home.OwnerID, title, req.Title, link)
	}
}

func (s *RequestLifecycleService) ensureParty(ctx context.Context, actor models.Actor, req models.ServiceRequest) error {
	if actor.Role == "admin" || actor.UserID == req.ProID {
		return nil
	}
	return ensureHomeOwner(ctx, s.HomeRepo, actor, req.HomeID)
}
