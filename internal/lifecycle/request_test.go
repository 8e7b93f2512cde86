package lifecycle

import (
	"errors"
	"math/rand"
	"testing"

	"dwelloBack/internal/models"
)

var allStatuses = []RequestStatus{
	RequestPending, RequestQuoted, RequestAccepted, RequestInProgress,
	RequestCompleted, RequestDeclined, RequestCancelled,
}

var allActions = []RequestAction{
	ActionAttachQuote, ActionAccept, ActionStart, ActionComplete,
	ActionCancel, ActionDecline,
}

func TestRequestTransitionTable(t *testing.T) {
	allowed := map[RequestStatus]map[RequestAction]RequestStatus{
		RequestPending: {
			ActionAttachQuote: RequestQuoted,
			ActionCancel:      RequestCancelled,
			ActionDecline:     RequestDeclined,
		},
		RequestQuoted: {
			ActionAccept:  RequestAccepted,
			ActionCancel:  RequestCancelled,
			ActionDecline: RequestDeclined,
		},
		RequestAccepted:   {ActionStart: RequestInProgress},
		RequestInProgress: {ActionComplete: RequestCompleted},
	}

	for _, from := range allStatuses {
		for _, action := range allActions {
			to, err := NextRequestStatus(from, action)
			want, ok := allowed[from][action]
			if ok {
				if err != nil {
					t.Errorf("%s + %s: unexpected error %v", from, action, err)
				} else if to != want {
					t.Errorf("%s + %s: got %s, want %s", from, action, to, want)
				}
				continue
			}
			if err == nil {
				t.Errorf("%s + %s: expected invalid transition, got %s", from, action, to)
			} else if !errors.Is(err, models.ErrInvalidTransition) {
				t.Errorf("%s + %s: expected ErrInvalidTransition, got %v", from, action, err)
			}
		}
	}
}

func TestAcceptRequiresQuote(t *testing.T) {
	_, err := ApplyRequest(RequestState{Status: RequestQuoted}, ActionAccept)
	if !errors.Is(err, models.ErrQuoteRequired) {
		t.Fatalf("expected ErrQuoteRequired, got %v", err)
	}
	if !errors.Is(err, models.ErrPreconditionFailed) {
		t.Fatalf("ErrQuoteRequired must wrap ErrPreconditionFailed")
	}

	to, err := ApplyRequest(RequestState{Status: RequestQuoted, HasQuote: true}, ActionAccept)
	if err != nil {
		t.Fatalf("accept with quote: %v", err)
	}
	if to != RequestAccepted {
		t.Fatalf("expected accepted, got %s", to)
	}
}

func TestAcceptRejectsExpiredQuote(t *testing.T) {
	st := RequestState{Status: RequestQuoted, HasQuote: true, QuoteExpired: true}
	_, err := ApplyRequest(st, ActionAccept)
	if !errors.Is(err, models.ErrQuoteExpired) {
		t.Fatalf("expected ErrQuoteExpired, got %v", err)
	}
	if !errors.Is(err, models.ErrPreconditionFailed) {
		t.Fatalf("ErrQuoteExpired must wrap ErrPreconditionFailed")
	}

	st.QuoteExpired = false
	if to, err := ApplyRequest(st, ActionAccept); err != nil || to != RequestAccepted {
		t.Fatalf("accept with live quote: got %s, %v", to, err)
	}
}

func TestCompleteRequiresVerifiedRecord(t *testing.T) {
	st := RequestState{Status: RequestInProgress, HasQuote: true}
	if _, err := ApplyRequest(st, ActionComplete); !errors.Is(err, models.ErrRecordNotVerified) {
		t.Fatalf("expected ErrRecordNotVerified, got %v", err)
	}
	st.RecordVerified = true
	to, err := ApplyRequest(st, ActionComplete)
	if err != nil {
		t.Fatalf("complete with verified record: %v", err)
	}
	if to != RequestCompleted {
		t.Fatalf("expected completed, got %s", to)
	}
}

// Scenario: created pending, pro attaches a $500 quote, homeowner accepts.
func TestQuoteThenAccept(t *testing.T) {
	if err := ValidateQuoteTotal(500); err != nil {
		t.Fatalf("ValidateQuoteTotal(500): %v", err)
	}
	st := RequestState{Status: RequestPending}

	to, err := ApplyRequest(st, ActionAttachQuote)
	if err != nil {
		t.Fatalf("attach quote: %v", err)
	}
	st.Status = to
	st.HasQuote = true
	if st.Status != RequestQuoted {
		t.Fatalf("expected quoted, got %s", st.Status)
	}

	to, err = ApplyRequest(st, ActionAccept)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if to != RequestAccepted {
		t.Fatalf("expected accepted, got %s", to)
	}
}

// Scenario: homeowner cancels a pending request; a later accept must fail.
func TestCancelIsTerminal(t *testing.T) {
	st := RequestState{Status: RequestPending}
	to, err := ApplyRequest(st, ActionCancel)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if to != RequestCancelled {
		t.Fatalf("expected cancelled, got %s", to)
	}
	st.Status = to
	st.HasQuote = true
	if _, err := ApplyRequest(st, ActionAccept); !errors.Is(err, models.ErrInvalidTransition) {
		t.Fatalf("accept after cancel: expected ErrInvalidTransition, got %v", err)
	}
}

func TestCancelAfterAcceptRejected(t *testing.T) {
	for _, from := range []RequestStatus{RequestAccepted, RequestInProgress, RequestCompleted} {
		if _, err := NextRequestStatus(from, ActionCancel); !errors.Is(err, models.ErrInvalidTransition) {
			t.Errorf("cancel from %s: expected ErrInvalidTransition, got %v", from, err)
		}
	}
}

func TestValidateQuoteTotal(t *testing.T) {
	for _, total := range []float64{0, -1, -0.01} {
		if err := ValidateQuoteTotal(total); !errors.Is(err, models.ErrEmptyQuote) {
			t.Errorf("total %v: expected ErrEmptyQuote, got %v", total, err)
		}
	}
}

// Random histories can only reach accepted through a prior quote attachment.
func TestAcceptedImpliesQuote(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 5000; i++ {
		st := RequestState{Status: RequestPending}
		quoted := false
		for step := 0; step < 10; step++ {
			action := allActions[rng.Intn(len(allActions))]
			to, err := ApplyRequest(st, action)
			if err != nil {
				continue
			}
			if action == ActionAttachQuote {
				quoted = true
				st.HasQuote = true
			}
			st.Status = to
			if st.Status == RequestAccepted && !quoted {
				t.Fatalf("history %d reached accepted without a quote", i)
			}
		}
	}
}
