package lifecycle

import (
	"context"
	"database/sql"
	"fmt"

	"dwelloBack/internal/models"
)

// RequestStatus enumerates the service request lifecycle states.
type RequestStatus string

const (
	RequestPending    RequestStatus = "pending"
	RequestQuoted     RequestStatus = "quoted"
	RequestAccepted   RequestStatus = "accepted"
	RequestInProgress RequestStatus = "in_progress"
	RequestCompleted  RequestStatus = "completed"
	RequestDeclined   RequestStatus = "declined"
	RequestCancelled  RequestStatus = "cancelled"
)

// RequestAction enumerates the operations that move a request between states.
type RequestAction string

const (
	ActionAttachQuote RequestAction = "attach_quote"
	ActionAccept      RequestAction = "accept"
	ActionStart       RequestAction = "start"
	ActionComplete    RequestAction = "complete"
	ActionCancel      RequestAction = "cancel"
	ActionDecline     RequestAction = "decline"
)

// requestTransitions is the authoritative (from-state, action) -> to-state table.
// Cancel is homeowner-initiated, decline is pro-initiated; both are allowed
// only before acceptance. Completed, declined and cancelled are terminal.
var requestTransitions = map[RequestStatus]map[RequestAction]RequestStatus{
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
	RequestAccepted: {
		ActionStart: RequestInProgress,
	},
	RequestInProgress: {
		ActionComplete: RequestCompleted,
	},
	RequestCompleted: {},
	RequestDeclined:  {},
	RequestCancelled: {},
}

// RequestState carries the slice of a service request the tracker needs to
// validate an action. HasQuote reflects quote_id being set; QuoteExpired is
// derived from the quote's expires_at at evaluation time; RecordVerified
// reflects the linked service record having passed homeowner approval.
type RequestState struct {
	Status         RequestStatus
	HasQuote       bool
	QuoteExpired   bool
	RecordVerified bool
}

// NextRequestStatus resolves an action against the transition table without
// evaluating guards.
func NextRequestStatus(from RequestStatus, action RequestAction) (RequestStatus, error) {
	allowed, ok := requestTransitions[from]
	if !ok {
		return "", fmt.Errorf("%w: unknown status %q", models.ErrInvalidTransition, from)
	}
	to, ok := allowed[action]
	if !ok {
		return "", fmt.Errorf("%w: %s from %s", models.ErrInvalidTransition, action, from)
	}
	return to, nil
}

// CanTransition reports whether the table permits the action from the state.
func CanTransition(from RequestStatus, action RequestAction) bool {
	_, err := NextRequestStatus(from, action)
	return err == nil
}

// ApplyRequest validates an action against the table and the per-action
// guards and returns the resulting status.
func ApplyRequest(st RequestState, action RequestAction) (RequestStatus, error) {
	to, err := NextRequestStatus(st.Status, action)
	if err != nil {
		return "", err
	}
	switch action {
	case ActionAccept:
		if !st.HasQuote {
			return "", models.ErrQuoteRequired
		}
		if st.QuoteExpired {
			return "", models.ErrQuoteExpired
		}
	case ActionComplete:
		if !st.RecordVerified {
			return "", models.ErrRecordNotVerified
		}
	}
	return to, nil
}

// ValidateQuoteTotal guards quote attachment: a quote that prices the work
// at zero or less cannot move a request to quoted.
func ValidateQuoteTotal(total float64) error {
	if total <= 0 {
		return models.ErrEmptyQuote
	}
	return nil
}

// ApplyRequestTx writes the new status using the current status as an
// optimistic precondition. Zero rows affected means another writer moved the
// row first and the caller's view is stale.
func ApplyRequestTx(ctx context.Context, tx *sql.Tx, requestID int, from, to RequestStatus) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE service_requests SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`,
		to, requestID, from,
	)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: request %d already left %s", models.ErrPreconditionFailed, requestID, from)
	}
	return nil
}
