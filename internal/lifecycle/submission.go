package lifecycle

import (
	"fmt"
	"time"

	"dwelloBack/internal/models"
)

// SubmissionStatus enumerates the states of a contractor's claim of
// completed work awaiting the homeowner's decision.
type SubmissionStatus string

const (
	SubmissionPendingReview SubmissionStatus = "pending_review"
	SubmissionApproved      SubmissionStatus = "approved"
	SubmissionRejected      SubmissionStatus = "rejected"
	SubmissionDisputed      SubmissionStatus = "disputed"
	SubmissionExpired       SubmissionStatus = "expired"
)

// DecisionAction enumerates the homeowner's possible decisions.
type DecisionAction string

const (
	DecisionApprove DecisionAction = "approve"
	DecisionReject  DecisionAction = "reject"
	DecisionDispute DecisionAction = "dispute"
)

var decisionOutcomes = map[DecisionAction]SubmissionStatus{
	DecisionApprove: SubmissionApproved,
	DecisionReject:  SubmissionRejected,
	DecisionDispute: SubmissionDisputed,
}

// Decide resolves a homeowner decision. Only a submission still pending
// review can be decided; re-deciding an already-resolved submission is a
// precondition failure, which keeps approval idempotent at the caller.
func Decide(current SubmissionStatus, action DecisionAction) (SubmissionStatus, error) {
	to, ok := decisionOutcomes[action]
	if !ok {
		return "", fmt.Errorf("%w: unknown decision %q", models.ErrInvalidTransition, action)
	}
	if current != SubmissionPendingReview {
		return "", fmt.Errorf("%w (status %s)", models.ErrAlreadyDecided, current)
	}
	return to, nil
}

// EffectiveSubmissionStatus derives expiry on read: a submission left
// undecided beyond the review window reads as expired. No background
// process advances rows; the stored status stays pending_review.
func EffectiveSubmissionStatus(stored SubmissionStatus, createdAt, now time.Time, window time.Duration) SubmissionStatus {
	if stored != SubmissionPendingReview || window <= 0 {
		return stored
	}
	if now.Sub(createdAt) > window {
		return SubmissionExpired
	}
	return stored
}

// RecordStatus enumerates service record states. Records created directly by
// a pro without a request are documented_unverified until approved.
type RecordStatus string

const (
	RecordDocumented           RecordStatus = "documented"
	RecordDocumentedUnverified RecordStatus = "documented_unverified"
	RecordPendingReview        RecordStatus = "pending_review"
	RecordApproved             RecordStatus = "approved"
	RecordRejected             RecordStatus = "rejected"
	RecordDisputed             RecordStatus = "disputed"
	RecordExpired              RecordStatus = "expired"
)

// RecordPending reports whether a record still awaits the homeowner.
func RecordPending(s RecordStatus) bool {
	switch s {
	case RecordDocumented, RecordDocumentedUnverified, RecordPendingReview:
		return true
	}
	return false
}
