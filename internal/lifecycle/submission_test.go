package lifecycle

import (
	"errors"
	"testing"
	"time"

	"dwelloBack/internal/models"
)

func TestDecide(t *testing.T) {
	cases := []struct {
		action DecisionAction
		want   SubmissionStatus
	}{
		{DecisionApprove, SubmissionApproved},
		{DecisionReject, SubmissionRejected},
		{DecisionDispute, SubmissionDisputed},
	}
	for _, c := range cases {
		got, err := Decide(SubmissionPendingReview, c.action)
		if err != nil {
			t.Fatalf("%s: %v", c.action, err)
		}
		if got != c.want {
			t.Fatalf("%s: got %s, want %s", c.action, got, c.want)
		}
	}
}

func TestDecideOnlyFromPending(t *testing.T) {
	for _, status := range []SubmissionStatus{SubmissionApproved, SubmissionRejected, SubmissionDisputed, SubmissionExpired} {
		for _, action := range []DecisionAction{DecisionApprove, DecisionReject, DecisionDispute} {
			_, err := Decide(status, action)
			if !errors.Is(err, models.ErrAlreadyDecided) {
				t.Errorf("%s + %s: expected ErrAlreadyDecided, got %v", status, action, err)
			}
			if !errors.Is(err, models.ErrPreconditionFailed) {
				t.Errorf("%s + %s: must wrap ErrPreconditionFailed", status, action)
			}
		}
	}
}

func TestDecideUnknownAction(t *testing.T) {
	if _, err := Decide(SubmissionPendingReview, DecisionAction("escalate")); !errors.Is(err, models.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestEffectiveSubmissionStatus(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	window := 30 * 24 * time.Hour

	if got := EffectiveSubmissionStatus(SubmissionPendingReview, created, created.Add(10*24*time.Hour), window); got != SubmissionPendingReview {
		t.Fatalf("inside window: got %s", got)
	}
	if got := EffectiveSubmissionStatus(SubmissionPendingReview, created, created.Add(31*24*time.Hour), window); got != SubmissionExpired {
		t.Fatalf("past window: got %s", got)
	}
	// Decided submissions never expire on read.
	if got := EffectiveSubmissionStatus(SubmissionApproved, created, created.Add(365*24*time.Hour), window); got != SubmissionApproved {
		t.Fatalf("approved: got %s", got)
	}
	// A zero window disables derived expiry.
	if got := EffectiveSubmissionStatus(SubmissionPendingReview, created, created.Add(365*24*time.Hour), 0); got != SubmissionPendingReview {
		t.Fatalf("zero window: got %s", got)
	}
}

func TestRecordPending(t *testing.T) {
	pending := []RecordStatus{RecordDocumented, RecordDocumentedUnverified, RecordPendingReview}
	for _, s := range pending {
		if !RecordPending(s) {
			t.Errorf("%s should be pending", s)
		}
	}
	for _, s := range []RecordStatus{RecordApproved, RecordRejected, RecordDisputed, RecordExpired} {
		if RecordPending(s) {
			t.Errorf("%s should not be pending", s)
		}
	}
}
