package models

import (
	"errors"
	"fmt"
)

// Error taxonomy. Handlers map these onto HTTP codes; everything else is a
// server error.
var (
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrPreconditionFailed = errors.New("precondition failed")

	ErrQuoteRequired     = fmt.Errorf("%w: cannot accept without quote", ErrPreconditionFailed)
	ErrQuoteExpired      = fmt.Errorf("%w: quote has expired", ErrPreconditionFailed)
	ErrEmptyQuote        = fmt.Errorf("%w: quote total must be positive", ErrPreconditionFailed)
	ErrAlreadyDecided    = fmt.Errorf("%w: submission already decided", ErrPreconditionFailed)
	ErrRecordNotVerified = fmt.Errorf("%w: linked record is not verified", ErrPreconditionFailed)
	ErrConnectionRevoked = fmt.Errorf("%w: connection is revoked", ErrPreconditionFailed)
	ErrInvitationExpired = fmt.Errorf("%w: invitation expired", ErrPreconditionFailed)
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrHomeNotFound       = errors.New("home not found")
	ErrConnectionNotFound = errors.New("connection not found")
	ErrRequestNotFound    = errors.New("service request not found")
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrRecordNotFound     = errors.New("service record not found")
	ErrWarrantyNotFound   = errors.New("warranty not found")
	ErrReminderNotFound   = errors.New("reminder not found")
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrChatNotFound       = errors.New("chat not found")
	ErrMessageNotFound    = errors.New("message not found")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("duplicate email")
	ErrDuplicatePhone     = errors.New("duplicate phone number")
)
