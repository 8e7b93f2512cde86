package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"dwelloBack/internal/models"
)

// jsonError writes the {"error": ...} payload every failing endpoint
// returns.
func jsonError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

var notFoundErrors = []error{
	models.ErrUserNotFound, models.ErrHomeNotFound, models.ErrConnectionNotFound,
	models.ErrRequestNotFound, models.ErrQuoteNotFound, models.ErrSubmissionNotFound,
	models.ErrRecordNotFound, models.ErrWarrantyNotFound, models.ErrReminderNotFound,
	models.ErrInvitationNotFound, models.ErrChatNotFound, models.ErrMessageNotFound,
}

// errorStatus maps the error taxonomy onto HTTP codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, models.ErrInvalidTransition), errors.Is(err, models.ErrPreconditionFailed):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrDuplicateEmail), errors.Is(err, models.ErrDuplicatePhone):
		return http.StatusConflict
	}
	for _, nf := range notFoundErrors {
		if errors.Is(err, nf) {
			return http.StatusNotFound
		}
	}
	return http.StatusInternalServerError
}

func serviceError(w http.ResponseWriter, err error) {
	code := errorStatus(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal server error"
	}
	jsonError(w, msg, code)
}

// actorFromRequest rebuilds the authenticated actor the JWT middleware put
// into the request context. Services take it explicitly.
func actorFromRequest(r *http.Request) (models.Actor, bool) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		return models.Actor{}, false
	}
	role, _ := r.Context().Value("role").(string)
	return models.Actor{UserID: userID, Role: role}, true
}
