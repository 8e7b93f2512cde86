package handlers

import (
	"encoding/json"
	"net/http"

	"dwelloBack/internal/services"
)

type DeviceTokenHandler struct {
	Service *services.NotificationService
}

// Register stores the caller's FCM device token for push delivery.
func (h *DeviceTokenHandler) Register(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Token == "" {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.Service.RegisterToken(r.Context(), actor.UserID, body.Token); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
