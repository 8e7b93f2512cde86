package handlers

import (
	"encoding/json"
	"net/http"

	"dwelloBack/internal/models"
	"dwelloBack/internal/services"
)

type InvitationHandler struct {
	Service *services.InvitationService
}

func (h *InvitationHandler) CreateInvitation(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var inv models.Invitation
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	created, err := h.Service.CreateInvitation(r.Context(), actor, inv)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *InvitationHandler) GetByHome(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	homeID, err := getIDParam(r, "home_id")
	if err != nil {
		jsonError(w, "invalid home id", http.StatusBadRequest)
		return
	}
	invs, err := h.Service.GetInvitationsByHome(r.Context(), actor, homeID)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, invs)
}

// Accept turns a pending invitation into an active connection. The invite
// token arrives in the body so it never shows up in access logs.
func (h *InvitationHandler) Accept(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	conn, err := h.Service.AcceptInvitation(r.Context(), actor, body.Token)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conn)
}

func (h *InvitationHandler) Decline(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.Service.DeclineInvitation(r.Context(), actor, body.Token); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
