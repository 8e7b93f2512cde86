package handlers

import (
	"net/http"

	"dwelloBack/internal/services"
)

type ConnectionHandler struct {
	Service *services.ConnectionService
}

func (h *ConnectionHandler) GetByHome(w http.ResponseWriter, r *http.Request) {
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
	conns, err := h.Service.GetConnectionsByHome(r.Context(), actor, homeID)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conns)
}

func (h *ConnectionHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	conns, err := h.Service.GetConnectionsByPro(r.Context(), actor, actor.UserID)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conns)
}

func (h *ConnectionHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := getIDParam(r, "id")
	if err != nil {
		jsonError(w, "invalid connection id", http.StatusBadRequest)
		return
	}
	if err := h.Service.RevokeConnection(r.Context(), actor, id); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ConnectionHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromRequest(r); !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := getIDParam(r, "id")
	if err != nil {
		jsonError(w, "invalid connection id", http.StatusBadRequest)
		return
	}
	summary, err := h.Service.GetSummary(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
