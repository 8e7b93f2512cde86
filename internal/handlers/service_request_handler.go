package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"dwelloBack/internal/lifecycle"
	"dwelloBack/internal/models"
	"dwelloBack/internal/services"
)

type ServiceRequestHandler struct {
	Service *services.RequestLifecycleService
}

func (h *ServiceRequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req models.ServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	created, err := h.Service.CreateRequest(r.Context(), actor, req)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ServiceRequestHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := getIDParam(r, "id")
	if err != nil {
		jsonError(w, "invalid request id", http.StatusBadRequest)
		return
	}
	req, err := h.Service.GetRequest(r.Context(), actor, id)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *ServiceRequestHandler) GetRequests(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	f := models.ServiceRequestFilter{
		HomeID: queryInt(r, "home_id", 0),
		ProID:  queryInt(r, "pro_id", 0),
		Page:   queryInt(r, "page", 1),
		Limit:  queryInt(r, "limit", 20),
	}
	if raw := r.URL.Query().Get("statuses"); raw != "" {
		f.Statuses = strings.Split(raw, ",")
	}
	reqs, err := h.Service.GetRequests(r.Context(), actor, f)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reqs)
}

// Transition drives the request status machine. The body names the request
// and the action; the allowed actions depend on the caller's role.
func (h *ServiceRequestHandler) Transition(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var body models.TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	req, err := h.Service.Transition(r.Context(), actor, body.ID, lifecycle.RequestAction(body.Action))
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}
