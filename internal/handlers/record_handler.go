package handlers

import (
	"encoding/json"
	"net/http"

	"dwelloBack/internal/models"
	"dwelloBack/internal/services"
)

type RecordHandler struct {
	Service *services.ServiceRecordService
}

// CreateDocumented lets a homeowner log past work themselves. Such records
// stay unverified and never feed connection aggregates.
func (h *RecordHandler) CreateDocumented(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var rec models.ServiceRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	created, err := h.Service.CreateDocumented(r.Context(), actor, rec)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *RecordHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := getIDParam(r, "id")
	if err != nil {
		jsonError(w, "invalid record id", http.StatusBadRequest)
		return
	}
	rec, err := h.Service.GetRecord(r.Context(), actor, id)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *RecordHandler) GetHomeHistory(w http.ResponseWriter, r *http.Request) {
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
	verifiedOnly := r.URL.Query().Get("verified") == "true"
	records, err := h.Service.GetHomeHistory(r.Context(), actor, homeID, verifiedOnly)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}
