package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"dwelloBack/internal/models"
	"dwelloBack/internal/services"
)

type WarrantyHandler struct {
	Service *services.WarrantyService
}

func (h *WarrantyHandler) CreateWarranty(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var wt models.Warranty
	if err := json.NewDecoder(r.Body).Decode(&wt); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	created, err := h.Service.CreateWarranty(r.Context(), actor, wt)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *WarrantyHandler) GetByHome(w http.ResponseWriter, r *http.Request) {
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
	if r.URL.Query().Get("expiring") == "true" {
		days := queryInt(r, "within_days", 30)
		warranties, err := h.Service.GetExpiringSoon(r.Context(), actor, homeID, time.Duration(days)*24*time.Hour)
		if err != nil {
			serviceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, warranties)
		return
	}
	warranties, err := h.Service.GetWarrantiesByHome(r.Context(), actor, homeID)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, warranties)
}

func (h *WarrantyHandler) UpdateWarranty(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var wt models.Warranty
	if err := json.NewDecoder(r.Body).Decode(&wt); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	updated, err := h.Service.UpdateWarranty(r.Context(), actor, wt)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *WarrantyHandler) DeleteWarranty(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := getIDParam(r, "id")
	if err != nil {
		jsonError(w, "invalid warranty id", http.StatusBadRequest)
		return
	}
	homeID := queryInt(r, "home_id", 0)
	if err := h.Service.DeleteWarranty(r.Context(), actor, id, homeID); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
