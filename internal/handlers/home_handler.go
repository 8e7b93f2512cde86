package handlers

import (
	"encoding/json"
	"net/http"

	"dwelloBack/internal/models"
	"dwelloBack/internal/services"
)

type HomeHandler struct {
	Service *services.HomeService
}

func (h *HomeHandler) CreateHome(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var home models.Home
	if err := json.NewDecoder(r.Body).Decode(&home); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	created, err := h.Service.CreateHome(r.Context(), actor, home)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *HomeHandler) GetHome(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := getIDParam(r, "id")
	if err != nil {
		jsonError(w, "invalid home id", http.StatusBadRequest)
		return
	}
	home, err := h.Service.GetHome(r.Context(), actor, id)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, home)
}

func (h *HomeHandler) GetMyHomes(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	homes, err := h.Service.GetMyHomes(r.Context(), actor)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, homes)
}

func (h *HomeHandler) UpdateHome(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var home models.Home
	if err := json.NewDecoder(r.Body).Decode(&home); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	updated, err := h.Service.UpdateHome(r.Context(), actor, home)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *HomeHandler) DeleteHome(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := getIDParam(r, "id")
	if err != nil {
		jsonError(w, "invalid home id", http.StatusBadRequest)
		return
	}
	if err := h.Service.DeleteHome(r.Context(), actor, id); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
