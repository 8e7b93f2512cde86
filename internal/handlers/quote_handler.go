package handlers

import (
	"encoding/json"
	"net/http"

	"dwelloBack/internal/models"
	"dwelloBack/internal/services"
)

type QuoteHandler struct {
	Service *services.QuoteService
}

func (h *QuoteHandler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var quote models.Quote
	if err := json.NewDecoder(r.Body).Decode(&quote); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	created, err := h.Service.CreateQuote(r.Context(), actor, quote)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *QuoteHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := getIDParam(r, "id")
	if err != nil {
		jsonError(w, "invalid quote id", http.StatusBadRequest)
		return
	}
	quote, err := h.Service.GetQuoteByID(r.Context(), actor, id)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}
