package handlers

import (
	"encoding/json"
	"net/http"

	"dwelloBack/internal/models"
	"dwelloBack/internal/services"
)

type MessageHandler struct {
	Service *services.MessageService
}

func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var msg models.Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	sent, err := h.Service.SendMessage(r.Context(), actor, msg)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sent)
}

func (h *MessageHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	chatID, err := getIDParam(r, "chat_id")
	if err != nil {
		jsonError(w, "invalid chat id", http.StatusBadRequest)
		return
	}
	msgs, err := h.Service.GetMessages(r.Context(), actor, chatID)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (h *MessageHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := getIDParam(r, "id")
	if err != nil {
		jsonError(w, "invalid message id", http.StatusBadRequest)
		return
	}
	if err := h.Service.DeleteMessage(r.Context(), actor, id); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
