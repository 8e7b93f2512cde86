package handlers

import (
	"encoding/json"
	"net/http"

	"dwelloBack/internal/services"
)

type ChatHandler struct {
	Service *services.ChatService
}

func (h *ChatHandler) GetOrCreateChat(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var body struct {
		PeerID int `json:"peer_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	chat, err := h.Service.GetOrCreateChat(r.Context(), actor, body.PeerID)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chat)
}

func (h *ChatHandler) GetMyChats(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	chats, err := h.Service.GetMyChats(r.Context(), actor)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chats)
}

func (h *ChatHandler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := getIDParam(r, "id")
	if err != nil {
		jsonError(w, "invalid chat id", http.StatusBadRequest)
		return
	}
	if err := h.Service.DeleteChat(r.Context(), actor, id); err != nil {
		serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
