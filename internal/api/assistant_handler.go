package api

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"medlink/internal/assistant"
	"medlink/internal/common"
	"medlink/pkg/errors"
)

const maxAudioBytes = 10 << 20

type AssistantHandler struct {
	svc    assistant.Service
	logger *zap.Logger
}

func NewAssistantHandler(svc assistant.Service, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{svc: svc, logger: logger}
}

func (h *AssistantHandler) Register(r *mux.Router) {
	r.HandleFunc("/assistant/converse", h.converse).Methods("POST")
	r.HandleFunc("/assistant/history", h.history).Methods("GET")
	r.HandleFunc("/assistant/transcribe", h.transcribe).Methods("POST")
}

func (h *AssistantHandler) converse(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	reply, err := h.svc.Converse(r.Context(), common.UserIDFrom(r.Context()), req.Message)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

func (h *AssistantHandler) history(w http.ResponseWriter, r *http.Request) {
	turns, err := h.svc.History(r.Context(), common.UserIDFrom(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, turns)
}

func (h *AssistantHandler) transcribe(w http.ResponseWriter, r *http.Request) {
	audio, err := io.ReadAll(io.LimitReader(r.Body, maxAudioBytes))
	if err != nil {
		respondError(w, errors.InvalidArg("failed to read audio body"))
		return
	}

	text, err := h.svc.Transcribe(r.Context(), audio)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"text": text})
}
