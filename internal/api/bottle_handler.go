package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"medlink/internal/bottle"
	"medlink/internal/common"
)

type BottleHandler struct {
	svc    bottle.Service
	logger *zap.Logger
}

func NewBottleHandler(svc bottle.Service, logger *zap.Logger) *BottleHandler {
	return &BottleHandler{svc: svc, logger: logger}
}

func (h *BottleHandler) Register(r *mux.Router) {
	r.HandleFunc("/bottles", h.createBottle).Methods("POST")
	r.HandleFunc("/bottles/{bottleId}/cancel", h.cancelBottle).Methods("POST")
}

func (h *BottleHandler) createBottle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	b, err := h.svc.Create(r.Context(), common.UserIDFrom(r.Context()), req.Content)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, b)
}

func (h *BottleHandler) cancelBottle(w http.ResponseWriter, r *http.Request) {
	bottleID := mux.Vars(r)["bottleId"]
	cancelled, err := h.svc.Cancel(r.Context(), common.UserIDFrom(r.Context()), bottleID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"cancelled": cancelled})
}
