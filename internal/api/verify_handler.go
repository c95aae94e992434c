package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"medlink/internal/verify"
)

// VerifyHandler exposes the verification edge endpoints. All of them sit
// behind the CORS middleware since browsers call them directly.
type VerifyHandler struct {
	svc    verify.Service
	logger *zap.Logger
}

func NewVerifyHandler(svc verify.Service, logger *zap.Logger) *VerifyHandler {
	return &VerifyHandler{svc: svc, logger: logger}
}

func (h *VerifyHandler) Register(r *mux.Router) {
	r.HandleFunc("/verify/send-code", h.sendCode).Methods("POST", "OPTIONS")
	r.HandleFunc("/verify/check-code", h.checkCode).Methods("POST", "OPTIONS")
	r.HandleFunc("/verify/check-domain", h.checkDomain).Methods("POST", "OPTIONS")
	r.HandleFunc("/verify/summarize", h.summarize).Methods("POST", "OPTIONS")
}

func (h *VerifyHandler) sendCode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.svc.IssueCode(r.Context(), req.Email); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"sent": true})
}

func (h *VerifyHandler) checkCode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.svc.VerifyCode(r.Context(), req.Email, req.Code); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"verified": true})
}

func (h *VerifyHandler) checkDomain(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"allowed": h.svc.CheckDomain(req.Email)})
}

func (h *VerifyHandler) summarize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Abstract string `json:"abstract"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	summary, err := h.svc.Summarize(r.Context(), req.Abstract)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"summary": summary})
}
