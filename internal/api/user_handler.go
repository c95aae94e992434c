package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"medlink/internal/common"
	"medlink/internal/user"
)

type UserHandler struct {
	svc    user.UserService
	logger *zap.Logger
}

func NewUserHandler(svc user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, logger: logger}
}

// RegisterPublic mounts the endpoints that work without a token.
func (h *UserHandler) RegisterPublic(r *mux.Router) {
	r.HandleFunc("/auth/register", h.register).Methods("POST")
	r.HandleFunc("/auth/login", h.login).Methods("POST")
}

// RegisterProtected mounts the endpoints that need an authenticated caller.
func (h *UserHandler) RegisterProtected(r *mux.Router) {
	r.HandleFunc("/profile", h.getProfile).Methods("GET")
	r.HandleFunc("/profile", h.updateProfile).Methods("POST")
}

func (h *UserHandler) register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Handle    string `json:"handle"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		Specialty string `json:"specialty"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	u, token, err := h.svc.RegisterUser(r.Context(), req.Handle, req.Email, req.Password, req.Specialty)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"user":  u,
		"token": token,
	})
}

func (h *UserHandler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Handle   string `json:"handle"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	u, token, err := h.svc.LoginUser(r.Context(), req.Handle, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"user":  u,
		"token": token,
	})
}

func (h *UserHandler) getProfile(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context(), common.UserIDFrom(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, u)
}

func (h *UserHandler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email     string `json:"email"`
		Specialty string `json:"specialty"`
		Bio       string `json:"bio"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.svc.UpdateProfile(r.Context(), common.UserIDFrom(r.Context()), req.Email, req.Specialty, req.Bio); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
