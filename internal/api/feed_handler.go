package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"medlink/internal/common"
	"medlink/internal/feed"
)

type FeedHandler struct {
	svc    feed.FeedService
	logger *zap.Logger
}

func NewFeedHandler(svc feed.FeedService, logger *zap.Logger) *FeedHandler {
	return &FeedHandler{svc: svc, logger: logger}
}

func (h *FeedHandler) Register(r *mux.Router) {
	r.HandleFunc("/posts", h.createPost).Methods("POST")
	r.HandleFunc("/posts", h.timeline).Methods("GET")
	r.HandleFunc("/posts/{postId}", h.deletePost).Methods("DELETE")
}

func (h *FeedHandler) createPost(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Body     string `json:"body"`
		Media    []byte `json:"media,omitempty"`
		Filename string `json:"filename,omitempty"`
		MimeType string `json:"mime_type,omitempty"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	post, err := h.svc.CreatePost(r.Context(), common.UserIDFrom(r.Context()), req.Body, req.Media, req.Filename, req.MimeType)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, post)
}

func (h *FeedHandler) timeline(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.Timeline(r.Context(), queryInt(r, "limit", 0), queryInt(r, "offset", 0))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, posts)
}

func (h *FeedHandler) deletePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postId"]

	if err := h.svc.DeletePost(r.Context(), common.UserIDFrom(r.Context()), postID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
