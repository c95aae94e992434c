package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"medlink/internal/common"
	"medlink/internal/notif"
	"medlink/internal/realtime"
	"medlink/pkg/errors"
)

type NotifHandler struct {
	svc    *notif.NotificationService
	hub    *realtime.Hub
	logger *zap.Logger
}

func NewNotifHandler(svc *notif.NotificationService, hub *realtime.Hub, logger *zap.Logger) *NotifHandler {
	return &NotifHandler{svc: svc, hub: hub, logger: logger}
}

func (h *NotifHandler) Register(r *mux.Router) {
	r.HandleFunc("/notifications", h.list).Methods("GET")
	r.HandleFunc("/notifications/unread-count", h.unreadCount).Methods("GET")
	r.HandleFunc("/notifications/subscribe", h.subscribe).Methods("GET")
	r.HandleFunc("/notifications/{notificationId}/read", h.markRead).Methods("POST")
}

func (h *NotifHandler) list(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.GetUserNotifications(r.Context(), common.UserIDFrom(r.Context()),
		queryInt(r, "limit", 0), queryInt(r, "offset", 0))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

func (h *NotifHandler) unreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.UnreadCount(r.Context(), common.UserIDFrom(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int64{"unread": count})
}

// subscribe streams the caller's notification events as server-sent
// events until the client disconnects.
func (h *NotifHandler) subscribe(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, errors.Internal("streaming unsupported"))
		return
	}

	events, cancel := h.hub.Subscribe("user:"+common.UserIDFrom(r.Context()), 16)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case evt := <-events:
			data, err := json.Marshal(evt.Payload)
			if err != nil {
				h.logger.Warn("failed to encode event", zap.Error(err))
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", evt.Kind, data)
			flusher.Flush()
		}
	}
}

func (h *NotifHandler) markRead(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["notificationId"]

	if err := h.svc.MarkAsRead(r.Context(), id, common.UserIDFrom(r.Context())); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
