package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"medlink/internal/chat/service"
	"medlink/internal/common"
	"medlink/pkg/errors"
)

type ChatHandler struct {
	svc    service.ChatService
	logger *zap.Logger
}

func NewChatHandler(svc service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{svc: svc, logger: logger}
}

func (h *ChatHandler) Register(r *mux.Router) {
	r.HandleFunc("/chats/direct", h.createDirectChat).Methods("POST")
	r.HandleFunc("/chats/group", h.createGroupChat).Methods("POST")
	r.HandleFunc("/chats", h.listRooms).Methods("GET")
	r.HandleFunc("/chats/{roomId}/messages", h.sendMessage).Methods("POST")
	r.HandleFunc("/chats/{roomId}/messages", h.messageHistory).Methods("GET")
	r.HandleFunc("/chats/{roomId}/read", h.markRead).Methods("POST")
	r.HandleFunc("/chats/{roomId}/subscribe", h.subscribe).Methods("GET")
}

func (h *ChatHandler) createDirectChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OtherUserID string `json:"other_user_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	room, err := h.svc.CreateDirectChat(r.Context(), common.UserIDFrom(r.Context()), req.OtherUserID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, room)
}

func (h *ChatHandler) createGroupChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string   `json:"name"`
		Participants []string `json:"participants"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	room, err := h.svc.CreateGroupChat(r.Context(), common.UserIDFrom(r.Context()), req.Name, req.Participants)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, room)
}

func (h *ChatHandler) listRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.svc.RoomsForUser(r.Context(), common.UserIDFrom(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rooms)
}

func (h *ChatHandler) sendMessage(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	var req struct {
		Content    string `json:"content"`
		Attachment *struct {
			FileName string `json:"file_name"`
			MimeType string `json:"mime_type"`
			Data     []byte `json:"data"`
		} `json:"attachment,omitempty"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	var att *service.AttachmentUpload
	msgType := common.MessageTypeText
	if req.Attachment != nil {
		att = &service.AttachmentUpload{
			FileName: req.Attachment.FileName,
			MimeType: req.Attachment.MimeType,
			Data:     req.Attachment.Data,
		}
		msgType = common.DetectMessageType(req.Attachment.MimeType)
	}

	msg, err := h.svc.SendMessage(r.Context(), roomID, common.UserIDFrom(r.Context()), req.Content, msgType, att)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, msg)
}

func (h *ChatHandler) messageHistory(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]
	limit := queryInt(r, "limit", 0)
	offset := queryInt(r, "offset", 0)

	msgs, err := h.svc.GetMessageHistory(r.Context(), roomID, common.UserIDFrom(r.Context()), limit, offset)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, msgs)
}

func (h *ChatHandler) markRead(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	if err := h.svc.MarkRoomAsRead(r.Context(), roomID, common.UserIDFrom(r.Context())); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// subscribe streams room events as server-sent events until the client
// disconnects.
func (h *ChatHandler) subscribe(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, errors.Internal("streaming unsupported"))
		return
	}

	events, cancel, err := h.svc.Subscribe(r.Context(), roomID, common.UserIDFrom(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
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

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
