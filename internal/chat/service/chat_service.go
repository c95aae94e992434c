package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"medlink/internal/chat/repository"
	"medlink/internal/common"
	"medlink/internal/dbmongo"
	"medlink/internal/dbmysql"
	"medlink/internal/realtime"
	"medlink/pkg/errors"
)

const previewLimit = 80

// AttachmentUpload is the single optional file accompanying a message.
type AttachmentUpload struct {
	FileName string
	MimeType string
	Data     []byte
}

// ChatService defines the interface exposed to the handler layer
type ChatService interface {
	CreateDirectChat(ctx context.Context, userID, otherUserID string) (*dbmysql.ChatRoom, error)
	CreateGroupChat(ctx context.Context, creatorID, name string, participantIDs []string) (*dbmysql.ChatRoom, error)
	SendMessage(ctx context.Context, roomID, senderID, content string, msgType common.MessageType, att *AttachmentUpload) (*dbmysql.ChatMessage, error)
	GetMessageHistory(ctx context.Context, roomID, userID string, limit, offset int) ([]*dbmysql.ChatMessage, error)
	Subscribe(ctx context.Context, roomID, userID string) (<-chan realtime.Event, func(), error)
	MarkRoomAsRead(ctx context.Context, roomID, userID string) error
	RoomsForUser(ctx context.Context, userID string) ([]*dbmysql.ChatRoom, error)
}

type chatService struct {
	repo     repository.ChatRepository
	blobs    dbmongo.BlobStore
	hub      *realtime.Hub
	notifier common.Subject
	logger   *zap.Logger
}

// NewChatService wires the chat pipeline. notifier may be nil when the
// dispatch manager is disabled.
func NewChatService(repo repository.ChatRepository, blobs dbmongo.BlobStore, hub *realtime.Hub, notifier common.Subject, logger *zap.Logger) ChatService {
	return &chatService{
		repo:     repo,
		blobs:    blobs,
		hub:      hub,
		notifier: notifier,
		logger:   logger,
	}
}

// CreateDirectChat is idempotent: the existing direct room between the
// two users is returned when one exists, a fresh one is created
// otherwise.
func (s *chatService) CreateDirectChat(ctx context.Context, userID, otherUserID string) (*dbmysql.ChatRoom, error) {
	if userID == "" || otherUserID == "" {
		return nil, errors.InvalidArg("both user ids are required")
	}
	if userID == otherUserID {
		return nil, errors.InvalidArg("cannot open a direct chat with yourself")
	}

	existing, err := s.repo.FindDirectRoom(ctx, userID, otherUserID)
	if err == nil {
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, errors.Wrap(errors.CodeInternal, "direct room lookup failed", err)
	}

	room := &dbmysql.ChatRoom{
		ID:        uuid.NewString(),
		Type:      common.RoomTypeDirect,
		CreatedBy: userID,
	}
	participants := []*dbmysql.ChatParticipant{
		{RoomID: room.ID, UserID: userID, Role: common.RoleMember},
		{RoomID: room.ID, UserID: otherUserID, Role: common.RoleMember},
	}

	if err := s.repo.CreateRoom(ctx, room, participants); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "failed to create direct room", err)
	}

	s.logger.Info("direct room created",
		zap.String("room_id", room.ID),
		zap.String("user_id", userID),
		zap.String("other_user_id", otherUserID))

	return room, nil
}

// CreateGroupChat creates a group room. The creator's participant row is
// the admin; the creator id is taken from the already-authenticated
// caller, never compared against anything unresolved.
func (s *chatService) CreateGroupChat(ctx context.Context, creatorID, name string, participantIDs []string) (*dbmysql.ChatRoom, error) {
	if creatorID == "" {
		return nil, errors.InvalidArg("creator id is required")
	}
	if name == "" {
		return nil, errors.InvalidArg("group name is required")
	}
	if len(participantIDs) == 0 {
		return nil, errors.InvalidArg("a group needs at least one other participant")
	}

	room := &dbmysql.ChatRoom{
		ID:        uuid.NewString(),
		Type:      common.RoomTypeGroup,
		Name:      &name,
		CreatedBy: creatorID,
	}

	participants := []*dbmysql.ChatParticipant{
		{RoomID: room.ID, UserID: creatorID, Role: common.RoleAdmin},
	}
	for _, id := range participantIDs {
		if id == creatorID {
			continue // already added as admin
		}
		participants = append(participants, &dbmysql.ChatParticipant{
			RoomID: room.ID,
			UserID: id,
			Role:   common.RoleMember,
		})
	}

	if err := s.repo.CreateRoom(ctx, room, participants); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "failed to create group room", err)
	}

	s.logger.Info("group room created",
		zap.String("room_id", room.ID),
		zap.String("creator_id", creatorID),
		zap.Int("participants", len(participants)))

	return room, nil
}

// SendMessage encodes and persists the message, bumps recipients' unread
// counters, then stores the attachment if one came along. There is no
// compensating rollback: an attachment failure leaves the message row in
// place and surfaces the error to the caller.
func (s *chatService) SendMessage(ctx context.Context, roomID, senderID, content string, msgType common.MessageType, att *AttachmentUpload) (*dbmysql.ChatMessage, error) {
	if roomID == "" {
		return nil, errors.InvalidArg("room ID cannot be empty")
	}
	if senderID == "" {
		return nil, errors.InvalidArg("sender ID cannot be empty")
	}
	if content == "" && att == nil {
		return nil, errors.InvalidArg("message content cannot be empty")
	}
	if !msgType.IsValid() {
		return nil, errors.InvalidArg(fmt.Sprintf("unknown message type %q", msgType))
	}

	member, err := s.repo.IsParticipant(ctx, roomID, senderID)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "membership check failed", err)
	}
	if !member {
		return nil, errors.Forbidden("sender is not a participant of this room")
	}

	msg := &dbmysql.ChatMessage{
		ID:          uuid.NewString(),
		RoomID:      roomID,
		SenderID:    senderID,
		Content:     EncodeContent(content),
		Type:        msgType,
		IsEncrypted: true,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.SaveMessage(ctx, msg); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "failed to save message", err)
	}

	if err := s.repo.IncrementUnread(ctx, roomID, senderID); err != nil {
		// counter drift is tolerable, the message itself made it
		s.logger.Warn("unread increment failed", zap.String("room_id", roomID), zap.Error(err))
	}

	if att != nil {
		key := fmt.Sprintf("%s/%s/%s", roomID, msg.ID, att.FileName)
		stored, err := s.blobs.Upload(ctx, key, att.FileName, att.MimeType, senderID, bytes.NewReader(att.Data))
		if err != nil {
			return nil, errors.Wrap(errors.CodeInternal, "attachment upload failed", err)
		}

		row := &dbmysql.ChatAttachment{
			ID:        uuid.NewString(),
			MessageID: msg.ID,
			FileName:  att.FileName,
			FileType:  att.MimeType,
			FileSize:  stored.Size,
			FileURL:   s.blobs.PublicURL(stored.ID),
		}
		if err := s.repo.SaveAttachment(ctx, row); err != nil {
			return nil, errors.Wrap(errors.CodeInternal, "failed to record attachment", err)
		}
	}

	delivered := *msg
	delivered.Content = content
	s.hub.Publish(realtime.Event{
		Topic:   "room:" + roomID,
		Kind:    "message",
		Payload: &delivered,
	})

	s.notifyRecipients(ctx, roomID, senderID, content)

	return &delivered, nil
}

// GetMessageHistory returns a chronological page of a room's messages
// with content run back through the decode step.
func (s *chatService) GetMessageHistory(ctx context.Context, roomID, userID string, limit, offset int) ([]*dbmysql.ChatMessage, error) {
	if roomID == "" {
		return nil, errors.InvalidArg("room ID is required")
	}

	member, err := s.repo.IsParticipant(ctx, roomID, userID)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "membership check failed", err)
	}
	if !member {
		return nil, errors.Forbidden("not a participant of this room")
	}

	if limit <= 0 || limit > 200 {
		limit = 50
	}

	messages, err := s.repo.FetchHistory(ctx, roomID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "failed to fetch history", err)
	}

	for _, m := range messages {
		plain, err := DecodeContent(m.Content)
		if err != nil {
			s.logger.Warn("undecodable message content",
				zap.String("message_id", m.ID), zap.Error(err))
			continue
		}
		m.Content = plain
	}

	return messages, nil
}

// Subscribe opens a realtime feed of the room's new messages for a
// participant. The cancel func is the caller's responsibility; an
// un-torn-down subscription leaks.
func (s *chatService) Subscribe(ctx context.Context, roomID, userID string) (<-chan realtime.Event, func(), error) {
	member, err := s.repo.IsParticipant(ctx, roomID, userID)
	if err != nil {
		return nil, nil, errors.Wrap(errors.CodeInternal, "membership check failed", err)
	}
	if !member {
		return nil, nil, errors.Forbidden("not a participant of this room")
	}

	events, cancel := s.hub.Subscribe("room:"+roomID, 64)
	return events, cancel, nil
}

// MarkRoomAsRead resets the caller's unread counter to zero and stamps
// last_read_at, whatever the counter held before.
func (s *chatService) MarkRoomAsRead(ctx context.Context, roomID, userID string) error {
	if roomID == "" || userID == "" {
		return errors.InvalidArg("room ID and user ID are required")
	}

	member, err := s.repo.IsParticipant(ctx, roomID, userID)
	if err != nil {
		return errors.Wrap(errors.CodeInternal, "membership check failed", err)
	}
	if !member {
		return errors.NotFound("no participant row for this room and user")
	}

	if err := s.repo.ResetUnread(ctx, roomID, userID, time.Now().UTC()); err != nil {
		return errors.Wrap(errors.CodeInternal, "failed to mark room read", err)
	}
	return nil
}

func (s *chatService) RoomsForUser(ctx context.Context, userID string) ([]*dbmysql.ChatRoom, error) {
	if userID == "" {
		return nil, errors.InvalidArg("user ID is required")
	}
	rooms, err := s.repo.RoomsForUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "failed to list rooms", err)
	}
	return rooms, nil
}

func (s *chatService) notifyRecipients(ctx context.Context, roomID, senderID, content string) {
	if s.notifier == nil {
		return
	}

	participants, err := s.repo.Participants(ctx, roomID)
	if err != nil {
		s.logger.Warn("participant fetch for notify failed", zap.String("room_id", roomID), zap.Error(err))
		return
	}

	preview := content
	if len(preview) > previewLimit {
		preview = preview[:previewLimit]
	}

	for _, p := range participants {
		if p.UserID == senderID {
			continue
		}
		s.notifier.NotifyAsync(common.NotificationEvent{
			Kind:          common.MessageKind,
			UserID:        p.UserID,
			TriggerUserID: &senderID,
			Header:        "New message",
			Content:       preview,
			Priority:      4,
			Metadata: common.NotificationMetadata{
				"room_id": roomID,
			},
		})
	}
}
