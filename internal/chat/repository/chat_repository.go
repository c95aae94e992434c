package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"medlink/internal/common"
	"medlink/internal/dbmysql"
)

type ChatRepository interface {
	CreateRoom(ctx context.Context, room *dbmysql.ChatRoom, participants []*dbmysql.ChatParticipant) error
	FindDirectRoom(ctx context.Context, userID, otherUserID string) (*dbmysql.ChatRoom, error)
	RoomByID(ctx context.Context, roomID string) (*dbmysql.ChatRoom, error)
	RoomsForUser(ctx context.Context, userID string) ([]*dbmysql.ChatRoom, error)
	Participants(ctx context.Context, roomID string) ([]*dbmysql.ChatParticipant, error)
	IsParticipant(ctx context.Context, roomID, userID string) (bool, error)
	SaveMessage(ctx context.Context, msg *dbmysql.ChatMessage) error
	SaveAttachment(ctx context.Context, att *dbmysql.ChatAttachment) error
	FetchHistory(ctx context.Context, roomID string, limit, offset int) ([]*dbmysql.ChatMessage, error)
	AttachmentForMessage(ctx context.Context, messageID string) (*dbmysql.ChatAttachment, error)
	IncrementUnread(ctx context.Context, roomID, exceptUserID string) error
	ResetUnread(ctx context.Context, roomID, userID string, at time.Time) error
}

type chatRepo struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepo{db: db}
}

// CreateRoom inserts the room and its participant rows in one
// transaction so a half-created room never becomes visible.
func (r *chatRepo) CreateRoom(ctx context.Context, room *dbmysql.ChatRoom, participants []*dbmysql.ChatParticipant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(room).Error; err != nil {
			return err
		}
		for _, p := range participants {
			if err := tx.Create(p).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindDirectRoom returns the direct room whose participant set contains
// both users, gorm.ErrRecordNotFound when no such room exists.
func (r *chatRepo) FindDirectRoom(ctx context.Context, userID, otherUserID string) (*dbmysql.ChatRoom, error) {
	var room dbmysql.ChatRoom
	err := r.db.WithContext(ctx).
		Joins("JOIN chat_participants p1 ON p1.room_id = chat_rooms.id AND p1.user_id = ?", userID).
		Joins("JOIN chat_participants p2 ON p2.room_id = chat_rooms.id AND p2.user_id = ?", otherUserID).
		Where("chat_rooms.type = ?", common.RoomTypeDirect).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *chatRepo) RoomByID(ctx context.Context, roomID string) (*dbmysql.ChatRoom, error) {
	var room dbmysql.ChatRoom
	if err := r.db.WithContext(ctx).First(&room, "id = ?", roomID).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *chatRepo) RoomsForUser(ctx context.Context, userID string) ([]*dbmysql.ChatRoom, error) {
	var rooms []*dbmysql.ChatRoom
	err := r.db.WithContext(ctx).
		Joins("JOIN chat_participants p ON p.room_id = chat_rooms.id AND p.user_id = ?", userID).
		Order("chat_rooms.updated_at DESC").
		Find(&rooms).Error
	return rooms, err
}

func (r *chatRepo) Participants(ctx context.Context, roomID string) ([]*dbmysql.ChatParticipant, error) {
	var participants []*dbmysql.ChatParticipant
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Find(&participants).Error
	return participants, err
}

func (r *chatRepo) IsParticipant(ctx context.Context, roomID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.ChatParticipant{}).
		Where("room_id = ? AND user_id = ?", roomID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *chatRepo) SaveMessage(ctx context.Context, msg *dbmysql.ChatMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *chatRepo) SaveAttachment(ctx context.Context, att *dbmysql.ChatAttachment) error {
	return r.db.WithContext(ctx).Create(att).Error
}

func (r *chatRepo) FetchHistory(ctx context.Context, roomID string, limit, offset int) ([]*dbmysql.ChatMessage, error) {
	var messages []*dbmysql.ChatMessage
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	return messages, err
}

func (r *chatRepo) AttachmentForMessage(ctx context.Context, messageID string) (*dbmysql.ChatAttachment, error) {
	var att dbmysql.ChatAttachment
	if err := r.db.WithContext(ctx).First(&att, "message_id = ?", messageID).Error; err != nil {
		return nil, err
	}
	return &att, nil
}

// IncrementUnread bumps the unread counter of every participant except
// the sender.
func (r *chatRepo) IncrementUnread(ctx context.Context, roomID, exceptUserID string) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.ChatParticipant{}).
		Where("room_id = ? AND user_id <> ?", roomID, exceptUserID).
		UpdateColumn("unread_count", gorm.Expr("unread_count + 1")).Error
}

// ResetUnread zeroes the caller's unread counter and stamps last_read_at.
// Unconditional: prior value does not matter.
func (r *chatRepo) ResetUnread(ctx context.Context, roomID, userID string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.ChatParticipant{}).
		Where("room_id = ? AND user_id = ?", roomID, userID).
		Updates(map[string]interface{}{
			"unread_count": 0,
			"last_read_at": at,
		}).Error
}
