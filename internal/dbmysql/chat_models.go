package dbmysql

import (
	"time"

	"medlink/internal/common"
)

type ChatRoom struct {
	ID        string          `gorm:"primaryKey;size:36" json:"id"`
	Type      common.RoomType `gorm:"type:enum('direct','group');not null;index" json:"type"`
	Name      *string         `gorm:"size:100" json:"name,omitempty"`
	CreatedBy string          `gorm:"size:36;not null" json:"created_by"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ChatRoom) TableName() string { return "chat_rooms" }

// ChatParticipant holds membership plus per-user read state. One row per
// (room, user).
type ChatParticipant struct {
	RoomID      string                 `gorm:"primaryKey;size:36" json:"room_id"`
	UserID      string                 `gorm:"primaryKey;size:36;index" json:"user_id"`
	Role        common.ParticipantRole `gorm:"type:enum('admin','member');default:'member'" json:"role"`
	UnreadCount int                    `gorm:"default:0" json:"unread_count"`
	LastReadAt  *time.Time             `json:"last_read_at,omitempty"`
	JoinedAt    time.Time              `gorm:"autoCreateTime" json:"joined_at"`
}

func (ChatParticipant) TableName() string { return "chat_participants" }

// ChatMessage rows are immutable once created. Content is stored through
// the reversible encoding step, never raw.
type ChatMessage struct {
	ID          string             `gorm:"primaryKey;size:36" json:"id"`
	RoomID      string             `gorm:"size:36;not null;index" json:"room_id"`
	SenderID    string             `gorm:"size:36;not null;index" json:"sender_id"`
	Content     string             `gorm:"type:text;not null" json:"content"`
	Type        common.MessageType `gorm:"type:enum('text','file','image','voice');default:'text'" json:"type"`
	IsEncrypted bool               `gorm:"default:true" json:"is_encrypted"`
	CreatedAt   time.Time          `gorm:"autoCreateTime;index" json:"created_at"`
}

func (ChatMessage) TableName() string { return "chat_messages" }

type ChatAttachment struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	MessageID string    `gorm:"size:36;not null;uniqueIndex" json:"message_id"`
	FileName  string    `gorm:"size:255;not null" json:"file_name"`
	FileType  string    `gorm:"size:100" json:"file_type"`
	FileSize  int64     `json:"file_size"`
	FileURL   string    `gorm:"size:512;not null" json:"file_url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ChatAttachment) TableName() string { return "chat_attachments" }
