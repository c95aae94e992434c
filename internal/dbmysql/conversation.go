package dbmysql

import (
	"time"
)

// ConversationTurn is one role-tagged entry of an assistant conversation
// log, keyed by the owner's conversation key.
type ConversationTurn struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ConvKey   string    `gorm:"column:conv_key;size:100;not null;index" json:"conv_key"`
	Role      string    `gorm:"size:20;not null" json:"role"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ConversationTurn) TableName() string { return "conversation_turns" }
