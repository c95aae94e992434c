package dbmysql

import (
	"time"

	"medlink/internal/common"
)

// DreamBottle is an ephemeral matchable message. Status transitions are
// active -> matched | expired; both end states are terminal. There is no
// server-side arbitration between concurrent match checks, so two checks
// can race to claim the same bottle.
type DreamBottle struct {
	ID          string              `gorm:"primaryKey;size:36" json:"id"`
	UserID      string              `gorm:"size:36;not null;index" json:"user_id"`
	Content     string              `gorm:"type:text;not null" json:"content"`
	Status      common.BottleStatus `gorm:"type:enum('active','matched','expired');default:'active';index" json:"status"`
	MatchedWith *string             `gorm:"size:36" json:"matched_with,omitempty"`
	CreatedAt   time.Time           `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time           `gorm:"autoUpdateTime" json:"updated_at"`

	Owner *User `gorm:"foreignKey:UserID;references:UserID" json:"owner,omitempty"`
}

func (DreamBottle) TableName() string { return "dream_bottles" }
