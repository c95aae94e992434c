package dbmysql

import (
	"time"

	"gorm.io/gorm"
)

type Post struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	AuthorID  string         `gorm:"size:36;not null;index" json:"author_id"`
	Body      string         `gorm:"type:text" json:"body"`
	MediaID   *string        `gorm:"size:36" json:"media_id,omitempty"`
	MediaURL  *string        `gorm:"size:512" json:"media_url,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Author *User `gorm:"foreignKey:AuthorID;references:UserID" json:"author,omitempty"`
}

func (Post) TableName() string { return "posts" }
