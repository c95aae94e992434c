package dbmysql

import (
	"time"
)

// EmailVerification stores one issued OTP. The code itself is never
// persisted, only its bcrypt hash. A row is spent by setting ConsumedAt.
type EmailVerification struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email      string     `gorm:"size:255;not null;index" json:"email"`
	CodeHash   string     `gorm:"size:255;not null" json:"-"`
	ExpiresAt  time.Time  `gorm:"not null" json:"expires_at"`
	ConsumedAt *time.Time `json:"consumed_at,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (EmailVerification) TableName() string { return "email_verifications" }
