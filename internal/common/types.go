package common

import (
	"time"
)

type NotificationKind string

const (
	MessageKind       NotificationKind = "message"
	BottleMatchedKind NotificationKind = "bottle_matched"
	VerificationKind  NotificationKind = "verification"
	SystemKind        NotificationKind = "system"
)

type NotificationMetadata map[string]interface{}

// NotificationEvent is the unit of work handed to the dispatch manager.
type NotificationEvent struct {
	Kind          NotificationKind
	UserID        string
	TriggerUserID *string
	Header        string
	Content       string
	Priority      int
	Metadata      NotificationMetadata
	CreatedAt     time.Time
}

type Observer interface {
	Update(event NotificationEvent) error
	Name() string
}

type Subject interface {
	Subscribe(observer Observer)
	Unsubscribe(observer Observer)
	Notify(event NotificationEvent)
	NotifyAsync(event NotificationEvent)
}

// EmailService delivers outbound mail. The default implementation only
// logs; a real SMTP sender can be dropped in behind this.
type EmailService interface {
	SendEmail(to, subject, body string) error
}
