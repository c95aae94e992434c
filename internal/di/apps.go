package di

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"medlink/internal/assistant"
	"medlink/internal/bottle"
	"medlink/internal/chat/service"
	"medlink/internal/config"
	"medlink/internal/dbmongo"
	"medlink/internal/feed"
	"medlink/internal/notif"
	"medlink/internal/realtime"
	"medlink/internal/user"
	"medlink/internal/verify"
)

// ChatApp holds everything the chat service process serves: chat rooms,
// the assistant, and the feed.
type ChatApp struct {
	Config        *config.Config
	Logger        *zap.Logger
	DB            *gorm.DB
	Hub           *realtime.Hub
	Notifications *notif.NotificationService
	Chat          service.ChatService
	Assistant     assistant.Service
	Feed          feed.FeedService
}

// MatchApp holds the dream-bottle matcher process.
type MatchApp struct {
	Config        *config.Config
	Logger        *zap.Logger
	DB            *gorm.DB
	Hub           *realtime.Hub
	Notifications *notif.NotificationService
	Bottles       bottle.Service
}

// UserApp holds the auth and verification process.
type UserApp struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *gorm.DB
	Users  user.UserService
	Verify verify.Service
}

// MediaApp holds the GridFS file server process.
type MediaApp struct {
	Config  *config.Config
	Logger  *zap.Logger
	Storage *dbmongo.MediaStorage
}
