//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"medlink/internal/assistant"
	"medlink/internal/bottle"
	"medlink/internal/chat/repository"
	"medlink/internal/chat/service"
	"medlink/internal/dbmongo"
	"medlink/internal/dbmysql"
	"medlink/internal/feed"
	"medlink/internal/realtime"
	"medlink/internal/user"
	"medlink/internal/verify"
)

func InitChatApp(name ServiceName) (*ChatApp, func(), error) {
	wire.Build(
		ProvideConfig,
		ProvideLogger,
		dbmysql.NewMySQL,
		dbmongo.NewMongoConnection,
		ProvideMediaStorage,
		ProvideBlobStore,
		realtime.NewHub,
		dbmysql.NewNotificationRepository,
		ProvideNotificationService,
		ProvideSubject,
		repository.NewChatRepository,
		service.NewChatService,
		ProvideAssistantGateway,
		assistant.NewConversationStore,
		assistant.NewService,
		feed.NewPostRepository,
		feed.NewFeedService,
		wire.Struct(new(ChatApp), "*"),
	)
	return &ChatApp{}, nil, nil
}

func InitMatchApp(name ServiceName) (*MatchApp, func(), error) {
	wire.Build(
		ProvideConfig,
		ProvideLogger,
		dbmysql.NewMySQL,
		realtime.NewHub,
		dbmysql.NewNotificationRepository,
		ProvideNotificationService,
		ProvideSubject,
		bottle.NewRepository,
		bottle.NewService,
		wire.Struct(new(MatchApp), "*"),
	)
	return &MatchApp{}, nil, nil
}

func InitUserApp(name ServiceName) (*UserApp, func(), error) {
	wire.Build(
		ProvideConfig,
		ProvideLogger,
		dbmysql.NewMySQL,
		user.NewUserRepository,
		ProvideUserService,
		verify.NewVerificationRepository,
		ProvideEmailService,
		ProvideAssistantGateway,
		ProvideVerifyService,
		wire.Struct(new(UserApp), "*"),
	)
	return &UserApp{}, nil, nil
}

func InitMediaApp(name ServiceName) (*MediaApp, func(), error) {
	wire.Build(
		ProvideConfig,
		ProvideLogger,
		dbmongo.NewMongoConnection,
		ProvideMediaStorage,
		wire.Struct(new(MediaApp), "*"),
	)
	return &MediaApp{}, nil, nil
}
