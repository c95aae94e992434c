package di

import (
	"context"
	"time"

	"go.uber.org/zap"

	"medlink/internal/assistant"
	"medlink/internal/common"
	"medlink/internal/config"
	"medlink/internal/dbmongo"
	"medlink/internal/dbmysql"
	"medlink/internal/logging"
	"medlink/internal/notif"
	"medlink/internal/realtime"
	"medlink/internal/user"
	"medlink/internal/verify"
)

// ServiceName labels the process for the logger.
type ServiceName string

func ProvideConfig() *config.Config {
	return config.LoadConfig()
}

func ProvideLogger(cfg *config.Config, name ServiceName) *zap.Logger {
	return logging.New(cfg, string(name))
}

func ProvideMediaStorage(mongo *dbmongo.MongoClient, cfg *config.Config) *dbmongo.MediaStorage {
	return dbmongo.NewMediaStorage(mongo, cfg.Server.MediaBaseURL)
}

func ProvideBlobStore(ms *dbmongo.MediaStorage) dbmongo.BlobStore {
	return ms
}

func ProvideNotificationService(cfg *config.Config, repo dbmysql.NotificationRepository, hub *realtime.Hub, logger *zap.Logger) *notif.NotificationService {
	return notif.NewNotificationService(cfg.Notification, repo, hub, logger)
}

func ProvideSubject(ns *notif.NotificationService) common.Subject {
	return ns.Manager()
}

func ProvideAssistantGateway(cfg *config.Config) (assistant.Gateway, error) {
	return assistant.NewGateway(cfg.Assistant)
}

func ProvideUserService(repo user.UserRepository, cfg *config.Config, logger *zap.Logger) user.UserService {
	return user.NewUserService(repo, cfg.Verification, logger)
}

func ProvideEmailService(cfg *config.Config, logger *zap.Logger) common.EmailService {
	return verify.NewLogEmailService(logger, cfg.Verification.FromEmail)
}

func ProvideVerifyService(repo verify.VerificationRepository, users user.UserRepository, email common.EmailService, gw assistant.Gateway, cfg *config.Config, logger *zap.Logger) verify.Service {
	return verify.NewService(repo, users, email, gw, cfg.Verification, logger)
}

func closeMongo(mongo *dbmongo.MongoClient, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mongo.Close(ctx); err != nil {
		logger.Warn("failed to close mongo connection", zap.Error(err))
	}
}
