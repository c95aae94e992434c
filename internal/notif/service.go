package notif

import (
	"context"
	stderrors "errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"medlink/internal/common"
	"medlink/internal/config"
	"medlink/internal/dbmysql"
	"medlink/internal/realtime"
	"medlink/pkg/errors"
)

// NotificationService owns the manager and the read-side queries.
type NotificationService struct {
	manager *NotificationManager
	repo    dbmysql.NotificationRepository
	logger  *zap.Logger
}

func NewNotificationService(cfg config.NotificationConfig, repo dbmysql.NotificationRepository, hub *realtime.Hub, logger *zap.Logger) *NotificationService {
	manager := NewNotificationManager(cfg.Workers, cfg.ChannelBufferSize, logger)
	manager.Subscribe(NewDatabaseObserver(repo))
	if hub != nil {
		manager.Subscribe(NewRealtimeObserver(hub))
	}

	return &NotificationService{
		manager: manager,
		repo:    repo,
		logger:  logger,
	}
}

// Manager exposes the Subject for producers to publish through.
func (s *NotificationService) Manager() common.Subject { return s.manager }

func (s *NotificationService) GetUserNotifications(ctx context.Context, userID string, limit, offset int) ([]*dbmysql.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.repo.ByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, "failed to load notifications", err)
	}
	return rows, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, notificationID, userID string) error {
	if err := s.repo.MarkAsRead(ctx, notificationID, userID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.NotFound("notification not found")
		}
		return errors.Wrap(errors.CodeInternal, "failed to mark notification read", err)
	}
	return nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	count, err := s.repo.UnreadCount(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(errors.CodeInternal, "failed to count unread notifications", err)
	}
	return count, nil
}

func (s *NotificationService) Shutdown() {
	s.manager.Shutdown()
}
