package notif

import (
	"context"
	"time"

	"github.com/google/uuid"

	"medlink/internal/common"
	"medlink/internal/dbmysql"
	"medlink/internal/realtime"
)

// databaseObserver persists every event as a notification row.
type databaseObserver struct {
	repo dbmysql.NotificationRepository
}

func NewDatabaseObserver(repo dbmysql.NotificationRepository) common.Observer {
	return &databaseObserver{repo: repo}
}

func (o *databaseObserver) Name() string { return "database" }

func (o *databaseObserver) Update(event common.NotificationEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return o.repo.Create(ctx, &dbmysql.Notification{
		ID:            uuid.NewString(),
		UserID:        event.UserID,
		Header:        event.Header,
		Content:       event.Content,
		Kind:          string(event.Kind),
		Priority:      event.Priority,
		TriggerUserID: event.TriggerUserID,
		Metadata:      event.Metadata,
	})
}

// realtimeObserver pushes the event to the recipient's live topic so an
// open client sees it without polling.
type realtimeObserver struct {
	hub *realtime.Hub
}

func NewRealtimeObserver(hub *realtime.Hub) common.Observer {
	return &realtimeObserver{hub: hub}
}

func (o *realtimeObserver) Name() string { return "realtime" }

func (o *realtimeObserver) Update(event common.NotificationEvent) error {
	o.hub.Publish(realtime.Event{
		Topic:   "user:" + event.UserID,
		Kind:    string(event.Kind),
		Payload: event,
	})
	return nil
}
