package notif

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"medlink/internal/common"
)

// NotificationManager fans events out to registered observers through a
// buffered channel and a fixed worker pool. It implements common.Subject.
type NotificationManager struct {
	observers    map[string]common.Observer
	eventChannel chan common.NotificationEvent
	ctx          context.Context
	cancel       context.CancelFunc
	logger       *zap.Logger
	mu           sync.RWMutex
	wg           sync.WaitGroup
}

func NewNotificationManager(workers, bufferSize int, logger *zap.Logger) *NotificationManager {
	ctx, cancel := context.WithCancel(context.Background())

	nm := &NotificationManager{
		observers:    make(map[string]common.Observer),
		eventChannel: make(chan common.NotificationEvent, bufferSize),
		ctx:          ctx,
		cancel:       cancel,
		logger:       logger,
	}

	for i := 0; i < workers; i++ {
		nm.wg.Add(1)
		go nm.processEvents()
	}

	return nm
}

func (nm *NotificationManager) Subscribe(observer common.Observer) {
	nm.mu.Lock()
	defer nm.mu.Unlock()
	nm.observers[observer.Name()] = observer
	nm.logger.Info("observer subscribed", zap.String("observer", observer.Name()))
}

func (nm *NotificationManager) Unsubscribe(observer common.Observer) {
	nm.mu.Lock()
	defer nm.mu.Unlock()
	delete(nm.observers, observer.Name())
	nm.logger.Info("observer unsubscribed", zap.String("observer", observer.Name()))
}

// Notify delivers the event to every observer on the caller's goroutine.
func (nm *NotificationManager) Notify(event common.NotificationEvent) {
	nm.mu.RLock()
	observers := make([]common.Observer, 0, len(nm.observers))
	for _, obs := range nm.observers {
		observers = append(observers, obs)
	}
	nm.mu.RUnlock()

	for _, observer := range observers {
		if err := observer.Update(event); err != nil {
			nm.logger.Error("observer update failed",
				zap.String("observer", observer.Name()),
				zap.String("kind", string(event.Kind)),
				zap.Error(err))
		}
	}
}

// NotifyAsync queues the event for the worker pool. A full channel drops
// the event rather than blocking the caller.
func (nm *NotificationManager) NotifyAsync(event common.NotificationEvent) {
	select {
	case nm.eventChannel <- event:
	case <-nm.ctx.Done():
	default:
		nm.logger.Warn("notification channel full, dropping event",
			zap.String("kind", string(event.Kind)),
			zap.String("user_id", event.UserID))
	}
}

func (nm *NotificationManager) processEvents() {
	defer nm.wg.Done()

	for {
		select {
		case event := <-nm.eventChannel:
			nm.Notify(event)
		case <-nm.ctx.Done():
			return
		}
	}
}

// Shutdown stops the workers and waits for in-flight deliveries.
func (nm *NotificationManager) Shutdown() {
	nm.cancel()
	nm.wg.Wait()
	nm.logger.Info("notification manager shutdown complete")
}
