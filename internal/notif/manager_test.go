package notif

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"medlink/internal/common"
	"medlink/internal/realtime"
)

type recordingObserver struct {
	name   string
	mu     sync.Mutex
	events []common.NotificationEvent
	err    error
}

func (o *recordingObserver) Name() string { return o.name }

func (o *recordingObserver) Update(event common.NotificationEvent) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
	return o.err
}

func (o *recordingObserver) seen() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.events)
}

func TestManagerNotifyReachesAllObservers(t *testing.T) {
	nm := NewNotificationManager(2, 10, zap.NewNop())
	defer nm.Shutdown()

	a := &recordingObserver{name: "a"}
	b := &recordingObserver{name: "b"}
	nm.Subscribe(a)
	nm.Subscribe(b)

	nm.Notify(common.NotificationEvent{
		Kind:    common.MessageKind,
		UserID:  "user-1",
		Header:  "New message",
		Content: "hello",
	})

	assert.Equal(t, 1, a.seen())
	assert.Equal(t, 1, b.seen())
}

func TestManagerNotifyAsyncDelivers(t *testing.T) {
	nm := NewNotificationManager(2, 10, zap.NewNop())
	defer nm.Shutdown()

	obs := &recordingObserver{name: "rec"}
	nm.Subscribe(obs)

	for i := 0; i < 5; i++ {
		nm.NotifyAsync(common.NotificationEvent{
			Kind:   common.SystemKind,
			UserID: "user-1",
			Header: "h", Content: "c",
		})
	}

	require.Eventually(t, func() bool { return obs.seen() == 5 },
		time.Second, 10*time.Millisecond)
}

func TestManagerNotifyAsyncDropsWhenFull(t *testing.T) {
	// No workers, so nothing drains the channel.
	nm := NewNotificationManager(0, 1, zap.NewNop())
	defer nm.Shutdown()

	nm.NotifyAsync(common.NotificationEvent{UserID: "u", Header: "h", Content: "1"})
	// Buffer is full now; this one gets dropped instead of blocking.
	done := make(chan struct{})
	go func() {
		nm.NotifyAsync(common.NotificationEvent{UserID: "u", Header: "h", Content: "2"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("NotifyAsync blocked on a full channel")
	}
}

func TestManagerObserverErrorDoesNotStopOthers(t *testing.T) {
	nm := NewNotificationManager(1, 10, zap.NewNop())
	defer nm.Shutdown()

	failing := &recordingObserver{name: "failing", err: assert.AnError}
	healthy := &recordingObserver{name: "healthy"}
	nm.Subscribe(failing)
	nm.Subscribe(healthy)

	nm.Notify(common.NotificationEvent{UserID: "u", Header: "h", Content: "c"})

	assert.Equal(t, 1, failing.seen())
	assert.Equal(t, 1, healthy.seen())
}

func TestManagerUnsubscribe(t *testing.T) {
	nm := NewNotificationManager(1, 10, zap.NewNop())
	defer nm.Shutdown()

	obs := &recordingObserver{name: "rec"}
	nm.Subscribe(obs)
	nm.Unsubscribe(obs)

	nm.Notify(common.NotificationEvent{UserID: "u", Header: "h", Content: "c"})
	assert.Equal(t, 0, obs.seen())
}

func TestRealtimeObserverPublishesToUserTopic(t *testing.T) {
	hub := realtime.NewHub()
	ch, cancel := hub.Subscribe("user:user-1", 4)
	defer cancel()

	obs := NewRealtimeObserver(hub)
	err := obs.Update(common.NotificationEvent{
		Kind:    common.BottleMatchedKind,
		UserID:  "user-1",
		Header:  "Bottle matched",
		Content: "Your bottle found a reader",
	})
	require.NoError(t, err)

	select {
	case evt := <-ch:
		assert.Equal(t, "user:user-1", evt.Topic)
		assert.Equal(t, string(common.BottleMatchedKind), evt.Kind)
	case <-time.After(time.Second):
		t.Fatal("no realtime event received")
	}
}
