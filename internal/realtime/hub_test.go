package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesTopicSubscribers(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe("room:r1", 4)
	defer cancel()

	other, cancelOther := hub.Subscribe("room:r2", 4)
	defer cancelOther()

	hub.Publish(Event{Topic: "room:r1", Kind: "message", Payload: "hello"})

	select {
	case evt := <-ch:
		assert.Equal(t, "message", evt.Kind)
		assert.Equal(t, "hello", evt.Payload)
	case <-time.After(time.Second):
		t.Fatal("expected event on room:r1 subscriber")
	}

	select {
	case <-other:
		t.Fatal("room:r2 subscriber must not see room:r1 traffic")
	default:
	}
}

func TestHub_CancelStopsDelivery(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe("room:r1", 1)
	require.Equal(t, 1, hub.SubscriberCount("room:r1"))

	cancel()
	assert.Equal(t, 0, hub.SubscriberCount("room:r1"))

	hub.Publish(Event{Topic: "room:r1", Kind: "message"})
	select {
	case _, ok := <-ch:
		// channel is never closed, so a receive here means a delivery leaked
		if ok {
			t.Fatal("cancelled subscriber received event")
		}
	default:
	}
}

func TestHub_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe("room:r1", 1)
	defer cancel()

	done := make(chan struct{})
	go func() {
		// second publish must not block even though the buffer is full
		hub.Publish(Event{Topic: "room:r1", Kind: "message", Payload: 1})
		hub.Publish(Event{Topic: "room:r1", Kind: "message", Payload: 2})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publisher blocked on slow subscriber")
	}

	evt := <-ch
	assert.Equal(t, 1, evt.Payload)
}

func TestHub_MultipleSubscribersSameTopic(t *testing.T) {
	hub := NewHub()

	a, cancelA := hub.Subscribe("user:u1", 2)
	defer cancelA()
	b, cancelB := hub.Subscribe("user:u1", 2)
	defer cancelB()

	hub.Publish(Event{Topic: "user:u1", Kind: "notification"})

	for _, ch := range []<-chan Event{a, b} {
		select {
		case evt := <-ch:
			assert.Equal(t, "notification", evt.Kind)
		case <-time.After(time.Second):
			t.Fatal("subscriber missed fan-out")
		}
	}
}
