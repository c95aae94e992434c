package realtime

import (
	"sync"
)

// Event is one realtime delivery. Topic is "room:<id>" for chat inserts
// and "user:<id>" for notification pushes.
type Event struct {
	Topic   string
	Kind    string
	Payload interface{}
}

// Hub is an in-process publish/subscribe fan-out keyed by topic.
// Delivery is best-effort: a subscriber whose buffer is full misses the
// event rather than blocking the publisher. Ordering across reconnects
// is not guaranteed; subscribers must tolerate at-least-once, possibly
// out-of-order delivery.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[int]chan Event
	next int
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[int]chan Event),
	}
}

// Publish sends the event to every subscriber of its topic.
func (h *Hub) Publish(evt Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs[evt.Topic] {
		select {
		case ch <- evt:
		default:
			// subscriber too slow, drop
		}
	}
}

// Subscribe registers interest in a topic. The returned cancel func is
// the caller's responsibility; an abandoned subscription leaks its slot
// until cancelled.
func (h *Hub) Subscribe(topic string, bufSize int) (<-chan Event, func()) {
	ch := make(chan Event, bufSize)

	h.mu.Lock()
	id := h.next
	h.next++
	if h.subs[topic] == nil {
		h.subs[topic] = make(map[int]chan Event)
	}
	h.subs[topic][id] = ch
	h.mu.Unlock()

	return ch, func() {
		h.mu.Lock()
		if subs, ok := h.subs[topic]; ok {
			delete(subs, id)
			if len(subs) == 0 {
				delete(h.subs, topic)
			}
		}
		h.mu.Unlock()
	}
}

// SubscriberCount reports active subscriptions for a topic.
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[topic])
}
