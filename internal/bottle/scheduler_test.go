package bottle

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_FiresOnce(t *testing.T) {
	s := newScheduler()
	defer s.Close()

	var fired atomic.Int32
	s.Schedule("b1", 10*time.Millisecond, func() { fired.Add(1) })

	assert.Eventually(t, func() bool { return fired.Load() == 1 },
		time.Second, 5*time.Millisecond)
}

func TestScheduler_RescheduleReplacesPendingTask(t *testing.T) {
	s := newScheduler()
	defer s.Close()

	var first, second atomic.Int32
	s.Schedule("b1", 50*time.Millisecond, func() { first.Add(1) })
	s.Schedule("b1", 10*time.Millisecond, func() { second.Add(1) })

	assert.Eventually(t, func() bool { return second.Load() == 1 },
		time.Second, 5*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), first.Load(), "replaced task must not fire")
}

func TestScheduler_CloseReturnsAfterReschedule(t *testing.T) {
	s := newScheduler()

	s.Schedule("b1", time.Hour, func() {})
	s.Schedule("b1", time.Hour, func() {})

	done := make(chan struct{})
	go func() {
		s.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Close did not return after a task was replaced")
	}
}

func TestScheduler_CloseStopsEverything(t *testing.T) {
	s := newScheduler()

	var fired atomic.Int32
	s.Schedule("b1", 50*time.Millisecond, func() { fired.Add(1) })
	s.Schedule("b2", 50*time.Millisecond, func() { fired.Add(1) })

	s.Close()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())

	// scheduling after close is a no-op
	s.Schedule("b3", time.Millisecond, func() { fired.Add(1) })
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}
