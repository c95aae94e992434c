package bottle

import (
	"sync"
	"time"
)

// scheduler runs one delayed task per bottle id. Tasks are cancellable
// until they fire, so a user navigating away (or a shutdown) can drop a
// pending match check deterministically instead of leaking a timer.
type scheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
	wg     sync.WaitGroup
	closed bool
}

func newScheduler() *scheduler {
	return &scheduler{
		timers: make(map[string]*time.Timer),
	}
}

// Schedule arms a task for the bottle. A second schedule for the same id
// replaces the pending one.
func (s *scheduler) Schedule(bottleID string, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if old, ok := s.timers[bottleID]; ok {
		if old.Stop() {
			s.wg.Done()
		}
	}

	s.wg.Add(1)
	s.timers[bottleID] = time.AfterFunc(delay, func() {
		defer s.wg.Done()

		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return
		}
		delete(s.timers, bottleID)
		s.mu.Unlock()

		fn()
	})
}

// Cancel stops the bottle's pending task. Reports whether there was one
// to stop.
func (s *scheduler) Cancel(bottleID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	timer, ok := s.timers[bottleID]
	if !ok {
		return false
	}
	delete(s.timers, bottleID)
	if timer.Stop() {
		s.wg.Done()
	}
	return true
}

// Close cancels every pending task and waits for in-flight callbacks.
func (s *scheduler) Close() {
	s.mu.Lock()
	s.closed = true
	for id, timer := range s.timers {
		delete(s.timers, id)
		if timer.Stop() {
			s.wg.Done()
		}
	}
	s.mu.Unlock()

	s.wg.Wait()
}
