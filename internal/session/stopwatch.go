package session

import (
	"sync"
	"time"
)

// Stopwatch counts whole seconds while a session is active. It ticks only
// between Start and Stop; Stop freezes the value rather than zeroing it, and
// a later Start replaces it with the new baseline. All methods are safe for
// concurrent use.
type Stopwatch struct {
	mu      sync.Mutex
	seconds int
	running bool
	done    chan struct{}
	ticker  *time.Ticker
	wg      sync.WaitGroup

	// ticks replaces the real once-a-second ticker when set. Tests feed it
	// by hand to drive the counter deterministically.
	ticks <-chan time.Time
}

// NewStopwatch creates a stopped stopwatch reading zero.
func NewStopwatch() *Stopwatch {
	return &Stopwatch{}
}

// Start sets the counter to baseline and begins ticking once per second.
// Starting an already-running stopwatch only resets the counter.
func (s *Stopwatch) Start(baseline int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seconds = baseline
	if s.running {
		return
	}
	s.running = true
	s.done = make(chan struct{})

	ticks := s.ticks
	if ticks == nil {
		s.ticker = time.NewTicker(time.Second)
		ticks = s.ticker.C
	}

	s.wg.Add(1)
	go s.loop(ticks, s.done)
}

func (s *Stopwatch) loop(ticks <-chan time.Time, done <-chan struct{}) {
	defer s.wg.Done()
	for {
		select {
		case <-done:
			return
		case <-ticks:
			s.mu.Lock()
			if s.running {
				s.seconds++
			}
			s.mu.Unlock()
		}
	}
}

// Stop freezes the counter and waits for the tick goroutine to exit, so no
// tick lands after Stop returns. Stopping a stopped stopwatch is a no-op.
func (s *Stopwatch) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.done)
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

// Seconds returns the current counter value.
func (s *Stopwatch) Seconds() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seconds
}

// Running reports whether the stopwatch is ticking.
func (s *Stopwatch) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
