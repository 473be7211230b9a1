package clock

import (
	"sync"
	"sync/atomic"
	"time"
)

// TickFunc receives the animation-time elapsed since the previous tick.
// dt is zero or positive; it never includes paused time
type TickFunc func(dt time.Duration)

// TickSource drives frame callbacks.
//
// Contract:
//   - Start is idempotent; the first call wins and installs fn
//   - Stop is idempotent and terminal: once stopped, no future callback
//     runs and the source cannot be restarted
//   - After Stop returns, fn is never invoked again
type TickSource interface {
	Start(fn TickFunc)
	Stop()
}

// Scheduler is a fixed-interval TickSource on a pausable clock.
// It handles pause-aware scheduling without busy-wait and corrects for
// drift when ticks run behind
type Scheduler struct {
	clock    *PausableClock
	interval time.Duration

	// Tick deadline for drift correction, owned by the loop goroutine
	nextTickDeadline time.Time
	lastTickTime     time.Time

	tickCount atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewScheduler creates a scheduler with the specified tick interval.
// A nil clock gets a fresh pausable clock on the system time source
func NewScheduler(clock *PausableClock, interval time.Duration) *Scheduler {
	if clock == nil {
		clock = NewPausableClock(nil)
	}
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	return &Scheduler{
		clock:    clock,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Clock returns the scheduler's pausable clock
func (s *Scheduler) Clock() *PausableClock {
	return s.clock
}

// TickCount returns the number of completed ticks
func (s *Scheduler) TickCount() uint64 {
	return s.tickCount.Load()
}

// Start begins the tick loop. Idempotent; calls after the first are no-ops
func (s *Scheduler) Start(fn TickFunc) {
	if fn == nil {
		return
	}
	if s.running.CompareAndSwap(false, true) {
		s.wg.Add(1)
		go s.loop(fn)
	}
}

// Stop halts the tick loop and waits for the in-flight tick to finish.
// Terminal: the scheduler cannot be restarted after Stop
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		if s.running.CompareAndSwap(true, false) {
			close(s.stopChan)
			s.wg.Wait()
		} else {
			// Never started; close so a late Start cannot loop forever
			close(s.stopChan)
		}
	})
}

func (s *Scheduler) loop(fn TickFunc) {
	defer s.wg.Done()

	s.lastTickTime = s.clock.Now()
	s.nextTickDeadline = s.lastTickTime.Add(s.interval)

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		default:
		}

		var sleep time.Duration

		if s.clock.IsPaused() {
			// Longer sleep while paused to save CPU; animation time is
			// frozen so no tick can become due
			sleep = s.interval * 2
		} else {
			now := s.clock.Now()

			if !now.Before(s.nextTickDeadline) {
				dt := now.Sub(s.lastTickTime)
				fn(dt)

				s.lastTickTime = now
				s.nextTickDeadline = s.nextTickDeadline.Add(s.interval)

				// If we fell far behind, re-anchor instead of burst-ticking
				if now.Sub(s.nextTickDeadline) > s.interval*2 {
					s.nextTickDeadline = now.Add(s.interval)
				}

				s.tickCount.Add(1)

				sleep = s.nextTickDeadline.Sub(s.clock.Now())
				if sleep < 0 {
					sleep = 0
				}
			} else {
				sleep = s.nextTickDeadline.Sub(now)
			}
		}

		if sleep > 0 {
			timer.Reset(sleep)
			select {
			case <-timer.C:
			case <-s.stopChan:
				return
			}
		}
	}
}

// ManualTicker is a TickSource driven explicitly by tests or embedding
// hosts. Step invokes the installed callback synchronously, so the frame
// contract is exercised without a real clock
type ManualTicker struct {
	mu      sync.Mutex
	fn      TickFunc
	stopped bool
}

// NewManualTicker creates an idle manual ticker
func NewManualTicker() *ManualTicker {
	return &ManualTicker{}
}

// Start installs the callback. Idempotent; the first callback wins
func (m *ManualTicker) Start(fn TickFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fn == nil && !m.stopped {
		m.fn = fn
	}
}

// Stop invalidates the callback. Subsequent Step calls are no-ops
func (m *ManualTicker) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
	m.fn = nil
}

// Step advances one frame of dt, invoking the callback synchronously.
// Returns true if a callback ran
func (m *ManualTicker) Step(dt time.Duration) bool {
	m.mu.Lock()
	fn := m.fn
	m.mu.Unlock()

	if fn == nil {
		return false
	}
	fn(dt)
	return true
}
