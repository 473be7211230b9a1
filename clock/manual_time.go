package clock

import (
	"sync"
	"time"
)

// ManualTime is a TimeProvider pinned to explicit control. Pausable
// clocks and schedulers built on it observe only the time a test hands
// them, so frame pacing and pause accounting become deterministic
type ManualTime struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualTime creates a provider frozen at start
func NewManualTime(start time.Time) *ManualTime {
	return &ManualTime{now: start}
}

// Now implements TimeProvider
func (m *ManualTime) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Set jumps to an absolute instant. Moving backwards is allowed; the
// consumers under test decide how they handle it
func (m *ManualTime) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves time forward by d
func (m *ManualTime) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// AdvanceFrames advances time by n frame intervals, for walking a clock
// through a stretch of steady ticks
func (m *ManualTime) AdvanceFrames(n int, interval time.Duration) {
	m.Advance(time.Duration(n) * interval)
}
