package clock

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides pausable animation time with pause duration
// tracking. While paused, Now() is frozen at the pause point, so resumed
// animations observe no elapsed time and particles do not teleport
type PausableClock struct {
	mu sync.RWMutex

	// Base time tracking
	realStartTime time.Time // When the clock was created (real time)
	animStartTime time.Time // Animation time epoch (adjusted for pauses)

	// Pause state
	isPaused        atomic.Bool
	pauseStartTime  time.Time     // When current pause started (real time)
	totalPausedTime time.Duration // Cumulative pause duration

	provider TimeProvider
}

// NewPausableClock creates a pausable clock on the given provider.
// A nil provider falls back to the monotonic system clock
func NewPausableClock(provider TimeProvider) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	now := provider.Now()
	return &PausableClock{
		realStartTime: now,
		animStartTime: now,
		provider:      provider,
	}
}

// Now returns current animation time (affected by pause)
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		// During pause: frozen time at the pause point
		return pc.animStartTime.Add(pc.pauseStartTime.Sub(pc.realStartTime) - pc.totalPausedTime)
	}

	// Animation elapsed = real elapsed - total paused time
	realElapsed := pc.provider.Now().Sub(pc.realStartTime)
	return pc.animStartTime.Add(realElapsed - pc.totalPausedTime)
}

// RealTime returns the provider's wall time (unaffected by pause)
func (pc *PausableClock) RealTime() time.Time {
	return pc.provider.Now()
}

// Pause stops animation time advancement
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		pc.pauseStartTime = pc.provider.Now()
	}
}

// Resume continues animation time advancement
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		defer pc.mu.Unlock()

		if !pc.pauseStartTime.IsZero() {
			pc.totalPausedTime += pc.provider.Now().Sub(pc.pauseStartTime)
			pc.pauseStartTime = time.Time{}
		}
	}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time, including the
// in-flight pause if any
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() && !pc.pauseStartTime.IsZero() {
		total += pc.provider.Now().Sub(pc.pauseStartTime)
	}
	return total
}
