package clock

import (
	"testing"
	"time"
)

func manualEpoch() *ManualTime {
	return NewManualTime(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestManualTimeControls(t *testing.T) {
	mt := manualEpoch()
	start := mt.Now()

	mt.Advance(time.Second)
	if got := mt.Now().Sub(start); got != time.Second {
		t.Errorf("Expected 1s after Advance, got %v", got)
	}

	mt.AdvanceFrames(60, 16*time.Millisecond)
	if got := mt.Now().Sub(start); got != time.Second+960*time.Millisecond {
		t.Errorf("Expected 60 frames of 16ms added, got %v", got)
	}

	mt.Set(start)
	if !mt.Now().Equal(start) {
		t.Error("Set did not pin the instant")
	}
}

func TestPausableClockAdvancesWithProvider(t *testing.T) {
	mt := manualEpoch()
	clock := NewPausableClock(mt)

	start := clock.Now()
	mt.Advance(500 * time.Millisecond)

	if got := clock.Now().Sub(start); got != 500*time.Millisecond {
		t.Errorf("Expected 500ms elapsed, got %v", got)
	}
}

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	mt := manualEpoch()
	clock := NewPausableClock(mt)

	mt.Advance(time.Second)
	clock.Pause()
	frozen := clock.Now()

	mt.Advance(10 * time.Second)
	if got := clock.Now(); !got.Equal(frozen) {
		t.Errorf("Paused clock moved: %v -> %v", frozen, got)
	}

	clock.Resume()
	mt.AdvanceFrames(60, 16*time.Millisecond) // 960ms of steady frames
	mt.Advance(40 * time.Millisecond)

	// 2s of animation time total: 1s before pause + 1s after resume
	if got := clock.Now().Sub(frozen); got != time.Second {
		t.Errorf("Expected 1s after resume, got %v", got)
	}
	if got := clock.TotalPauseDuration(); got != 10*time.Second {
		t.Errorf("Expected 10s total pause, got %v", got)
	}
}

func TestPausableClockDoublePauseResume(t *testing.T) {
	mt := manualEpoch()
	clock := NewPausableClock(mt)

	clock.Pause()
	clock.Pause() // Second pause is a no-op
	if !clock.IsPaused() {
		t.Error("Expected paused state")
	}

	mt.Advance(time.Second)
	clock.Resume()
	clock.Resume() // Second resume is a no-op
	if clock.IsPaused() {
		t.Error("Expected running state")
	}
	if got := clock.TotalPauseDuration(); got != time.Second {
		t.Errorf("Expected 1s total pause, got %v", got)
	}
}

func TestPausableClockNilProvider(t *testing.T) {
	clock := NewPausableClock(nil)
	a := clock.Now()
	b := clock.Now()
	if b.Before(a) {
		t.Error("Monotonic fallback went backwards")
	}
}
