package render

import (
	"sync"
	"sync/atomic"

	"github.com/glimmerfx/glimmer/core"
)

// NullTarget is a headless Target for tests and no-render environments.
// It records operation counts so tests can assert that cancellation and
// cleanup actually stop all visual mutation
type NullTarget struct {
	bounds core.Rect

	mu        sync.Mutex
	destroyed bool
	handles   []*NullHandle
	fills     []Gradient

	mutations atomic.Int64 // Transform + opacity writes across all handles
	flushes   atomic.Int64
}

// NewNullTarget creates a headless target with the given simulation bounds
func NewNullTarget(bounds core.Rect) *NullTarget {
	return &NullTarget{bounds: bounds}
}

// NewHandle implements Target
func (t *NullTarget) NewHandle(glyph rune, color Color) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.destroyed {
		return nil
	}
	h := &NullHandle{target: t}
	t.handles = append(t.handles, h)
	return h
}

// Fill implements Target, recording the gradient for assertions
func (t *NullTarget) Fill(g Gradient) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.destroyed {
		return
	}
	t.fills = append(t.fills, g)
}

// Flush implements Target
func (t *NullTarget) Flush() {
	t.flushes.Add(1)
}

// Bounds implements Target
func (t *NullTarget) Bounds() core.Rect {
	return t.bounds
}

// Destroy implements Target; safe to call multiple times
func (t *NullTarget) Destroy() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.destroyed = true
	for _, h := range t.handles {
		h.dead.Store(true)
	}
	t.handles = nil
}

// MutationCount returns total transform/opacity writes observed
func (t *NullTarget) MutationCount() int64 {
	return t.mutations.Load()
}

// FillCount returns the number of Fill calls observed
func (t *NullTarget) FillCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.fills)
}

// LastFill returns the most recent fill gradient and whether one exists
func (t *NullTarget) LastFill() (Gradient, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.fills) == 0 {
		return Gradient{}, false
	}
	return t.fills[len(t.fills)-1], true
}

// HandleCount returns the number of live handles
func (t *NullTarget) HandleCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, h := range t.handles {
		if !h.dead.Load() {
			n++
		}
	}
	return n
}

// FirstLiveHandle returns the earliest-bound handle still alive, for
// tests that assert on written transform state
func (t *NullTarget) FirstLiveHandle() (*NullHandle, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, h := range t.handles {
		if !h.dead.Load() {
			return h, true
		}
	}
	return nil, false
}

// NullHandle records mutations without rendering anything
type NullHandle struct {
	target *NullTarget
	dead   atomic.Bool

	mu      sync.Mutex
	X, Y    float64
	Scale   float64
	Opacity float64
}

// UpdateTransform implements Handle
func (h *NullHandle) UpdateTransform(x, y, scale float64) {
	if h.dead.Load() {
		return
	}
	h.mu.Lock()
	h.X, h.Y, h.Scale = x, y, scale
	h.mu.Unlock()
	h.target.mutations.Add(1)
}

// SetOpacity implements Handle
func (h *NullHandle) SetOpacity(o float64) {
	if h.dead.Load() {
		return
	}
	h.mu.Lock()
	h.Opacity = o
	h.mu.Unlock()
	h.target.mutations.Add(1)
}

// Destroy implements Handle
func (h *NullHandle) Destroy() {
	h.dead.Store(true)
}

// State returns the last written transform and opacity
func (h *NullHandle) State() (x, y, scale, opacity float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.X, h.Y, h.Scale, h.Opacity
}
