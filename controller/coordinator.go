package controller

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/glimmerfx/glimmer/clock"
	"github.com/glimmerfx/glimmer/core"
	"github.com/glimmerfx/glimmer/events"
	"github.com/glimmerfx/glimmer/parameter"
	"github.com/glimmerfx/glimmer/render"
	"github.com/glimmerfx/glimmer/status"
)

// Config assembles a Coordinator. Every field is optional; zero values
// take working defaults so tests can construct with Config{}
type Config struct {
	// Ticks drives frames. Nil builds a real scheduler at the default
	// interval. Tests pass a clock.ManualTicker
	Ticks clock.TickSource

	// Logger receives degradation warnings and contained animation
	// errors. Nil means no logging
	Logger *zap.Logger

	// Metrics and Queue may be shared with the host; nil allocates fresh
	Metrics *status.Registry
	Queue   *events.Queue

	// Perf tunes the degradation fallback
	Perf PerfConfig

	// Fallback is the static gradient applied to a failed section.
	// Zero value takes render.Fallback()
	Fallback render.Gradient

	// AssumeVisible disables visibility gating: every registered section
	// counts as visible. This is the degraded mode for hosts without a
	// viewport-intersection primitive
	AssumeVisible bool

	// ReducedMotionQuery probes the platform preference once at
	// construction. Nil means the preference cannot be read and motion
	// is allowed; SetReducedMotion still works at runtime
	ReducedMotionQuery func() bool
}

type sectionEntry struct {
	id      string
	anim    Animation
	target  render.Target
	state   SectionState
	visible bool
}

// Coordinator decides, per registered section, whether its animation
// runs, based on three independent signals: the global enable flag, the
// reduced-motion preference, and per-section viewport visibility. It is
// an explicitly constructed, dependency-injected object; hosts create one
// and pass it to sections rather than sharing module-level state.
//
// All mutation happens under one mutex, from the frame callback and from
// host event callbacks. A section is never ticked while unregistered
type Coordinator struct {
	mu sync.Mutex

	log *zap.Logger

	// ticks is stopped by Stop/Destroy regardless of origin: TickSource
	// is single-consumer (first Start wins), so an injected source
	// belongs to this coordinator once handed over
	ticks clock.TickSource

	sections map[string]*sectionEntry
	order    []string // registration order, drives tick iteration

	enabled       bool
	reducedMotion bool
	degraded      bool
	assumeVisible bool

	perf     *perfMonitor
	queue    *events.Queue
	metrics  *status.Registry
	fallback render.Gradient

	started   bool
	destroyed bool

	// Cached metric pointers, written on the frame path
	statFrameRate *status.AtomicFloat
	statTicks     *atomic.Int64
	statMemory    *atomic.Int64
	statRunning   *atomic.Int64
	statTotal     *atomic.Int64
	statDegraded  *atomic.Bool
}

// New creates a coordinator from the given config
func New(cfg Config) *Coordinator {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	ticks := cfg.Ticks
	if ticks == nil {
		ticks = clock.NewScheduler(nil, parameter.TickInterval)
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = status.NewRegistry()
	}
	queue := cfg.Queue
	if queue == nil {
		queue = events.NewQueue()
	}
	fallback := cfg.Fallback
	if fallback == (render.Gradient{}) {
		fallback = render.Fallback()
	}

	reduced := false
	if cfg.ReducedMotionQuery != nil {
		reduced = cfg.ReducedMotionQuery()
	}
	if cfg.AssumeVisible {
		log.Warn("visibility primitive unavailable, animations run without gating")
	}

	return &Coordinator{
		log:           log,
		ticks:         ticks,
		sections:      make(map[string]*sectionEntry),
		enabled:       true,
		reducedMotion: reduced,
		assumeVisible: cfg.AssumeVisible,
		perf:          newPerfMonitor(cfg.Perf),
		queue:         queue,
		metrics:       metrics,
		fallback:      fallback,
		statFrameRate: metrics.Floats.Get(status.KeyFrameRate),
		statTicks:     metrics.Ints.Get(status.KeyTicks),
		statMemory:    metrics.Ints.Get(status.KeyMemoryBytes),
		statRunning:   metrics.Ints.Get(status.KeyAnimsRunning),
		statTotal:     metrics.Ints.Get(status.KeyAnimsTotal),
		statDegraded:  metrics.Bools.Get(status.KeyDegraded),
	}
}

// Start begins driving frames. Idempotent
func (c *Coordinator) Start() {
	c.mu.Lock()
	if c.started || c.destroyed {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.mu.Unlock()

	c.ticks.Start(c.onTick)
}

// Stop halts the frame source. Terminal; registered sections remain but
// no further frame runs
func (c *Coordinator) Stop() {
	c.ticks.Stop()
}

// Destroy stops frames and cleans up every section. Safe to call
// multiple times
func (c *Coordinator) Destroy() {
	c.ticks.Stop()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return
	}
	c.destroyed = true

	for _, id := range c.order {
		e := c.sections[id]
		c.safeCleanup(e)
	}
	c.sections = make(map[string]*sectionEntry)
	c.order = nil
	c.statRunning.Store(0)
	c.statTotal.Store(0)
}

// Register adds a section in the paused state and returns its handle.
// The id must be unique among live registrations
func (c *Coordinator) Register(id string, anim Animation, target render.Target) (*Section, error) {
	if id == "" {
		return nil, fmt.Errorf("register: empty section id")
	}
	if anim == nil {
		return nil, fmt.Errorf("register %q: nil animation", id)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return nil, fmt.Errorf("register %q: coordinator destroyed", id)
	}
	if _, exists := c.sections[id]; exists {
		return nil, fmt.Errorf("register %q: duplicate section id", id)
	}

	e := &sectionEntry{
		id:      id,
		anim:    anim,
		target:  target,
		state:   StatePaused,
		visible: c.assumeVisible,
	}
	c.sections[id] = e
	c.order = append(c.order, id)
	c.statTotal.Add(1)

	c.pushEvent(events.Event{Type: events.TypeSectionRegistered, Section: id})
	c.log.Debug("section registered", zap.String("section", id))

	c.evaluateLocked(e)
	return &Section{c: c, id: id}, nil
}

// Unregister removes a section from any state, invoking its cleanup
func (c *Coordinator) Unregister(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.sections[id]
	if !ok {
		return fmt.Errorf("unregister %q: not registered", id)
	}
	c.unregisterLocked(e)
	return nil
}

// SetVisible reports a viewport-intersection signal for one section.
// Unknown ids are ignored: the section may already have failed and
// unregistered itself
func (c *Coordinator) SetVisible(id string, visible bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.sections[id]
	if !ok {
		return
	}
	if c.assumeVisible {
		visible = true
	}
	if e.visible == visible {
		return
	}
	e.visible = visible
	c.evaluateLocked(e)
}

// SetEnabled flips the global animation flag
func (c *Coordinator) SetEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.enabled == enabled {
		return
	}
	c.enabled = enabled
	c.evaluateAllLocked()
}

// SetReducedMotion flips the accessibility preference
func (c *Coordinator) SetReducedMotion(reduced bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.reducedMotion == reduced {
		return
	}
	c.reducedMotion = reduced
	c.evaluateAllLocked()
}

// ResetDegraded clears the performance-degradation latch. Sections
// resume only through this explicit call (or a page reload); the
// coordinator never auto-resumes after a degradation episode
func (c *Coordinator) ResetDegraded() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.degraded {
		return
	}
	c.degraded = false
	c.statDegraded.Store(false)
	c.perf.resetEpisode()
	c.log.Info("degraded mode cleared")
	c.evaluateAllLocked()
}

// State returns the lifecycle state for a section id
func (c *Coordinator) State(id string) SectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.sections[id]; ok {
		return e.state
	}
	return StateUnregistered
}

// Events returns the telemetry queue for the consuming collaborator
func (c *Coordinator) Events() *events.Queue {
	return c.queue
}

// Metrics returns the shared metrics registry
func (c *Coordinator) Metrics() *status.Registry {
	return c.metrics
}

// onTick runs one frame: tick every running section with panic
// containment, then fold the frame delta into the performance monitor
func (c *Coordinator) onTick(dt time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed {
		return
	}

	// Copy ids: error handling may unregister during iteration
	ids := make([]string, len(c.order))
	copy(ids, c.order)

	for _, id := range ids {
		e, ok := c.sections[id]
		if !ok || e.state != StateRunning {
			continue
		}
		if err := core.Recovered(func() { e.anim.Tick(dt) }); err != nil {
			c.handleAnimationErrorLocked(e, err)
		}
	}

	c.samplePerformanceLocked(dt)
	c.statTicks.Add(1)
	c.statRunning.Store(int64(c.runningCountLocked()))
}

func (c *Coordinator) samplePerformanceLocked(dt time.Duration) {
	trigger, fps := c.perf.sample(dt)
	c.statFrameRate.Set(fps)

	warn, bytes := c.perf.sampleMemory()
	c.statMemory.Store(int64(bytes))
	if warn {
		c.pushEvent(events.Event{
			Type:      events.TypePerformanceIssue,
			Metric:    "memory_bytes",
			Value:     float64(bytes),
			Threshold: float64(c.perf.cfg.MaxHeapBytes),
		})
		c.log.Warn("heap usage above threshold",
			zap.Uint64("heap_bytes", bytes),
			zap.Uint64("threshold", c.perf.cfg.MaxHeapBytes))
	}

	if trigger && !c.degraded {
		c.degradeLocked(fps)
	}
}

// degradeLocked is the global soft-fail: pause everything, warn once
func (c *Coordinator) degradeLocked(fps float64) {
	c.degraded = true
	c.statDegraded.Store(true)

	for _, id := range c.order {
		e := c.sections[id]
		if e.state == StateRunning {
			c.safeStop(e)
			e.state = StatePaused
		}
	}

	c.pushEvent(events.Event{
		Type:      events.TypeDegradedMode,
		Metric:    "frame_rate",
		Value:     fps,
		Threshold: c.perf.cfg.MinFrameRate,
	})
	c.log.Warn("sustained low frame rate, all animations paused",
		zap.Float64("frame_rate", fps),
		zap.Float64("threshold", c.perf.cfg.MinFrameRate))
}

// handleAnimationErrorLocked contains a section failure: static fallback,
// telemetry, deregistration. Never panics regardless of what the failed
// animation does during cleanup
func (c *Coordinator) handleAnimationErrorLocked(e *sectionEntry, err error) {
	c.log.Error("animation failed, applying static fallback",
		zap.String("section", e.id),
		zap.Error(err))

	if e.target != nil {
		_ = core.Recovered(func() { e.target.Fill(c.fallback) })
	}
	c.pushEvent(events.Event{
		Type:    events.TypeAnimationError,
		Section: e.id,
		Metric:  "animation_error",
		Value:   1,
	})
	c.unregisterLocked(e)
}

func (c *Coordinator) unregisterLocked(e *sectionEntry) {
	c.safeCleanup(e)
	delete(c.sections, e.id)
	for i, id := range c.order {
		if id == e.id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	e.state = StateUnregistered
	c.statTotal.Add(-1)

	c.pushEvent(events.Event{Type: events.TypeSectionUnregistered, Section: e.id})
	c.log.Debug("section unregistered", zap.String("section", e.id))
}

// evaluateLocked applies the three-signal gate to one section
func (c *Coordinator) evaluateLocked(e *sectionEntry) {
	desired := c.enabled && !c.reducedMotion && !c.degraded && e.visible

	switch {
	case desired && e.state == StatePaused:
		// State first: a panicking Start unregisters the entry and must
		// not see its state overwritten afterwards
		e.state = StateRunning
		c.safeStart(e)
	case !desired && e.state == StateRunning:
		c.safeStop(e)
		e.state = StatePaused
	}
}

func (c *Coordinator) evaluateAllLocked() {
	// Copy ids: a panicking Start unregisters during iteration
	ids := make([]string, len(c.order))
	copy(ids, c.order)
	for _, id := range ids {
		if e, ok := c.sections[id]; ok {
			c.evaluateLocked(e)
		}
	}
}

func (c *Coordinator) runningCountLocked() int {
	n := 0
	for _, e := range c.sections {
		if e.state == StateRunning {
			n++
		}
	}
	return n
}

func (c *Coordinator) pushEvent(ev events.Event) {
	ev.Timestamp = time.Now()
	c.queue.Push(ev)
}

// safeStart/safeStop/safeCleanup guard lifecycle calls against panics in
// section code; a failing Start is treated like a failing Tick
func (c *Coordinator) safeStart(e *sectionEntry) {
	if err := core.Recovered(e.anim.Start); err != nil {
		c.handleAnimationErrorLocked(e, err)
	}
}

func (c *Coordinator) safeStop(e *sectionEntry) {
	if err := core.Recovered(e.anim.Stop); err != nil {
		c.log.Error("animation stop panicked", zap.String("section", e.id), zap.Error(err))
	}
}

func (c *Coordinator) safeCleanup(e *sectionEntry) {
	if err := core.Recovered(e.anim.Cleanup); err != nil {
		c.log.Error("animation cleanup panicked", zap.String("section", e.id), zap.Error(err))
	}
}

// SectionSnapshot is one section's diagnostic view
type SectionSnapshot struct {
	ID      string
	State   SectionState
	Visible bool
}

// Snapshot is a read-only view of global animation state for diagnostics
// and telemetry
type Snapshot struct {
	Enabled       bool
	ReducedMotion bool
	Degraded      bool

	FrameRate   float64
	MemoryBytes uint64

	AnimationCount int
	RunningCount   int

	VisibleSections []string          // sorted
	Sections        []SectionSnapshot // registration order
}

// Snapshot captures current global state
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Enabled:        c.enabled,
		ReducedMotion:  c.reducedMotion,
		Degraded:       c.degraded,
		FrameRate:      c.perf.frameRate(),
		MemoryBytes:    c.perf.heapBytes,
		AnimationCount: len(c.sections),
		RunningCount:   c.runningCountLocked(),
	}

	for _, id := range c.order {
		e := c.sections[id]
		snap.Sections = append(snap.Sections, SectionSnapshot{
			ID:      e.id,
			State:   e.state,
			Visible: e.visible,
		})
		if e.visible {
			snap.VisibleSections = append(snap.VisibleSections, e.id)
		}
	}
	sort.Strings(snap.VisibleSections)
	return snap
}
