package particle

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/glimmerfx/glimmer/core"
	"github.com/glimmerfx/glimmer/render"
)

// Config tunes one particle system
type Config struct {
	// PoolSize bounds total live particles; spawns beyond it are no-ops
	PoolSize int

	// Lifetime is the full opacity decay span: opacity falls linearly
	// from 1 to 0 over this duration
	Lifetime time.Duration

	// Bounds is the simulation box; particles leaving Bounds padded by
	// BoundsPad are returned to the pool
	Bounds    core.Rect
	BoundsPad float64

	// Scale applied to every spawned particle (glyph weight on cell
	// targets). Zero means 1.0
	Scale float64

	// Gravity is vertical acceleration in cells/sec²; positive pulls down
	Gravity float64

	// Drag is a per-second velocity damping factor in [0,1); zero disables
	Drag float64

	// Force, when set, applies a custom per-particle acceleration each
	// tick before integration. dt is the frame delta in seconds
	Force func(p *Particle, dt float64)

	// Glyph and Palette configure the bound handles. Glyph 0 lets the
	// target pick by scale; the palette maps opacity to color
	Glyph   rune
	Palette render.Gradient
}

func (c Config) withDefaults() Config {
	if c.PoolSize < 1 {
		c.PoolSize = 1
	}
	if c.Lifetime <= 0 {
		c.Lifetime = 2 * time.Second
	}
	if c.Scale == 0 {
		c.Scale = 1.0
	}
	return c
}

// System owns a particle pool bound to one render target.
//
// Threading: Spawn, Start, Stop, Tick and Cleanup may be called from the
// frame goroutine and from host event callbacks; a single mutex guards
// pool and lifecycle state. All per-frame work happens in Tick, which the
// coordinator invokes only while the owning section is running
type System struct {
	mu      sync.Mutex
	cfg     Config
	pool    *Pool
	target  render.Target
	running bool
	cleaned bool

	spawned atomic.Int64
	dropped atomic.Int64
}

// NewSystem creates a system with every pool slot pre-bound to a render
// handle, so spawning never allocates. A nil target is a setup failure:
// the system silently no-ops against a headless stand-in
func NewSystem(cfg Config, target render.Target) *System {
	cfg = cfg.withDefaults()
	if target == nil {
		target = render.NewNullTarget(cfg.Bounds)
	}
	if cfg.Bounds.Width() <= 0 && cfg.Bounds.Height() <= 0 {
		cfg.Bounds = target.Bounds()
	}

	s := &System{
		cfg:    cfg,
		pool:   NewPool(cfg.PoolSize),
		target: target,
	}
	s.pool.ForEachSlot(func(pt *Particle) {
		pt.Handle = target.NewHandle(cfg.Glyph, cfg.Palette.At(1))
	})
	return s
}

// Spawn borrows a particle and initializes its kinematic and visual
// state. Pool exhaustion is a silent no-op, bounding total particles
func (s *System) Spawn(x, y, vx, vy float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cleaned {
		return
	}

	pt := s.pool.Acquire()
	if pt == nil {
		s.dropped.Add(1)
		return
	}

	pt.init(x, y, vx, vy, s.cfg.Lifetime, s.cfg.Scale)
	if pt.Handle != nil {
		pt.Handle.UpdateTransform(x, y, pt.Scale)
		pt.Handle.SetOpacity(1)
	}
	s.spawned.Add(1)
}

// Start enables per-tick updates. Idempotent
func (s *System) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.cleaned {
		s.running = true
	}
}

// Stop disables per-tick updates without touching particle state, so a
// resumed system continues where it paused. Idempotent
func (s *System) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
}

// Running reports whether updates are enabled
func (s *System) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Tick advances the simulation by dt. No-op unless running.
// Particles update in pool order within the frame; expired or escaped
// particles return to the free pool with their handles hidden
func (s *System) Tick(dt time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running || s.cleaned || dt <= 0 {
		return
	}

	dts := dt.Seconds()
	cull := s.cfg.Bounds.Pad(s.cfg.BoundsPad)
	damp := 1.0
	if s.cfg.Drag > 0 {
		damp = 1.0 - s.cfg.Drag*dts
		if damp < 0 {
			damp = 0
		}
	}

	s.pool.ForEachReverse(func(pt *Particle) {
		pt.Age += dt

		if s.cfg.Force != nil {
			s.cfg.Force(pt, dts)
		}
		pt.VY += s.cfg.Gravity * dts
		pt.VX *= damp
		pt.VY *= damp
		pt.X += pt.VX * dts
		pt.Y += pt.VY * dts

		pt.Opacity = 1.0 - float64(pt.Age)/float64(pt.Lifetime)

		if pt.Opacity <= 0 || !cull.Contains(pt.X, pt.Y) {
			if pt.Handle != nil {
				pt.Handle.SetOpacity(0)
			}
			s.pool.Release(pt)
			return
		}

		if pt.Handle != nil {
			pt.Handle.UpdateTransform(pt.X, pt.Y, pt.Scale)
			pt.Handle.SetOpacity(pt.Opacity)
		}
	})
}

// Cleanup releases all visual handles, pool and active alike, and empties
// both collections. Safe to call multiple times; the system is inert
// afterwards and any further Tick produces no mutation
func (s *System) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cleaned {
		return
	}
	s.pool.ForEachSlot(func(pt *Particle) {
		if pt.Handle != nil {
			pt.Handle.Destroy()
			pt.Handle = nil
		}
	})
	s.pool.Clear()
	s.running = false
	s.cleaned = true
}

// ActiveCount returns the number of live particles
func (s *System) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pool.Active()
}

// SpawnedTotal returns total successful spawns since creation
func (s *System) SpawnedTotal() int64 {
	return s.spawned.Load()
}

// DroppedTotal returns spawns refused due to pool exhaustion
func (s *System) DroppedTotal() int64 {
	return s.dropped.Load()
}
