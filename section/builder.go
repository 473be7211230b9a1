// Package section provides the per-section animation builders for the
// six page regions: hero, challenge, framework, impact, engagement and
// footer. Each builder configures a particle system and any auxiliary
// glyph elements against the target it is given, and returns a composite
// animation for coordinator registration
package section

import (
	"math/rand"
	"sync"
	"time"

	"github.com/glimmerfx/glimmer/controller"
	"github.com/glimmerfx/glimmer/core"
	"github.com/glimmerfx/glimmer/particle"
	"github.com/glimmerfx/glimmer/render"
)

// Canonical section ids in page order
const (
	IDHero       = "hero"
	IDChallenge  = "challenge"
	IDFramework  = "framework"
	IDImpact     = "impact"
	IDEngagement = "engagement"
	IDFooter     = "footer"
)

// Order lists section ids top to bottom
var Order = []string{IDHero, IDChallenge, IDFramework, IDImpact, IDEngagement, IDFooter}

// BuildFunc constructs a section animation bound to a render target
type BuildFunc func(target render.Target, ov Overrides) controller.Animation

// ensureTarget substitutes a headless target when the host passed nil:
// a missing container is a setup failure that silently no-ops
func ensureTarget(t render.Target) render.Target {
	if t == nil {
		return render.NewNullTarget(core.NewRect(0, 0, 80, 24))
	}
	return t
}

// Builders returns the factory for every section keyed by id
func Builders() map[string]BuildFunc {
	return map[string]BuildFunc{
		IDHero:       Hero,
		IDChallenge:  Challenge,
		IDFramework:  Framework,
		IDImpact:     Impact,
		IDEngagement: Engagement,
		IDFooter:     Footer,
	}
}

// Overrides carries optional config-file tuning. Zero values keep the
// parameter-package defaults
type Overrides struct {
	PoolSize  int
	SpawnRate float64
	Lifetime  time.Duration
	Palette   render.Gradient
	Seed      int64 // 0 seeds from the wall clock
}

func (o Overrides) poolSize(def int) int {
	if o.PoolSize > 0 {
		return o.PoolSize
	}
	return def
}

func (o Overrides) spawnRate(def float64) float64 {
	if o.SpawnRate > 0 {
		return o.SpawnRate
	}
	return def
}

func (o Overrides) lifetime(def time.Duration) time.Duration {
	if o.Lifetime > 0 {
		return o.Lifetime
	}
	return def
}

func (o Overrides) palette(def render.Gradient) render.Gradient {
	if o.Palette != (render.Gradient{}) {
		return o.Palette
	}
	return def
}

func (o Overrides) rng() *rand.Rand {
	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// animation composes a particle system with section-specific emission
// logic and auxiliary glyph handles
type animation struct {
	mu      sync.Mutex
	running bool
	cleaned bool
	elapsed time.Duration

	rng  *rand.Rand
	sys  *particle.System
	aux  []render.Handle
	step func(dt time.Duration) // emission + aux updates, nil OK
}

func newAnimation(sys *particle.System, rng *rand.Rand) *animation {
	return &animation{sys: sys, rng: rng}
}

// addAux registers an auxiliary handle for cleanup; nil is ignored
// (destroyed targets return nil handles, a silent setup failure)
func (a *animation) addAux(h render.Handle) render.Handle {
	if h != nil {
		a.aux = append(a.aux, h)
	}
	return h
}

// Start implements controller.Animation; idempotent
func (a *animation) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cleaned {
		return
	}
	a.running = true
	a.sys.Start()
}

// Stop implements controller.Animation; idempotent
func (a *animation) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.running = false
	a.sys.Stop()
}

// Tick implements controller.Animation: run section emission, then the
// particle simulation
func (a *animation) Tick(dt time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.running || a.cleaned {
		return
	}
	a.elapsed += dt
	if a.step != nil {
		a.step(dt)
	}
	a.sys.Tick(dt)
}

// Cleanup implements controller.Animation; terminal and multi-call safe
func (a *animation) Cleanup() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cleaned {
		return
	}
	for _, h := range a.aux {
		h.Destroy()
	}
	a.aux = nil
	a.sys.Cleanup()
	a.running = false
	a.cleaned = true
}

// System exposes the underlying particle system for tests and metrics
func (a *animation) System() *particle.System {
	return a.sys
}

// emitter converts a spawn rate into per-frame spawn counts.
// Rate-based continuous emission; bursts call spawn directly
type emitter struct {
	rate float64 // particles per second, <= 0 disables
	acc  float64
}

func (e *emitter) tick(dt time.Duration, spawn func()) {
	if e.rate <= 0 {
		return
	}
	e.acc += dt.Seconds() * e.rate
	for e.acc >= 1 {
		e.acc--
		spawn()
	}
}
