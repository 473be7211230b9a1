package particle

import (
	"time"

	"github.com/glimmerfx/glimmer/render"
)

// Particle is a single simulated visual point. Owned exclusively by its
// pool; recycled via borrow/return, never freed while the system is alive.
// The bound render handle is the only externally visible output
type Particle struct {
	X, Y   float64 // Position in target-local cells
	VX, VY float64 // Velocity in cells per second

	Opacity float64 // [0,1], decays linearly over Lifetime
	Scale   float64

	Age      time.Duration
	Lifetime time.Duration

	Handle render.Handle
	Active bool

	poolIndex int // Slot index for swap-and-pop release
}

// init fully reinitializes kinematic and visual state on spawn.
// A respawned particle must carry nothing of its prior trajectory
func (p *Particle) init(x, y, vx, vy float64, lifetime time.Duration, scale float64) {
	p.X, p.Y = x, y
	p.VX, p.VY = vx, vy
	p.Opacity = 1.0
	p.Scale = scale
	p.Age = 0
	p.Lifetime = lifetime
	p.Active = true
}

// clear resets simulation state on release. The handle binding survives:
// handles belong to the pool slot, not to one activation
func (p *Particle) clear() {
	p.X, p.Y = 0, 0
	p.VX, p.VY = 0, 0
	p.Opacity = 0
	p.Scale = 0
	p.Age = 0
	p.Lifetime = 0
	p.Active = false
}
