package section

import (
	"math"
	"time"

	"github.com/glimmerfx/glimmer/controller"
	"github.com/glimmerfx/glimmer/parameter"
	"github.com/glimmerfx/glimmer/particle"
	"github.com/glimmerfx/glimmer/render"
)

// Framework builds the methodology section: particles orbiting three
// pillar nodes, spawned tangentially so attraction bends them into orbits
func Framework(target render.Target, ov Overrides) controller.Animation {
	return frameworkAnimation(target, ov)
}

func frameworkAnimation(target render.Target, ov Overrides) *animation {
	target = ensureTarget(target)
	bounds := target.Bounds()
	palette := ov.palette(render.MustGradientHex("#34d399", "#22d3ee"))

	type pillar struct{ x, y float64 }
	pillars := make([]pillar, parameter.FrameworkPillars)
	for i := range pillars {
		frac := (float64(i) + 0.5) / float64(len(pillars))
		pillars[i] = pillar{
			x: bounds.MinX + frac*bounds.Width(),
			y: bounds.MinY + bounds.Height()/2,
		}
	}

	// Orbital attraction toward the nearest pillar, with damping that
	// circularizes the orbit over the particle's lifetime
	force := func(p *particle.Particle, dt float64) {
		nearest := pillars[0]
		best := math.MaxFloat64
		for _, pl := range pillars {
			dx, dy := pl.x-p.X, pl.y-p.Y
			if d := dx*dx + dy*dy; d < best {
				best = d
				nearest = pl
			}
		}
		dx, dy := nearest.x-p.X, nearest.y-p.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist < 0.5 {
			return
		}
		p.VX += (dx / dist) * parameter.FrameworkAttraction * dt
		p.VY += (dy / dist) * parameter.FrameworkAttraction * dt
		p.VX -= p.VX * parameter.FrameworkDamping * dt
		p.VY -= p.VY * parameter.FrameworkDamping * dt
	}

	sys := particle.NewSystem(particle.Config{
		PoolSize:  ov.poolSize(parameter.FrameworkPoolSize),
		Lifetime:  ov.lifetime(parameter.FrameworkLifetime),
		Bounds:    bounds,
		BoundsPad: parameter.BoundsPad,
		Palette:   palette,
		Force:     force,
	}, target)

	a := newAnimation(sys, ov.rng())
	em := &emitter{rate: ov.spawnRate(parameter.FrameworkSpawnRate)}

	for _, pl := range pillars {
		if node := a.addAux(target.NewHandle('◉', palette.At(0))); node != nil {
			node.UpdateTransform(pl.x, pl.y, 1.5)
			node.SetOpacity(0.9)
		}
	}

	a.step = func(dt time.Duration) {
		em.tick(dt, func() {
			pl := pillars[a.rng.Intn(len(pillars))]
			radius := parameter.FrameworkOrbitRadiusMin +
				a.rng.Float64()*(parameter.FrameworkOrbitRadiusMax-parameter.FrameworkOrbitRadiusMin)
			angle := a.rng.Float64() * 2 * math.Pi

			x := pl.x + radius*math.Cos(angle)
			y := pl.y + radius*math.Sin(angle)
			// Tangential launch: perpendicular to the radial direction
			vx := -math.Sin(angle) * parameter.FrameworkTangentialSpeed
			vy := math.Cos(angle) * parameter.FrameworkTangentialSpeed
			sys.Spawn(x, y, vx, vy)
		})
	}
	return a
}
