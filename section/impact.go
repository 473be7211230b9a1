package section

import (
	"time"

	"github.com/glimmerfx/glimmer/controller"
	"github.com/glimmerfx/glimmer/parameter"
	"github.com/glimmerfx/glimmer/particle"
	"github.com/glimmerfx/glimmer/render"
)

// Impact builds the results section: metric sparks rising with positive
// lift, plus a celebratory volley every few seconds
func Impact(target render.Target, ov Overrides) controller.Animation {
	return impactAnimation(target, ov)
}

func impactAnimation(target render.Target, ov Overrides) *animation {
	target = ensureTarget(target)
	bounds := target.Bounds()
	palette := ov.palette(render.MustGradientHex("#fde047", "#fb923c"))

	sys := particle.NewSystem(particle.Config{
		PoolSize:  ov.poolSize(parameter.ImpactPoolSize),
		Lifetime:  ov.lifetime(parameter.ImpactLifetime),
		Bounds:    bounds,
		BoundsPad: parameter.BoundsPad,
		Gravity:   -parameter.ImpactLift, // lift, not fall
		Palette:   palette,
		Glyph:     '▴',
	}, target)

	a := newAnimation(sys, ov.rng())
	em := &emitter{rate: ov.spawnRate(parameter.ImpactSpawnRate)}
	var sinceBurst time.Duration

	spawnSpark := func() {
		x := bounds.MinX + a.rng.Float64()*bounds.Width()
		y := bounds.MaxY - 1
		vx := (a.rng.Float64()*2 - 1) * 0.8
		vy := -parameter.ImpactRiseSpeed * (0.6 + 0.8*a.rng.Float64())
		sys.Spawn(x, y, vx, vy)
	}

	a.step = func(dt time.Duration) {
		em.tick(dt, spawnSpark)

		sinceBurst += dt
		if sinceBurst >= parameter.ImpactBurstEvery {
			sinceBurst = 0
			for i := 0; i < parameter.ImpactBurstCount; i++ {
				spawnSpark()
			}
		}
	}
	return a
}
