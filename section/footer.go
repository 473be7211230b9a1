package section

import (
	"time"

	"github.com/glimmerfx/glimmer/controller"
	"github.com/glimmerfx/glimmer/parameter"
	"github.com/glimmerfx/glimmer/particle"
	"github.com/glimmerfx/glimmer/render"
)

// Footer builds the closing section: a sparse, slow ambient drift
func Footer(target render.Target, ov Overrides) controller.Animation {
	return footerAnimation(target, ov)
}

func footerAnimation(target render.Target, ov Overrides) *animation {
	target = ensureTarget(target)
	bounds := target.Bounds()
	palette := ov.palette(render.MustGradientHex("#64748b", "#94a3b8"))

	sys := particle.NewSystem(particle.Config{
		PoolSize:  ov.poolSize(parameter.FooterPoolSize),
		Lifetime:  ov.lifetime(parameter.FooterLifetime),
		Bounds:    bounds,
		BoundsPad: parameter.BoundsPad,
		Palette:   palette,
		Scale:     0.7,
	}, target)

	a := newAnimation(sys, ov.rng())
	em := &emitter{rate: ov.spawnRate(parameter.FooterSpawnRate)}

	a.step = func(dt time.Duration) {
		em.tick(dt, func() {
			x := bounds.MinX + a.rng.Float64()*bounds.Width()
			y := bounds.MinY + a.rng.Float64()*bounds.Height()
			vx := (a.rng.Float64()*2 - 1) * parameter.FooterDriftSpeed
			vy := (a.rng.Float64()*2 - 1) * parameter.FooterDriftSpeed
			sys.Spawn(x, y, vx, vy)
		})
	}
	return a
}
