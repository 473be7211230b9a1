package section

import (
	"time"

	"github.com/glimmerfx/glimmer/controller"
	"github.com/glimmerfx/glimmer/parameter"
	"github.com/glimmerfx/glimmer/particle"
	"github.com/glimmerfx/glimmer/render"
)

// Engagement builds the call-to-action section: two particle streams
// entering from the left and right edges, converging on the center and
// slowing as they meet
func Engagement(target render.Target, ov Overrides) controller.Animation {
	return engagementAnimation(target, ov)
}

func engagementAnimation(target render.Target, ov Overrides) *animation {
	target = ensureTarget(target)
	bounds := target.Bounds()
	palette := ov.palette(render.MustGradientHex("#c084fc", "#f472b6"))

	sys := particle.NewSystem(particle.Config{
		PoolSize:  ov.poolSize(parameter.EngagementPoolSize),
		Lifetime:  ov.lifetime(parameter.EngagementLifetime),
		Bounds:    bounds,
		BoundsPad: parameter.BoundsPad,
		Drag:      parameter.EngagementDrag,
		Palette:   palette,
	}, target)

	a := newAnimation(sys, ov.rng())
	em := &emitter{rate: ov.spawnRate(parameter.EngagementSpawnRate)}
	fromLeft := false

	a.step = func(dt time.Duration) {
		em.tick(dt, func() {
			fromLeft = !fromLeft
			y := bounds.MinY + a.rng.Float64()*bounds.Height()
			speed := parameter.EngagementApproachSpeed * (0.7 + 0.6*a.rng.Float64())

			if fromLeft {
				sys.Spawn(bounds.MinX, y, speed, 0)
			} else {
				sys.Spawn(bounds.MaxX-1, y, -speed, 0)
			}
		})
	}
	return a
}
