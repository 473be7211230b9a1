package section

import (
	"math"
	"time"

	"github.com/glimmerfx/glimmer/controller"
	"github.com/glimmerfx/glimmer/parameter"
	"github.com/glimmerfx/glimmer/particle"
	"github.com/glimmerfx/glimmer/render"
)

// Challenge builds the problem-statement section: a restless background
// scatter punctuated by shatter bursts radiating from a random point
func Challenge(target render.Target, ov Overrides) controller.Animation {
	return challengeAnimation(target, ov)
}

func challengeAnimation(target render.Target, ov Overrides) *animation {
	target = ensureTarget(target)
	bounds := target.Bounds()
	palette := ov.palette(render.MustGradientHex("#f87171", "#fbbf24"))

	sys := particle.NewSystem(particle.Config{
		PoolSize:  ov.poolSize(parameter.ChallengePoolSize),
		Lifetime:  ov.lifetime(parameter.ChallengeLifetime),
		Bounds:    bounds,
		BoundsPad: parameter.BoundsPad,
		Drag:      parameter.ChallengeDrag,
		Palette:   palette,
		Glyph:     '▪',
	}, target)

	a := newAnimation(sys, ov.rng())
	em := &emitter{rate: ov.spawnRate(parameter.ChallengeSpawnRate)}
	var sinceBurst time.Duration

	a.step = func(dt time.Duration) {
		em.tick(dt, func() {
			x := bounds.MinX + a.rng.Float64()*bounds.Width()
			y := bounds.MinY + a.rng.Float64()*bounds.Height()
			vx := (a.rng.Float64()*2 - 1) * parameter.ChallengeJitter
			vy := (a.rng.Float64()*2 - 1) * parameter.ChallengeJitter
			sys.Spawn(x, y, vx, vy)
		})

		sinceBurst += dt
		if sinceBurst >= parameter.ChallengeBurstEvery {
			sinceBurst = 0
			cx := bounds.MinX + (0.25+0.5*a.rng.Float64())*bounds.Width()
			cy := bounds.MinY + (0.25+0.5*a.rng.Float64())*bounds.Height()
			for i := 0; i < parameter.ChallengeBurstCount; i++ {
				angle := 2 * math.Pi * float64(i) / parameter.ChallengeBurstCount
				speed := (0.5 + 0.5*a.rng.Float64()) * parameter.ChallengeScatterSpeed
				sys.Spawn(cx, cy, speed*math.Cos(angle), speed*math.Sin(angle))
			}
		}
	}
	return a
}
