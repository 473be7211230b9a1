package section

import (
	"math"
	"time"

	"github.com/glimmerfx/glimmer/controller"
	"github.com/glimmerfx/glimmer/parameter"
	"github.com/glimmerfx/glimmer/particle"
	"github.com/glimmerfx/glimmer/render"
)

// Hero builds the opening section: data points drifting up from the
// bottom edge with gentle horizontal sway, under a pulsing center glow
func Hero(target render.Target, ov Overrides) controller.Animation {
	return heroAnimation(target, ov)
}

func heroAnimation(target render.Target, ov Overrides) *animation {
	target = ensureTarget(target)
	bounds := target.Bounds()
	palette := ov.palette(render.MustGradientHex("#38bdf8", "#818cf8"))

	sys := particle.NewSystem(particle.Config{
		PoolSize:  ov.poolSize(parameter.HeroPoolSize),
		Lifetime:  ov.lifetime(parameter.HeroLifetime),
		Bounds:    bounds,
		BoundsPad: parameter.BoundsPad,
		Palette:   palette,
	}, target)

	a := newAnimation(sys, ov.rng())
	em := &emitter{rate: ov.spawnRate(parameter.HeroSpawnRate)}

	glow := a.addAux(target.NewHandle('◆', palette.At(0.5)))
	if glow != nil {
		glow.UpdateTransform(bounds.Width()/2, bounds.Height()/2, 1.5)
	}

	a.step = func(dt time.Duration) {
		em.tick(dt, func() {
			x := bounds.MinX + a.rng.Float64()*bounds.Width()
			y := bounds.MaxY - 1
			vx := (a.rng.Float64()*2 - 1) * parameter.HeroSwaySpeed
			vy := -(parameter.HeroDriftSpeedMin +
				a.rng.Float64()*(parameter.HeroDriftSpeedMax-parameter.HeroDriftSpeedMin))
			sys.Spawn(x, y, vx, vy)
		})

		if glow != nil {
			phase := float64(a.elapsed) / float64(parameter.HeroGlowPeriod)
			glow.SetOpacity(0.4 + 0.6*(0.5+0.5*math.Sin(2*math.Pi*phase)))
		}
	}
	return a
}
