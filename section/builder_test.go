package section

import (
	"testing"
	"time"

	"github.com/glimmerfx/glimmer/clock"
	"github.com/glimmerfx/glimmer/controller"
	"github.com/glimmerfx/glimmer/core"
	"github.com/glimmerfx/glimmer/render"
)

func sectionTarget() *render.NullTarget {
	return render.NewNullTarget(core.NewRect(0, 0, 80, 24))
}

func TestBuildersCoverEverySection(t *testing.T) {
	builders := Builders()
	if len(builders) != len(Order) {
		t.Fatalf("Expected %d builders, got %d", len(Order), len(builders))
	}
	for _, id := range Order {
		if builders[id] == nil {
			t.Errorf("Missing builder for %s", id)
		}
	}
}

func TestEveryBuilderAnimates(t *testing.T) {
	for id, build := range Builders() {
		t.Run(id, func(t *testing.T) {
			target := sectionTarget()
			anim := build(target, Overrides{Seed: 1})
			if anim == nil {
				t.Fatal("Builder returned nil animation")
			}

			anim.Start()
			for i := 0; i < 120; i++ {
				anim.Tick(16 * time.Millisecond)
			}
			if target.MutationCount() == 0 {
				t.Error("Two seconds of ticking produced no visual mutation")
			}

			anim.Cleanup()
			before := target.MutationCount()
			anim.Tick(16 * time.Millisecond)
			if got := target.MutationCount(); got != before {
				t.Errorf("Mutation after Cleanup: %d -> %d", before, got)
			}
		})
	}
}

func TestTickWithoutStartIsInert(t *testing.T) {
	target := sectionTarget()
	anim := Hero(target, Overrides{Seed: 1})

	before := target.MutationCount()
	for i := 0; i < 60; i++ {
		anim.Tick(16 * time.Millisecond)
	}
	if got := target.MutationCount(); got != before {
		t.Errorf("Unstarted animation mutated the target: %d -> %d", before, got)
	}
}

func TestLifecycleIdempotence(t *testing.T) {
	anim := Footer(sectionTarget(), Overrides{Seed: 1})

	anim.Start()
	anim.Start()
	anim.Stop()
	anim.Stop()
	anim.Start()
	anim.Cleanup()
	anim.Cleanup()
	anim.Start() // Start after Cleanup must not revive
	anim.Tick(16 * time.Millisecond)
}

func TestPoolSizeOverrideBoundsParticles(t *testing.T) {
	a := heroAnimation(sectionTarget(), Overrides{PoolSize: 5, SpawnRate: 1000, Seed: 1})
	a.Start()
	for i := 0; i < 60; i++ {
		a.Tick(16 * time.Millisecond)
	}

	if got := a.System().ActiveCount(); got > 5 {
		t.Errorf("Pool override ignored: %d active", got)
	}
	if a.System().DroppedTotal() == 0 {
		t.Error("Expected drops at 1000/s spawn rate into a 5-slot pool")
	}
}

func TestSeededRunsAreDeterministic(t *testing.T) {
	run := func() (int64, int64) {
		a := challengeAnimation(sectionTarget(), Overrides{Seed: 42})
		a.Start()
		for i := 0; i < 200; i++ {
			a.Tick(16 * time.Millisecond)
		}
		return a.System().SpawnedTotal(), a.System().DroppedTotal()
	}

	s1, d1 := run()
	s2, d2 := run()
	if s1 != s2 || d1 != d2 {
		t.Errorf("Seeded runs diverged: (%d,%d) vs (%d,%d)", s1, d1, s2, d2)
	}
}

func TestNilTargetBuildsHeadless(t *testing.T) {
	anim := Framework(nil, Overrides{Seed: 1})
	anim.Start()
	anim.Tick(16 * time.Millisecond)
	anim.Cleanup()
}

// Reduced motion through the full stack: a running section must stop
// mutating its target the moment the preference flips
func TestCoordinatorReducedMotionStopsSectionMutation(t *testing.T) {
	target := sectionTarget()
	ticks := clock.NewManualTicker()
	coord := controller.New(controller.Config{Ticks: ticks})
	coord.Start()
	defer coord.Destroy()

	anim := Hero(target, Overrides{Seed: 1})
	if _, err := coord.Register(IDHero, anim, target); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	coord.SetVisible(IDHero, true)

	for i := 0; i < 60; i++ {
		ticks.Step(16 * time.Millisecond)
	}
	if target.MutationCount() == 0 {
		t.Fatal("Expected mutation while running")
	}

	coord.SetReducedMotion(true)
	before := target.MutationCount()
	for i := 0; i < 60; i++ {
		ticks.Step(16 * time.Millisecond)
	}
	if got := target.MutationCount(); got != before {
		t.Errorf("Mutation under reduced motion: %d -> %d", before, got)
	}
}
