package status

import "sync/atomic"

// Conventional metric keys written by the coordinator and particle systems.
// Consumers may register additional keys freely
const (
	KeyFrameRate      = "frames.rate"
	KeyTicks          = "frames.ticks"
	KeyMemoryBytes    = "memory.heap_bytes"
	KeyAnimsRunning   = "animations.running"
	KeyAnimsTotal     = "animations.registered"
	KeyParticlesLive  = "particles.active"
	KeyParticlesSpawn = "particles.spawned"
	KeyParticlesDrop  = "particles.dropped"
	KeyDegraded       = "coordinator.degraded"
)

// Registry is the central metrics facade.
// Systems cache pointers during init; update loops write directly to atomics
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}
