package controller

import (
	"runtime"
	"time"

	"github.com/glimmerfx/glimmer/parameter"
)

// PerfConfig tunes the degradation fallback
type PerfConfig struct {
	// MinFrameRate is the fps floor; zero takes the package default
	MinFrameRate float64

	// SustainWindow is how long the estimate must stay below the floor
	SustainWindow time.Duration

	// Alpha is the EWMA smoothing factor for the fps estimate
	Alpha float64

	// MemSampleEvery is the tick stride for heap sampling
	MemSampleEvery uint64

	// MaxHeapBytes triggers a memory performance-issue event
	MaxHeapBytes uint64
}

func (c PerfConfig) withDefaults() PerfConfig {
	if c.MinFrameRate <= 0 {
		c.MinFrameRate = parameter.PerfMinFrameRate
	}
	if c.SustainWindow <= 0 {
		c.SustainWindow = parameter.PerfSustainWindow
	}
	if c.Alpha <= 0 || c.Alpha > 1 {
		c.Alpha = parameter.PerfFrameRateAlpha
	}
	if c.MemSampleEvery == 0 {
		c.MemSampleEvery = parameter.PerfMemSampleEvery
	}
	if c.MaxHeapBytes == 0 {
		c.MaxHeapBytes = parameter.PerfMaxHeapBytes
	}
	return c
}

// perfMonitor estimates frame rate and heap usage from frame deltas.
// A sustained estimate below the floor latches a degradation episode;
// the episode stays latched until reset so exactly one trigger fires.
//
// Not self-synchronized: all calls happen under the coordinator's lock
type perfMonitor struct {
	cfg PerfConfig

	fps    float64
	seeded bool
	lowFor time.Duration

	episode    bool // degradation latched
	memEpisode bool // memory warning latched

	heapBytes uint64
	tickIndex uint64

	// readMemStats is swapped in tests to avoid real heap probing
	readMemStats func() uint64
}

func newPerfMonitor(cfg PerfConfig) *perfMonitor {
	return &perfMonitor{
		cfg: cfg.withDefaults(),
		readMemStats: func() uint64 {
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			return ms.HeapAlloc
		},
	}
}

// sample folds one frame delta into the fps estimate.
// Returns true exactly once per degradation episode
func (m *perfMonitor) sample(dt time.Duration) (trigger bool, fps float64) {
	if dt <= 0 {
		return false, m.fps
	}

	inst := 1.0 / dt.Seconds()
	if !m.seeded {
		m.fps = inst
		m.seeded = true
	} else {
		m.fps += m.cfg.Alpha * (inst - m.fps)
	}

	if m.fps < m.cfg.MinFrameRate {
		m.lowFor += dt
	} else {
		m.lowFor = 0
	}

	if m.lowFor >= m.cfg.SustainWindow && !m.episode {
		m.episode = true
		return true, m.fps
	}
	return false, m.fps
}

// sampleMemory probes the heap every MemSampleEvery ticks.
// Returns true once when the heap first exceeds the cap; re-arms after
// the heap falls back below it
func (m *perfMonitor) sampleMemory() (warn bool, bytes uint64) {
	m.tickIndex++
	if m.tickIndex%m.cfg.MemSampleEvery != 0 {
		return false, m.heapBytes
	}

	m.heapBytes = m.readMemStats()
	if m.heapBytes > m.cfg.MaxHeapBytes {
		if !m.memEpisode {
			m.memEpisode = true
			return true, m.heapBytes
		}
	} else {
		m.memEpisode = false
	}
	return false, m.heapBytes
}

// frameRate returns the current smoothed estimate
func (m *perfMonitor) frameRate() float64 {
	return m.fps
}

// resetEpisode re-arms the degradation trigger after an explicit
// operator re-enable
func (m *perfMonitor) resetEpisode() {
	m.episode = false
	m.lowFor = 0
}
