package controller

import "time"

// Animation is one section's animation instance as the coordinator sees
// it. Implementations are typically composites built by the section
// package: a particle system plus emitters and auxiliary glyphs.
//
// Contract:
//   - Start and Stop are idempotent
//   - Tick is called only between Start and Stop, from the frame loop
//   - Cleanup is terminal and must be safe to call multiple times;
//     after Cleanup no call may mutate any render handle
type Animation interface {
	Start()
	Stop()
	Tick(dt time.Duration)
	Cleanup()
}

// SectionState is a section's lifecycle state inside the coordinator
type SectionState uint8

const (
	// StateUnregistered: unknown to the coordinator
	StateUnregistered SectionState = iota

	// StatePaused: registered, animation stopped
	StatePaused

	// StateRunning: registered, animation ticking every frame
	StateRunning
)

// String returns a human-readable state name
func (s SectionState) String() string {
	switch s {
	case StatePaused:
		return "paused"
	case StateRunning:
		return "running"
	default:
		return "unregistered"
	}
}
