package events

import "time"

// Type identifies a telemetry event emitted by the coordinator.
// Delivery and formatting are owned by the consuming collaborator
type Type int

const (
	// TypeAnimationError signals a panic contained inside one section's
	// frame update. The section has been swapped to its static fallback
	// and unregistered
	// Emitter: Coordinator | Section: set | Metric: "animation_error"
	TypeAnimationError Type = iota

	// TypePerformanceIssue signals a sampled metric crossing its threshold
	// Emitter: PerfMonitor via Coordinator | Metric: "frame_rate" or "memory_bytes"
	TypePerformanceIssue

	// TypeDegradedMode signals the global soft-fail: all running sections
	// were paused after sustained low frame rate. Emitted exactly once per
	// degradation episode
	TypeDegradedMode

	// TypeSectionRegistered signals a section entering the coordinator
	TypeSectionRegistered

	// TypeSectionUnregistered signals removal, either explicit or after a
	// fatal animation error
	TypeSectionUnregistered
)

// String returns the wire name of the event type
func (t Type) String() string {
	switch t {
	case TypeAnimationError:
		return "animation error"
	case TypePerformanceIssue:
		return "performance issue"
	case TypeDegradedMode:
		return "degraded mode"
	case TypeSectionRegistered:
		return "section registered"
	case TypeSectionUnregistered:
		return "section unregistered"
	default:
		return "unknown"
	}
}

// Event is a single telemetry record with metric metadata.
// Value and Threshold are zero for lifecycle events
type Event struct {
	Type      Type
	Section   string // Empty for global events
	Metric    string
	Value     float64
	Threshold float64
	Timestamp time.Time
}
