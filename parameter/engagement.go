package parameter

import "time"

// Engagement section: two particle streams converging on the center
const (
	EngagementPoolSize  = 44
	EngagementLifetime  = 3500 * time.Millisecond
	EngagementSpawnRate = 9.0

	// EngagementApproachSpeed is initial speed toward the midpoint (cells/sec)
	EngagementApproachSpeed = 5.0

	// EngagementDrag slows streams as they meet (1/sec)
	EngagementDrag = 0.8
)
