package parameter

import "time"

// Impact section: metric sparks accelerating upward
const (
	ImpactPoolSize  = 40
	ImpactLifetime  = 2500 * time.Millisecond
	ImpactSpawnRate = 10.0

	// ImpactRiseSpeed is initial upward speed (cells/sec)
	ImpactRiseSpeed = 3.0

	// ImpactLift is upward acceleration (cells/sec²), applied as
	// negative gravity
	ImpactLift = 4.0

	// ImpactBurstEvery / ImpactBurstCount add celebratory spark volleys
	ImpactBurstEvery = 5 * time.Second
	ImpactBurstCount = 10
)
