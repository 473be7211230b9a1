package parameter

import "time"

// Framework section: particles orbiting three pillar nodes
const (
	FrameworkPoolSize  = 54
	FrameworkLifetime  = 6 * time.Second
	FrameworkSpawnRate = 8.0

	// FrameworkPillars is the number of orbit anchor nodes
	FrameworkPillars = 3

	// FrameworkAttraction is orbital attraction strength (cells/sec²)
	FrameworkAttraction = 40.0

	// FrameworkOrbitRadiusMin/Max for varied orbital radii (cells)
	FrameworkOrbitRadiusMin = 2.0
	FrameworkOrbitRadiusMax = 6.0

	// FrameworkDamping circularizes orbits (1/sec)
	FrameworkDamping = 1.5

	// FrameworkTangentialSpeed is velocity magnitude at spawn (cells/sec)
	FrameworkTangentialSpeed = 7.0
)
