package parameter

import "time"

// Hero section: upward-drifting data points with a central glow pulse
const (
	HeroPoolSize  = 60
	HeroLifetime  = 4 * time.Second
	HeroSpawnRate = 12.0 // particles per second

	// HeroDriftSpeedMin/Max is initial upward speed (cells/sec)
	HeroDriftSpeedMin = 1.5
	HeroDriftSpeedMax = 4.0

	// HeroSwaySpeed is horizontal velocity amplitude (cells/sec)
	HeroSwaySpeed = 1.2

	// HeroGlowPeriod is the glow pulse cycle of the center node
	HeroGlowPeriod = 3 * time.Second
)
