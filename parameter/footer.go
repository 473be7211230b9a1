package parameter

import "time"

// Footer section: sparse slow ambient drift
const (
	FooterPoolSize  = 24
	FooterLifetime  = 8 * time.Second
	FooterSpawnRate = 2.0

	// FooterDriftSpeed is max speed in any direction (cells/sec)
	FooterDriftSpeed = 0.8
)
