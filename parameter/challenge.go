package parameter

import "time"

// Challenge section: scattered fragments with periodic shatter bursts
const (
	ChallengePoolSize  = 48
	ChallengeLifetime  = 3 * time.Second
	ChallengeSpawnRate = 6.0 // background scatter, particles per second

	// ChallengeBurstEvery is the interval between shatter bursts
	ChallengeBurstEvery = 4 * time.Second
	// ChallengeBurstCount is particles per burst
	ChallengeBurstCount = 14

	// ChallengeScatterSpeed is max radial speed of burst fragments (cells/sec)
	ChallengeScatterSpeed = 9.0

	// ChallengeJitter is random velocity added on spawn (cells/sec)
	ChallengeJitter = 2.5

	// ChallengeDrag damps fragment velocity (1/sec)
	ChallengeDrag = 0.6
)
