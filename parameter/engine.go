package parameter

import "time"

// Frame pacing
const (
	// TickInterval is the coordinator's fixed frame interval (~60fps)
	TickInterval = 16 * time.Millisecond

	// BoundsPad is how far outside its box a particle may drift before
	// it is returned to the pool (cells)
	BoundsPad = 2.0
)
