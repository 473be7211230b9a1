package parameter

import "time"

// Performance degradation fallback
const (
	// PerfMinFrameRate is the frame rate floor (fps); sustained readings
	// below it force-pause all sections
	PerfMinFrameRate = 20.0

	// PerfSustainWindow is how long the estimate must stay below the
	// floor before the global disable fires
	PerfSustainWindow = 2 * time.Second

	// PerfFrameRateAlpha is the EWMA smoothing factor for the frame rate
	// estimate; higher reacts faster, lower rejects one-frame spikes
	PerfFrameRateAlpha = 0.1

	// PerfMemSampleEvery is the tick stride for heap sampling; reading
	// memory stats every frame is not worth the pause cost
	PerfMemSampleEvery = 60

	// PerfMaxHeapBytes triggers a memory performance-issue event when the
	// sampled heap exceeds it. Observational only, no global disable
	PerfMaxHeapBytes = 256 << 20
)
