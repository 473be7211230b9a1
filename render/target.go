package render

import (
	"github.com/glimmerfx/glimmer/core"
)

// Handle is a single visual element bound to one particle or auxiliary
// glyph. Handles are the only externally observable output of the
// simulation: each frame mutates transform and opacity, nothing else
type Handle interface {
	// UpdateTransform moves the element in target-local coordinates.
	// Scale selects the glyph weight on cell-based targets
	UpdateTransform(x, y, scale float64)

	// SetOpacity sets element opacity in [0,1]; 0 hides the element
	SetOpacity(o float64)

	// Destroy releases the element. Further mutations are no-ops
	Destroy()
}

// Target is a section-owned rendering surface. Implementations include
// the tcell terminal adapter and the headless NullTarget; simulation code
// never depends on a concrete backend
type Target interface {
	// NewHandle allocates a visual element. glyph 0 lets the target pick
	// a weight-appropriate default. Returns nil when the target has been
	// destroyed (setup failure is a silent no-op)
	NewHandle(glyph rune, color Color) Handle

	// Fill paints a static background gradient over the whole region.
	// Used as the fallback when a section's animation fails
	Fill(g Gradient)

	// Flush presents the current element states. Cell targets composite
	// into their screen region; headless targets record the call
	Flush()

	// Bounds returns the simulation rect in target-local coordinates
	Bounds() core.Rect

	// Destroy releases the surface and all outstanding handles.
	// Safe to call multiple times
	Destroy()
}
