package render

import (
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/glimmerfx/glimmer/core"
)

// Scale thresholds for glyph weight selection on cell targets
const (
	glyphHeavyScale = 1.4
	glyphMidScale   = 0.9
)

// TerminalTarget renders one section's elements into a rectangular region
// of a shared tcell screen. Simulation coordinates are target-local cells;
// the region offset is applied at flush time.
//
// Flush draws into the screen but does not call Show; the host owns frame
// presentation because several sections share one screen
type TerminalTarget struct {
	mu        sync.Mutex
	screen    tcell.Screen
	region    core.Area
	bg        Color
	sprites   []*termHandle
	fallback  *Gradient
	destroyed bool
}

// NewTerminalTarget creates a target over the given screen region
func NewTerminalTarget(screen tcell.Screen, region core.Area, bg Color) *TerminalTarget {
	if region.Width < 1 {
		region.Width = 1
	}
	if region.Height < 1 {
		region.Height = 1
	}
	return &TerminalTarget{
		screen: screen,
		region: region,
		bg:     bg,
	}
}

// SetRegion moves or resizes the target region (terminal resize).
// Element coordinates are unaffected; out-of-region elements clip
func (t *TerminalTarget) SetRegion(region core.Area) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.region = region
}

// NewHandle implements Target, reusing slots left by destroyed handles
// so a stable pool of particles never grows the sprite list
func (t *TerminalTarget) NewHandle(glyph rune, color Color) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.destroyed {
		return nil
	}

	for _, s := range t.sprites {
		if s.dead {
			s.reset(glyph, color)
			return s
		}
	}

	s := &termHandle{target: t, glyph: glyph, color: color}
	t.sprites = append(t.sprites, s)
	return s
}

// Fill implements Target: installs a static background gradient that
// Flush paints under (and, once the section is unregistered, instead of)
// the sprites
func (t *TerminalTarget) Fill(g Gradient) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.destroyed {
		return
	}
	t.fallback = &g
}

// Bounds implements Target: the simulation rect is the region size in
// local coordinates
func (t *TerminalTarget) Bounds() core.Rect {
	t.mu.Lock()
	defer t.mu.Unlock()
	return core.NewRect(0, 0, float64(t.region.Width), float64(t.region.Height))
}

// Flush implements Target, compositing background and sprites into the
// screen region
func (t *TerminalTarget) Flush() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.destroyed {
		return
	}

	// Background pass: flat color or vertical fallback gradient
	for row := 0; row < t.region.Height; row++ {
		bg := t.bg
		if t.fallback != nil {
			tt := 0.0
			if t.region.Height > 1 {
				tt = float64(row) / float64(t.region.Height-1)
			}
			bg = t.fallback.At(tt)
		}
		style := tcell.StyleDefault.Background(toTcell(bg))
		for col := 0; col < t.region.Width; col++ {
			t.screen.SetContent(t.region.X+col, t.region.Y+row, ' ', nil, style)
		}
	}

	// Sprite pass
	for _, s := range t.sprites {
		if s.dead || s.opacity <= 0 {
			continue
		}
		cx := int(math.Round(s.x))
		cy := int(math.Round(s.y))
		if cx < 0 || cx >= t.region.Width || cy < 0 || cy >= t.region.Height {
			continue
		}

		rowBg := t.bg
		if t.fallback != nil {
			tt := 0.0
			if t.region.Height > 1 {
				tt = float64(cy) / float64(t.region.Height-1)
			}
			rowBg = t.fallback.At(tt)
		}

		// Opacity maps to a blend toward the background color
		fg := rowBg.BlendRgb(s.color, clamp01(s.opacity)).Clamped()
		style := tcell.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(rowBg))
		t.screen.SetContent(t.region.X+cx, t.region.Y+cy, s.drawRune(), nil, style)
	}
}

// Destroy implements Target; safe to call multiple times
func (t *TerminalTarget) Destroy() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.destroyed = true
	for _, s := range t.sprites {
		s.dead = true
	}
	t.sprites = nil
}

func toTcell(c Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// termHandle state is guarded by the owning target's mutex
type termHandle struct {
	target  *TerminalTarget
	glyph   rune
	color   Color
	x, y    float64
	scale   float64
	opacity float64
	dead    bool
}

func (s *termHandle) reset(glyph rune, color Color) {
	s.glyph = glyph
	s.color = color
	s.x, s.y = 0, 0
	s.scale = 1
	s.opacity = 0
	s.dead = false
}

// drawRune picks a weight-matched glyph when none was requested
func (s *termHandle) drawRune() rune {
	if s.glyph != 0 {
		return s.glyph
	}
	switch {
	case s.scale >= glyphHeavyScale:
		return '●'
	case s.scale >= glyphMidScale:
		return '•'
	default:
		return '·'
	}
}

// UpdateTransform implements Handle
func (s *termHandle) UpdateTransform(x, y, scale float64) {
	s.target.mu.Lock()
	defer s.target.mu.Unlock()
	if s.dead {
		return
	}
	s.x, s.y, s.scale = x, y, scale
}

// SetOpacity implements Handle
func (s *termHandle) SetOpacity(o float64) {
	s.target.mu.Lock()
	defer s.target.mu.Unlock()
	if s.dead {
		return
	}
	s.opacity = o
}

// Destroy implements Handle
func (s *termHandle) Destroy() {
	s.target.mu.Lock()
	defer s.target.mu.Unlock()
	s.dead = true
}
