package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color aliases the colorful color type used across targets
type Color = colorful.Color

// Gradient is a two-stop linear color ramp.
// Used for particle palettes (t = particle opacity or age fraction) and
// for static fallback backgrounds (t = vertical position)
type Gradient struct {
	From Color
	To   Color
}

// NewGradient builds a gradient from two stops
func NewGradient(from, to Color) Gradient {
	return Gradient{From: from, To: to}
}

// MustGradientHex builds a gradient from two hex strings, panicking on
// malformed input. Intended for compile-time palettes; config-loaded
// palettes go through GradientHex
func MustGradientHex(from, to string) Gradient {
	f, err := colorful.Hex(from)
	if err != nil {
		panic(err)
	}
	t, err := colorful.Hex(to)
	if err != nil {
		panic(err)
	}
	return Gradient{From: f, To: t}
}

// GradientHex builds a gradient from two hex strings
func GradientHex(from, to string) (Gradient, error) {
	f, err := colorful.Hex(from)
	if err != nil {
		return Gradient{}, err
	}
	t, err := colorful.Hex(to)
	if err != nil {
		return Gradient{}, err
	}
	return Gradient{From: f, To: t}, nil
}

// At returns the blended color at t in [0,1], clamping outside values.
// Luv blending avoids the muddy midpoints of naive RGB interpolation
func (g Gradient) At(t float64) Color {
	if t <= 0 {
		return g.From
	}
	if t >= 1 {
		return g.To
	}
	return g.From.BlendLuv(g.To, t).Clamped()
}

// Fallback returns the static gradient applied to a section when its
// animation fails: a quiet slate-to-midnight wash that never moves
func Fallback() Gradient {
	return MustGradientHex("#1e293b", "#0f172a")
}
