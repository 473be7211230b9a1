package render

import "testing"

func TestGradientAtEndpoints(t *testing.T) {
	g := MustGradientHex("#000000", "#ffffff")

	if got := g.At(0); got != g.From {
		t.Errorf("Expected From at t=0, got %v", got)
	}
	if got := g.At(1); got != g.To {
		t.Errorf("Expected To at t=1, got %v", got)
	}

	// Clamping outside [0,1]
	if got := g.At(-0.5); got != g.From {
		t.Errorf("Expected clamp to From, got %v", got)
	}
	if got := g.At(1.5); got != g.To {
		t.Errorf("Expected clamp to To, got %v", got)
	}
}

func TestGradientAtMidpointInRange(t *testing.T) {
	g := MustGradientHex("#000000", "#ffffff")
	mid := g.At(0.5)

	r, gr, b := mid.RGB255()
	if r == 0 && gr == 0 && b == 0 {
		t.Error("Midpoint collapsed to From")
	}
	if r == 255 && gr == 255 && b == 255 {
		t.Error("Midpoint collapsed to To")
	}
}

func TestGradientHexRejectsMalformed(t *testing.T) {
	if _, err := GradientHex("#38bdf8", "not-a-color"); err == nil {
		t.Error("Expected error for malformed hex")
	}
	if _, err := GradientHex("#38bdf8", "#818cf8"); err != nil {
		t.Errorf("Expected valid gradient, got %v", err)
	}
}

func TestFallbackIsStable(t *testing.T) {
	if Fallback() != Fallback() {
		t.Error("Fallback gradient must be deterministic")
	}
}
