package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/glimmerfx/glimmer/core"
)

func newSimTarget(t *testing.T, region core.Area) (tcell.SimulationScreen, *TerminalTarget) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	if err := sim.Init(); err != nil {
		t.Fatalf("sim screen init: %v", err)
	}
	sim.SetSize(40, 20)
	t.Cleanup(sim.Fini)

	bg := MustGradientHex("#0b1120", "#0b1120").From
	return sim, NewTerminalTarget(sim, region, bg)
}

func cellRune(sim tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := sim.GetContents()
	return cells[y*w+x].Runes[0]
}

func TestTerminalTargetDrawsSpriteWithRegionOffset(t *testing.T) {
	sim, target := newSimTarget(t, core.Area{X: 5, Y: 3, Width: 20, Height: 10})

	h := target.NewHandle('◆', MustGradientHex("#38bdf8", "#38bdf8").From)
	h.UpdateTransform(2, 4, 1)
	h.SetOpacity(1)
	target.Flush()
	sim.Show()

	if got := cellRune(sim, 7, 7); got != '◆' {
		t.Errorf("Expected sprite glyph at offset cell, got %q", got)
	}
}

func TestTerminalTargetGlyphWeightByScale(t *testing.T) {
	sim, target := newSimTarget(t, core.Area{X: 0, Y: 0, Width: 20, Height: 10})
	white := MustGradientHex("#ffffff", "#ffffff").From

	cases := []struct {
		x     float64
		scale float64
		want  rune
	}{
		{1, 2.0, '●'},
		{2, 1.0, '•'},
		{3, 0.4, '·'},
	}
	for _, tc := range cases {
		h := target.NewHandle(0, white)
		h.UpdateTransform(tc.x, 1, tc.scale)
		h.SetOpacity(1)
	}
	target.Flush()
	sim.Show()

	for _, tc := range cases {
		if got := cellRune(sim, int(tc.x), 1); got != tc.want {
			t.Errorf("Scale %.1f: expected %q, got %q", tc.scale, tc.want, got)
		}
	}
}

func TestTerminalTargetSkipsInvisibleAndClipped(t *testing.T) {
	sim, target := newSimTarget(t, core.Area{X: 0, Y: 0, Width: 10, Height: 5})
	white := MustGradientHex("#ffffff", "#ffffff").From

	hidden := target.NewHandle('X', white)
	hidden.UpdateTransform(2, 2, 1)
	hidden.SetOpacity(0)

	clipped := target.NewHandle('Y', white)
	clipped.UpdateTransform(50, 2, 1)
	clipped.SetOpacity(1)

	target.Flush()
	sim.Show()

	if got := cellRune(sim, 2, 2); got == 'X' {
		t.Error("Zero-opacity sprite was drawn")
	}
	// Out-of-region sprite must not wrap into the region
	cells, w, h := sim.GetContents()
	for i := 0; i < w*h; i++ {
		if cells[i].Runes[0] == 'Y' {
			t.Fatal("Clipped sprite leaked onto the screen")
		}
	}
}

func TestTerminalTargetFillPaintsFallback(t *testing.T) {
	sim, target := newSimTarget(t, core.Area{X: 0, Y: 0, Width: 10, Height: 5})

	target.Fill(Fallback())
	target.Flush()
	sim.Show()

	cells, w, _ := sim.GetContents()
	_, topBg, _ := cells[0].Style.Decompose()
	_, bottomBg, _ := cells[4*w].Style.Decompose()
	if topBg == bottomBg {
		t.Error("Expected vertical gradient across rows")
	}
}

func TestTerminalTargetHandleSlotReuse(t *testing.T) {
	_, target := newSimTarget(t, core.Area{X: 0, Y: 0, Width: 10, Height: 5})
	white := MustGradientHex("#ffffff", "#ffffff").From

	a := target.NewHandle('a', white)
	a.Destroy()
	b := target.NewHandle('b', white)

	if a != b {
		t.Error("Expected dead sprite slot reused for the new handle")
	}
}

func TestTerminalTargetDestroyTerminal(t *testing.T) {
	sim, target := newSimTarget(t, core.Area{X: 0, Y: 0, Width: 10, Height: 5})

	h := target.NewHandle('Z', MustGradientHex("#ffffff", "#ffffff").From)
	h.UpdateTransform(1, 1, 1)
	h.SetOpacity(1)

	target.Destroy()
	target.Destroy() // Multi-call safe

	if target.NewHandle('Q', MustGradientHex("#ffffff", "#ffffff").From) != nil {
		t.Error("Expected nil handle from destroyed target")
	}

	target.Flush() // Must not draw
	sim.Show()
	if got := cellRune(sim, 1, 1); got == 'Z' {
		t.Error("Destroyed target drew a sprite")
	}
}

func TestTerminalTargetBoundsAreLocal(t *testing.T) {
	_, target := newSimTarget(t, core.Area{X: 5, Y: 3, Width: 20, Height: 10})

	b := target.Bounds()
	if b.MinX != 0 || b.MinY != 0 || b.Width() != 20 || b.Height() != 10 {
		t.Errorf("Expected local 20x10 bounds at origin, got %+v", b)
	}

	target.SetRegion(core.Area{X: 0, Y: 0, Width: 30, Height: 15})
	b = target.Bounds()
	if b.Width() != 30 || b.Height() != 15 {
		t.Errorf("Expected resized bounds, got %+v", b)
	}
}
