package linechart

import (
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/layout"
)

func TestDotDefaults(t *testing.T) {
	var d Dot
	if d.radius() != defaultDotRadius {
		t.Errorf("expected default radius %v, got %v", defaultDotRadius, d.radius())
	}
	if d.strokeWidth() != defaultDotStrokeWidth {
		t.Errorf("expected default stroke width %v, got %v", defaultDotStrokeWidth, d.strokeWidth())
	}
	d = Dot{Radius: 5, StrokeWidth: 2}
	if d.radius() != 5 || d.strokeWidth() != 2 {
		t.Errorf("expected overrides to win, got radius %v width %v", d.radius(), d.strokeWidth())
	}
}

func TestDotCustomRender(t *testing.T) {
	var calls int
	var gotIndex int
	d := Dot{
		Render: func(gtx layout.Context, center f32.Point, pt Point, index int) {
			calls++
			gotIndex = index
		},
	}
	gtx := testGtx(time.Unix(100, 0))
	d.draw(gtx, f32.Pt(10, 10), validPoint(10, 10), 3, PaletteColor(0))
	if calls != 1 {
		t.Fatalf("expected the custom renderer to be invoked once, got %d", calls)
	}
	if gotIndex != 3 {
		t.Errorf("expected the point index to be forwarded, got %d", gotIndex)
	}
}
