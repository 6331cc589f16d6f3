package linechart

import (
	"math"
	"testing"

	"gioui.org/f32"
)

func TestSplitSpans(t *testing.T) {
	points := []Point{
		validPoint(0, 0),
		validPoint(1, 1),
		gapPoint(),
		validPoint(2, 2),
		gapPoint(),
		gapPoint(),
		validPoint(3, 3),
		validPoint(4, 4),
	}
	spans := splitSpans(points, false)
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d", len(spans))
	}
	wantLens := []int{2, 1, 2}
	for i, span := range spans {
		if len(span) != wantLens[i] {
			t.Errorf("span %d: expected %d points, got %d", i, wantLens[i], len(span))
		}
	}

	spans = splitSpans(points, true)
	if len(spans) != 1 {
		t.Fatalf("expected connectNulls to produce one span, got %d", len(spans))
	}
	if len(spans[0]) != 5 {
		t.Errorf("expected 5 drawable points, got %d", len(spans[0]))
	}
}

func TestFlattenStep(t *testing.T) {
	pts := []f32.Point{f32.Pt(0, 0), f32.Pt(10, 5), f32.Pt(20, 2)}
	out := flatten(pts, CurveStep)
	want := []f32.Point{
		f32.Pt(0, 0),
		f32.Pt(10, 0), f32.Pt(10, 5),
		f32.Pt(20, 5), f32.Pt(20, 2),
	}
	if len(out) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(out))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("point %d: expected %v, got %v", i, want[i], out[i])
		}
	}
}

func TestFlattenSmooth(t *testing.T) {
	pts := []f32.Point{f32.Pt(0, 0), f32.Pt(10, 10), f32.Pt(20, 0), f32.Pt(30, 10)}
	out := flatten(pts, CurveSmooth)
	const steps = 12
	if want := (len(pts)-1)*steps + 1; len(out) != want {
		t.Fatalf("expected %d samples, got %d", want, len(out))
	}
	// The spline interpolates: it must pass through every input point.
	for i, pt := range pts {
		got := out[i*steps]
		if math.Abs(float64(got.X-pt.X)) > 1e-3 || math.Abs(float64(got.Y-pt.Y)) > 1e-3 {
			t.Errorf("expected the curve to pass through %v, got %v", pt, got)
		}
	}
}

func TestFlattenLinear(t *testing.T) {
	pts := []f32.Point{f32.Pt(0, 0), f32.Pt(10, 5)}
	out := flatten(pts, CurveLinear)
	if len(out) != len(pts) {
		t.Errorf("expected linear interpolation to pass points through, got %d", len(out))
	}
}

func TestDashPolyline(t *testing.T) {
	line := []f32.Point{f32.Pt(0, 0), f32.Pt(30, 0)}

	runs := dashPolyline(line, nil)
	if len(runs) != 1 || len(runs[0]) != 2 {
		t.Fatalf("expected no dash to keep the polyline whole, got %v", runs)
	}

	runs = dashPolyline(line, []float64{10, 5})
	if len(runs) != 2 {
		t.Fatalf("expected two drawn runs, got %d", len(runs))
	}
	expectRunSpan(t, runs[0], 0, 10)
	expectRunSpan(t, runs[1], 15, 25)

	// The dash walker follows the polyline across vertices.
	bent := []f32.Point{f32.Pt(0, 0), f32.Pt(8, 0), f32.Pt(8, 22)}
	runs = dashPolyline(bent, []float64{10, 5})
	if len(runs) != 2 {
		t.Fatalf("expected two drawn runs across the corner, got %d", len(runs))
	}
	expectPt(t, "end of the first run", runs[0][len(runs[0])-1], f32.Pt(8, 2))
	expectPt(t, "start of the second run", runs[1][0], f32.Pt(8, 7))

	if runs := dashPolyline([]f32.Point{f32.Pt(0, 0)}, []float64{10, 5}); runs != nil {
		t.Errorf("expected a degenerate polyline to produce no runs, got %v", runs)
	}

	// Zero progress yields a leading zero draw segment; no dot may be
	// stroked at the path start.
	runs = dashPolyline(line, DashSegments(Dasharray(0, 30, nil)))
	if len(runs) != 0 {
		t.Errorf("expected a zero-length draw segment to stroke nothing, got %v", runs)
	}
}

func expectRunSpan(t *testing.T, run []f32.Point, startX, endX float32) {
	t.Helper()
	if len(run) < 2 {
		t.Fatalf("expected a drawable run, got %v", run)
	}
	if math.Abs(float64(run[0].X-startX)) > 1e-3 {
		t.Errorf("expected the run to start at x=%v, got %v", startX, run[0].X)
	}
	if math.Abs(float64(run[len(run)-1].X-endX)) > 1e-3 {
		t.Errorf("expected the run to end at x=%v, got %v", endX, run[len(run)-1].X)
	}
}

func expectPt(t *testing.T, label string, got, want f32.Point) {
	t.Helper()
	if math.Abs(float64(got.X-want.X)) > 1e-3 || math.Abs(float64(got.Y-want.Y)) > 1e-3 {
		t.Errorf("%s: expected %v, got %v", label, want, got)
	}
}
