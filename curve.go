package linechart

import (
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// CurveType selects the interpolation drawn between points.
type CurveType uint8

const (
	CurveLinear CurveType = iota
	// CurveStep holds each value until the next point.
	CurveStep
	// CurveSmooth draws a Catmull-Rom spline through the points.
	CurveSmooth
)

// Curve strokes an interpolated path through projected points. It is a pure
// renderer: it draws whatever point set it is handed and holds no state.
type Curve struct {
	Points []Point
	Type   CurveType
	// ConnectNulls draws through gaps instead of breaking the stroke.
	ConnectNulls bool
	Width        float64
	Color        color.NRGBA
	// Dash holds resolved alternating draw/gap lengths. Nil strokes solid.
	Dash []float64
}

func (c Curve) Layout(gtx layout.Context) layout.Dimensions {
	width := c.Width
	if width <= 0 {
		width = 2
	}
	for _, span := range splitSpans(c.Points, c.ConnectNulls) {
		span = flatten(span, c.Type)
		for _, run := range dashPolyline(span, c.Dash) {
			strokePolyline(gtx, run, float32(width), c.Color)
		}
	}
	return layout.Dimensions{Size: gtx.Constraints.Max}
}

func strokePolyline(gtx layout.Context, pts []f32.Point, width float32, col color.NRGBA) {
	if len(pts) < 2 {
		return
	}
	var p clip.Path
	p.Begin(gtx.Ops)
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	paint.FillShape(gtx.Ops, col, clip.Stroke{
		Path:  p.End(),
		Width: width,
	}.Op())
}

// splitSpans breaks the point sequence into drawable polylines. Invalid
// coordinates end the current span unless connectNulls bridges them.
func splitSpans(points []Point, connectNulls bool) [][]f32.Point {
	var spans [][]f32.Point
	var cur []f32.Point
	for _, pt := range points {
		if !pt.X.Valid || !pt.Y.Valid {
			if !connectNulls && len(cur) > 0 {
				spans = append(spans, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, f32.Pt(float32(pt.X.V), float32(pt.Y.V)))
	}
	if len(cur) > 0 {
		spans = append(spans, cur)
	}
	return spans
}

// flatten converts a span into the polyline actually stroked. Step curves
// hold the previous value until each new point; smooth curves sample a
// Catmull-Rom spline densely enough that dashing and stroking treat it as a
// polyline.
func flatten(pts []f32.Point, kind CurveType) []f32.Point {
	switch kind {
	case CurveStep:
		if len(pts) < 2 {
			return pts
		}
		out := make([]f32.Point, 0, len(pts)*2-1)
		out = append(out, pts[0])
		for i := 1; i < len(pts); i++ {
			out = append(out, f32.Pt(pts[i].X, pts[i-1].Y), pts[i])
		}
		return out
	case CurveSmooth:
		if len(pts) < 3 {
			return pts
		}
		const steps = 12
		out := make([]f32.Point, 0, (len(pts)-1)*steps+1)
		out = append(out, pts[0])
		for i := 0; i < len(pts)-1; i++ {
			p0 := pts[max(i-1, 0)]
			p1 := pts[i]
			p2 := pts[i+1]
			p3 := pts[min(i+2, len(pts)-1)]
			for s := 1; s <= steps; s++ {
				out = append(out, catmullRom(p0, p1, p2, p3, float64(s)/steps))
			}
		}
		return out
	default:
		return pts
	}
}

func catmullRom(p0, p1, p2, p3 f32.Point, t float64) f32.Point {
	t2 := t * t
	t3 := t2 * t
	at := func(a, b, c, d float64) float64 {
		return 0.5 * ((2 * b) + (-a+c)*t + (2*a-5*b+4*c-d)*t2 + (-a+3*b-3*c+d)*t3)
	}
	return f32.Pt(
		float32(at(float64(p0.X), float64(p1.X), float64(p2.X), float64(p3.X))),
		float32(at(float64(p0.Y), float64(p1.Y), float64(p2.Y), float64(p3.Y))),
	)
}

// dashPolyline cuts a polyline into the sub-polylines covered by the draw
// segments of an alternating draw/gap sequence. Even-indexed segments draw.
// An empty or zero-total sequence leaves the polyline whole.
func dashPolyline(pts []f32.Point, segs []float64) [][]f32.Point {
	if len(pts) < 2 {
		return nil
	}
	var total float64
	for _, s := range segs {
		total += s
	}
	if len(segs) == 0 || total <= 0 {
		return [][]f32.Point{pts}
	}

	var runs [][]f32.Point
	var cur []f32.Point
	idx := 0
	remaining := segs[0]
	drawing := true
	cur = append(cur, pts[0])

	// Zero-length draw segments produce runs whose points all coincide.
	// Stroking those would leave cap-shaped dots, so they are discarded.
	degenerate := func(run []f32.Point) bool {
		for _, p := range run[1:] {
			if p != run[0] {
				return false
			}
		}
		return true
	}
	endRun := func(at f32.Point) {
		if drawing {
			cur = append(cur, at)
			if len(cur) >= 2 && !degenerate(cur) {
				runs = append(runs, cur)
			}
			cur = nil
		} else {
			cur = []f32.Point{at}
		}
		drawing = !drawing
		idx = (idx + 1) % len(segs)
		remaining = segs[idx]
	}

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		edge := math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
		traveled := 0.0
		for edge-traveled > remaining {
			traveled += remaining
			t := traveled / edge
			endRun(f32.Pt(
				a.X+float32(t)*(b.X-a.X),
				a.Y+float32(t)*(b.Y-a.Y),
			))
		}
		remaining -= edge - traveled
		if drawing {
			cur = append(cur, b)
		}
	}
	if drawing && len(cur) >= 2 && !degenerate(cur) {
		runs = append(runs, cur)
	}
	return runs
}
