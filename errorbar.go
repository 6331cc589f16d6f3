package linechart

import (
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
)

// ErrorBar overlays per-point error whiskers keyed off a field of each
// record. The bar extends along the value axis from value-error to
// value+error.
type ErrorBar struct {
	Key DataKey
	// Width is the length of the whisker caps in pixels.
	Width       float64
	StrokeWidth float64
	// Color defaults to the series' stroke color when zero.
	Color color.NRGBA
}

// ErrorValue is the formatted error data for one point: its screen
// coordinates, raw value, and the error magnitude looked up from the
// point's payload.
type ErrorValue struct {
	X, Y     Coordinate
	Value    Coordinate
	ErrorVal Coordinate
}

// ErrorValues formats each point's error data for the given key. Points
// whose payload does not define the key produce an invalid ErrorVal, which
// the renderer skips.
func ErrorValues(points []Point, key DataKey) []ErrorValue {
	out := make([]ErrorValue, len(points))
	for i, pt := range points {
		ev := ErrorValue{X: pt.X, Y: pt.Y, Value: pt.Value}
		if pt.Payload != nil {
			if v, ok := pt.Payload.Lookup(key); ok {
				ev.ErrorVal = Coord(v)
			}
		}
		out[i] = ev
	}
	return out
}

const (
	defaultErrorBarWidth       = 5
	defaultErrorBarStrokeWidth = 1.5
)

// layout draws the whiskers for one series. The value axis scale converts
// value±error into pixels; orient decides which screen dimension the bar
// spans.
func (e ErrorBar) layout(gtx layout.Context, values []ErrorValue, scale ScaleFunc, orient Orientation, seriesColor color.NRGBA) {
	col := e.Color
	if col == (color.NRGBA{}) {
		col = seriesColor
	}
	capWidth := e.Width
	if capWidth <= 0 {
		capWidth = defaultErrorBarWidth
	}
	sw := e.StrokeWidth
	if sw <= 0 {
		sw = defaultErrorBarStrokeWidth
	}
	half := float32(capWidth / 2)
	for _, ev := range values {
		if !ev.X.Valid || !ev.Y.Valid || !ev.Value.Valid || !ev.ErrorVal.Valid {
			continue
		}
		lo := float32(scale(ev.Value.V - ev.ErrorVal.V))
		hi := float32(scale(ev.Value.V + ev.ErrorVal.V))
		if orient == Horizontal {
			x := float32(ev.X.V)
			strokePolyline(gtx, []f32.Point{f32.Pt(x, lo), f32.Pt(x, hi)}, float32(sw), col)
			strokePolyline(gtx, []f32.Point{f32.Pt(x-half, lo), f32.Pt(x+half, lo)}, float32(sw), col)
			strokePolyline(gtx, []f32.Point{f32.Pt(x-half, hi), f32.Pt(x+half, hi)}, float32(sw), col)
		} else {
			y := float32(ev.Y.V)
			strokePolyline(gtx, []f32.Point{f32.Pt(lo, y), f32.Pt(hi, y)}, float32(sw), col)
			strokePolyline(gtx, []f32.Point{f32.Pt(lo, y-half), f32.Pt(lo, y+half)}, float32(sw), col)
			strokePolyline(gtx, []f32.Point{f32.Pt(hi, y-half), f32.Pt(hi, y+half)}, float32(sw), col)
		}
	}
}
