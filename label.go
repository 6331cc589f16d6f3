package linechart

import (
	"image"
	"strconv"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/widget/material"
)

// Labels configures per-point value labels. Labels render only once the
// series' animation has settled, the same gating applied to dots and error
// bars.
type Labels struct {
	Enabled bool
	// Format renders the label text for a point. Defaults to the raw value.
	Format func(pt Point) string
	// Offset is the gap in pixels between a point and its label.
	Offset float64
}

const defaultLabelOffset = 6

// Layout draws one label per valid point, centered above it.
func (l Labels) Layout(gtx layout.Context, th *material.Theme, points []Point) layout.Dimensions {
	if !l.Enabled {
		return layout.Dimensions{Size: gtx.Constraints.Max}
	}
	format := l.Format
	if format == nil {
		format = func(pt Point) string {
			return strconv.FormatFloat(pt.Value.V, 'f', -1, 64)
		}
	}
	offset := l.Offset
	if offset <= 0 {
		offset = defaultLabelOffset
	}
	inner := gtx
	inner.Constraints.Min = image.Point{}
	for _, pt := range points {
		if !pt.X.Valid || !pt.Y.Valid || !pt.Value.Valid {
			continue
		}
		label := material.Body2(th, format(pt))
		macro := op.Record(gtx.Ops)
		dims := label.Layout(inner)
		call := macro.Stop()
		stack := op.Offset(image.Point{
			X: int(pt.X.V) - dims.Size.X/2,
			Y: int(pt.Y.V-offset) - dims.Size.Y,
		}).Push(gtx.Ops)
		call.Add(gtx.Ops)
		stack.Pop()
	}
	return layout.Dimensions{Size: gtx.Constraints.Max}
}
