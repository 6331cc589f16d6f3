package linechart

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// Dot configures the per-point markers of a series. The zero value renders
// default markers; Disabled suppresses them except for the lone-point case,
// where the marker is the only visible output the series has.
type Dot struct {
	Disabled    bool
	Radius      float64
	StrokeWidth float64
	// Stroke is the ring color. Zero means the series' stroke color.
	Stroke color.NRGBA
	// Fill is the interior color.
	Fill color.NRGBA
	// Render replaces the default marker entirely when set.
	Render func(gtx layout.Context, center f32.Point, pt Point, index int)
}

const (
	defaultDotRadius       = 3
	defaultActiveDotRadius = 4
	defaultDotStrokeWidth  = 1
)

func (d Dot) radius() float64 {
	if d.Radius > 0 {
		return d.Radius
	}
	return defaultDotRadius
}

func (d Dot) strokeWidth() float64 {
	if d.StrokeWidth > 0 {
		return d.StrokeWidth
	}
	return defaultDotStrokeWidth
}

// draw renders one marker centered on the given point. seriesColor supplies
// the ring color when the config does not override it.
func (d Dot) draw(gtx layout.Context, center f32.Point, pt Point, index int, seriesColor color.NRGBA) {
	if d.Render != nil {
		d.Render(gtx, center, pt, index)
		return
	}
	stroke := d.Stroke
	if stroke == (color.NRGBA{}) {
		stroke = seriesColor
	}
	fill := d.Fill
	if fill == (color.NRGBA{}) {
		fill = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	r := d.radius()
	sw := d.strokeWidth()
	paint.FillShape(gtx.Ops, stroke, ellipseAround(center, r).Op(gtx.Ops))
	if inner := r - sw; inner > 0 {
		paint.FillShape(gtx.Ops, fill, ellipseAround(center, inner).Op(gtx.Ops))
	}
}

func ellipseAround(center f32.Point, radius float64) clip.Ellipse {
	r := float32(radius)
	return clip.Ellipse{
		Min: image.Pt(int(center.X-r), int(center.Y-r)),
		Max: image.Pt(int(center.X+r), int(center.Y+r)),
	}
}
