package linechart

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/widget/material"
)

// Line is a single line series. Configure the exported fields before the
// first Update; Update must run every frame before Layout so the series can
// track the chart state, and Close must run when the series leaves the chart
// so its registration is withdrawn.
//
// A hidden series still registers itself (with Hide set) so the legend and
// axis domains keep accounting for it; only its visual output is suppressed.
type Line struct {
	// Name is the display name used by legend and tooltip. Defaults to the
	// DataKey.
	Name    string
	DataKey DataKey
	// XAxisID and YAxisID select this series' axis bindings from the chart
	// state. Referencing an unregistered id is a configuration error
	// reported by Update.
	XAxisID string
	YAxisID string

	Color       color.NRGBA
	StrokeWidth float64
	// StrokeDash is the user dash pattern in pixels. The draw-on animation
	// threads it through the partial-length dasharray so dashed lines
	// animate without changing texture.
	StrokeDash []float64
	Curve      CurveType
	// ConnectNulls draws through gaps left by absent values.
	ConnectNulls bool
	Hide         bool
	// ClipDot clips markers with the stroke's clip region. When false,
	// markers get an independent clip sized to the marker diameter so dots
	// at the data extremes are not cut off.
	ClipDot bool
	Dot     Dot
	// ActiveDot styles the marker drawn on the hovered record by
	// LayoutActiveDot. The zero value renders a slightly larger default
	// marker; set Disabled to suppress it.
	ActiveDot Dot
	Labels    Labels
	ErrorBars []ErrorBar
	Animation Animation
	Unit      string
	// Measurer overrides path-length measurement. Nil uses DefaultMeasurer.
	Measurer PathMeasurer

	reg        registrar
	anim       *Animator
	points     []Point
	prevPoints []Point
	morphing   bool
	total      float64
	xAxis      AxisBinding
	yAxis      AxisBinding
	resolved   bool
	closed     bool
}

// Update reconciles the series with the chart state: it resolves axis
// bindings, projects the dataset into points, restarts the animation when
// geometry changed, and keeps the series' registration current. It reports
// axis-resolution failures immediately.
func (l *Line) Update(gtx layout.Context, state *State) error {
	if l.closed {
		return nil
	}
	xAxis, err := state.XAxis(l.XAxisID)
	if err != nil {
		return err
	}
	yAxis, err := state.YAxis(l.YAxisID)
	if err != nil {
		return err
	}

	orient := state.Layout()
	categoryAxis, valueAxis := xAxis, yAxis
	if orient == Vertical {
		categoryAxis, valueAxis = yAxis, xAxis
	}
	data := state.Data()
	points := ProjectPoints(data, l.DataKey, categoryAxis, valueAxis, orient)

	if l.anim == nil {
		l.anim = NewAnimator(l.Animation)
	}
	if !l.resolved || !PointsEqual(points, l.points) {
		l.prevPoints = l.points
		l.points = points
		l.morphing = l.resolved && l.Animation.Morph == MorphPoints && len(l.prevPoints) > 0
		l.remeasure()
		l.anim.Restart()
	}
	l.xAxis = xAxis
	l.yAxis = yAxis
	l.resolved = true

	l.reg.sync(state, &RegistrationRecord{
		Data:      data,
		DataKey:   l.DataKey,
		Hide:      l.Hide,
		XAxisID:   l.XAxisID,
		YAxisID:   l.YAxisID,
		ErrorBars: l.ErrorBars,
		Legend:    l.legendPayload,
		Tooltip:   l.tooltipEntry,
	})
	return nil
}

// remeasure refreshes the stroke length backing the draw-on animation.
// Measurement failure degrades to zero length, which renders statically
// instead of crashing.
func (l *Line) remeasure() {
	measurer := l.Measurer
	if measurer == nil {
		measurer = DefaultMeasurer
	}
	total, err := measurer.Measure(l.points, l.ConnectNulls)
	if err != nil {
		total = 0
	}
	l.total = total
}

// Layout renders the series. The stroke is clipped per the axis overflow
// flags; dots, error bars, and labels wait until the animation settles so
// they do not flicker along a partially drawn stroke.
func (l *Line) Layout(gtx layout.Context, th *material.Theme, offset Box) layout.Dimensions {
	if l.closed || !l.resolved || l.Hide {
		return layout.Dimensions{Size: gtx.Constraints.Max}
	}

	t := l.anim.Progress(gtx.Now)
	if l.anim.State() == AnimationRunning {
		gtx.Execute(op.InvalidateCmd{})
	}

	points := l.points
	dash := l.StrokeDash
	if !l.anim.Settled() {
		if l.morphing {
			points = InterpolatePoints(l.prevPoints, l.points, t, l.morphOrigin(offset))
		} else if l.total > 0 {
			dash = DashSegments(Dasharray(Lerp(0, l.total, t), l.total, l.StrokeDash))
		}
	}

	if len(points) > 1 {
		stack := clipStack(gtx, ClipBox(offset, l.xAxis.AllowDataOverflow, l.yAxis.AllowDataOverflow))
		Curve{
			Points:       points,
			Type:         l.Curve,
			ConnectNulls: l.ConnectNulls,
			Width:        l.StrokeWidth,
			Color:        l.color(),
			Dash:         dash,
		}.Layout(gtx)
		stack.Pop()
	}

	if l.anim.Settled() {
		l.layoutDecorations(gtx, th, offset)
	} else if len(l.points) == 1 {
		// A lone point has no stroke to animate; show its marker at once.
		l.layoutDots(gtx, offset)
	}
	return layout.Dimensions{Size: gtx.Constraints.Max}
}

func (l *Line) layoutDecorations(gtx layout.Context, th *material.Theme, offset Box) {
	showDots := !l.Dot.Disabled || len(l.points) == 1
	if showDots {
		l.layoutDots(gtx, offset)
	}
	if len(l.ErrorBars) > 0 {
		orient := Horizontal
		valueAxis := l.yAxis
		if l.reg.state != nil {
			orient = l.reg.state.Layout()
		}
		if orient == Vertical {
			valueAxis = l.xAxis
		}
		for _, bar := range l.ErrorBars {
			bar.layout(gtx, ErrorValues(l.points, bar.Key), valueAxis.Scale, orient, l.color())
		}
	}
	l.Labels.Layout(gtx, th, l.points)
}

func (l *Line) layoutDots(gtx layout.Context, offset Box) {
	region := ClipBox(offset, l.xAxis.AllowDataOverflow, l.yAxis.AllowDataOverflow)
	if !l.ClipDot {
		region = DotClipBox(region, l.Dot.radius(), l.Dot.strokeWidth())
	}
	stack := clipStack(gtx, region)
	defer stack.Pop()
	for i, pt := range l.points {
		if !pt.X.Valid || !pt.Y.Valid {
			continue
		}
		center := f32.Pt(float32(pt.X.V), float32(pt.Y.V))
		l.Dot.draw(gtx, center, pt, i, l.color())
	}
}

// morphOrigin supplies the synthetic start for points with no predecessor:
// just below the plot box, so new data slides in from the baseline.
func (l *Line) morphOrigin(offset Box) *Point {
	if !l.Animation.AnimateNewValues {
		return nil
	}
	return &Point{
		X: Coord(offset.Left + offset.Width/2),
		Y: Coord(offset.Top + offset.Height),
	}
}

func (l *Line) color() color.NRGBA {
	if l.Color != (color.NRGBA{}) {
		return l.Color
	}
	return PaletteColor(0)
}

func (l *Line) displayName() string {
	if l.Name != "" {
		return l.Name
	}
	return string(l.DataKey)
}

func (l *Line) legendPayload() LegendPayload {
	return LegendPayload{
		Inactive: l.Hide,
		DataKey:  l.DataKey,
		Kind:     "line",
		Color:    l.color(),
		Value:    l.displayName(),
		Payload:  l.reg.last,
	}
}

func (l *Line) tooltipEntry() TooltipEntry {
	return TooltipEntry{
		DataDefinedOnItem: l.points,
		Settings: TooltipSettings{
			Stroke:      l.color(),
			StrokeWidth: l.StrokeWidth,
			DataKey:     l.DataKey,
			Name:        l.displayName(),
			Hide:        l.Hide,
			Kind:        "line",
			Color:       l.color(),
			Unit:        l.Unit,
		},
	}
}

// LayoutActiveDot draws the active marker over the point at index. Chart
// hover handling calls it with the index of the record nearest the pointer.
// Out-of-range indices and gap points draw nothing.
func (l *Line) LayoutActiveDot(gtx layout.Context, index int) {
	if l.closed || l.Hide || l.ActiveDot.Disabled {
		return
	}
	if index < 0 || index >= len(l.points) {
		return
	}
	pt := l.points[index]
	if !pt.X.Valid || !pt.Y.Valid {
		return
	}
	dot := l.ActiveDot
	if dot.Radius <= 0 {
		dot.Radius = defaultActiveDotRadius
	}
	center := f32.Pt(float32(pt.X.V), float32(pt.Y.V))
	dot.draw(gtx, center, pt, index, l.color())
}

// Points exposes the current projection, primarily for tooltip hit testing.
func (l *Line) Points() []Point {
	return l.points
}

// AnimationSettled reports whether decorations are currently rendered.
func (l *Line) AnimationSettled() bool {
	return l.anim != nil && l.anim.Settled()
}

// Close withdraws the series' registration and abandons any in-flight
// animation synchronously. The series renders nothing afterward.
func (l *Line) Close() {
	if l.closed {
		return
	}
	l.closed = true
	l.reg.close()
	if l.anim != nil {
		l.anim.Close()
	}
}

// ClipBox computes the stroke clip region for a series. Each dimension
// matches the plot box exactly when that axis allows data overflow (the
// stroke must clip hard at the plot edge), and doubles centered on the plot
// box otherwise, leaving slack so strokes are not visibly shaved at the
// boundary.
func ClipBox(offset Box, allowX, allowY bool) Box {
	b := offset
	if !allowX {
		b.Left -= offset.Width / 2
		b.Width *= 2
	}
	if !allowY {
		b.Top -= offset.Height / 2
		b.Height *= 2
	}
	return b
}

// DotClipBox expands a clip region by the marker's radius plus half its
// stroke, so markers centered on the region boundary render whole.
func DotClipBox(region Box, radius, strokeWidth float64) Box {
	grow := radius + strokeWidth/2
	return Box{
		Left:   region.Left - grow,
		Top:    region.Top - grow,
		Width:  region.Width + 2*grow,
		Height: region.Height + 2*grow,
	}
}

func clipStack(gtx layout.Context, b Box) clip.Stack {
	return clip.Rect(image.Rect(
		int(b.Left), int(b.Top),
		int(b.Left+b.Width), int(b.Top+b.Height),
	)).Push(gtx.Ops)
}
