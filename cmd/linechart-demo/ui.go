package main

import (
	"context"
	"image"
	"image/color"
	"log"
	"strconv"
	"time"

	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	"gioui.org/x/explorer"
	"git.sr.ht/~gioverse/skel/stream"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"git.sr.ht/~whereswaldon/linechart"
	"git.sr.ht/~whereswaldon/linechart/datasource"
)

var pauseIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.AVPause)
	return icon
}()

var playIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.AVPlayArrow)
	return icon
}()

// UI owns the top-level state: the active session, the chart state shared by
// every series, the series widgets themselves, and the legend/tooltip
// chrome built from the chart state's registrations.
type UI struct {
	controller *stream.Controller
	source     *datasource.Source
	expl       *explorer.Explorer
	th         *material.Theme

	sessionID     string
	sessionStream *stream.Stream[datasource.Session]
	session       datasource.Session

	state   *linechart.State
	lines   []*linechart.Line
	keys    []linechart.DataKey
	visible []*widget.Bool

	openBtn  widget.Clickable
	pauseBtn widget.Clickable
	paused   bool
	keyTable component.GridState

	pos     f32.Point
	hovered bool
}

func NewUI(controller *stream.Controller, source *datasource.Source, expl *explorer.Explorer, sessionID string) *UI {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()), text.NoSystemFonts())
	ui := &UI{
		controller: controller,
		source:     source,
		expl:       expl,
		th:         th,
		state:      linechart.NewState(linechart.Horizontal, linechart.Box{}),
	}
	if sessionID != "" {
		ui.watchSession(sessionID)
	}
	return ui
}

func (ui *UI) watchSession(id string) {
	ui.sessionID = id
	ui.sessionStream = stream.New(ui.controller, func(ctx context.Context) <-chan datasource.Session {
		return ui.source.StreamSession(ctx, id)
	})
}

func (ui *UI) Update(gtx C) {
	if ui.sessionStream != nil {
		ui.sessionStream.ReadInto(gtx, &ui.session, datasource.Session{})
	}
	if ui.openBtn.Clicked(gtx) {
		id, err := ui.source.LoadFromFile(ui.expl)
		if err != nil {
			log.Printf("failed loading trace: %v", err)
		} else {
			for _, l := range ui.lines {
				l.Close()
			}
			ui.lines, ui.keys, ui.visible = nil, nil, nil
			ui.watchSession(id)
		}
	}
	if ui.pauseBtn.Clicked(gtx) {
		ui.paused = !ui.paused
	}
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: ui,
			Kinds:  pointer.Enter | pointer.Leave | pointer.Move,
		})
		if !ok {
			break
		}
		if pe, ok := ev.(pointer.Event); ok {
			switch pe.Kind {
			case pointer.Enter:
				ui.hovered = true
				ui.pos = pe.Position
			case pointer.Leave, pointer.Cancel:
				ui.hovered = false
			case pointer.Move:
				ui.pos = pe.Position
			}
		}
	}
}

func (ui *UI) Layout(gtx C) D {
	ui.Update(gtx)
	if ui.session.Data == nil || !ui.session.Data.Initialized() {
		return ui.layoutStartScreen(gtx)
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Flexed(1, ui.layoutPlot),
		layout.Rigid(ui.layoutLegend),
	)
}

func (ui *UI) layoutStartScreen(gtx C) D {
	return layout.Flex{
		Axis:      layout.Vertical,
		Alignment: layout.Middle,
		Spacing:   layout.SpaceAround,
	}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			return material.Body1(ui.th, "No data yet.").Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			return material.Button(ui.th, &ui.openBtn, "Open Trace").Layout(gtx)
		}),
	)
}

// syncSeries creates a Line widget for each newly discovered series and
// applies the legend visibility toggles.
func (ui *UI) syncSeries(keys []linechart.DataKey) {
	for _, key := range keys {
		known := false
		for _, existing := range ui.keys {
			if existing == key {
				known = true
				break
			}
		}
		if known {
			continue
		}
		idx := len(ui.lines)
		ui.lines = append(ui.lines, &linechart.Line{
			Name:        string(key),
			DataKey:     key,
			XAxisID:     "time",
			YAxisID:     "value",
			Color:       linechart.PaletteColor(idx),
			StrokeWidth: 2,
			Dot:         linechart.Dot{Disabled: true},
			Animation:   linechart.Animation{Duration: 900 * time.Millisecond},
		})
		ui.keys = append(ui.keys, key)
		ui.visible = append(ui.visible, &widget.Bool{Value: true})
	}
	for i, l := range ui.lines {
		l.Hide = !ui.visible[i].Value
	}
}

func (ui *UI) layoutPlot(gtx C) D {
	inset := gtx.Dp(10)
	box := linechart.Box{
		Left:   float64(inset),
		Top:    float64(inset),
		Width:  float64(gtx.Constraints.Max.X - 2*inset),
		Height: float64(gtx.Constraints.Max.Y - 2*inset),
	}

	ds := ui.session.Data
	if !ui.paused {
		records, keys := ds.Records()
		ui.syncSeries(keys)
		ui.state.SetData(records)
	} else {
		ui.syncSeries(nil)
	}
	domainMin, domainMax := ds.Domain()
	valueMin, valueMax := ds.ValueRange()
	pad := (valueMax - valueMin) * 0.05
	ui.state.SetOffset(box)
	ui.state.RegisterXAxis(linechart.NewLinearAxis(
		"time", datasource.TimestampKey,
		float64(domainMin), float64(domainMax),
		box.Left, box.Left+box.Width, 5,
	))
	// Screen y grows downward, so the value range maps bottom to top.
	ui.state.RegisterYAxis(linechart.NewLinearAxis(
		"value", "",
		valueMin-pad, valueMax+pad,
		box.Top+box.Height, box.Top, 5,
	))

	defer clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, ui)

	for _, line := range ui.lines {
		if err := line.Update(gtx, ui.state); err != nil {
			log.Printf("series %q misconfigured: %v", line.Name, err)
			continue
		}
		line.Layout(gtx, ui.th, box)
	}

	ui.layoutDomainLabels(gtx, domainMin, domainMax)
	if ui.hovered {
		ui.layoutTooltip(gtx)
	}
	return D{Size: gtx.Constraints.Max}
}

func (ui *UI) layoutDomainLabels(gtx C, domainMin, domainMax int64) {
	spanSecs := float64(domainMax-domainMin) / 1_000_000_000
	label := material.Body2(ui.th, "spans "+strconv.FormatFloat(spanSecs, 'f', 2, 64)+"s")
	inner := gtx
	inner.Constraints.Min = image.Point{}
	macro := op.Record(gtx.Ops)
	dims := label.Layout(inner)
	call := macro.Stop()
	stack := op.Offset(image.Point{
		X: gtx.Constraints.Max.X - dims.Size.X,
		Y: gtx.Constraints.Max.Y - dims.Size.Y,
	}).Push(gtx.Ops)
	call.Add(gtx.Ops)
	stack.Pop()
}

// layoutTooltip draws a cursor rule and the value of each visible series at
// the record nearest the pointer, resolved through the chart state's
// tooltip registrations.
func (ui *UI) layoutTooltip(gtx C) {
	paint.FillShape(gtx.Ops, color.NRGBA{A: 255}, clip.Rect{
		Min: image.Point{X: int(ui.pos.X)},
		Max: image.Point{X: int(ui.pos.X) + gtx.Dp(1), Y: gtx.Constraints.Max.Y},
	}.Op())

	for _, line := range ui.lines {
		if idx, ok := nearestIndex(line.Points(), float64(ui.pos.X)); ok {
			line.LayoutActiveDot(gtx, idx)
		}
	}

	var children []layout.FlexChild
	for _, entry := range ui.state.TooltipEntries() {
		if entry.Settings.Hide {
			continue
		}
		idx, ok := nearestIndex(entry.DataDefinedOnItem, float64(ui.pos.X))
		if !ok {
			continue
		}
		entry := entry
		value := entry.DataDefinedOnItem[idx].Value.V
		children = append(children, layout.Rigid(func(gtx C) D {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(material.Body2(ui.th, entry.Settings.Name+": "+strconv.FormatFloat(value, 'f', 3, 64)).Layout),
				layout.Rigid(layout.Spacer{Width: 8}.Layout),
				layout.Rigid(func(gtx C) D {
					size := image.Pt(gtx.Dp(8), gtx.Dp(8))
					paint.FillShape(gtx.Ops, entry.Settings.Color, clip.Ellipse{Max: size}.Op(gtx.Ops))
					return D{Size: size}
				}),
			)
		}))
	}
	if len(children) == 0 {
		return
	}

	origConstraints := gtx.Constraints
	gtx.Constraints.Min = image.Point{}
	macro := op.Record(gtx.Ops)
	dims := layout.Background{}.Layout(gtx,
		func(gtx C) D {
			paint.FillShape(gtx.Ops, color.NRGBA{R: 255, G: 255, B: 255, A: 150}, clip.Rect{Max: gtx.Constraints.Min}.Op())
			return D{Size: gtx.Constraints.Min}
		},
		func(gtx C) D {
			return layout.UniformInset(10).Layout(gtx, func(gtx C) D {
				return layout.Flex{Axis: layout.Vertical, Alignment: layout.End}.Layout(gtx, children...)
			})
		},
	)
	call := macro.Stop()
	gtx.Constraints = origConstraints

	pos := image.Point{X: int(ui.pos.X) + gtx.Dp(8), Y: int(ui.pos.Y)}
	if pos.X+dims.Size.X > gtx.Constraints.Max.X {
		pos.X = int(ui.pos.X) - dims.Size.X - gtx.Dp(8)
	}
	if pos.Y+dims.Size.Y > gtx.Constraints.Max.Y {
		pos.Y = gtx.Constraints.Max.Y - dims.Size.Y
	}
	stack := op.Offset(pos).Push(gtx.Ops)
	call.Add(gtx.Ops)
	stack.Pop()
}

func nearestIndex(points []linechart.Point, x float64) (int, bool) {
	best := -1
	bestDist := 0.0
	for i, pt := range points {
		if !pt.X.Valid || !pt.Value.Valid {
			continue
		}
		dist := pt.X.V - x
		if dist < 0 {
			dist = -dist
		}
		if best == -1 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best, best != -1
}

func (ui *UI) layoutLegend(gtx C) D {
	payloads := ui.state.LegendPayloads()
	table := component.Table(ui.th, &ui.keyTable)
	table.HScrollbarStyle.Indicator.MinorWidth = 0
	table.HScrollbarStyle.Track.MinorPadding = 0
	table.VScrollbarStyle.Indicator.MinorWidth = 0
	table.VScrollbarStyle.Track.MinorPadding = 0
	colorColWidth := gtx.Dp(50)
	pauseColWidth := gtx.Dp(50)
	nameColWidth := gtx.Constraints.Max.X - colorColWidth - pauseColWidth
	rowHeight := gtx.Sp(20)
	const (
		colorCol = iota
		seriesNameCol
		pauseCol
		numCols
	)
	return table.Layout(gtx, len(payloads), numCols,
		func(axis layout.Axis, index, constraint int) int {
			if axis == layout.Vertical {
				return min(constraint, rowHeight)
			}
			var size int
			switch index {
			case colorCol:
				size = colorColWidth
			case seriesNameCol:
				size = nameColWidth
			case pauseCol:
				size = pauseColWidth
			}
			return min(size, constraint)
		},
		func(gtx C, index int) D {
			var l material.LabelStyle
			switch index {
			case colorCol:
				l = material.Body1(ui.th, "Color")
			case seriesNameCol:
				l = material.Body1(ui.th, "Data Series Name")
				l.Alignment = text.Middle
			case pauseCol:
				icon := pauseIcon
				if ui.paused {
					icon = playIcon
				}
				return material.Clickable(gtx, &ui.pauseBtn, func(gtx C) D {
					return layout.Center.Layout(gtx, func(gtx C) D {
						return icon.Layout(gtx, ui.th.Fg)
					})
				})
			}
			l.Color = ui.th.ContrastFg
			return layout.Background{}.Layout(gtx,
				func(gtx C) D {
					paint.FillShape(gtx.Ops, ui.th.ContrastBg, clip.Rect{Max: gtx.Constraints.Max}.Op())
					return D{Size: gtx.Constraints.Min}
				},
				l.Layout,
			)
		},
		func(gtx C, row, col int) D {
			if row >= len(payloads) {
				return D{Size: gtx.Constraints.Max}
			}
			payload := payloads[row]
			// Registration order can differ from series creation order, so
			// resolve the toggle by key rather than by row.
			idx := -1
			for i, key := range ui.keys {
				if key == payload.DataKey {
					idx = i
					break
				}
			}
			if idx == -1 {
				return D{Size: gtx.Constraints.Max}
			}
			disabledAlpha := uint8(100)
			switch col {
			case colorCol:
				ui.visible[idx].Update(gtx)
				return ui.visible[idx].Layout(gtx, func(gtx C) D {
					return layout.Center.Layout(gtx, func(gtx C) D {
						sideLen := gtx.Dp(10)
						sz := image.Pt(sideLen, sideLen)
						swatch := payload.Color
						if payload.Inactive {
							swatch.A = disabledAlpha
						}
						paint.FillShape(gtx.Ops, swatch, clip.Rect{Max: sz}.Op())
						return D{Size: sz}
					})
				})
			case seriesNameCol:
				l := material.Body2(ui.th, payload.Value)
				if payload.Inactive {
					l.Color.A = disabledAlpha
				}
				return l.Layout(gtx)
			default:
				return D{Size: gtx.Constraints.Max}
			}
		},
	)
}
