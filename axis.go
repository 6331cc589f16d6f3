package linechart

import (
	"fmt"
	"math"
)

// Orientation describes which screen dimension the category axis occupies.
type Orientation uint8

const (
	// Horizontal places the category axis along x and the value axis along y.
	Horizontal Orientation = iota
	// Vertical flips the two.
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// AxisType distinguishes continuous numeric axes from categorical ones.
type AxisType uint8

const (
	AxisNumber AxisType = iota
	AxisCategory
)

func (a AxisType) String() string {
	switch a {
	case AxisNumber:
		return "number"
	case AxisCategory:
		return "category"
	default:
		return "unknown"
	}
}

// Tick is one resolved tick mark on an axis.
type Tick struct {
	// Value is the domain value the tick represents. For categorical axes
	// this is the category's index in display order.
	Value float64
	// Coordinate is the tick's position in screen pixels.
	Coordinate float64
}

// ScaleFunc maps a domain value to a screen coordinate in pixels.
type ScaleFunc func(float64) float64

// AxisBinding is a resolved axis used for projecting data into screen space.
// Two bindings participate in every series: the category axis and the value
// axis. Which one maps to x flips with the chart's Orientation.
type AxisBinding struct {
	ID   string
	Type AxisType

	// Key selects the record field supplying this axis's value. Categorical
	// axes position records by index instead and may leave Key empty.
	Key DataKey

	Scale ScaleFunc
	Ticks []Tick

	// AllowDataOverflow permits data outside the axis domain to draw beyond
	// the plot box. Series clip their strokes to the plot box exactly when
	// this is set on either of their axes.
	AllowDataOverflow bool
}

// BandSize is half the distance between adjacent ticks, used to center
// point-like data within a categorical slot. Continuous axes have no band.
func (a AxisBinding) BandSize() float64 {
	if a.Type != AxisCategory || len(a.Ticks) < 2 {
		return 0
	}
	return math.Abs(a.Ticks[1].Coordinate-a.Ticks[0].Coordinate) / 2
}

// LinearScale maps [domainMin, domainMax] onto [rangeMin, rangeMax]. A
// degenerate domain collapses to rangeMin rather than dividing by zero.
func LinearScale(domainMin, domainMax, rangeMin, rangeMax float64) ScaleFunc {
	interval := domainMax - domainMin
	return func(v float64) float64 {
		if interval == 0 {
			return rangeMin
		}
		return rangeMin + ((v-domainMin)/interval)*(rangeMax-rangeMin)
	}
}

// NewLinearAxis builds a continuous numeric axis with evenly spaced ticks.
func NewLinearAxis(id string, key DataKey, domainMin, domainMax, rangeMin, rangeMax float64, tickCount int) AxisBinding {
	scale := LinearScale(domainMin, domainMax, rangeMin, rangeMax)
	var ticks []Tick
	if tickCount > 1 {
		ticks = make([]Tick, tickCount)
		step := (domainMax - domainMin) / float64(tickCount-1)
		for i := range ticks {
			v := domainMin + step*float64(i)
			ticks[i] = Tick{Value: v, Coordinate: scale(v)}
		}
	}
	return AxisBinding{
		ID:    id,
		Type:  AxisNumber,
		Key:   key,
		Scale: scale,
		Ticks: ticks,
	}
}

// NewCategoryAxis builds a categorical axis with count evenly spaced slots
// spanning [rangeMin, rangeMax]. Records are positioned by index.
func NewCategoryAxis(id string, count int, rangeMin, rangeMax float64) AxisBinding {
	var ticks []Tick
	scale := func(v float64) float64 { return rangeMin }
	if count > 0 {
		slot := (rangeMax - rangeMin) / float64(count)
		ticks = make([]Tick, count)
		for i := range ticks {
			ticks[i] = Tick{Value: float64(i), Coordinate: rangeMin + slot*float64(i)}
		}
		scale = func(v float64) float64 { return rangeMin + slot*v }
	}
	return AxisBinding{
		ID:    id,
		Type:  AxisCategory,
		Scale: scale,
		Ticks: ticks,
	}
}

// errMissingAxis reports a reference to an axis id that was never registered.
func errMissingAxis(kind, id string) error {
	return fmt.Errorf("no %s axis registered with id %q", kind, id)
}
