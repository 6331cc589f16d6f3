package linechart

import "math"

// PathMeasurer reports the drawn length of a projected point sequence. The
// measurement feeds the animation driver; it runs once per geometry change,
// after the points for a frame exist, and stays out of the pure projection
// and interpolation math so both remain independently testable.
type PathMeasurer interface {
	Measure(points []Point, connectNulls bool) (float64, error)
}

// DefaultMeasurer measures the polyline through the valid points.
var DefaultMeasurer PathMeasurer = polylineMeasurer{}

type polylineMeasurer struct{}

// Measure sums the segment lengths between consecutive drawable points.
// When connectNulls is false a gap breaks the polyline, contributing no
// length; otherwise segments span the gap.
func (polylineMeasurer) Measure(points []Point, connectNulls bool) (float64, error) {
	var total float64
	havePrev := false
	var prevX, prevY float64
	for _, pt := range points {
		if !pt.X.Valid || !pt.Y.Valid {
			if !connectNulls {
				havePrev = false
			}
			continue
		}
		if havePrev {
			total += math.Hypot(pt.X.V-prevX, pt.Y.V-prevY)
		}
		prevX, prevY = pt.X.V, pt.Y.V
		havePrev = true
	}
	return total, nil
}
