package linechart

// Point is one datum projected into drawing space. The sequence order of
// projected points matches the dataset's display order, and every record
// yields a point even when its value is absent.
type Point struct {
	X, Y Coordinate

	// Value is the raw data value behind the value coordinate.
	Value Coordinate

	// Payload is the originating record, kept for error-bar, tooltip, and
	// label lookups. Never mutated.
	Payload Datum
}

// ProjectPoints maps each record to a screen point using the category and
// value axes. The category coordinate comes from the category axis's tick
// list (centered within the band for categorical axes) or from scaling the
// axis's own field for numeric axes. The value coordinate is invalid when
// the record does not define key.
//
// Projection is a pure derivation: identical inputs produce deep-equal
// output, which callers rely on when deciding whether geometry changed.
func ProjectPoints(data []Datum, key DataKey, categoryAxis, valueAxis AxisBinding, orient Orientation) []Point {
	points := make([]Point, len(data))
	band := categoryAxis.BandSize()
	for i, datum := range data {
		var cat Coordinate
		switch {
		case categoryAxis.Type == AxisCategory && len(categoryAxis.Ticks) > 0:
			// Records beyond the tick list have no category slot. They
			// project as gaps rather than wrapping onto earlier slots.
			if i < len(categoryAxis.Ticks) {
				tick := categoryAxis.Ticks[i]
				cat = Coord(tick.Coordinate + band)
			}
		default:
			if v, ok := datum.Lookup(categoryAxis.Key); ok {
				cat = Coord(categoryAxis.Scale(v) + band)
			}
		}

		var val, value Coordinate
		if v, ok := datum.Lookup(key); ok {
			value = Coord(v)
			val = Coord(valueAxis.Scale(v))
		}

		pt := Point{Value: value, Payload: datum}
		if orient == Horizontal {
			pt.X, pt.Y = cat, val
		} else {
			pt.X, pt.Y = val, cat
		}
		points[i] = pt
	}
	return points
}

// PointsEqual reports whether two projections are equal at the value level.
// Payloads are deliberately excluded: geometry is what drives animation
// restarts, not record identity.
func PointsEqual(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].X != b[i].X || a[i].Y != b[i].Y || a[i].Value != b[i].Value {
			return false
		}
	}
	return true
}
