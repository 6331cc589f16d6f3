package linechart

// DataKey names one numeric field of a Datum. Series, axes, error bars, and
// labels all select their values by key.
type DataKey string

// Datum is a single record of chart data. Lookup reports the value stored
// under key and whether the record defines that field at all. A field that
// is present with value zero (or NaN) is still present; only missing fields
// produce ok == false.
type Datum interface {
	Lookup(key DataKey) (value float64, ok bool)
}

// FieldMap is a Datum backed by a plain map.
type FieldMap map[DataKey]float64

func (f FieldMap) Lookup(key DataKey) (float64, bool) {
	v, ok := f[key]
	return v, ok
}

// Coordinate is an optional screen-space coordinate or raw value. Invalid
// coordinates mark gaps in the data.
type Coordinate struct {
	V     float64
	Valid bool
}

// Coord wraps a concrete value as a valid Coordinate.
func Coord(v float64) Coordinate {
	return Coordinate{V: v, Valid: true}
}
