package linechart

import (
	"math"
	"testing"
)

func validPoint(x, y float64) Point {
	return Point{X: Coord(x), Y: Coord(y), Value: Coord(y)}
}

func gapPoint() Point {
	return Point{}
}

func TestPolylineMeasure(t *testing.T) {
	type testcase struct {
		name         string
		points       []Point
		connectNulls bool
		want         float64
	}
	for _, tc := range []testcase{
		{
			name:   "single segment",
			points: []Point{validPoint(0, 0), validPoint(3, 4)},
			want:   5,
		},
		{
			name: "gap breaks the polyline",
			points: []Point{
				validPoint(0, 0), validPoint(3, 4),
				gapPoint(),
				validPoint(3, 8), validPoint(6, 12),
			},
			want: 10,
		},
		{
			name: "connectNulls bridges the gap",
			points: []Point{
				validPoint(0, 0), validPoint(3, 4),
				gapPoint(),
				validPoint(3, 8), validPoint(6, 12),
			},
			connectNulls: true,
			want:         14,
		},
		{
			name:   "lone point has no length",
			points: []Point{validPoint(5, 5)},
			want:   0,
		},
		{
			name: "empty",
			want: 0,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DefaultMeasurer.Measure(tc.points, tc.connectNulls)
			if err != nil {
				t.Fatalf("expected measurement to succeed, got: %v", err)
			}
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("expected length %v, got %v", tc.want, got)
			}
		})
	}
}
