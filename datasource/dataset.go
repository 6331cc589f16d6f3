package datasource

import (
	"slices"
	"sync"

	"golang.org/x/exp/maps"

	"git.sr.ht/~whereswaldon/linechart"
)

// TimestampKey is the record field carrying each sample's timestamp in the
// records produced by [Dataset.Records].
const TimestampKey linechart.DataKey = "timestamp"

// Dataset groups the series of one session and exposes them as chart
// records.
type Dataset struct {
	mu     sync.RWMutex
	series []*Series
	// mapping maps from series identifiers used by the source to the index
	// of a series in this structure.
	mapping map[int]int
}

func (d *Dataset) Initialized() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if len(d.series) == 0 {
		return false
	}
	for _, s := range d.series {
		if !s.Initialized() {
			return false
		}
	}
	return true
}

// SetHeadings registers new series with their headings. The ids slice
// provides the source's identifier for each series, which is likely to
// differ from the index used to store the data in this type.
func (d *Dataset) SetHeadings(headings []string, ids []int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.mapping == nil {
		d.mapping = make(map[int]int)
	}
	for i, id := range ids {
		d.mapping[id] = len(d.series)
		d.series = append(d.series, NewSeries(headings[i]))
	}
}

// Insert stores the sample. Samples referencing unregistered series are
// dropped.
func (d *Dataset) Insert(sample Sample) {
	d.mu.RLock()
	idx, ok := d.mapping[sample.Series]
	var s *Series
	if ok {
		s = d.series[idx]
	}
	d.mu.RUnlock()
	if s != nil {
		s.Insert(sample.TimestampNS, sample.Value)
	}
}

// Series snapshots the dataset's series in registration order.
func (d *Dataset) Series() []*Series {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*Series, len(d.series))
	copy(out, d.series)
	return out
}

func (d *Dataset) Domain() (dMin, dMax int64) {
	series := d.Series()
	for i, s := range series {
		sMin, sMax := s.Domain()
		if i == 0 {
			dMin, dMax = sMin, sMax
			continue
		}
		dMin = min(sMin, dMin)
		dMax = max(sMax, dMax)
	}
	return dMin, dMax
}

func (d *Dataset) ValueRange() (vMin, vMax float64) {
	series := d.Series()
	for i, s := range series {
		sMin, sMax := s.ValueRange()
		if i == 0 {
			vMin, vMax = sMin, sMax
			continue
		}
		vMin = min(sMin, vMin)
		vMax = max(sMax, vMax)
	}
	return vMin, vMax
}

// Records merges every series into one record sequence in timestamp order,
// suitable for [linechart.State.SetData]. Each record carries TimestampKey
// plus one field per series that has a sample at that timestamp; series
// without one leave their field absent, producing gaps in the chart.
func (d *Dataset) Records() (records []linechart.Datum, keys []linechart.DataKey) {
	series := d.Series()
	keys = make([]linechart.DataKey, len(series))
	byTimestamp := make(map[int64]linechart.FieldMap)
	for i, s := range series {
		key := linechart.DataKey(s.Name())
		keys[i] = key
		for j := 0; j < s.Len(); j++ {
			ts, v := s.At(j)
			rec, ok := byTimestamp[ts]
			if !ok {
				rec = linechart.FieldMap{TimestampKey: float64(ts)}
				byTimestamp[ts] = rec
			}
			rec[key] = v
		}
	}
	timestamps := maps.Keys(byTimestamp)
	slices.Sort(timestamps)
	records = make([]linechart.Datum, len(timestamps))
	for i, ts := range timestamps {
		records[i] = byTimestamp[ts]
	}
	return records, keys
}
