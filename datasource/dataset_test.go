package datasource

import (
	"testing"

	"git.sr.ht/~whereswaldon/linechart"
)

func TestDatasetRecords(t *testing.T) {
	d := &Dataset{}
	if d.Initialized() {
		t.Errorf("expected an empty dataset to be uninitialized")
	}
	d.SetHeadings([]string{"cpu", "gpu"}, []int{7, 9})
	if d.Initialized() {
		t.Errorf("expected a dataset without samples to be uninitialized")
	}

	d.Insert(Sample{TimestampNS: 1000, Series: 7, Value: 1.5})
	d.Insert(Sample{TimestampNS: 2000, Series: 7, Value: 2.5})
	d.Insert(Sample{TimestampNS: 2000, Series: 9, Value: 3.5})
	// Samples for unregistered series are dropped rather than crashing.
	d.Insert(Sample{TimestampNS: 2000, Series: 42, Value: 99})

	if !d.Initialized() {
		t.Errorf("expected the dataset to initialize once every series has data")
	}

	records, keys := d.Records()
	if len(keys) != 2 || keys[0] != "cpu" || keys[1] != "gpu" {
		t.Fatalf("expected keys [cpu gpu], got %v", keys)
	}
	if len(records) != 2 {
		t.Fatalf("expected two merged records, got %d", len(records))
	}

	expectField(t, records[0], TimestampKey, 1000)
	expectField(t, records[0], "cpu", 1.5)
	if _, ok := records[0].Lookup("gpu"); ok {
		t.Errorf("expected the first record to have a gap for gpu")
	}
	expectField(t, records[1], TimestampKey, 2000)
	expectField(t, records[1], "cpu", 2.5)
	expectField(t, records[1], "gpu", 3.5)

	if dMin, dMax := d.Domain(); dMin != 1000 || dMax != 2000 {
		t.Errorf("expected domain [1000,2000], got [%d,%d]", dMin, dMax)
	}
	if vMin, vMax := d.ValueRange(); vMin != 1.5 || vMax != 3.5 {
		t.Errorf("expected value range [1.5,3.5], got [%f,%f]", vMin, vMax)
	}
}

func expectField(t *testing.T, rec linechart.Datum, key linechart.DataKey, want float64) {
	t.Helper()
	got, ok := rec.Lookup(key)
	if !ok {
		t.Errorf("expected record to define %q", key)
	} else if got != want {
		t.Errorf("expected %q to be %f, got %f", key, want, got)
	}
}
