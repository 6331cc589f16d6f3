package datasource

import "testing"

func TestSeriesInsert(t *testing.T) {
	s := NewSeries("watts")
	if s.Initialized() {
		t.Errorf("expected a fresh series to be uninitialized")
	}
	if s.Name() != "watts" {
		t.Errorf("expected name to be preserved, got %q", s.Name())
	}
	// Insert out of order and expect timestamp-sorted storage.
	for _, sample := range []struct {
		ts    int64
		value float64
	}{
		{ts: 3000, value: 3},
		{ts: 1000, value: 1},
		{ts: 2000, value: -2},
	} {
		if !s.Insert(sample.ts, sample.value) {
			t.Errorf("inserting distinct timestamps should always be okay, but %d failed", sample.ts)
		}
	}
	if s.Insert(2000, 99) {
		t.Errorf("expected a duplicate timestamp to be rejected")
	}
	if !s.Initialized() {
		t.Errorf("expected the series to initialize on first insert")
	}
	if s.Len() != 3 {
		t.Fatalf("expected 3 samples, got %d", s.Len())
	}
	wantTS := []int64{1000, 2000, 3000}
	wantValues := []float64{1, -2, 3}
	for i := range wantTS {
		ts, v := s.At(i)
		if ts != wantTS[i] || v != wantValues[i] {
			t.Errorf("sample %d: expected (%d, %f), got (%d, %f)", i, wantTS[i], wantValues[i], ts, v)
		}
	}
	if dMin, dMax := s.Domain(); dMin != 1000 || dMax != 3000 {
		t.Errorf("expected domain [1000,3000], got [%d,%d]", dMin, dMax)
	}
	if vMin, vMax := s.ValueRange(); vMin != -2 || vMax != 3 {
		t.Errorf("expected value range [-2,3], got [%f,%f]", vMin, vMax)
	}
	if sum := s.Sum(); sum != 2 {
		t.Errorf("expected sum 2, got %f", sum)
	}
}

func TestSeriesEmptyDomain(t *testing.T) {
	s := NewSeries("empty")
	if dMin, dMax := s.Domain(); dMin != 0 || dMax != 0 {
		t.Errorf("expected an empty series to have a zero domain, got [%d,%d]", dMin, dMax)
	}
}
