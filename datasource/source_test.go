package datasource

import (
	"strings"
	"testing"
)

func TestReadSource(t *testing.T) {
	const trace = `timestamp, cpu, gpu
1000, 1.5,
2000, 2.5, 3.5
garbage, 4.5, 5.5
3000, bogus, 6.5
`
	src := &Source{}
	samples := make(chan InputData, 64)
	src.readSource(strings.NewReader(trace), samples, false)

	first := <-samples
	if first.Kind != KindHeadings {
		t.Fatalf("expected headings first, got %+v", first)
	}
	if len(first.Headings) != 2 || first.Headings[0] != "cpu" || first.Headings[1] != "gpu" {
		t.Fatalf("expected headings [cpu gpu], got %v", first.Headings)
	}
	if len(first.HeadingSeries) != 2 {
		t.Fatalf("expected one series id per heading, got %v", first.HeadingSeries)
	}
	cpu := first.HeadingSeries[0]
	gpu := first.HeadingSeries[1]
	if cpu == gpu {
		t.Fatalf("expected distinct series ids, got %v", first.HeadingSeries)
	}

	type sample struct {
		ts     int64
		series int
		value  float64
	}
	// The empty cell at 1000 and both malformed rows are skipped.
	want := []sample{
		{ts: 1000, series: cpu, value: 1.5},
		{ts: 2000, series: cpu, value: 2.5},
		{ts: 2000, series: gpu, value: 3.5},
		{ts: 3000, series: gpu, value: 6.5},
	}
	var got []sample
	for len(samples) > 0 {
		in := <-samples
		if in.Kind != KindSample {
			t.Fatalf("expected only samples after the headings, got %+v", in)
		}
		got = append(got, sample{ts: in.TimestampNS, series: in.Series, value: in.Value})
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d samples, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestReadSourceRejectsShortHeader(t *testing.T) {
	src := &Source{}
	samples := make(chan InputData, 4)
	src.readSource(strings.NewReader("timestamp\n1000\n"), samples, false)
	if len(samples) != 0 {
		t.Errorf("expected a single-column trace to produce nothing, got %d messages", len(samples))
	}
}
