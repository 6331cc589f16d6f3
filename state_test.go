package linechart

import (
	"testing"
)

func TestStateAxisResolution(t *testing.T) {
	state := NewState(Horizontal, Box{Width: 100, Height: 100})
	state.RegisterXAxis(identityAxis("time", "time"))
	state.RegisterYAxis(identityAxis("value", "value"))

	axis, err := state.XAxis("time")
	if err != nil {
		t.Errorf("expected a registered axis to resolve, got: %v", err)
	}
	if axis.ID != "time" {
		t.Errorf("expected the time axis, got %q", axis.ID)
	}
	if _, err := state.XAxis("missing"); err == nil {
		t.Errorf("expected an unregistered x axis id to be an error")
	}
	if _, err := state.YAxis("missing"); err == nil {
		t.Errorf("expected an unregistered y axis id to be an error")
	}

	// Re-registering an id replaces the binding.
	replacement := identityAxis("time", "elapsed")
	state.RegisterXAxis(replacement)
	axis, err = state.XAxis("time")
	if err != nil {
		t.Fatalf("expected the replaced axis to resolve, got: %v", err)
	}
	if axis.Key != "elapsed" {
		t.Errorf("expected the replacement binding, got key %q", axis.Key)
	}
}

func TestStateItemRegistration(t *testing.T) {
	state := NewState(Horizontal, Box{})
	data := []Datum{FieldMap{"y": 1}}
	rec := &RegistrationRecord{Data: data, DataKey: "y", XAxisID: "x", YAxisID: "y"}

	state.AddCartesianItem(rec)
	state.AddCartesianItem(rec)
	if got := len(state.Items()); got != 1 {
		t.Fatalf("expected re-announcing the same record to be a no-op, got %d items", got)
	}

	// A distinct record with an identical tuple is also a no-op.
	dup := &RegistrationRecord{Data: data, DataKey: "y", XAxisID: "x", YAxisID: "y"}
	state.AddCartesianItem(dup)
	if got := len(state.Items()); got != 1 {
		t.Fatalf("expected an equal tuple to be a no-op, got %d items", got)
	}

	// A fresh data slice means the data changed, even with equal contents.
	fresh := &RegistrationRecord{Data: []Datum{FieldMap{"y": 1}}, DataKey: "y", XAxisID: "x", YAxisID: "y"}
	state.AddCartesianItem(fresh)
	if got := len(state.Items()); got != 2 {
		t.Fatalf("expected a new data slice to register, got %d items", got)
	}

	other := &RegistrationRecord{Data: data, DataKey: "z", XAxisID: "x", YAxisID: "y"}
	state.AddCartesianItem(other)
	if got := len(state.Items()); got != 3 {
		t.Fatalf("expected a different data key to register, got %d items", got)
	}

	state.RemoveCartesianItem(rec)
	items := state.Items()
	if len(items) != 2 {
		t.Fatalf("expected removal to withdraw one item, got %d", len(items))
	}
	for _, item := range items {
		if item == rec {
			t.Errorf("expected the removed record to be gone")
		}
	}
	state.RemoveCartesianItem(rec)
	if got := len(state.Items()); got != 2 {
		t.Errorf("expected removing an absent record to be ignored, got %d items", got)
	}
}

func TestStateLegendAndTooltip(t *testing.T) {
	state := NewState(Horizontal, Box{})
	visible := &RegistrationRecord{
		DataKey: "a",
		Legend: func() LegendPayload {
			return LegendPayload{DataKey: "a", Kind: "line", Value: "A"}
		},
		Tooltip: func() TooltipEntry {
			return TooltipEntry{Settings: TooltipSettings{DataKey: "a", Name: "A"}}
		},
	}
	hidden := &RegistrationRecord{
		DataKey: "b",
		Hide:    true,
		Legend: func() LegendPayload {
			return LegendPayload{Inactive: true, DataKey: "b", Kind: "line", Value: "B"}
		},
	}
	bare := &RegistrationRecord{DataKey: "c"}
	state.AddCartesianItem(visible)
	state.AddCartesianItem(hidden)
	state.AddCartesianItem(bare)

	legends := state.LegendPayloads()
	if len(legends) != 2 {
		t.Fatalf("expected two legend payloads, got %d", len(legends))
	}
	if legends[0].Inactive || legends[0].Value != "A" {
		t.Errorf("unexpected first legend payload: %+v", legends[0])
	}
	if !legends[1].Inactive {
		t.Errorf("expected the hidden series to contribute an inactive legend entry")
	}

	tooltips := state.TooltipEntries()
	if len(tooltips) != 1 {
		t.Fatalf("expected one tooltip entry, got %d", len(tooltips))
	}
	if tooltips[0].Settings.Name != "A" {
		t.Errorf("unexpected tooltip entry: %+v", tooltips[0].Settings)
	}
}

func TestStateLayoutAndData(t *testing.T) {
	state := NewState(Horizontal, Box{Left: 10, Top: 20, Width: 100, Height: 50})
	if state.Layout() != Horizontal {
		t.Errorf("expected horizontal layout")
	}
	state.SetLayout(Vertical)
	if state.Layout() != Vertical {
		t.Errorf("expected vertical layout after SetLayout")
	}
	if got := state.Offset(); got != (Box{Left: 10, Top: 20, Width: 100, Height: 50}) {
		t.Errorf("unexpected offset: %+v", got)
	}
	state.SetOffset(Box{Width: 1})
	if got := state.Offset(); got != (Box{Width: 1}) {
		t.Errorf("unexpected offset after SetOffset: %+v", got)
	}
	data := []Datum{FieldMap{"y": 1}}
	state.SetData(data)
	if got := state.Data(); len(got) != 1 {
		t.Errorf("expected one record, got %d", len(got))
	}
}
