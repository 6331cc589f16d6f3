package linechart

import (
	"image/color"
	"sync"
)

// Box is a plot-space rectangle in pixels.
type Box struct {
	Left, Top     float64
	Width, Height float64
}

// LegendPayload is one series' contribution to a shared legend.
type LegendPayload struct {
	// Inactive marks hidden series so legends can render them dimmed while
	// still listing them.
	Inactive bool
	DataKey  DataKey
	// Kind tags the series type ("line") so mixed charts can pick glyphs.
	Kind  string
	Color color.NRGBA
	// Value is the display name for the legend entry.
	Value string
	// Payload points back at the originating item's registration so custom
	// legends can reach its data and configuration.
	Payload *RegistrationRecord
}

// TooltipSettings describe how a tooltip should present one series.
type TooltipSettings struct {
	Stroke      color.NRGBA
	StrokeWidth float64
	Fill        color.NRGBA
	DataKey     DataKey
	Name        string
	Hide        bool
	Kind        string
	Color       color.NRGBA
	Unit        string
}

// TooltipEntry is one series' contribution to a shared tooltip.
type TooltipEntry struct {
	// DataDefinedOnItem carries the series' projected points so tooltips can
	// resolve the record nearest the pointer.
	DataDefinedOnItem []Point
	Settings          TooltipSettings
}

// RegistrationRecord announces one graphical item's presence to the chart
// state. Identity is the field tuple: axis ids plus data key plus the data
// slice itself. Line series never stack, so StackID stays empty for them;
// the field exists so the tuple shape matches sibling bar and area items.
type RegistrationRecord struct {
	Data      []Datum
	DataKey   DataKey
	Hide      bool
	StackID   string
	XAxisID   string
	YAxisID   string
	ErrorBars []ErrorBar

	// Legend and Tooltip produce this item's contributions for sibling
	// components. They do not participate in record identity.
	Legend  func() LegendPayload
	Tooltip func() TooltipEntry
}

// equalTuple compares the identity fields of two records. Data slices are
// compared by identity (same backing array and length), not element-wise:
// a re-announcement with the same slice is the idempotent case the store
// must tolerate, while a fresh slice means the data changed.
func (r *RegistrationRecord) equalTuple(o *RegistrationRecord) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.DataKey != o.DataKey || r.Hide != o.Hide || r.StackID != o.StackID ||
		r.XAxisID != o.XAxisID || r.YAxisID != o.YAxisID {
		return false
	}
	if len(r.Data) != len(o.Data) {
		return false
	}
	if len(r.Data) > 0 && &r.Data[0] != &o.Data[0] {
		return false
	}
	if len(r.ErrorBars) != len(o.ErrorBars) {
		return false
	}
	for i := range r.ErrorBars {
		if r.ErrorBars[i] != o.ErrorBars[i] {
			return false
		}
	}
	return true
}

// State is the chart-level store shared by every component of one chart:
// series read layout, offset, axis bindings, and data from it, and announce
// themselves to it so siblings (legend, tooltip, axes) can react.
//
// Each series owns exactly its own registration record and must not touch
// any other item's. The lock exists because data sources feed records from
// reader goroutines while the UI reads during frames.
type State struct {
	mu     sync.RWMutex
	orient Orientation
	offset Box
	xAxes  map[string]AxisBinding
	yAxes  map[string]AxisBinding
	data   []Datum
	items  []*RegistrationRecord
}

func NewState(orient Orientation, offset Box) *State {
	return &State{
		orient: orient,
		offset: offset,
		xAxes:  make(map[string]AxisBinding),
		yAxes:  make(map[string]AxisBinding),
	}
}

// Layout reports the chart's orientation.
func (s *State) Layout() Orientation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orient
}

// SetLayout changes the chart's orientation.
func (s *State) SetLayout(o Orientation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orient = o
}

// Offset reports the plot box within the chart's surface.
func (s *State) Offset() Box {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.offset
}

// SetOffset updates the plot box, typically after a window resize.
func (s *State) SetOffset(b Box) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offset = b
}

// RegisterXAxis makes an x axis binding resolvable by id.
func (s *State) RegisterXAxis(a AxisBinding) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.xAxes[a.ID] = a
}

// RegisterYAxis makes a y axis binding resolvable by id.
func (s *State) RegisterYAxis(a AxisBinding) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.yAxes[a.ID] = a
}

// XAxis resolves an x axis by id. Referencing an unregistered axis is a
// configuration error and fails immediately rather than rendering nothing.
func (s *State) XAxis(id string) (AxisBinding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.xAxes[id]
	if !ok {
		return AxisBinding{}, errMissingAxis("x", id)
	}
	return a, nil
}

// YAxis resolves a y axis by id, failing fast on unknown ids.
func (s *State) YAxis(id string) (AxisBinding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.yAxes[id]
	if !ok {
		return AxisBinding{}, errMissingAxis("y", id)
	}
	return a, nil
}

// SetData replaces the displayed dataset slice.
func (s *State) SetData(data []Datum) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
}

// Data returns the displayed dataset slice.
func (s *State) Data() []Datum {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// AddCartesianItem announces a graphical item. Re-announcing a record whose
// tuple matches an already-registered one is a no-op, keeping registration
// idempotent.
func (s *State) AddCartesianItem(rec *RegistrationRecord) {
	if rec == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.items {
		if existing == rec || existing.equalTuple(rec) {
			return
		}
	}
	s.items = append(s.items, rec)
}

// RemoveCartesianItem withdraws a previously announced item. Unknown records
// are ignored.
func (s *State) RemoveCartesianItem(rec *RegistrationRecord) {
	if rec == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.items {
		if existing == rec {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Items snapshots the registered graphical items.
func (s *State) Items() []*RegistrationRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*RegistrationRecord, len(s.items))
	copy(out, s.items)
	return out
}

// LegendPayloads collects legend contributions from every registered item,
// hidden series included.
func (s *State) LegendPayloads() []LegendPayload {
	items := s.Items()
	out := make([]LegendPayload, 0, len(items))
	for _, item := range items {
		if item.Legend != nil {
			out = append(out, item.Legend())
		}
	}
	return out
}

// TooltipEntries collects tooltip contributions from every registered item.
func (s *State) TooltipEntries() []TooltipEntry {
	items := s.Items()
	out := make([]TooltipEntry, 0, len(items))
	for _, item := range items {
		if item.Tooltip != nil {
			out = append(out, item.Tooltip())
		}
	}
	return out
}
