package linechart

// registrar owns one series' registration lifecycle against a chart State.
// It announces the record when the series first updates, replaces it
// (remove-old then add-new) whenever the tuple changes, and withdraws it
// when the series closes.
type registrar struct {
	state *State
	last  *RegistrationRecord
}

// sync reconciles the registered record with rec. An unchanged tuple leaves
// the existing registration alone.
func (r *registrar) sync(state *State, rec *RegistrationRecord) {
	if r.state == state && r.last.equalTuple(rec) {
		return
	}
	r.close()
	r.state = state
	r.last = rec
	if state != nil {
		state.AddCartesianItem(rec)
	}
}

// close withdraws the current registration, if any. Safe to call repeatedly.
func (r *registrar) close() {
	if r.state != nil && r.last != nil {
		r.state.RemoveCartesianItem(r.last)
	}
	r.state = nil
	r.last = nil
}
