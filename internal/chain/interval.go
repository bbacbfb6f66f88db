package chain

// Interval is a validity range in unix milliseconds. A nil bound is
// unbounded in that direction; the policy engine only accepts transitions
// whose range is finite on both ends.
type Interval struct {
	_     struct{} `cbor:",toarray"`
	Lower *int64   `json:"lower"`
	Upper *int64   `json:"upper"`
}

// FiniteInterval builds a fully bounded interval.
func FiniteInterval(lower, upper int64) Interval {
	return Interval{Lower: &lower, Upper: &upper}
}

// Finite reports whether both bounds are present and ordered.
func (i Interval) Finite() bool {
	return i.Lower != nil && i.Upper != nil && *i.Lower <= *i.Upper
}

// Span returns upper - lower. Only meaningful when Finite.
func (i Interval) Span() int64 {
	if !i.Finite() {
		return 0
	}
	return *i.Upper - *i.Lower
}

// FiniteRange is an interval known to be bounded, as recorded in budget
// bookkeeping entries.
type FiniteRange struct {
	_     struct{} `cbor:",toarray"`
	Lower int64    `json:"lower"`
	Upper int64    `json:"upper"`
}

// ToFinite converts an Interval to a FiniteRange. The second return is false
// when the interval is unbounded or inverted.
func (i Interval) ToFinite() (FiniteRange, bool) {
	if !i.Finite() {
		return FiniteRange{}, false
	}
	return FiniteRange{Lower: *i.Lower, Upper: *i.Upper}, true
}
