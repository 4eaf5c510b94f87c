package fluency

// runTracker is a two-state automaton (idle/accumulating) that finds maximal
// runs of indices satisfying a predicate. Both the pause detector and burst
// segmentation are built on it so the flush-at-end-of-sequence rule lives in
// exactly one place: a run still open when the sequence ends is closed at the
// final index and emitted like any other.
type runTracker struct {
	emit   func(start, end int) // called with inclusive bounds when a run closes
	start  int
	active bool
}

// observe feeds the predicate value for index i. Indices must be presented in
// ascending order.
func (r *runTracker) observe(i int, hit bool) {
	switch {
	case hit && !r.active:
		r.active = true
		r.start = i
	case !hit && r.active:
		r.active = false
		r.emit(r.start, i-1)
	}
}

// flush closes a run left open at the end of the sequence. lastIndex is the
// final index observed.
func (r *runTracker) flush(lastIndex int) {
	if r.active {
		r.active = false
		r.emit(r.start, lastIndex)
	}
}
