package sat

// watcher is a clause attached to the watch list of one of its own
// watched literals.
type watcher struct {
	clause *Clause

	// guard is the clause's other watched literal. If it is already
	// true the clause cannot need propagating, so the propagator can
	// skip it without touching the clause at all (it never needs to be
	// loaded into cache for a no-op check).
	guard Literal
}

// watchIndex maintains watchers(l) and watched(c) of spec.md §3,
// keyed by literal (indexed as 2*varID + negation-bit, per §9).
type watchIndex struct {
	lists [][]watcher
}

func newWatchIndex() *watchIndex {
	return &watchIndex{}
}

// grow extends the index to account for one additional variable.
func (w *watchIndex) grow() {
	w.lists = append(w.lists, nil, nil)
}

// watch registers c to be woken when literal l becomes true, using
// guard as c's other watched literal.
func (w *watchIndex) watch(c *Clause, l Literal, guard Literal) {
	w.lists[l] = append(w.lists[l], watcher{clause: c, guard: guard})
}

// install registers c's two watches. Used both for original clauses
// (at AddClause time) and for freshly learnt clauses (at record time);
// the watch index does not distinguish the two (unit clauses never
// reach this function — see clause.go, NewClause's size==1 case).
func (w *watchIndex) install(c *Clause) {
	l0, l1 := c.watched()
	w.watch(c, l0.Opposite(), l1)
	w.watch(c, l1.Opposite(), l0)
}
