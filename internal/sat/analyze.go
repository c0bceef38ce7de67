package sat

// analyzer holds the scratch state conflict analysis reuses across
// calls, so that a long solve doesn't reallocate it thousands of
// times (mirrors the teacher's tmpLearnts/tmpReason/seenVar fields).
type analyzer struct {
	trail *Trail

	seen   *ResetSet
	learnt []Literal
	tmpOut []Literal
}

func newAnalyzer(trail *Trail, nVars int) *analyzer {
	a := &analyzer{trail: trail, seen: &ResetSet{}}
	for i := 0; i < nVars; i++ {
		a.seen.Expand()
	}
	return a
}

func (a *analyzer) grow() {
	a.seen.Expand()
}

// analyze implements the first-UIP procedure of spec.md §4.5. It
// consumes the conflicting clause and the trail and returns the
// learnt clause together with the backjump level, or (nil, -1) if the
// conflict occurred at decision level 0 (the formula is UNSAT).
//
// Precondition: conflict must be non-nil. The trail must not be
// mutated by the caller until analyze returns.
func (a *analyzer) analyze(conflict *Clause) ([]Literal, int) {
	t := a.trail
	if t.DecisionLevel() == 0 {
		return nil, -1
	}

	a.seen.Clear()
	a.learnt = a.learnt[:0]
	a.learnt = append(a.learnt, litNone) // placeholder for the UIP literal

	// pending counts literals from the current decision level that
	// still need to be resolved away. It reaches zero exactly when the
	// single remaining current-level literal is the first UIP.
	pending := 0
	backjump := 0

	reasonLit := litNone // the literal whose antecedent we're currently walking
	reason := conflict
	nextTrailIdx := len(t.trail) - 1

	for {
		a.tmpOut = reason.explain(a.tmpOut, reasonLit)
		for _, q := range a.tmpOut {
			v := q.VarID()
			if a.seen.Contains(v) {
				continue
			}
			a.seen.Add(v)

			if t.LevelOf(v) == t.DecisionLevel() {
				pending++
				continue
			}
			a.learnt = append(a.learnt, q.Opposite())
			if lvl := t.LevelOf(v); lvl > backjump {
				backjump = lvl
			}
		}

		// Walk back along the trail to the next seen, not-yet-resolved
		// literal at the current decision level.
		var v int
		for {
			reasonLit = t.trail[nextTrailIdx]
			nextTrailIdx--
			v = reasonLit.VarID()
			if a.seen.Contains(v) {
				break
			}
		}
		reason = t.ReasonOf(v)

		pending--
		if pending <= 0 {
			break
		}
	}

	a.learnt[0] = reasonLit.Opposite()
	out := make([]Literal, len(a.learnt))
	copy(out, a.learnt)
	return out, backjump
}
