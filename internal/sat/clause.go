package sat

import "strings"

// Clause is a disjunction of literals. Clauses are append-only: once
// constructed, a clause's literal set never shrinks and the clause is
// never deleted from the database it belongs to (see database.go).
// The first two literals (literals[0], literals[1]) double as the
// clause's two watched literals; watched() reports them.
type Clause struct {
	literals []Literal
	learnt   bool

	// prevPos is the index at which the last search for a replacement
	// watch succeeded. Restarting the scan there instead of at 2 avoids
	// re-scanning literals that have already been confirmed false.
	prevPos int
}

// NewClause builds a clause from tmpLiterals, removing duplicates and
// detecting tautologies and root-level falsified literals along the
// way. tmpLiterals is mutated (compacted in place).
//
// The returned bool reports whether the clause set remains satisfiable
// given the precondition: false means the clause is empty (an
// unconditional conflict), i.e. the root-level unit propagation this
// call performed derived a contradiction. A nil *Clause with ok==true
// means the clause was trivially satisfied (a tautology, or already
// true under the root assignment) or was a unit fact that has been
// enqueued directly rather than stored.
func NewClause(tr *Trail, tmpLiterals []Literal, learnt bool) (*Clause, bool) {
	size := len(tmpLiterals)

	if !learnt {
		seen := map[Literal]struct{}{}
		for i := size - 1; i >= 0; i-- {
			if _, ok := seen[tmpLiterals[i].Opposite()]; ok {
				return nil, true // tautology: l and !l both present
			}
			if _, ok := seen[tmpLiterals[i]]; ok {
				size--
				tmpLiterals[i], tmpLiterals[size] = tmpLiterals[size], tmpLiterals[i]
				continue
			}
			seen[tmpLiterals[i]] = struct{}{}

			switch tr.Value(tmpLiterals[i]) {
			case True:
				return nil, true // already satisfied at the root
			case False:
				size--
				tmpLiterals[i], tmpLiterals[size] = tmpLiterals[size], tmpLiterals[i]
			}
		}
		tmpLiterals = tmpLiterals[:size]
	}

	switch size {
	case 0:
		return nil, false
	case 1:
		return nil, tr.Assign(tmpLiterals[0], nil)
	default:
		c := newClause(tmpLiterals, learnt)
		c.prevPos = 2

		if learnt {
			// The caller (analyze) always places the first-UIP literal
			// at index 0; it is about to be asserted regardless of its
			// (possibly now-stale, post-backtrack) level. Watch it and
			// whichever of the remaining literals has the highest
			// decision level — by construction of the backjump level,
			// that is the literal that stays assigned closest to the
			// trail's new tip (§4.3), so falsifying it is what will
			// drive this clause unit again as the trail replays.
			hi, hiPos := -1, 1
			for i := 1; i < len(c.literals); i++ {
				if lvl := tr.LevelOf(c.literals[i].VarID()); lvl > hi {
					hi, hiPos = lvl, i
				}
			}
			c.literals[hiPos], c.literals[1] = c.literals[1], c.literals[hiPos]
		}

		return c, true
	}
}

// Literals returns the clause's literals. The caller must not mutate
// the returned slice.
func (c *Clause) Literals() []Literal {
	return c.literals
}

// IsLearnt reports whether the clause was derived by conflict analysis
// rather than present in the original formula.
func (c *Clause) IsLearnt() bool {
	return c.learnt
}

func (c *Clause) watched() (Literal, Literal) {
	return c.literals[0], c.literals[1]
}

// propagate is invoked when l has just become true (i.e. its negation
// has just become false) and c is watching l.Opposite(). It implements
// the rewatch rule of §4.3: find a new, non-false literal to watch in
// place of l.Opposite();
// failing that, the clause is unit or conflicting on its other watch.
//
// Returns true if the clause remains unresolved or satisfied (and may
// have rotated its watches), false if it is a conflict. A unit clause
// forces an assignment via tr.Assign before returning true.
func (c *Clause) propagate(tr *Trail, w *watchIndex, l Literal) bool {
	opp := l.Opposite()
	if c.literals[0] == opp {
		c.literals[0], c.literals[1] = c.literals[1], opp
	}

	if tr.Value(c.literals[0]) == True {
		w.watch(c, l, c.literals[0])
		return true
	}

	if c.prevPos >= len(c.literals) {
		c.prevPos = 2
	}
	for i := c.prevPos; i < len(c.literals); i++ {
		if tr.Value(c.literals[i]) != False {
			c.prevPos = i
			c.literals[1], c.literals[i] = c.literals[i], opp
			w.watch(c, c.literals[1].Opposite(), c.literals[0])
			return true
		}
	}
	for i := 2; i < c.prevPos; i++ {
		if tr.Value(c.literals[i]) != False {
			c.prevPos = i
			c.literals[1], c.literals[i] = c.literals[i], opp
			w.watch(c, c.literals[1].Opposite(), c.literals[0])
			return true
		}
	}

	// All literals but literals[0] are false: the clause is unit on
	// literals[0], or a conflict if literals[0] is also false.
	w.watch(c, l, c.literals[0])
	return tr.Assign(c.literals[0], c)
}

// explain returns the reason clause's literals relevant to conflict
// analysis, with the implied literal's own variable excluded and every
// remaining literal negated (they are false under tr by I4).
//
// If l is the sentinel litNone the clause is being
// explained as a conflict: every literal is false and every one is
// returned, negated. Otherwise the clause is being explained as the
// antecedent of l, which must be literals[0]: literals[1:] are
// returned, negated.
func (c *Clause) explain(out []Literal, l Literal) []Literal {
	out = out[:0]
	if l == litNone {
		for _, lit := range c.literals {
			out = append(out, lit.Opposite())
		}
		return out
	}
	for _, lit := range c.literals[1:] {
		out = append(out, lit.Opposite())
	}
	return out
}

// Resolve implements the pairwise resolution operation of spec §4.1:
// given clauses a and b with pivot x appearing positively in one and
// negatively in the other, it returns the literal set (lits(a) ∪
// lits(b)) \ {x, ¬x}, with duplicates collapsed. The result's literal
// order is unspecified; callers that need determinism should sort it.
//
// Resolve panics if x is not a complementary pivot between a and b —
// that precondition is the caller's contract (§4.1), not a runtime
// condition this function recovers from.
func Resolve(a, b []Literal, x Literal) []Literal {
	aPos, aNeg, bPos, bNeg := false, false, false, false
	for _, l := range a {
		if l == x {
			aPos = true
		}
		if l == x.Opposite() {
			aNeg = true
		}
	}
	for _, l := range b {
		if l == x {
			bPos = true
		}
		if l == x.Opposite() {
			bNeg = true
		}
	}
	if !(aPos && bNeg) && !(aNeg && bPos) {
		panic("sat: Resolve: x is not a complementary pivot of a and b")
	}

	seen := make(map[Literal]struct{}, len(a)+len(b))
	out := make([]Literal, 0, len(a)+len(b)-2)
	add := func(l Literal) {
		if l == x || l == x.Opposite() {
			return
		}
		if _, ok := seen[l]; ok {
			return
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	for _, l := range a {
		add(l)
	}
	for _, l := range b {
		add(l)
	}
	return out
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
