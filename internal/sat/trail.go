package sat

// Trail holds the partial assignment built up by decisions and unit
// propagation, plus the per-variable metadata (value, antecedent,
// decision level) spec.md §3 calls the Assignment record.
//
// Trail entries are created by Assign and destroyed only by
// Backtrack; nothing else ever removes one (§4.2).
type Trail struct {
	// assigns holds, indexed by Literal, whether that literal is
	// currently true/false/unknown. assigns[l] and assigns[l.Opposite()]
	// are always kept as exact opposites.
	assigns []LBool

	// assignLevels[v] is the decision level at which v was assigned, or
	// -1 if v is unassigned.
	assignLevels []int

	// assignReasons[v] is the clause that forced v's assignment via the
	// unit rule, or nil if v was assigned by decision.
	assignReasons []*Clause

	// trail lists literals in the order they were assigned true.
	trail []Literal

	// trailLim[i] is the length of trail immediately before the i-th
	// decision was pushed. len(trailLim) is the current decision level.
	trailLim []int

	// onUndo, if set, is called with the variable ID of every trail
	// entry removed by Backtrack. The solver uses this to reinsert the
	// variable into the branching order (order.go).
	onUndo func(v int, wasTrue bool)

	// onAssign, if set, is called with every literal newly recorded by
	// Assign (not for literals that were already true). The solver
	// uses this to drive the propagation queue (§4.4: "Clients push
	// onto the queue by performing an assignment").
	onAssign func(l Literal)
}

// NewTrail returns an empty trail over nVars variables.
func NewTrail(nVars int) *Trail {
	return &Trail{
		assigns:       make([]LBool, nVars*2),
		assignLevels:  withFill(nVars, -1),
		assignReasons: make([]*Clause, nVars),
	}
}

func withFill(n int, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}
	return s
}

// Grow extends the trail to account for one additional variable.
func (t *Trail) Grow() {
	t.assigns = append(t.assigns, Unknown, Unknown)
	t.assignLevels = append(t.assignLevels, -1)
	t.assignReasons = append(t.assignReasons, nil)
}

// NumVars returns the number of variables the trail tracks.
func (t *Trail) NumVars() int {
	return len(t.assignReasons)
}

// NumAssigned returns the number of currently assigned variables.
func (t *Trail) NumAssigned() int {
	return len(t.trail)
}

// DecisionLevel returns the current decision level, 0 before any
// decision has been made.
func (t *Trail) DecisionLevel() int {
	return len(t.trailLim)
}

// Value returns the truth value of literal l under the current
// assignment, or Unknown if l's variable is unassigned.
func (t *Trail) Value(l Literal) LBool {
	return t.assigns[l]
}

// VarValue returns the truth value of variable v's positive literal.
func (t *Trail) VarValue(v int) LBool {
	return t.assigns[PositiveLiteral(v)]
}

// LevelOf returns the decision level at which variable v was assigned,
// or -1 if v is unassigned.
func (t *Trail) LevelOf(v int) int {
	return t.assignLevels[v]
}

// ReasonOf returns the antecedent clause that forced variable v's
// assignment, or nil if v is unassigned or was a decision.
func (t *Trail) ReasonOf(v int) *Clause {
	return t.assignReasons[v]
}

// Literal returns the i-th literal pushed onto the trail.
func (t *Trail) Literal(i int) Literal {
	return t.trail[i]
}

// Assign records l as true at the current decision level, with the
// given antecedent (nil for a decision). It is the single mutation
// point invariants I4/P2 are checked against: every literal of reason
// other than l must already be false.
//
// Assign returns false without mutating anything if l is already
// assigned false (a conflicting assignment); true if l was already
// assigned true (nothing to do) or if the new fact was recorded.
//
// Precondition (caller's contract, §4.2): Assign must not be called
// with l's variable already assigned to the opposite truth value by
// decision bookkeeping elsewhere — that case is reported via the
// bool return, not a panic, because it is exactly how the propagator
// discovers a conflict (§4.4 case 4).
func (t *Trail) Assign(l Literal, reason *Clause) bool {
	switch t.assigns[l] {
	case False:
		return false
	case True:
		return true
	}

	v := l.VarID()
	t.assigns[l] = True
	t.assigns[l.Opposite()] = True.Opposite()
	t.assignLevels[v] = t.DecisionLevel()
	t.assignReasons[v] = reason
	t.trail = append(t.trail, l)
	if t.onAssign != nil {
		t.onAssign(l)
	}
	return true
}

// Decide increments the decision level and assigns l as a decision
// (antecedent ⊥). Precondition: l's variable must be unassigned.
func (t *Trail) Decide(l Literal) bool {
	t.trailLim = append(t.trailLim, len(t.trail))
	return t.Assign(l, nil)
}

// Backtrack removes every trail entry made at a decision level beyond
// b, then sets the decision level to b. Backtrack(b); Backtrack(b) is
// idempotent, and Backtrack(0) empties every non-root assignment.
func (t *Trail) Backtrack(b int) {
	if b >= t.DecisionLevel() {
		return
	}
	lim := t.trailLim[b]
	for len(t.trail) > lim {
		t.undoOne()
	}
	t.trailLim = t.trailLim[:b]
}

func (t *Trail) undoOne() {
	l := t.trail[len(t.trail)-1]
	v := l.VarID()
	wasTrue := l.IsPositive()

	t.assigns[l] = Unknown
	t.assigns[l.Opposite()] = Unknown
	t.assignReasons[v] = nil
	t.assignLevels[v] = -1

	t.trail = t.trail[:len(t.trail)-1]

	if t.onUndo != nil {
		t.onUndo(v, wasTrue)
	}
}

// Satisfies reports whether every clause in clauses has at least one
// literal assigned true under the current trail (spec.md §8 P5).
func (t *Trail) Satisfies(clauses []*Clause) bool {
	for _, c := range clauses {
		ok := false
		for _, l := range c.Literals() {
			if t.Value(l) == True {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// Model returns the total boolean assignment as a []bool indexed by
// variable ID. Precondition: every variable must be assigned.
func (t *Trail) Model() []bool {
	model := make([]bool, t.NumVars())
	for v := range model {
		lb := t.VarValue(v)
		if lb == Unknown {
			panic("sat: Model called with an unassigned variable")
		}
		model[v] = lb == True
	}
	return model
}
