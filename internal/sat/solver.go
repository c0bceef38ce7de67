package sat

import (
	"fmt"
	"math/rand"
)

// Options configures a Solver. The only knob spec.md names (§6, §9)
// is the branching RNG seed; it is passed in explicitly rather than
// read from an ambient global.
type Options struct {
	Seed int64
}

// DefaultOptions seeds the branching RNG with a fixed value so that,
// absent an explicit choice, runs stay reproducible.
var DefaultOptions = Options{Seed: 1}

// Solver is a single-shot CDCL decision procedure (spec.md §1): one
// Solver answers exactly one satisfiability query. It is not safe for
// concurrent use.
type Solver struct {
	db       database
	watches  *watchIndex
	trail    *Trail
	order    *order
	analyzer *analyzer
	stats    Stats

	propQueue *Queue[Literal]

	// unsat is set once a conflict is derived at decision level 0 —
	// from then on Solve reports UNSAT without searching.
	unsat bool

	// tmpWatchers is reused across Propagate calls to avoid
	// reallocating the snapshot §4.4 step (b) requires.
	tmpWatchers []watcher
}

// NewSolver returns an empty Solver (no variables, no clauses).
func NewSolver(opts Options) *Solver {
	rng := rand.New(rand.NewSource(opts.Seed))
	trail := NewTrail(0)
	s := &Solver{
		db:        database{},
		watches:   newWatchIndex(),
		trail:     trail,
		order:     newOrder(rng),
		analyzer:  newAnalyzer(trail, 0),
		propQueue: NewQueue[Literal](128),
	}
	s.stats = newStats()
	trail.onAssign = func(l Literal) { s.propQueue.Push(l) }
	trail.onUndo = func(v int, _ bool) { s.order.reinsert(v) }
	return s
}

// NewDefaultSolver returns a Solver configured with DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

// NumVariables returns the number of variables registered so far.
func (s *Solver) NumVariables() int {
	return s.trail.NumVars()
}

// NumAssigned returns the number of currently assigned variables.
func (s *Solver) NumAssigned() int {
	return s.trail.NumAssigned()
}

// NumOriginalClauses returns the number of clauses present in the
// original formula.
func (s *Solver) NumOriginalClauses() int {
	return s.db.numOriginal()
}

// NumLearntClauses returns the number of clauses derived so far by
// conflict analysis.
func (s *Solver) NumLearntClauses() int {
	return s.db.numLearnt()
}

// NumConflicts returns the number of conflicts analyzed so far. A
// conflict at decision level 0, which ends the search as UNSAT, is not
// counted.
func (s *Solver) NumConflicts() int64 {
	return s.stats.Conflicts
}

// VarValue returns variable v's current truth value.
func (s *Solver) VarValue(v int) LBool {
	return s.trail.VarValue(v)
}

// LitValue returns literal l's current truth value.
func (s *Solver) LitValue(l Literal) LBool {
	return s.trail.Value(l)
}

// AddVariable registers one new boolean variable and returns its ID.
func (s *Solver) AddVariable() int {
	v := s.trail.NumVars()
	s.trail.Grow()
	s.watches.grow()
	s.order.addVar()
	s.analyzer.grow()
	return v
}

// AddClause adds an original clause to the formula. It must only be
// called at decision level 0 (spec.md §4.1: original clauses are
// immutable after construction, and the append-only database only
// grows at the root).
func (s *Solver) AddClause(literals []Literal) error {
	if s.trail.DecisionLevel() != 0 {
		return fmt.Errorf("sat: AddClause called at decision level %d, want 0", s.trail.DecisionLevel())
	}
	c, ok := NewClause(s.trail, literals, false)
	if !ok {
		s.unsat = true
		return nil
	}
	if c != nil {
		s.db.addOriginal(c)
		s.watches.install(c)
	}
	return nil
}

// Propagate implements the unit-propagation loop of spec.md §4.4. It
// drains the propagation queue, returning the first conflicting
// clause it finds, or nil once the queue empties with no conflict.
func (s *Solver) Propagate() *Clause {
	for s.propQueue.Size() > 0 {
		l := s.propQueue.Pop()

		s.tmpWatchers = append(s.tmpWatchers[:0], s.watches.lists[l]...)
		s.watches.lists[l] = s.watches.lists[l][:0]

		for i, w := range s.tmpWatchers {
			if s.trail.Value(w.guard) == True {
				s.watches.lists[l] = append(s.watches.lists[l], w)
				continue
			}

			if w.clause.propagate(s.trail, s.watches, l) {
				continue
			}

			// Conflict: restore the untouched tail of the snapshot and
			// drop the rest of the queue — §4.4 requires a conflict be
			// returned before any further forced assignment is
			// *announced*, and clearing the queue here is exactly that.
			s.watches.lists[l] = append(s.watches.lists[l], s.tmpWatchers[i+1:]...)
			s.propQueue.Clear()
			return s.tmpWatchers[i].clause
		}
	}
	return nil
}

// Result is the outcome of a Solve call (spec.md §6:
// "solve(formula) → SAT(assignment) | UNSAT").
type Result struct {
	Satisfiable bool
	Model       []bool // nil unless Satisfiable
}

// Solve runs the outer CDCL loop of spec.md §4.5 to completion. It is
// a single-shot call: the core does not support resuming or adding
// clauses across multiple Solve calls once level-0 propagation has
// been consumed (that would be the incremental-solving Non-goal §1).
func (s *Solver) Solve() Result {
	if s.unsat {
		return Result{Satisfiable: false}
	}
	if conflict := s.Propagate(); conflict != nil {
		s.unsat = true
		return Result{Satisfiable: false}
	}

	for {
		if s.trail.NumAssigned() == s.trail.NumVars() {
			if !s.trail.Satisfies(s.db.all()) {
				panic("sat: internal error: model does not satisfy the clause database")
			}
			return Result{Satisfiable: true, Model: s.trail.Model()}
		}

		l, ok := s.order.pick(s.trail)
		if !ok {
			// Every variable the order knows about is assigned, but
			// NumAssigned() < NumVars(): unreachable given addVar/Grow
			// stay in lockstep, kept as a defensive contract check.
			panic("sat: branching order exhausted with variables still unassigned")
		}
		s.trail.Decide(l)
		s.stats.Decisions++

		for {
			conflict := s.Propagate()
			if conflict == nil {
				break
			}

			if s.trail.DecisionLevel() == 0 {
				s.unsat = true
				return Result{Satisfiable: false}
			}

			learnt, backjump := s.analyzer.analyze(conflict)
			if backjump < 0 {
				s.unsat = true
				return Result{Satisfiable: false}
			}

			s.stats.recordConflict(s.trail.DecisionLevel()-backjump, len(learnt))
			s.trail.Backtrack(backjump)

			c, ok := NewClause(s.trail, learnt, true)
			if !ok {
				s.unsat = true
				return Result{Satisfiable: false}
			}
			if c != nil {
				s.db.addLearnt(c)
				s.watches.install(c)
				s.trail.Assign(c.literals[0], c)
			}
			// c == nil, ok == true means learnt had exactly one literal
			// and NewClause already asserted it as a root fact via
			// Trail.Assign.
		}
	}
}

// Satisfies reports whether the current trail satisfies every clause
// of the original formula (spec.md §8 P5).
func (s *Solver) Satisfies() bool {
	return s.trail.Satisfies(s.db.original)
}

func (s *Solver) String() string {
	return fmt.Sprintf("Solver[vars=%d original=%d learnt=%d conflicts=%d]",
		s.NumVariables(), s.db.numOriginal(), s.db.numLearnt(), s.stats.Conflicts)
}
