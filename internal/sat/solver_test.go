package sat

import "testing"

// lit converts a DIMACS-style signed int (1-based, negative = negated)
// into this package's Literal encoding, matching the convention used
// throughout spec scenarios and by the external DIMACS parser.
func lit(i int) Literal {
	if i < 0 {
		return NegativeLiteral(-i - 1)
	}
	return PositiveLiteral(i - 1)
}

func newSolverWithVars(n int) *Solver {
	s := NewDefaultSolver()
	for i := 0; i < n; i++ {
		s.AddVariable()
	}
	return s
}

func addClause(t *testing.T, s *Solver, ints ...int) {
	t.Helper()
	lits := make([]Literal, len(ints))
	for i, x := range ints {
		lits[i] = lit(x)
	}
	if err := s.AddClause(lits); err != nil {
		t.Fatalf("AddClause(%v): %s", ints, err)
	}
}

func TestSolve_SimpleSAT(t *testing.T) {
	// (1 v 2) ^ (!1 v 2): any model must set 2 = true.
	s := newSolverWithVars(2)
	addClause(t, s, 1, 2)
	addClause(t, s, -1, 2)

	got := s.Solve()

	if !got.Satisfiable {
		t.Fatalf("Solve() = UNSAT, want SAT")
	}
	if !got.Model[1] {
		t.Errorf("Solve(): variable 2 = %v, want true", got.Model[1])
	}
	if !s.Satisfies() {
		t.Errorf("Satisfies(): want true for the returned model")
	}
}

func TestSolve_SimpleUNSAT(t *testing.T) {
	// (1) ^ (!1).
	s := newSolverWithVars(1)
	addClause(t, s, 1)
	addClause(t, s, -1)

	got := s.Solve()

	if got.Satisfiable {
		t.Fatalf("Solve() = SAT, want UNSAT")
	}
}

func TestSolve_ForcedChain(t *testing.T) {
	// (1) ^ (!1 v 2) ^ (!2 v 3): everything forced at dl 0.
	s := newSolverWithVars(3)
	addClause(t, s, 1)
	addClause(t, s, -1, 2)
	addClause(t, s, -2, 3)

	got := s.Solve()

	if !got.Satisfiable {
		t.Fatalf("Solve() = UNSAT, want SAT")
	}
	want := []bool{true, true, true}
	for i, w := range want {
		if got.Model[i] != w {
			t.Errorf("Solve(): variable %d = %v, want %v", i+1, got.Model[i], w)
		}
	}
}

func TestSolve_ConflictRequiringBackjump(t *testing.T) {
	// (1 v 2) ^ (1 v !2) ^ (!1 v 3) ^ (!1 v !3): UNSAT regardless of
	// how 1 is decided, once 3 and !3 are both forced.
	s := newSolverWithVars(3)
	addClause(t, s, 1, 2)
	addClause(t, s, 1, -2)
	addClause(t, s, -1, 3)
	addClause(t, s, -1, -3)

	got := s.Solve()

	if got.Satisfiable {
		t.Fatalf("Solve() = SAT, want UNSAT")
	}
}

func TestSolve_PigeonholeSmall(t *testing.T) {
	// 3 pigeons, 2 holes: pigeon i in {hole 0, hole 1}; no hole holds
	// two pigeons. Variables: p(i,h) = 2*i+h, i in 0..2, h in 0..1.
	v := func(i, h int) int { return 2*i + h + 1 }

	s := newSolverWithVars(6)
	for i := 0; i < 3; i++ {
		addClause(t, s, v(i, 0), v(i, 1))
	}
	for h := 0; h < 2; h++ {
		for i := 0; i < 3; i++ {
			for j := i + 1; j < 3; j++ {
				addClause(t, s, -v(i, h), -v(j, h))
			}
		}
	}

	got := s.Solve()

	if got.Satisfiable {
		t.Fatalf("Solve() = SAT, want UNSAT")
	}
}

func TestSolve_EmptyFormulaIsSAT(t *testing.T) {
	s := NewDefaultSolver()
	got := s.Solve()
	if !got.Satisfiable {
		t.Fatalf("Solve() = UNSAT, want SAT for the empty formula")
	}
	if len(got.Model) != 0 {
		t.Errorf("Solve(): model has %d entries, want 0", len(got.Model))
	}
}

func TestSolve_EmptyClauseIsUNSAT(t *testing.T) {
	s := newSolverWithVars(1)
	addClause(t, s) // the empty clause

	got := s.Solve()
	if got.Satisfiable {
		t.Fatalf("Solve() = SAT, want UNSAT for a formula containing the empty clause")
	}
}

func TestSolve_RootUnitContradictionIsUNSAT(t *testing.T) {
	s := newSolverWithVars(1)
	addClause(t, s, 1)
	addClause(t, s, -1)

	got := s.Solve()
	if got.Satisfiable {
		t.Fatalf("Solve() = SAT, want UNSAT")
	}
}

func TestSolve_SingleLiteralFormulaIsSAT(t *testing.T) {
	s := newSolverWithVars(1)
	addClause(t, s, 1)

	got := s.Solve()
	if !got.Satisfiable {
		t.Fatalf("Solve() = UNSAT, want SAT")
	}
	if !got.Model[0] {
		t.Errorf("Solve(): variable 1 = %v, want true", got.Model[0])
	}
}
