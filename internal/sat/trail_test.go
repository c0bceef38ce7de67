package sat

import "testing"

func TestTrail_AssignThenBacktrackIdempotent(t *testing.T) {
	tr := NewTrail(3)
	tr.Decide(PositiveLiteral(0))
	tr.Decide(PositiveLiteral(1))
	tr.Decide(PositiveLiteral(2))

	tr.Backtrack(1)
	afterFirst := tr.NumAssigned()
	tr.Backtrack(1)
	afterSecond := tr.NumAssigned()

	if afterFirst != afterSecond {
		t.Errorf("Backtrack(1) not idempotent: got %d then %d assigned", afterFirst, afterSecond)
	}
	if tr.DecisionLevel() != 1 {
		t.Errorf("DecisionLevel() = %d, want 1", tr.DecisionLevel())
	}
}

func TestTrail_BacktrackToZeroEmptiesTrail(t *testing.T) {
	tr := NewTrail(2)
	tr.Decide(PositiveLiteral(0))
	tr.Decide(NegativeLiteral(1))

	tr.Backtrack(0)

	if tr.NumAssigned() != 0 {
		t.Errorf("NumAssigned() = %d, want 0 after Backtrack(0)", tr.NumAssigned())
	}
	if tr.DecisionLevel() != 0 {
		t.Errorf("DecisionLevel() = %d, want 0", tr.DecisionLevel())
	}
}

func TestTrail_AssignConflictingLiteral(t *testing.T) {
	tr := NewTrail(1)
	tr.Assign(PositiveLiteral(0), nil)

	if tr.Assign(NegativeLiteral(0), nil) {
		t.Errorf("Assign(!0) after Assign(0): want false, got true")
	}
	if tr.Assign(PositiveLiteral(0), nil) != true {
		t.Errorf("Assign(0) after Assign(0): want true (already true), got false")
	}
}

func TestTrail_UndoRestoresUnknown(t *testing.T) {
	tr := NewTrail(1)
	tr.Decide(PositiveLiteral(0))
	if tr.VarValue(0) != True {
		t.Fatalf("setup: VarValue(0) = %s, want true", tr.VarValue(0))
	}

	tr.Backtrack(0)

	if tr.VarValue(0) != Unknown {
		t.Errorf("VarValue(0) = %s, want unknown after backtrack", tr.VarValue(0))
	}
	if tr.LevelOf(0) != -1 {
		t.Errorf("LevelOf(0) = %d, want -1 after backtrack", tr.LevelOf(0))
	}
}

func TestTrail_OnUndoAndOnAssignHooks(t *testing.T) {
	tr := NewTrail(2)
	var assigned, undone []int
	tr.onAssign = func(l Literal) { assigned = append(assigned, l.VarID()) }
	tr.onUndo = func(v int, _ bool) { undone = append(undone, v) }

	tr.Decide(PositiveLiteral(0))
	tr.Decide(PositiveLiteral(1))
	tr.Backtrack(0)

	if diff := len(assigned); diff != 2 {
		t.Errorf("onAssign fired %d times, want 2", diff)
	}
	if diff := len(undone); diff != 2 {
		t.Errorf("onUndo fired %d times, want 2", diff)
	}
}

func TestTrail_Satisfies(t *testing.T) {
	tr := NewTrail(2)
	tr.Assign(PositiveLiteral(0), nil)
	tr.Assign(NegativeLiteral(1), nil)

	c, _ := NewClause(NewTrail(2), []Literal{PositiveLiteral(0), PositiveLiteral(1)}, true)
	if !tr.Satisfies([]*Clause{c}) {
		t.Errorf("Satisfies(): want true, got false")
	}

	c2, _ := NewClause(NewTrail(2), []Literal{NegativeLiteral(0), PositiveLiteral(1)}, true)
	if tr.Satisfies([]*Clause{c2}) {
		t.Errorf("Satisfies(): want false for an unsatisfied clause, got true")
	}
}
