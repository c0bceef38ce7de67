package sat

// database is the append-only clause store of spec.md §3: original
// clauses precede learnt clauses, and nothing is ever removed from it
// during a solve. The watch index is built and maintained alongside
// it but is logically a separate structure (§3 "Watch index").
type database struct {
	original []*Clause
	learnt   []*Clause
}

func (db *database) addOriginal(c *Clause) {
	db.original = append(db.original, c)
}

func (db *database) addLearnt(c *Clause) {
	db.learnt = append(db.learnt, c)
}

// all returns every clause currently in the database, original and
// learnt. Solve uses it as an internal soundness check on every SAT
// return: a model must satisfy learnt clauses too, since each one is
// a logical consequence of the original formula (spec.md §8 P4) — a
// failure here means analyze produced an unsound learnt clause, not
// that the formula is actually unsatisfiable. Solver.Satisfies, the
// spec.md §8 P5 check callers are expected to use, deliberately
// checks db.original alone (spec.md §6: "satisfies every clause of
// the input formula").
func (db *database) all() []*Clause {
	out := make([]*Clause, 0, len(db.original)+len(db.learnt))
	out = append(out, db.original...)
	out = append(out, db.learnt...)
	return out
}

func (db *database) numOriginal() int {
	return len(db.original)
}

func (db *database) numLearnt() int {
	return len(db.learnt)
}
