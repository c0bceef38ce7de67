package sat

// newClause allocates the backing storage for a clause's literals.
//
// Clauses are never deleted during a solve (the database only grows,
// see database.go), so there is no point in the clause's lifetime at
// which its storage could be legitimately returned to a pool; a
// sync.Pool-backed allocator (as the teacher has for its ReduceDB
// policy) would sit idle here and never receive a Put.
func newClause(literals []Literal, learnt bool) *Clause {
	c := &Clause{learnt: learnt}
	c.literals = make([]Literal, len(literals))
	copy(c.literals, literals)
	return c
}
