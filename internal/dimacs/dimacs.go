// Package dimacs loads DIMACS CNF formulas into a sat.Solver.
package dimacs

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"

	"github.com/solvelab/cdcl-sat/internal/sat"
)

// Solver is the subset of *sat.Solver's API a CNF file is loaded
// through. Declaring it as an interface here (rather than importing
// *sat.Solver directly into the builder) keeps the builder testable
// against a fake.
type Solver interface {
	AddVariable() int
	AddClause([]sat.Literal) error
}

func open(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// LoadFile parses the DIMACS CNF file at filename and loads its
// formula into solver: one AddVariable call per declared variable,
// then one AddClause call per clause line, in file order.
func LoadFile(filename string, gzipped bool, solver Solver) error {
	r, err := open(filename, gzipped)
	if err != nil {
		return fmt.Errorf("dimacs: opening %q: %w", filename, err)
	}
	defer r.Close()
	return Load(r, solver)
}

// Load parses a DIMACS CNF formula from r and loads it into solver.
func Load(r io.Reader, solver Solver) error {
	b := &builder{solver: solver}
	return dimacs.ReadBuilder(r, b)
}

// builder adapts a Solver to dimacs.Builder, translating DIMACS's
// 1-based signed-integer literals (positive v, negative -v) to this
// package's Literal encoding (sat.PositiveLiteral(v-1) / NegativeLiteral(v-1)).
type builder struct {
	solver Solver
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("dimacs: unsupported problem type %q, want \"cnf\"", problem)
	}
	for i := 0; i < nVars; i++ {
		b.solver.AddVariable()
	}
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	clause := make([]sat.Literal, len(tmpClause))
	for i, l := range tmpClause {
		if l < 0 {
			clause[i] = sat.NegativeLiteral(-l - 1)
		} else {
			clause[i] = sat.PositiveLiteral(l - 1)
		}
	}
	return b.solver.AddClause(clause)
}

func (b *builder) Comment(_ string) error {
	return nil
}
