package sat

import "testing"

func TestLiteral_OppositeOpposite(t *testing.T) {
	for v := 0; v < 8; v++ {
		for _, l := range []Literal{PositiveLiteral(v), NegativeLiteral(v)} {
			if got := l.Opposite().Opposite(); got != l {
				t.Errorf("Opposite(Opposite(%s)) = %s, want %s", l, got, l)
			}
		}
	}
}

func TestLiteral_PositiveNegativeAreOpposites(t *testing.T) {
	for v := 0; v < 8; v++ {
		p, n := PositiveLiteral(v), NegativeLiteral(v)
		if p.Opposite() != n {
			t.Errorf("PositiveLiteral(%d).Opposite() = %s, want %s", v, p.Opposite(), n)
		}
		if !p.IsPositive() || n.IsPositive() {
			t.Errorf("IsPositive() mismatch for variable %d", v)
		}
		if p.VarID() != v || n.VarID() != v {
			t.Errorf("VarID() mismatch: got (%d, %d), want (%d, %d)", p.VarID(), n.VarID(), v, v)
		}
	}
}
