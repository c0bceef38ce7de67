package sat

import "testing"

func TestEMA_FirstSampleIsTheValue(t *testing.T) {
	e := NewEMA(0.5)
	e.Add(10)
	if got := e.Val(); got != 10 {
		t.Errorf("Val() = %v, want 10 after the first sample", got)
	}
}

func TestEMA_DecaysTowardNewSamples(t *testing.T) {
	e := NewEMA(0.5)
	e.Add(0)
	e.Add(10)
	if got := e.Val(); got <= 0 || got >= 10 {
		t.Errorf("Val() = %v, want strictly between 0 and 10", got)
	}
}

func TestStats_RecordConflict(t *testing.T) {
	s := newStats()
	s.recordConflict(3, 2)
	s.recordConflict(1, 4)

	if s.Conflicts != 2 {
		t.Errorf("Conflicts = %d, want 2", s.Conflicts)
	}
}
