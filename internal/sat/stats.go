package sat

// EMA is an exponential moving average, used here purely as an
// observability aid: the search loop records the trend of how far
// each conflict backjumps, which is useful when eyeballing whether a
// run is thrashing, without it ever feeding back into any solving
// policy (there is no restart or clause-deletion policy to feed —
// those are explicit Non-goals).
type EMA struct {
	decay float64
	value float64
	init  bool
}

// NewEMA returns an EMA with the given decay in (0, 1]; closer to 1
// weighs history more heavily against each new sample.
func NewEMA(decay float64) EMA {
	return EMA{decay: decay}
}

// Add folds x into the running average.
func (e *EMA) Add(x float64) {
	if !e.init {
		e.init = true
		e.value = x
		return
	}
	e.value = e.decay*e.value + x*(1-e.decay)
}

// Val returns the current average.
func (e *EMA) Val() float64 {
	return e.value
}

// Stats accumulates search statistics purely for diagnostics; nothing
// in the solver reads them back to change behavior.
type Stats struct {
	Conflicts       int64
	Decisions       int64
	Propagations    int64
	AvgBackjump     EMA
	AvgLearntLength EMA
}

func newStats() Stats {
	return Stats{
		AvgBackjump:     NewEMA(0.99),
		AvgLearntLength: NewEMA(0.99),
	}
}

func (s *Stats) recordConflict(backjumpDistance int, learntLen int) {
	s.Conflicts++
	s.AvgBackjump.Add(float64(backjumpDistance))
	s.AvgLearntLength.Add(float64(learntLen))
}
