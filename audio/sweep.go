package audio

// Sweep walks a tone half-period up and down between Min and Max
// Each Advance steps by the current rate and folds back at a bound, so
// repeated cues rise then fall in pitch
type Sweep struct {
	min, max int
	period   int
	rate     int
}

// NewSweep starts at min rising by rate, rate is made positive
func NewSweep(min, max, rate int) *Sweep {
	if rate < 0 {
		rate = -rate
	}
	return &Sweep{min: min, max: max, period: min, rate: rate}
}

// Advance steps the sweep and returns the new half-period
func (s *Sweep) Advance() int {
	s.period += s.rate
	if (s.rate > 0 && s.period > s.max) || (s.rate < 0 && s.period < s.min) {
		s.rate = -s.rate
		s.period += s.rate << 1
	}
	return s.period
}

// Period returns the current half-period without stepping
func (s *Sweep) Period() int {
	return s.period
}
