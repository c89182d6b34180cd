package audio

import "testing"

func TestSweepTriangle(t *testing.T) {
	s := NewSweep(1000, 1600, 200)

	// 1200 1400 1600 then 1800 folds to 1400, falling to 1000 and folding back up
	want := []int{1200, 1400, 1600, 1400, 1200, 1000, 1200}
	for i, w := range want {
		if got := s.Advance(); got != w {
			t.Fatalf("step %d: period = %d, want %d", i, got, w)
		}
	}
}

func TestSweepStaysInBounds(t *testing.T) {
	s := NewSweep(1000, 5000, 200)
	for i := 0; i < 500; i++ {
		p := s.Advance()
		if p < 1000 || p > 5000 {
			t.Fatalf("step %d: period %d left [1000, 5000]", i, p)
		}
	}
}

func TestSweepNegativeRateNormalized(t *testing.T) {
	s := NewSweep(100, 300, -50)
	if got := s.Advance(); got != 150 {
		t.Errorf("first step = %d, want rising 150", got)
	}
	if s.Period() != 150 {
		t.Errorf("Period = %d", s.Period())
	}
}
