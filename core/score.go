package core

import "sync/atomic"

// Side identifies a score zone
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns the HUD label of the side
func (s Side) String() string {
	if s == SideLeft {
		return "Left"
	}
	return "Right"
}

// Opponent returns the other side
func (s Side) Opponent() Side {
	return 1 - s
}

// Scoreboard holds one counter per score zone
// Written from the tick goroutine, read by the main loop
type Scoreboard struct {
	counts [2]atomic.Uint32
}

// Add increments the side's counter and returns the new value
func (s *Scoreboard) Add(side Side) uint32 {
	return s.counts[side].Add(1)
}

// Get returns the side's counter
func (s *Scoreboard) Get(side Side) uint32 {
	return s.counts[side].Load()
}

// Leader returns the side with the higher count and that count, ties favor left
func (s *Scoreboard) Leader() (Side, uint32) {
	l, r := s.Get(SideLeft), s.Get(SideRight)
	if r > l {
		return SideRight, r
	}
	return SideLeft, l
}
