package layer

import (
	"testing"

	"github.com/lixenwraith/lcd-pong/core"
	"github.com/lixenwraith/lcd-pong/shape"
)

func TestLayerCommitAndDirtyRegion(t *testing.T) {
	l := New("ball", shape.Rect{HalfSize: core.Vec2{X: 1, Y: 1}}, core.Vec2{X: 10, Y: 10}, core.ColorOrange)
	l.PosNext = core.Vec2{X: 13, Y: 9}
	l.Commit()

	if l.Pos != (core.Vec2{X: 13, Y: 9}) || l.PosLast != (core.Vec2{X: 10, Y: 10}) {
		t.Fatalf("commit: pos=%v last=%v", l.Pos, l.PosLast)
	}

	want := core.Region{TopLeft: core.Vec2{X: 9, Y: 8}, BotRight: core.Vec2{X: 14, Y: 11}}
	if got := l.DirtyRegion(); got != want {
		t.Errorf("DirtyRegion = %v, want %v", got, want)
	}
}

// Scenario B: a red paddle ordered before a white background wins the probe
func TestStackProbeFirstMatchWins(t *testing.T) {
	paddle := New("paddle", shape.Rect{HalfSize: core.Vec2{X: 2, Y: 12}}, core.Vec2{X: 15, Y: 80}, core.ColorRed)
	field := New("field", shape.Rect{HalfSize: core.Vec2{X: 64, Y: 80}}, core.Vec2{X: 64, Y: 80}, core.ColorWhite)
	s := NewStack(paddle, field)

	if got := s.Probe(core.Vec2{X: 15, Y: 80}, core.ColorBlack); got != core.ColorRed {
		t.Errorf("inside paddle probe = %v, want red", got)
	}
	if got := s.Probe(core.Vec2{X: 40, Y: 80}, core.ColorBlack); got != core.ColorWhite {
		t.Errorf("field probe = %v, want white", got)
	}
	if got := s.Probe(core.Vec2{X: 500, Y: 500}, core.ColorBlack); got != core.ColorBlack {
		t.Errorf("empty probe = %v, want background", got)
	}
}

func TestMotionChainCommit(t *testing.T) {
	a := New("a", shape.Circle{Radius: 1}, core.Vec2{X: 1, Y: 1}, core.ColorRed)
	b := New("b", shape.Circle{Radius: 1}, core.Vec2{X: 5, Y: 5}, core.ColorRed)
	a.PosNext = core.Vec2{X: 2, Y: 2}
	b.PosNext = core.Vec2{X: 6, Y: 4}

	c := NewMotionChain(&MotionUnit{Layer: a}, &MotionUnit{Layer: b})
	c.Commit()

	if a.Pos != a.PosNext || b.Pos != b.PosNext {
		t.Error("chain commit did not apply staged positions")
	}
	if c.Len() != 2 || c.At(1).Layer != b {
		t.Error("chain order not preserved")
	}
}
