package layer

import "github.com/lixenwraith/lcd-pong/core"

// Stack is the ordered sequence of all layers, lowest index wins the probe
type Stack struct {
	layers []*Layer
}

// NewStack creates a stack in draw-priority order
func NewStack(layers ...*Layer) *Stack {
	s := &Stack{layers: make([]*Layer, len(layers))}
	copy(s.layers, layers)
	return s
}

// Len returns the layer count
func (s *Stack) Len() int {
	return len(s.layers)
}

// At returns the layer at priority index i
func (s *Stack) At(i int) *Layer {
	return s.layers[i]
}

// Owner returns the first layer covering pixel p, nil when none does
func (s *Stack) Owner(p core.Vec2) *Layer {
	for _, l := range s.layers {
		if l.Covers(p) {
			return l
		}
	}
	return nil
}

// Probe returns the color owning pixel p, bg when no layer covers it
func (s *Stack) Probe(p core.Vec2, bg core.Color) core.Color {
	if l := s.Owner(p); l != nil {
		return l.Color
	}
	return bg
}
