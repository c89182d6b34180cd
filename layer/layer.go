// Package layer holds the drawable data model: layers ordered by draw
// priority and the chain of layers that move every tick.
package layer

import (
	"github.com/lixenwraith/lcd-pong/core"
	"github.com/lixenwraith/lcd-pong/shape"
)

// Layer is a named drawable placed at a position
// Pos is the last committed frame position, PosNext is staged by physics and
// applied on commit, PosLast keeps the pre-commit position for dirty tracking
type Layer struct {
	Name    string
	Shape   shape.Shape
	Pos     core.Vec2
	PosLast core.Vec2
	PosNext core.Vec2
	Color   core.Color
}

// New creates a layer with all three positions set to pos
func New(name string, s shape.Shape, pos core.Vec2, color core.Color) *Layer {
	return &Layer{
		Name:    name,
		Shape:   s,
		Pos:     pos,
		PosLast: pos,
		PosNext: pos,
		Color:   color,
	}
}

// Bounds returns the shape bounds at the committed position
func (l *Layer) Bounds() core.Region {
	return l.Shape.Bounds(l.Pos)
}

// Covers reports whether pixel p belongs to the layer at its committed position
func (l *Layer) Covers(p core.Vec2) bool {
	return l.Shape.Contains(l.Pos, p)
}

// Commit applies the staged position
func (l *Layer) Commit() {
	l.PosLast = l.Pos
	l.Pos = l.PosNext
}

// DirtyRegion covers both the previous and the current silhouette
func (l *Layer) DirtyRegion() core.Region {
	return l.Shape.Bounds(l.PosLast).Union(l.Shape.Bounds(l.Pos))
}
