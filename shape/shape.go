// Package shape provides the geometry collaborators probed by the compositor
// and physics engines. Shapes are immutable values shared across layers.
package shape

import "github.com/lixenwraith/lcd-pong/core"

// Shape answers bounding-box and point-containment queries for a center position
type Shape interface {
	// Bounds returns the inclusive bounding region when centered at c
	Bounds(c core.Vec2) core.Region
	// Contains reports whether pixel p is covered when centered at c
	Contains(c, p core.Vec2) bool
}

// Rect is a filled rectangle extending HalfSize from its center
type Rect struct {
	HalfSize core.Vec2
}

func (r Rect) Bounds(c core.Vec2) core.Region {
	return core.RegionAround(c, r.HalfSize)
}

func (r Rect) Contains(c, p core.Vec2) bool {
	return r.Bounds(c).Contains(p)
}

// RectOutline is a one-pixel rectangle border extending HalfSize from its center
type RectOutline struct {
	HalfSize core.Vec2
}

func (r RectOutline) Bounds(c core.Vec2) core.Region {
	return core.RegionAround(c, r.HalfSize)
}

func (r RectOutline) Contains(c, p core.Vec2) bool {
	b := r.Bounds(c)
	if !b.Contains(p) {
		return false
	}
	return p.X == b.TopLeft.X || p.X == b.BotRight.X || p.Y == b.TopLeft.Y || p.Y == b.BotRight.Y
}

// Circle is a filled disc of Radius pixels
type Circle struct {
	Radius int
}

func (ci Circle) Bounds(c core.Vec2) core.Region {
	return core.RegionAround(c, core.Vec2{X: ci.Radius, Y: ci.Radius})
}

func (ci Circle) Contains(c, p core.Vec2) bool {
	dx, dy := p.X-c.X, p.Y-c.Y
	return dx*dx+dy*dy <= ci.Radius*ci.Radius
}
