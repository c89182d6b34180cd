package core

import (
	"errors"
	"fmt"
)

// ErrInvalidRegion is returned when a region's top-left corner lies past its bottom-right corner
var ErrInvalidRegion = errors.New("invalid region")

// Axis selects a vector component
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Axes lists both axes in resolution order
var Axes = [2]Axis{AxisX, AxisY}

// String returns the axis name
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Vec2 is an integer pair in screen-pixel units
type Vec2 struct {
	X, Y int
}

// Add returns v+o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v-o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Neg returns -v
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Get returns the component on axis a
func (v Vec2) Get(a Axis) int {
	if a == AxisX {
		return v.X
	}
	return v.Y
}

// Set writes the component on axis a
func (v *Vec2) Set(a Axis, n int) {
	if a == AxisX {
		v.X = n
	} else {
		v.Y = n
	}
}

// Region is an axis-aligned box with inclusive corners
type Region struct {
	TopLeft  Vec2
	BotRight Vec2
}

// RegionAround returns the region centered at c extending half in each direction
func RegionAround(c, half Vec2) Region {
	return Region{TopLeft: c.Sub(half), BotRight: c.Add(half)}
}

// Validate checks TopLeft <= BotRight on both axes
func (r Region) Validate() error {
	if r.TopLeft.X > r.BotRight.X || r.TopLeft.Y > r.BotRight.Y {
		return fmt.Errorf("%w: top-left %v past bottom-right %v", ErrInvalidRegion, r.TopLeft, r.BotRight)
	}
	return nil
}

// Width returns the pixel count along x
func (r Region) Width() int {
	return r.BotRight.X - r.TopLeft.X + 1
}

// Height returns the pixel count along y
func (r Region) Height() int {
	return r.BotRight.Y - r.TopLeft.Y + 1
}

// Area returns the pixel count of the region
func (r Region) Area() int {
	return r.Width() * r.Height()
}

// Center returns the integer midpoint
func (r Region) Center() Vec2 {
	return Vec2{
		X: (r.TopLeft.X + r.BotRight.X) / 2,
		Y: (r.TopLeft.Y + r.BotRight.Y) / 2,
	}
}

// Contains reports whether p lies inside r
func (r Region) Contains(p Vec2) bool {
	return p.X >= r.TopLeft.X && p.X <= r.BotRight.X &&
		p.Y >= r.TopLeft.Y && p.Y <= r.BotRight.Y
}

// Overlaps is the two-axis AABB overlap test
func (r Region) Overlaps(o Region) bool {
	return r.TopLeft.X <= o.BotRight.X && o.TopLeft.X <= r.BotRight.X &&
		r.TopLeft.Y <= o.BotRight.Y && o.TopLeft.Y <= r.BotRight.Y
}

// Exceeds reports whether r sticks out of fence along axis a
func (r Region) Exceeds(fence Region, a Axis) bool {
	return r.TopLeft.Get(a) < fence.TopLeft.Get(a) || r.BotRight.Get(a) > fence.BotRight.Get(a)
}

// Within reports whether r lies inside fence on both axes
func (r Region) Within(fence Region) bool {
	return !r.Exceeds(fence, AxisX) && !r.Exceeds(fence, AxisY)
}

// Union returns the smallest region covering r and o
func (r Region) Union(o Region) Region {
	return Region{
		TopLeft:  Vec2{X: min(r.TopLeft.X, o.TopLeft.X), Y: min(r.TopLeft.Y, o.TopLeft.Y)},
		BotRight: Vec2{X: max(r.BotRight.X, o.BotRight.X), Y: max(r.BotRight.Y, o.BotRight.Y)},
	}
}

// Intersect clips r to o, ok is false when they do not overlap
func (r Region) Intersect(o Region) (Region, bool) {
	out := Region{
		TopLeft:  Vec2{X: max(r.TopLeft.X, o.TopLeft.X), Y: max(r.TopLeft.Y, o.TopLeft.Y)},
		BotRight: Vec2{X: min(r.BotRight.X, o.BotRight.X), Y: min(r.BotRight.Y, o.BotRight.Y)},
	}
	if out.Validate() != nil {
		return Region{}, false
	}
	return out, true
}

// ScreenRegion returns the full-screen region for a width x height display
func ScreenRegion(width, height int) Region {
	return Region{BotRight: Vec2{X: width - 1, Y: height - 1}}
}
