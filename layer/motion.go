package layer

import "github.com/lixenwraith/lcd-pong/core"

// MotionUnit is a layer plus its per-tick velocity
type MotionUnit struct {
	Layer    *Layer
	Velocity core.Vec2
	// Idle is restored when the manual-control hook releases the unit
	Idle core.Vec2
	// Paddle units neither bounce off paddles nor score
	Paddle bool
}

// MotionChain lists the independently moving layers in advance order
type MotionChain struct {
	units []*MotionUnit
}

// NewMotionChain creates a chain in advance order
func NewMotionChain(units ...*MotionUnit) *MotionChain {
	c := &MotionChain{units: make([]*MotionUnit, len(units))}
	copy(c.units, units)
	return c
}

// Len returns the unit count
func (c *MotionChain) Len() int {
	return len(c.units)
}

// At returns the unit at index i
func (c *MotionChain) At(i int) *MotionUnit {
	return c.units[i]
}

// Units exposes the backing slice for iteration, callers must not append
func (c *MotionChain) Units() []*MotionUnit {
	return c.units
}

// Commit applies staged positions of every unit
func (c *MotionChain) Commit() {
	for _, u := range c.units {
		u.Layer.Commit()
	}
}
