// Package render composites the layer stack onto a pixel display.
package render

import "github.com/lixenwraith/lcd-pong/core"

// Display is a fixed-resolution pixel sink
// WriteColor fills the current area row-major, one pixel per call
type Display interface {
	Size() (width, height int)
	SetArea(r core.Region)
	WriteColor(c core.Color)
	DrawString(at core.Vec2, text string, fg, bg core.Color)
}

// Clear fills the whole display with c
func Clear(d Display, c core.Color) {
	Fill(d, core.ScreenRegion(d.Size()), c)
}

// Fill paints r with c, clipped to the display
func Fill(d Display, r core.Region, c core.Color) {
	r, ok := r.Intersect(core.ScreenRegion(d.Size()))
	if !ok {
		return
	}
	d.SetArea(r)
	for n := r.Area(); n > 0; n-- {
		d.WriteColor(c)
	}
}

// areaCursor tracks the row-major write position inside an area
type areaCursor struct {
	area core.Region
	pos  core.Vec2
}

func (c *areaCursor) reset(r core.Region) {
	c.area = r
	c.pos = r.TopLeft
}

// next returns the pixel to write and advances, wrapping to the area top
func (c *areaCursor) next() core.Vec2 {
	p := c.pos
	c.pos.X++
	if c.pos.X > c.area.BotRight.X {
		c.pos.X = c.area.TopLeft.X
		c.pos.Y++
		if c.pos.Y > c.area.BotRight.Y {
			c.pos.Y = c.area.TopLeft.Y
		}
	}
	return p
}
