package render

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/lcd-pong/core"
	"github.com/lixenwraith/lcd-pong/layer"
	"github.com/lixenwraith/lcd-pong/status"
)

type noLock struct{}

func (noLock) Lock()   {}
func (noLock) Unlock() {}

// Compositor commits staged positions and repaints the regions they dirtied
// Each pixel of a dirty region takes the color of the first stack layer
// covering it, or the background
type Compositor struct {
	display    Display
	background core.Color
	screen     core.Region
	lock       sync.Locker
	text       *TextRasterizer

	redraws *atomic.Int64
	pixels  *atomic.Int64
}

// NewCompositor creates a compositor writing to d
// lock guards the commit against a concurrent advance, nil disables locking
func NewCompositor(d Display, background core.Color, lock sync.Locker, reg *status.Registry) *Compositor {
	if lock == nil {
		lock = noLock{}
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Compositor{
		display:    d,
		background: background,
		screen:     core.ScreenRegion(d.Size()),
		lock:       lock,
		text:       NewTextRasterizer(nil),
		redraws:    reg.Ints.Get(status.MetricRedraws),
		pixels:     reg.Ints.Get(status.MetricPixels),
	}
}

// CommitAndRedraw applies every unit's staged position then repaints the
// union of its old and new bounds
func (c *Compositor) CommitAndRedraw(units *layer.MotionChain, stack *layer.Stack) {
	c.lock.Lock()
	units.Commit()
	c.lock.Unlock()

	for _, u := range units.Units() {
		c.Redraw(u.Layer.DirtyRegion(), stack)
	}
	c.redraws.Add(1)
}

// Paint repaints the whole screen from the stack
func (c *Compositor) Paint(stack *layer.Stack) {
	c.Redraw(c.screen, stack)
}

// Redraw probes every pixel of r, clipped to the screen, in row-major order
func (c *Compositor) Redraw(r core.Region, stack *layer.Stack) {
	r, ok := r.Intersect(c.screen)
	if !ok {
		return
	}
	c.display.SetArea(r)
	var p core.Vec2
	for p.Y = r.TopLeft.Y; p.Y <= r.BotRight.Y; p.Y++ {
		for p.X = r.TopLeft.X; p.X <= r.BotRight.X; p.X++ {
			c.display.WriteColor(stack.Probe(p, c.background))
		}
	}
	c.pixels.Add(int64(r.Area()))
}

// DrawText draws text beneath the stack: pixels owned by a layer keep the
// layer color, the rest show glyph ink in fg over the background
func (c *Compositor) DrawText(at core.Vec2, text string, fg core.Color, stack *layer.Stack) {
	drawText(c.display, c.text, at, text, func(p core.Vec2, ink bool) core.Color {
		if l := stack.Owner(p); l != nil {
			return l.Color
		}
		if ink {
			return fg
		}
		return c.background
	})
}

// TextBox returns the region text would occupy at at
func (c *Compositor) TextBox(at core.Vec2, text string) core.Region {
	return c.text.Measure(at, text)
}
