package render

import "github.com/lixenwraith/lcd-pong/core"

// Framebuffer is an in-memory Display used headless and in tests
type Framebuffer struct {
	width  int
	height int
	pixels []core.Color
	cursor areaCursor
	text   *TextRasterizer
	writes int
}

// NewFramebuffer creates a width x height buffer filled with black
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
		text:   NewTextRasterizer(nil),
	}
	fb.cursor.reset(core.ScreenRegion(width, height))
	return fb
}

func (fb *Framebuffer) Size() (int, int) {
	return fb.width, fb.height
}

func (fb *Framebuffer) SetArea(r core.Region) {
	fb.cursor.reset(r)
}

// WriteColor stores c at the cursor, pixels outside the screen are dropped
func (fb *Framebuffer) WriteColor(c core.Color) {
	p := fb.cursor.next()
	fb.writes++
	if p.X < 0 || p.Y < 0 || p.X >= fb.width || p.Y >= fb.height {
		return
	}
	fb.pixels[p.Y*fb.width+p.X] = c
}

func (fb *Framebuffer) DrawString(at core.Vec2, text string, fg, bg core.Color) {
	DrawString(fb, fb.text, at, text, fg, bg)
}

// Pixel returns the stored color at (x, y)
func (fb *Framebuffer) Pixel(x, y int) core.Color {
	return fb.pixels[y*fb.width+x]
}

// Snapshot copies the current pixel contents
func (fb *Framebuffer) Snapshot() []core.Color {
	out := make([]core.Color, len(fb.pixels))
	copy(out, fb.pixels)
	return out
}

// Writes returns the number of WriteColor calls so far
func (fb *Framebuffer) Writes() int {
	return fb.writes
}

// Count returns how many pixels currently hold c
func (fb *Framebuffer) Count(c core.Color) int {
	n := 0
	for _, p := range fb.pixels {
		if p == c {
			n++
		}
	}
	return n
}
