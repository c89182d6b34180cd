package render

import (
	"image"
	"image/draw"

	"github.com/lixenwraith/lcd-pong/core"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextRasterizer turns strings into 1-bit glyph masks using a fixed-width bitmap face
type TextRasterizer struct {
	face    font.Face
	ascent  int
	height  int
	scratch *image.Alpha
}

// NewTextRasterizer creates a rasterizer, nil face selects basicfont 7x13
func NewTextRasterizer(face font.Face) *TextRasterizer {
	if face == nil {
		face = basicfont.Face7x13
	}
	m := face.Metrics()
	return &TextRasterizer{
		face:   face,
		ascent: m.Ascent.Ceil(),
		height: m.Height.Ceil(),
	}
}

// Measure returns the pixel box of text drawn with its top-left at at
func (t *TextRasterizer) Measure(at core.Vec2, text string) core.Region {
	w := font.MeasureString(t.face, text).Ceil()
	if w < 1 {
		w = 1
	}
	return core.Region{
		TopLeft:  at,
		BotRight: core.Vec2{X: at.X + w - 1, Y: at.Y + t.height - 1},
	}
}

// Rasterize renders text into a mask whose origin is the text top-left
// The mask is reused between calls
func (t *TextRasterizer) Rasterize(text string) *image.Alpha {
	box := t.Measure(core.Vec2{}, text)
	rect := image.Rect(0, 0, box.Width(), box.Height())
	if t.scratch == nil || !rect.In(t.scratch.Rect) {
		t.scratch = image.NewAlpha(rect)
	}
	mask := t.scratch.SubImage(rect).(*image.Alpha)
	draw.Draw(mask, rect, image.Transparent, image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: t.face,
		Dot:  fixed.P(0, t.ascent),
	}
	d.DrawString(text)
	return mask
}

// drawText writes a rasterized string to d, clipped to the display
// color picks the pixel color given the glyph coverage at p
func drawText(d Display, t *TextRasterizer, at core.Vec2, text string, color func(p core.Vec2, ink bool) core.Color) {
	box, ok := t.Measure(at, text).Intersect(core.ScreenRegion(d.Size()))
	if !ok {
		return
	}
	mask := t.Rasterize(text)
	d.SetArea(box)
	for y := box.TopLeft.Y; y <= box.BotRight.Y; y++ {
		for x := box.TopLeft.X; x <= box.BotRight.X; x++ {
			ink := mask.AlphaAt(x-at.X, y-at.Y).A > 0
			d.WriteColor(color(core.Vec2{X: x, Y: y}, ink))
		}
	}
}

// DrawString writes text with plain foreground and background colors
func DrawString(d Display, t *TextRasterizer, at core.Vec2, text string, fg, bg core.Color) {
	drawText(d, t, at, text, func(_ core.Vec2, ink bool) core.Color {
		if ink {
			return fg
		}
		return bg
	})
}
