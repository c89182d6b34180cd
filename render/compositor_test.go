package render

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/lixenwraith/lcd-pong/core"
	"github.com/lixenwraith/lcd-pong/layer"
	"github.com/lixenwraith/lcd-pong/shape"
)

func testScene() (*layer.MotionChain, *layer.Stack) {
	ball := layer.New("ball", shape.Circle{Radius: 3}, core.Vec2{X: 20, Y: 20}, core.ColorWhite)
	paddle := layer.New("paddle", shape.Rect{HalfSize: core.Vec2{X: 2, Y: 6}}, core.Vec2{X: 5, Y: 20}, core.ColorRed)
	field := layer.New("field", shape.RectOutline{HalfSize: core.Vec2{X: 30, Y: 30}}, core.Vec2{X: 32, Y: 32}, core.ColorOrange)
	stack := layer.NewStack(ball, paddle, field)
	units := layer.NewMotionChain(
		&layer.MotionUnit{Layer: ball},
		&layer.MotionUnit{Layer: paddle},
	)
	return units, stack
}

func TestCompositorPaintFirstMatchWins(t *testing.T) {
	fb := NewFramebuffer(64, 64)
	paddle := layer.New("paddle", shape.Rect{HalfSize: core.Vec2{X: 2, Y: 6}}, core.Vec2{X: 10, Y: 10}, core.ColorRed)
	bg := layer.New("background", shape.Rect{HalfSize: core.Vec2{X: 20, Y: 20}}, core.Vec2{X: 10, Y: 10}, core.ColorWhite)
	stack := layer.NewStack(paddle, bg)

	c := NewCompositor(fb, core.ColorBlue, nil, nil)
	c.Paint(stack)

	if got := fb.Pixel(10, 10); got != core.ColorRed {
		t.Errorf("pixel inside paddle = %v, want red", got)
	}
	if got := fb.Pixel(25, 25); got != core.ColorWhite {
		t.Errorf("pixel inside background only = %v, want white", got)
	}
	if got := fb.Pixel(50, 50); got != core.ColorBlue {
		t.Errorf("uncovered pixel = %v, want background blue", got)
	}
}

func TestCompositorRedrawsOnlyDirtyRegion(t *testing.T) {
	fb := NewFramebuffer(64, 64)
	units, stack := testScene()
	c := NewCompositor(fb, core.ColorBlack, nil, nil)
	c.Paint(stack)
	full := fb.Writes()
	if full != 64*64 {
		t.Fatalf("full paint wrote %d pixels, want %d", full, 64*64)
	}

	ball := units.At(0).Layer
	ball.PosNext = core.Vec2{X: 22, Y: 20}
	c.CommitAndRedraw(units, stack)

	// ball: 7x7 at old position unioned with new gives 9x7, paddle unmoved 5x13
	want := full + 9*7 + 5*13
	if fb.Writes() != want {
		t.Errorf("writes = %d, want %d", fb.Writes(), want)
	}
	if ball.PosLast != (core.Vec2{X: 20, Y: 20}) || ball.Pos != (core.Vec2{X: 22, Y: 20}) {
		t.Errorf("commit: last=%v pos=%v", ball.PosLast, ball.Pos)
	}
	if got := fb.Pixel(17, 20); got != core.ColorBlack {
		t.Errorf("old silhouette not erased, got %v", got)
	}
	if got := fb.Pixel(25, 20); got != core.ColorWhite {
		t.Errorf("new silhouette not drawn, got %v", got)
	}
}

func TestCompositorClipsToScreen(t *testing.T) {
	fb := NewFramebuffer(32, 32)
	ball := layer.New("ball", shape.Circle{Radius: 4}, core.Vec2{X: 1, Y: 1}, core.ColorWhite)
	units := layer.NewMotionChain(&layer.MotionUnit{Layer: ball})
	stack := layer.NewStack(ball)
	c := NewCompositor(fb, core.ColorBlack, nil, nil)

	ball.PosNext = core.Vec2{X: 0, Y: 0}
	c.CommitAndRedraw(units, stack)

	// union is (-4,-4)..(5,5), clipped to (0,0)..(5,5)
	if fb.Writes() != 36 {
		t.Errorf("writes = %d, want 36", fb.Writes())
	}
}

func TestRedrawIdempotentAtRest(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("two redraws at zero velocity produce identical pixels", prop.ForAll(
		func(bx, by, px, py int) bool {
			fb := NewFramebuffer(64, 64)
			units, stack := testScene()
			units.At(0).Layer.PosNext = core.Vec2{X: bx, Y: by}
			units.At(1).Layer.PosNext = core.Vec2{X: px, Y: py}
			c := NewCompositor(fb, core.ColorBlack, nil, nil)
			c.Paint(stack)
			c.CommitAndRedraw(units, stack)

			first := fb.Snapshot()
			c.CommitAndRedraw(units, stack)
			second := fb.Snapshot()
			for i := range first {
				if first[i] != second[i] {
					return false
				}
			}
			return true
		},
		gen.IntRange(-5, 70), gen.IntRange(-5, 70), gen.IntRange(0, 63), gen.IntRange(0, 63),
	))

	properties.TestingRun(t)
}

func TestDrawTextKeepsLayersOnTop(t *testing.T) {
	fb := NewFramebuffer(64, 32)
	wall := layer.New("wall", shape.Rect{HalfSize: core.Vec2{X: 0, Y: 20}}, core.Vec2{X: 3, Y: 5}, core.ColorOrange)
	stack := layer.NewStack(wall)
	c := NewCompositor(fb, core.ColorBlack, nil, nil)

	c.DrawText(core.Vec2{X: 0, Y: 0}, "HH", core.ColorGreen, stack)

	if got := fb.Pixel(3, 5); got != core.ColorOrange {
		t.Errorf("layer pixel under text = %v, want orange", got)
	}
	if fb.Count(core.ColorGreen) == 0 {
		t.Error("no glyph ink drawn")
	}
	box := c.TextBox(core.Vec2{}, "HH")
	if box.Width() != 14 || box.Height() != 13 {
		t.Errorf("text box = %dx%d, want 14x13", box.Width(), box.Height())
	}
}
