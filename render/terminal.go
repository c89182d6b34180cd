package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lcd-pong/core"
)

// halfBlock shows the top pixel as foreground and the bottom pixel as background
const halfBlock = '▀'

// TerminalDisplay maps a pixel display onto terminal cells, two rows per cell
// A shadow copy of the pixels rebuilds each touched cell from both halves
// Resize may run on the event goroutine while the game loop draws
type TerminalDisplay struct {
	mu      sync.Mutex
	screen  tcell.Screen
	width   int
	height  int
	originX int
	originY int
	pixels  []core.Color
	cursor  areaCursor
	text    *TextRasterizer
}

// NewTerminalDisplay creates a width x height pixel display centered on screen
func NewTerminalDisplay(screen tcell.Screen, width, height int) *TerminalDisplay {
	td := &TerminalDisplay{
		screen: screen,
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
		text:   NewTextRasterizer(nil),
	}
	td.cursor.reset(core.ScreenRegion(width, height))
	td.Resize()
	return td
}

// Resize recenters the display in the current terminal and repaints every cell
func (td *TerminalDisplay) Resize() {
	td.mu.Lock()
	defer td.mu.Unlock()

	cols, rows := td.screen.Size()
	td.originX = max(0, (cols-td.width)/2)
	td.originY = max(0, (rows-(td.height+1)/2)/2)
	td.screen.Clear()
	for y := 0; y < td.height; y += 2 {
		for x := 0; x < td.width; x++ {
			td.flushCell(x, y)
		}
	}
}

func (td *TerminalDisplay) Size() (int, int) {
	return td.width, td.height
}

func (td *TerminalDisplay) SetArea(r core.Region) {
	td.mu.Lock()
	td.cursor.reset(r)
	td.mu.Unlock()
}

func (td *TerminalDisplay) WriteColor(c core.Color) {
	td.mu.Lock()
	defer td.mu.Unlock()

	p := td.cursor.next()
	if p.X < 0 || p.Y < 0 || p.X >= td.width || p.Y >= td.height {
		return
	}
	td.pixels[p.Y*td.width+p.X] = c
	td.flushCell(p.X, p.Y)
}

func (td *TerminalDisplay) DrawString(at core.Vec2, text string, fg, bg core.Color) {
	DrawString(td, td.text, at, text, fg, bg)
}

// Show pushes pending cell changes to the terminal
func (td *TerminalDisplay) Show() {
	td.mu.Lock()
	defer td.mu.Unlock()
	td.screen.Show()
}

// flushCell rewrites the terminal cell holding pixel (x, y)
func (td *TerminalDisplay) flushCell(x, y int) {
	top := y &^ 1
	upper := td.pixels[top*td.width+x]
	lower := upper
	if top+1 < td.height {
		lower = td.pixels[(top+1)*td.width+x]
	}
	style := tcell.StyleDefault.Foreground(toTcell(upper)).Background(toTcell(lower))
	td.screen.SetContent(td.originX+x, td.originY+top/2, halfBlock, nil, style)
}

func toTcell(c core.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
