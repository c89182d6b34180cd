package engine

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/lcd-pong/audio"
	"github.com/lixenwraith/lcd-pong/core"
	"github.com/lixenwraith/lcd-pong/input"
	"github.com/lixenwraith/lcd-pong/physics"
	"github.com/lixenwraith/lcd-pong/render"
	"github.com/lixenwraith/lcd-pong/status"
)

// GameState is the phase of the main control loop
type GameState int

const (
	StateWelcome GameState = iota
	StatePlaying
	StateScored
	StateGameOver
)

var stateNames = [...]string{"Welcome", "Playing", "Scored", "GameOver"}

func (s GameState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("GameState(%d)", int(s))
	}
	return stateNames[s]
}

// Screen messages
const (
	TitleText    = "welcome to pong"
	GameOverText = "Game Over!"
	UnknownText  = "hmmm"
)

// Flusher pushes pending display writes to the device
type Flusher interface {
	Show()
}

// Game is the main control loop: Welcome, Playing, Scored then GameOver
// State is mutated only by the goroutine running Run or RunTicks
type Game struct {
	gc         *GameContext
	display    render.Display
	compositor *render.Compositor
	scheduler  *TickScheduler
	tone       audio.Tone
	clock      Clock
	flusher    Flusher

	state     GameState
	hudLeft   uint32
	hudRight  uint32
	hudDrawn  bool
	statAwake *atomic.Bool
}

// NewGame wires the engines for gc onto display
// buttons and tone may be nil
func NewGame(gc *GameContext, display render.Display, tone audio.Tone, buttons input.Reader, clock Clock) (*Game, error) {
	if tone == nil {
		tone = audio.Silent{}
	}
	if clock == nil {
		clock = SystemClock{}
	}
	pc, err := gc.Config.PhysicsConfig()
	if err != nil {
		return nil, err
	}

	eng := physics.NewEngine(pc, &gc.Score, tone, buttons, gc.Status)
	g := &Game{
		gc:         gc,
		display:    display,
		compositor: render.NewCompositor(display, gc.Palette.Background, gc, gc.Status),
		scheduler:  NewTickScheduler(gc, eng, clock, gc.Config.Timing.BaseHz, gc.Config.Timing.Divider),
		tone:       tone,
		clock:      clock,
		state:      StateWelcome,
		statAwake:  gc.Status.Bools.Get(status.MetricAwake),
	}
	if f, ok := display.(Flusher); ok {
		g.flusher = f
	}
	g.setState(StateWelcome)
	return g, nil
}

// State returns the current phase
func (g *Game) State() GameState {
	return g.state
}

// Scheduler exposes the tick scheduler, headless runs drive it by hand
func (g *Game) Scheduler() *TickScheduler {
	return g.scheduler
}

func (g *Game) setState(s GameState) {
	if s != g.state {
		log.Printf("game: %v -> %v", g.state, s)
	}
	g.state = s
	g.gc.statState.Store(s.String())
}

// Run drives the state machine until ctx is canceled
// GameOver and unknown states wait for cancellation without returning
func (g *Game) Run(ctx context.Context) error {
	defer g.scheduler.Stop()

	for {
		switch g.state {
		case StateWelcome:
			if err := g.welcome(ctx); err != nil {
				return nil
			}
		case StatePlaying:
			g.scheduler.Start()
			if err := g.play(ctx); err != nil {
				return nil
			}
		case StateScored:
			g.scored()
		case StateGameOver:
			g.gameOver()
			<-ctx.Done()
			return nil
		default:
			g.unknown()
			<-ctx.Done()
			return nil
		}
	}
}

func (g *Game) welcome(ctx context.Context) error {
	g.drawTitle()
	if hold := g.gc.Config.Timing.WelcomeHold; hold > 0 {
		select {
		case <-g.clock.After(hold):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	g.enterPlaying()
	return nil
}

func (g *Game) drawTitle() {
	bg := g.gc.Palette.Background
	render.Clear(g.display, bg)
	g.display.DrawString(core.Vec2{X: 10, Y: 10}, TitleText, g.gc.Palette.Text, bg)
	g.flush()
}

// RunTicks drives the game from the calling goroutine without a timer:
// n base ticks, each staged frame drawn before the next tick
// onTick, if set, runs after every base tick
// Returns the number of ticks run, fewer than n when the game ended
func (g *Game) RunTicks(n int, onTick func()) int {
	if g.state == StateWelcome {
		g.drawTitle()
		g.enterPlaying()
	}

	ran := 0
	for ; ran < n && g.state == StatePlaying; ran++ {
		if g.gc.RedrawPending() {
			g.Frame()
			if g.state != StatePlaying {
				break
			}
		}
		g.scheduler.Tick()
		if onTick != nil {
			onTick()
		}
	}
	if g.gc.RedrawPending() && g.state == StatePlaying {
		g.Frame()
	}

	if g.state == StateScored {
		g.scored()
		g.gameOver()
	}
	return ran
}

// enterPlaying paints the whole scene and raises the first redraw
func (g *Game) enterPlaying() {
	g.compositor.Paint(g.gc.Scene.Stack)
	g.drawHUD(true)
	g.flush()
	g.gc.RequestRedraw()
	g.setState(StatePlaying)
}

// play runs frames until a side wins or ctx ends
func (g *Game) play(ctx context.Context) error {
	for g.state == StatePlaying {
		g.statAwake.Store(false)
		if err := g.gc.WaitRedraw(ctx); err != nil {
			return err
		}
		g.statAwake.Store(true)
		g.Frame()
	}
	return nil
}

// Frame draws one pending frame and checks the win condition
func (g *Game) Frame() {
	scene := g.gc.Scene
	g.compositor.CommitAndRedraw(scene.Units, scene.Stack)
	g.gc.RefreshPaddles()
	g.gc.ClearRedraw()
	g.drawHUD(false)
	g.flush()

	if _, ok := g.gc.Winner(); ok {
		g.setState(StateScored)
	}
}

// drawHUD redraws the score strings when either changed
func (g *Game) drawHUD(force bool) {
	left := g.gc.Points(core.SideLeft)
	right := g.gc.Points(core.SideRight)
	if !force && g.hudDrawn && left == g.hudLeft && right == g.hudRight {
		return
	}
	g.hudLeft, g.hudRight, g.hudDrawn = left, right, true

	w, _ := g.display.Size()
	stack := g.gc.Scene.Stack
	fg := g.gc.Palette.Text

	leftText := fmt.Sprintf("%v: %d", core.SideLeft, left)
	rightText := fmt.Sprintf("%v: %d", core.SideRight, right)
	g.compositor.DrawText(core.Vec2{X: 2, Y: 0}, leftText, fg, stack)
	box := g.compositor.TextBox(core.Vec2{}, rightText)
	g.compositor.DrawText(core.Vec2{X: w - box.Width() - 2, Y: 0}, rightText, fg, stack)
}

func (g *Game) scored() {
	g.scheduler.Stop()
	g.tone.SetPeriod(0)

	winner, _ := g.gc.Winner()
	msg := fmt.Sprintf("%v wins!", winner)
	log.Printf("game: %s left=%d right=%d", msg, g.gc.Points(core.SideLeft), g.gc.Points(core.SideRight))

	bg := g.gc.Palette.Background
	render.Clear(g.display, bg)
	g.display.DrawString(core.Vec2{X: 10, Y: 30}, msg, g.gc.Palette.Text, bg)
	g.flush()
	g.setState(StateGameOver)
}

func (g *Game) gameOver() {
	g.display.DrawString(core.Vec2{X: 10, Y: 10}, GameOverText, g.gc.Palette.Text, g.gc.Palette.Background)
	g.flush()
}

func (g *Game) unknown() {
	w, h := g.display.Size()
	log.Printf("game: unknown state %v", g.state)
	g.display.DrawString(core.Vec2{X: w / 2, Y: h / 2}, UnknownText, g.gc.Palette.Text, g.gc.Palette.Background)
	g.flush()
}

func (g *Game) flush() {
	if g.flusher != nil {
		g.flusher.Show()
	}
}
