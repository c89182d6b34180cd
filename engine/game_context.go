package engine

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/lcd-pong/config"
	"github.com/lixenwraith/lcd-pong/core"
	"github.com/lixenwraith/lcd-pong/physics"
	"github.com/lixenwraith/lcd-pong/status"
)

// GameContext bundles the state shared between the tick goroutine and the
// main loop
// The mutex guards layer positions, velocities and the paddle regions; the
// redraw flag is the only signal from the tick side
type GameContext struct {
	mu sync.Mutex

	Config  config.Config
	Palette config.Palette
	Scene   *Scene
	Score   core.Scoreboard
	Status  *status.Registry

	fence     core.Region
	leftZone  core.Region
	rightZone core.Region
	player    core.Region
	opponent  core.Region

	redraw atomic.Bool
	wake   chan struct{}

	statState *status.Label
}

// NewGameContext validates cfg and builds the scene
func NewGameContext(cfg config.Config, reg *status.Registry) (*GameContext, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pal, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	scene := BuildScene(&cfg, pal)
	gc := &GameContext{
		Config:    cfg,
		Palette:   pal,
		Scene:     scene,
		Status:    reg,
		fence:     scene.Fence(),
		leftZone:  scene.LeftZone.Bounds(),
		rightZone: scene.RightZone.Bounds(),
		wake:      make(chan struct{}, 1),
		statState: reg.Labels.Get(status.MetricState),
	}
	if !scene.Ball.Layer.Bounds().Within(gc.fence) {
		return nil, fmt.Errorf("ball %v outside fence %v: %w", scene.Ball.Layer.Bounds(), gc.fence, config.ErrInvalidConfig)
	}
	gc.RefreshPaddles()
	return gc, nil
}

// Lock and Unlock make the context the critical section for commits
func (gc *GameContext) Lock()   { gc.mu.Lock() }
func (gc *GameContext) Unlock() { gc.mu.Unlock() }

// RefreshPaddles re-derives both paddle regions from their committed bounds
func (gc *GameContext) RefreshPaddles() {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.player = gc.Scene.Player.Layer.Bounds()
	gc.opponent = gc.Scene.Opponent.Layer.Bounds()
}

// PaddleRegions returns the player and opponent regions
func (gc *GameContext) PaddleRegions() (player, opponent core.Region) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.player, gc.opponent
}

// Fence returns the static containment region
func (gc *GameContext) Fence() core.Region {
	return gc.fence
}

// Advance runs one physics step under the lock
func (gc *GameContext) Advance(e *physics.Engine) physics.Events {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return e.Advance(gc.Scene.Units, gc.fence, gc.player, gc.opponent, gc.leftZone, gc.rightZone)
}

// RequestRedraw raises the pending flag and wakes the main loop
func (gc *GameContext) RequestRedraw() {
	gc.redraw.Store(true)
	select {
	case gc.wake <- struct{}{}:
	default:
	}
}

// RedrawPending reports whether a staged frame awaits its redraw
func (gc *GameContext) RedrawPending() bool {
	return gc.redraw.Load()
}

// ClearRedraw lowers the pending flag once the frame is on screen
func (gc *GameContext) ClearRedraw() {
	gc.redraw.Store(false)
}

// WaitRedraw blocks until a redraw is pending or ctx ends
func (gc *GameContext) WaitRedraw(ctx context.Context) error {
	for !gc.redraw.Load() {
		select {
		case <-gc.wake:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Winner returns the side that reached the win score by breaching the other
// side's zone, ok is false while nobody has
func (gc *GameContext) Winner() (core.Side, bool) {
	zone, count := gc.Score.Leader()
	if int(count) < gc.Config.Game.WinScore {
		return 0, false
	}
	return zone.Opponent(), true
}

// Points returns the points earned by side, one per breach of the opposite zone
func (gc *GameContext) Points(side core.Side) uint32 {
	return gc.Score.Get(side.Opponent())
}
