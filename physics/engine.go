// Package physics integrates motion units one tick at a time, reflecting them
// off the fence and the paddles and detecting score-zone breaches.
package physics

import (
	"sync/atomic"

	"github.com/lixenwraith/lcd-pong/audio"
	"github.com/lixenwraith/lcd-pong/core"
	"github.com/lixenwraith/lcd-pong/input"
	"github.com/lixenwraith/lcd-pong/layer"
	"github.com/lixenwraith/lcd-pong/status"
)

// Engine stages the next position of every motion unit
// Not safe for concurrent use, callers serialize Advance with commits
type Engine struct {
	cfg     Config
	score   *core.Scoreboard
	tone    audio.Tone
	sweep   *audio.Sweep
	buttons input.Reader

	wallHits   *atomic.Int64
	paddleHits *atomic.Int64
	scores     *atomic.Int64
}

// NewEngine creates an engine, nil tone or buttons fall back to silence and no input
func NewEngine(cfg Config, score *core.Scoreboard, tone audio.Tone, buttons input.Reader, reg *status.Registry) *Engine {
	if tone == nil {
		tone = audio.Silent{}
	}
	if buttons == nil {
		buttons = input.Fixed(input.ButtonNone)
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Engine{
		cfg:        cfg,
		score:      score,
		tone:       tone,
		sweep:      audio.NewSweep(cfg.SweepMin, cfg.SweepMax, cfg.SweepRate),
		buttons:    buttons,
		wallHits:   reg.Ints.Get(status.MetricWall),
		paddleHits: reg.Ints.Get(status.MetricPaddle),
		scores:     reg.Ints.Get(status.MetricScore),
	}
}

// Advance moves every unit one step and writes the result to its PosNext
// Collisions are corrected in place: a reflected axis steps back by the
// distance it moved, so a unit inside the fence stays inside
// Fence and score tests use the uncorrected candidate bounds, so a unit
// bouncing off the wall behind a paddle still scores
// A unit found overlapping a paddle without entering it on either axis is
// turned away from the paddle center in the same tick
func (e *Engine) Advance(units *layer.MotionChain, fence, player, opponent, leftZone, rightZone core.Region) Events {
	e.tone.SetPeriod(0)

	control := e.cfg.ControlIndex
	if control < 0 || control >= units.Len() {
		control = units.Len() - 1
	}
	held := e.buttons.Read()

	var events Events
	for i, u := range units.Units() {
		l := u.Layer
		origin := l.Pos
		candidate := origin.Add(u.Velocity)
		boundary := l.Shape.Bounds(candidate)

		if i == control {
			e.applyControl(u, held)
		}

		for _, a := range core.Axes {
			step := candidate.Get(a) - origin.Get(a)
			fenced := false

			if boundary.Exceeds(fence, a) {
				candidate = reflect(u, candidate, a, step)
				events |= EventWall
				e.wallHits.Add(1)
				e.tone.SetPeriod(e.cfg.WallPeriod)
				fenced = true
			}

			if !u.Paddle && !fenced {
				for _, paddle := range [2]core.Region{player, opponent} {
					var hit bool
					switch {
					case step != 0 && entered(l, origin, candidate, a, paddle):
						candidate = reflect(u, candidate, a, step)
						hit = true
					case a == core.AxisX && stuck(l, origin, candidate, paddle):
						candidate, hit = escape(u, origin, candidate, step, fence, paddle)
					}
					if !hit {
						continue
					}
					events |= EventPaddle
					e.paddleHits.Add(1)
					e.tone.SetPeriod(e.cfg.PaddlePeriod)
					break
				}
			}

			if a != core.AxisX || u.Paddle {
				continue
			}

			var side core.Side
			switch {
			case boundary.TopLeft.X <= leftZone.BotRight.X:
				side = core.SideLeft
				events |= EventScoreLeft
			case boundary.BotRight.X >= rightZone.TopLeft.X:
				side = core.SideRight
				events |= EventScoreRight
			default:
				continue
			}

			e.score.Add(side)
			e.scores.Add(1)
			candidate = fence.Center()
			e.applyScorePolicy(u, side)
			e.tone.SetPeriod(e.sweep.Advance())
			// teleported, the remaining axis has nothing to resolve
			break
		}

		l.PosNext = candidate
	}
	return events
}

// applyControl forces vertical velocity while a control button is held
// Lines are active-low: a held button reads as a released line
func (e *Engine) applyControl(u *layer.MotionUnit, held input.Buttons) {
	switch {
	case e.cfg.ControlUp != 0 && !held.Line(e.cfg.ControlUp):
		u.Velocity.Y = e.cfg.ControlVelocity
	case e.cfg.ControlDown != 0 && !held.Line(e.cfg.ControlDown):
		u.Velocity.Y = -e.cfg.ControlVelocity
	default:
		u.Velocity.Y = u.Idle.Y
	}
}

func (e *Engine) applyScorePolicy(u *layer.MotionUnit, breached core.Side) {
	switch e.cfg.ScorePolicy {
	case ScoreReverse:
		u.Velocity = u.Velocity.Neg()
	case ScoreServe:
		v := e.cfg.ServeVelocity
		v.X = abs(v.X)
		if breached == core.SideRight {
			v.X = -v.X
		}
		u.Velocity = v
	}
}

// reflect inverts the motion on axis a and moves the candidate back by twice
// the new velocity, landing it step pixels behind where it started
func reflect(u *layer.MotionUnit, candidate core.Vec2, a core.Axis, step int) core.Vec2 {
	v := -step
	u.Velocity.Set(a, v)
	candidate.Set(a, candidate.Get(a)+2*v)
	return candidate
}

// entered reports whether motion along axis a brought the unit into paddle
func entered(l *layer.Layer, origin, candidate core.Vec2, a core.Axis, paddle core.Region) bool {
	if !l.Shape.Bounds(candidate).Overlaps(paddle) {
		return false
	}
	undone := candidate
	undone.Set(a, origin.Get(a))
	return !l.Shape.Bounds(undone).Overlaps(paddle)
}

// stuck reports an overlap with paddle that neither axis's motion explains,
// as when a paddle moves onto the unit
func stuck(l *layer.Layer, origin, candidate core.Vec2, paddle core.Region) bool {
	if !l.Shape.Bounds(candidate).Overlaps(paddle) {
		return false
	}
	if entered(l, origin, candidate, core.AxisX, paddle) {
		return false
	}
	return candidate.Y == origin.Y || !entered(l, origin, candidate, core.AxisY, paddle)
}

// escape turns the x motion away from the paddle center and steps the
// candidate back from origin, staying put when that would leave the fence
// A unit already heading away keeps its motion and is not a hit
func escape(u *layer.MotionUnit, origin, candidate core.Vec2, step int, fence, paddle core.Region) (core.Vec2, bool) {
	away := 1
	if candidate.X < paddle.Center().X {
		away = -1
	}
	if step*away > 0 {
		return candidate, false
	}

	v := away * max(abs(step), abs(u.Velocity.X), 1)
	u.Velocity.X = v
	candidate.X = origin.X + v
	if u.Layer.Shape.Bounds(candidate).Exceeds(fence, core.AxisX) {
		candidate.X = origin.X
	}
	return candidate, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
