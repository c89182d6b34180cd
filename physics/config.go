package physics

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/lcd-pong/core"
	"github.com/lixenwraith/lcd-pong/input"
)

// ScorePolicy selects what happens to a unit's velocity after it scores
type ScorePolicy int

const (
	// ScoreKeep leaves velocity unchanged
	ScoreKeep ScorePolicy = iota
	// ScoreReverse negates both velocity components
	ScoreReverse
	// ScoreServe replaces velocity with the serve vector aimed away from the breached zone
	ScoreServe
)

var policyNames = [...]string{"keep", "reverse", "serve"}

func (p ScorePolicy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("ScorePolicy(%d)", int(p))
	}
	return policyNames[p]
}

// ParseScorePolicy resolves a policy name, case-insensitive
func ParseScorePolicy(s string) (ScorePolicy, error) {
	for i, name := range policyNames {
		if strings.EqualFold(s, name) {
			return ScorePolicy(i), nil
		}
	}
	return ScoreKeep, fmt.Errorf("unknown score policy %q", s)
}

// Config tunes collision cues and the manual-control hook
type Config struct {
	// Tone half-periods for the wall and paddle cues
	WallPeriod   int
	PaddlePeriod int

	// Score cue sweep bounds and step
	SweepMin  int
	SweepMax  int
	SweepRate int

	// ControlIndex is the chain index of the hand-controlled unit, negative selects the last
	ControlIndex int
	// ControlUp forces ControlVelocity on the vertical axis while held
	ControlUp input.Buttons
	// ControlDown forces -ControlVelocity while held, zero disables it
	ControlDown     input.Buttons
	ControlVelocity int

	ScorePolicy   ScorePolicy
	ServeVelocity core.Vec2
}

// DefaultConfig returns the tuning of the handheld build
func DefaultConfig() Config {
	return Config{
		WallPeriod:      2000,
		PaddlePeriod:    750,
		SweepMin:        1000,
		SweepMax:        5000,
		SweepRate:       200,
		ControlIndex:    -1,
		ControlUp:       input.Button1,
		ControlDown:     input.Button2,
		ControlVelocity: -2,
		ScorePolicy:     ScoreKeep,
		ServeVelocity:   core.Vec2{X: 1, Y: 1},
	}
}
