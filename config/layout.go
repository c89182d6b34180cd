package config

import (
	"fmt"

	"github.com/lixenwraith/lcd-pong/core"
	"github.com/lixenwraith/lcd-pong/input"
	"github.com/lixenwraith/lcd-pong/physics"
)

// Center returns the screen center, also the field center
func (c *Config) Center() core.Vec2 {
	return core.Vec2{X: c.Screen.Width / 2, Y: c.Screen.Height / 2}
}

// ScreenRegion covers the whole display
func (c *Config) ScreenRegion() core.Region {
	return core.ScreenRegion(c.Screen.Width, c.Screen.Height)
}

// FieldRegion is the bounds of the field outline
func (c *Config) FieldRegion() core.Region {
	return core.RegionAround(c.Center(), c.Field.HalfSize)
}

// BallStart returns the initial ball center
func (c *Config) BallStart() core.Vec2 {
	return c.Center().Add(c.Ball.Offset)
}

// PlayerStart returns the left paddle center
func (c *Config) PlayerStart() core.Vec2 {
	return core.Vec2{X: c.Paddle.Inset, Y: c.Screen.Height / 2}
}

// OpponentStart returns the right paddle center
func (c *Config) OpponentStart() core.Vec2 {
	return core.Vec2{X: c.Screen.Width - c.Paddle.Inset, Y: c.Screen.Height / 2}
}

// LeftZoneCenter returns the center of the zone behind the player paddle
func (c *Config) LeftZoneCenter() core.Vec2 {
	return core.Vec2{X: c.Zone.LeftInset, Y: c.Screen.Height / 2}
}

// RightZoneCenter returns the center of the zone behind the opponent paddle
func (c *Config) RightZoneCenter() core.Vec2 {
	return core.Vec2{X: c.Screen.Width - c.Zone.RightInset, Y: c.Screen.Height / 2}
}

// Palette is the resolved set of scene colors
type Palette struct {
	Background core.Color
	Text       core.Color
	Field      core.Color
	Ball       core.Color
	Player     core.Color
	Opponent   core.Color
	Zone       core.Color
}

// Palette resolves every configured color name
func (c *Config) Palette() (Palette, error) {
	var p Palette
	for _, entry := range []struct {
		name string
		val  string
		dst  *core.Color
	}{
		{"screen.background", c.Screen.Background, &p.Background},
		{"screen.text_color", c.Screen.TextColor, &p.Text},
		{"field.color", c.Field.Color, &p.Field},
		{"ball.color", c.Ball.Color, &p.Ball},
		{"paddle.player_color", c.Paddle.PlayerColor, &p.Player},
		{"paddle.opponent_color", c.Paddle.OpponentColor, &p.Opponent},
		{"zone.color", c.Zone.Color, &p.Zone},
	} {
		col, ok := core.ParseColor(entry.val)
		if !ok {
			return p, fmt.Errorf("%s: unknown color %q: %w", entry.name, entry.val, ErrInvalidConfig)
		}
		*entry.dst = col
	}
	return p, nil
}

// PhysicsConfig converts the physics section for the engine
func (c *Config) PhysicsConfig() (physics.Config, error) {
	policy, err := physics.ParseScorePolicy(c.Physics.ScorePolicy)
	if err != nil {
		return physics.Config{}, fmt.Errorf("physics.score_policy: %v: %w", err, ErrInvalidConfig)
	}
	pc := physics.DefaultConfig()
	pc.WallPeriod = c.Physics.WallPeriod
	pc.PaddlePeriod = c.Physics.PaddlePeriod
	pc.SweepMin = c.Physics.SweepMin
	pc.SweepMax = c.Physics.SweepMax
	pc.SweepRate = c.Physics.SweepRate
	pc.ControlIndex = c.Physics.ControlIndex
	pc.ControlVelocity = c.Physics.ControlVelocity
	pc.ScorePolicy = policy
	pc.ServeVelocity = c.Physics.ServeVelocity
	return pc, nil
}

// KeyMap builds the keyboard bindings, up drives SW1 and down SW2
func (c *Config) KeyMap() (*input.KeyMap, error) {
	km := input.NewKeyMap()
	for _, name := range c.Keys.Up {
		if err := km.Bind(name, input.Button1); err != nil {
			return nil, fmt.Errorf("keys.up: %v: %w", err, ErrInvalidConfig)
		}
	}
	for _, name := range c.Keys.Down {
		if err := km.Bind(name, input.Button2); err != nil {
			return nil, fmt.Errorf("keys.down: %v: %w", err, ErrInvalidConfig)
		}
	}
	for _, name := range c.Keys.Quit {
		if err := km.BindQuit(name); err != nil {
			return nil, fmt.Errorf("keys.quit: %v: %w", err, ErrInvalidConfig)
		}
	}
	return km, nil
}
