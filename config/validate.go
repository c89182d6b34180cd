package config

import (
	"fmt"

	"github.com/lixenwraith/lcd-pong/core"
)

// Validate rejects configurations the engine cannot run safely
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen %dx%d: %w", c.Screen.Width, c.Screen.Height, ErrInvalidConfig)
	}

	for _, half := range []struct {
		name string
		v    core.Vec2
	}{
		{"field.half_size", c.Field.HalfSize},
		{"paddle.half_size", c.Paddle.HalfSize},
		{"zone.half_size", c.Zone.HalfSize},
		{"ball.radius", core.Vec2{X: c.Ball.Radius, Y: c.Ball.Radius}},
	} {
		if half.v.X < 0 || half.v.Y < 0 {
			return fmt.Errorf("%s %v is negative: %w", half.name, half.v, ErrInvalidConfig)
		}
	}

	for _, r := range []struct {
		name   string
		region core.Region
	}{
		{"screen", c.ScreenRegion()},
		{"field", c.FieldRegion()},
		{"left zone", core.RegionAround(c.LeftZoneCenter(), c.Zone.HalfSize)},
		{"right zone", core.RegionAround(c.RightZoneCenter(), c.Zone.HalfSize)},
	} {
		if err := r.region.Validate(); err != nil {
			return fmt.Errorf("%s: %v: %w", r.name, err, ErrInvalidConfig)
		}
	}

	fence := c.FieldRegion()
	ball := core.RegionAround(c.BallStart(), core.Vec2{X: c.Ball.Radius, Y: c.Ball.Radius})
	if !ball.Within(fence) {
		return fmt.Errorf("ball start %v outside field %v: %w", ball, fence, ErrInvalidConfig)
	}
	for _, p := range []core.Vec2{c.PlayerStart(), c.OpponentStart()} {
		if paddle := core.RegionAround(p, c.Paddle.HalfSize); !paddle.Within(fence) {
			return fmt.Errorf("paddle %v outside field %v: %w", paddle, fence, ErrInvalidConfig)
		}
	}

	if c.Timing.BaseHz <= 0 || c.Timing.Divider <= 0 {
		return fmt.Errorf("timing base_hz=%d divider=%d must be positive: %w", c.Timing.BaseHz, c.Timing.Divider, ErrInvalidConfig)
	}
	if c.Timing.Hold < 0 || c.Timing.WelcomeHold < 0 {
		return fmt.Errorf("timing durations must not be negative: %w", ErrInvalidConfig)
	}

	ph := c.Physics
	if ph.SweepMin <= 0 || ph.SweepMin > ph.SweepMax || ph.SweepRate <= 0 {
		return fmt.Errorf("sweep min=%d max=%d rate=%d: %w", ph.SweepMin, ph.SweepMax, ph.SweepRate, ErrInvalidConfig)
	}
	if ph.WallPeriod < 0 || ph.PaddlePeriod < 0 {
		return fmt.Errorf("cue periods must not be negative: %w", ErrInvalidConfig)
	}

	if c.Game.WinScore <= 0 {
		return fmt.Errorf("game.win_score=%d must be positive: %w", c.Game.WinScore, ErrInvalidConfig)
	}
	if c.Audio.SampleRate <= 0 || c.Audio.ClockHz <= 0 {
		return fmt.Errorf("audio sample_rate=%d clock_hz=%d: %w", c.Audio.SampleRate, c.Audio.ClockHz, ErrInvalidConfig)
	}

	if _, err := c.Palette(); err != nil {
		return err
	}
	if _, err := c.PhysicsConfig(); err != nil {
		return err
	}
	if _, err := c.KeyMap(); err != nil {
		return err
	}
	return nil
}
