package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/lcd-pong/core"
	"github.com/lixenwraith/lcd-pong/input"
	"github.com/lixenwraith/lcd-pong/physics"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lcd-pong.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultLayout(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, core.Vec2{X: 74, Y: 85}, cfg.BallStart())
	assert.Equal(t, core.Vec2{X: 15, Y: 80}, cfg.PlayerStart())
	assert.Equal(t, core.Vec2{X: 113, Y: 80}, cfg.OpponentStart())
	assert.Equal(t, core.Vec2{X: 6, Y: 80}, cfg.LeftZoneCenter())
	assert.Equal(t, core.Vec2{X: 123, Y: 80}, cfg.RightZoneCenter())
	assert.Equal(t, core.Region{
		TopLeft:  core.Vec2{X: 5, Y: 10},
		BotRight: core.Vec2{X: 123, Y: 150},
	}, cfg.FieldRegion())

	pal, err := cfg.Palette()
	require.NoError(t, err)
	assert.Equal(t, core.ColorBlue, pal.Background)
	assert.Equal(t, core.ColorPurple, pal.Player)
	assert.Equal(t, core.ColorRed, pal.Opponent)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[ball]
radius = 3
velocity = { x = 2, y = -1 }

[timing]
divider = 5
hold = "100ms"

[physics]
score_policy = "serve"

[keys]
up = ["k"]
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 3, cfg.Ball.Radius)
	assert.Equal(t, core.Vec2{X: 2, Y: -1}, cfg.Ball.Velocity)
	assert.Equal(t, 5, cfg.Timing.Divider)
	assert.Equal(t, 100*time.Millisecond, cfg.Timing.Hold)
	assert.Equal(t, 225, cfg.Timing.BaseHz, "untouched keys keep defaults")

	pc, err := cfg.PhysicsConfig()
	require.NoError(t, err)
	assert.Equal(t, physics.ScoreServe, pc.ScorePolicy)

	km, err := cfg.KeyMap()
	require.NoError(t, err)
	action, buttons := km.Resolve(tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone))
	assert.Equal(t, input.ActionPress, action)
	assert.Equal(t, input.Button1, buttons)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "[ball]\nradiuss = 3\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "ball.radiuss")
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "[ball\n")
	_, err := Load(path)
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero screen", func(c *Config) { c.Screen.Width = 0 }},
		{"negative field", func(c *Config) { c.Field.HalfSize.X = -1 }},
		{"negative radius", func(c *Config) { c.Ball.Radius = -2 }},
		{"ball outside field", func(c *Config) { c.Ball.Offset = core.Vec2{X: 60} }},
		{"paddle outside field", func(c *Config) { c.Paddle.Inset = 2 }},
		{"zero divider", func(c *Config) { c.Timing.Divider = 0 }},
		{"zero base rate", func(c *Config) { c.Timing.BaseHz = 0 }},
		{"sweep inverted", func(c *Config) { c.Physics.SweepMin = 6000 }},
		{"sweep zero rate", func(c *Config) { c.Physics.SweepRate = 0 }},
		{"zero win score", func(c *Config) { c.Game.WinScore = 0 }},
		{"unknown color", func(c *Config) { c.Ball.Color = "mauve" }},
		{"unknown policy", func(c *Config) { c.Physics.ScorePolicy = "bounce" }},
		{"unknown key", func(c *Config) { c.Keys.Quit = []string{"Hyper-Q"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("LCD_PONG_AUDIO_ENABLED", "false")
	t.Setenv("LCD_PONG_WIN_SCORE", "9")
	t.Setenv("LCD_PONG_TICK_DIVIDER", "not-a-number")
	t.Setenv("LCD_PONG_SCORE_POLICY", "reverse")

	cfg := Default()
	ApplyEnv(&cfg)

	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 9, cfg.Game.WinScore)
	assert.Equal(t, 15, cfg.Timing.Divider, "unparseable values are ignored")
	assert.Equal(t, "reverse", cfg.Physics.ScorePolicy)
}
