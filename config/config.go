// Package config holds the game layout and tuning, loaded from TOML over
// built-in defaults and overridden from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/lcd-pong/audio"
	"github.com/lixenwraith/lcd-pong/core"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full game configuration
type Config struct {
	Screen  ScreenConfig  `toml:"screen"`
	Field   FieldConfig   `toml:"field"`
	Ball    BallConfig    `toml:"ball"`
	Paddle  PaddleConfig  `toml:"paddle"`
	Zone    ZoneConfig    `toml:"zone"`
	Physics PhysicsConfig `toml:"physics"`
	Timing  TimingConfig  `toml:"timing"`
	Game    GameConfig    `toml:"game"`
	Keys    KeysConfig    `toml:"keys"`
	Audio   audio.Config  `toml:"audio"`
}

// ScreenConfig is the pixel display
type ScreenConfig struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
	TextColor  string `toml:"text_color"`
}

// FieldConfig is the outline centered on screen, its bounds form the fence
type FieldConfig struct {
	HalfSize core.Vec2 `toml:"half_size"`
	Color    string    `toml:"color"`
}

// BallConfig places the ball relative to the screen center
type BallConfig struct {
	Radius   int       `toml:"radius"`
	Offset   core.Vec2 `toml:"offset"`
	Velocity core.Vec2 `toml:"velocity"`
	Color    string    `toml:"color"`
}

// PaddleConfig places both paddles Inset pixels from the side edges
type PaddleConfig struct {
	HalfSize         core.Vec2 `toml:"half_size"`
	Inset            int       `toml:"inset"`
	PlayerColor      string    `toml:"player_color"`
	OpponentColor    string    `toml:"opponent_color"`
	OpponentVelocity core.Vec2 `toml:"opponent_velocity"`
}

// ZoneConfig places the score zones by their distance from each side edge
type ZoneConfig struct {
	HalfSize   core.Vec2 `toml:"half_size"`
	LeftInset  int       `toml:"left_inset"`
	RightInset int       `toml:"right_inset"`
	Color      string    `toml:"color"`
}

// PhysicsConfig tunes cues and control
type PhysicsConfig struct {
	WallPeriod      int       `toml:"wall_period"`
	PaddlePeriod    int       `toml:"paddle_period"`
	SweepMin        int       `toml:"sweep_min"`
	SweepMax        int       `toml:"sweep_max"`
	SweepRate       int       `toml:"sweep_rate"`
	ControlIndex    int       `toml:"control_index"`
	ControlVelocity int       `toml:"control_velocity"`
	ScorePolicy     string    `toml:"score_policy"`
	ServeVelocity   core.Vec2 `toml:"serve_velocity"`
}

// TimingConfig drives the tick scheduler and input hold emulation
type TimingConfig struct {
	BaseHz      int           `toml:"base_hz"`
	Divider     int           `toml:"divider"`
	Hold        time.Duration `toml:"hold"`
	WelcomeHold time.Duration `toml:"welcome_hold"`
}

// GameConfig sets the end condition
type GameConfig struct {
	WinScore int `toml:"win_score"`
}

// KeysConfig binds key names to the up and down buttons and to quit
type KeysConfig struct {
	Up   []string `toml:"up"`
	Down []string `toml:"down"`
	Quit []string `toml:"quit"`
}

// Default returns the 128x160 handheld layout
func Default() Config {
	return Config{
		Screen: ScreenConfig{Width: 128, Height: 160, Background: "blue", TextColor: "white"},
		Field: FieldConfig{
			HalfSize: core.Vec2{X: 128/2 - 5, Y: 160/2 - 10},
			Color:    "orange",
		},
		Ball: BallConfig{
			Radius:   5,
			Offset:   core.Vec2{X: 10, Y: 5},
			Velocity: core.Vec2{X: 1, Y: 0},
			Color:    "white",
		},
		Paddle: PaddleConfig{
			HalfSize:      core.Vec2{X: 2, Y: 12},
			Inset:         15,
			PlayerColor:   "purple",
			OpponentColor: "red",
		},
		Zone: ZoneConfig{
			HalfSize:   core.Vec2{X: 1, Y: 128 - 10},
			LeftInset:  6,
			RightInset: 5,
			Color:      "green",
		},
		Physics: PhysicsConfig{
			WallPeriod:      2000,
			PaddlePeriod:    750,
			SweepMin:        1000,
			SweepMax:        5000,
			SweepRate:       200,
			ControlIndex:    -1,
			ControlVelocity: -2,
			ScorePolicy:     "keep",
			ServeVelocity:   core.Vec2{X: 1, Y: 1},
		},
		Timing: TimingConfig{
			BaseHz:      225,
			Divider:     15,
			Hold:        250 * time.Millisecond,
			WelcomeHold: time.Second,
		},
		Game: GameConfig{WinScore: 5},
		Keys: KeysConfig{
			Up:   []string{"w", "Up"},
			Down: []string{"s", "Down"},
			Quit: []string{"q", "Esc", "Ctrl-C"},
		},
		Audio: audio.DefaultConfig(),
	}
}

// Load decodes path over the defaults, an empty path returns the defaults
// Unknown keys are rejected
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("load config %s: unknown keys %s: %w", path, strings.Join(keys, ", "), ErrInvalidConfig)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from LCD_PONG_* environment variables
// Unparseable values are ignored
func ApplyEnv(cfg *Config) {
	audio.ApplyEnv(&cfg.Audio)

	if win := os.Getenv("LCD_PONG_WIN_SCORE"); win != "" {
		if val, err := strconv.Atoi(win); err == nil {
			cfg.Game.WinScore = val
		}
	}

	if div := os.Getenv("LCD_PONG_TICK_DIVIDER"); div != "" {
		if val, err := strconv.Atoi(div); err == nil {
			cfg.Timing.Divider = val
		}
	}

	if policy := os.Getenv("LCD_PONG_SCORE_POLICY"); policy != "" {
		cfg.Physics.ScorePolicy = policy
	}
}
