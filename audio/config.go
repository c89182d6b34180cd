package audio

import (
	"os"
	"strconv"
)

// Config controls tone output
type Config struct {
	Enabled bool `toml:"enabled"`
	// Volume is linear gain 0.0-1.0
	Volume     float64 `toml:"volume"`
	SampleRate int     `toml:"sample_rate"`
	// ClockHz is the timer clock the half-period is counted in
	ClockHz int `toml:"clock_hz"`
}

// DefaultConfig returns audible defaults for a 2 MHz tone timer
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     0.25,
		SampleRate: 44100,
		ClockHz:    2_000_000,
	}
}

// ApplyEnv overrides fields from LCD_PONG_AUDIO_* environment variables
func ApplyEnv(cfg *Config) {
	if enabled := os.Getenv("LCD_PONG_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Volume given as 0-100
	if volume := os.Getenv("LCD_PONG_AUDIO_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = clampVolume(float64(val) / 100.0)
		}
	}

	if sampleRate := os.Getenv("LCD_PONG_AUDIO_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
