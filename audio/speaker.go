package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// Output plays a Buzzer through the system speaker
type Output struct {
	mu          sync.Mutex
	cfg         Config
	buzzer      *Buzzer
	ctrl        *beep.Ctrl
	initialized bool
}

// NewOutput creates an output around a fresh buzzer
func NewOutput(cfg Config) *Output {
	return &Output{
		cfg:    cfg,
		buzzer: NewBuzzer(beep.SampleRate(cfg.SampleRate), cfg.ClockHz),
	}
}

// Buzzer returns the tone driven by the physics engine
func (o *Output) Buzzer() *Buzzer {
	return o.buzzer
}

// Initialize opens the speaker and starts streaming the buzzer
func (o *Output) Initialize() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.initialized {
		return nil
	}

	sr := beep.SampleRate(o.cfg.SampleRate)
	if err := speaker.Init(sr, sr.N(50*time.Millisecond)); err != nil {
		return err
	}

	o.ctrl = &beep.Ctrl{Streamer: newVolume(o.buzzer, o.cfg.Volume)}
	speaker.Play(o.ctrl)
	o.initialized = true
	return nil
}

// SetPeriod forwards to the buzzer, usable before Initialize
func (o *Output) SetPeriod(halfPeriod int) {
	o.buzzer.SetPeriod(halfPeriod)
}

// Cleanup silences and detaches the buzzer
func (o *Output) Cleanup() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.buzzer.SetPeriod(0)
	if !o.initialized {
		return
	}

	speaker.Lock()
	o.ctrl.Paused = true
	speaker.Unlock()
	speaker.Clear()
	o.initialized = false
}

// math.Log2(0) is -Inf, so 0 volume maps to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
