package audio

import "errors"

// Tone drives a single square-wave generator by half-period in timer ticks
// A period of 0 silences the tone
type Tone interface {
	SetPeriod(halfPeriod int)
}

// Silent is a Tone that discards every period
type Silent struct{}

func (Silent) SetPeriod(int) {}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio output not initialized")
	ErrNoSamples      = errors.New("recorder captured no samples")
)
