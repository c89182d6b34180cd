package audio

import (
	"sync/atomic"

	"github.com/gopxl/beep"
)

// Buzzer is a square-wave beep.Streamer whose pitch is set as a timer
// half-period, mirroring a PWM buzzer on a compare register
type Buzzer struct {
	clockHz    float64
	sampleRate float64

	period atomic.Int64
	phase  float64 // streamer goroutine only
}

// NewBuzzer creates a silent buzzer
func NewBuzzer(sampleRate beep.SampleRate, clockHz int) *Buzzer {
	return &Buzzer{
		clockHz:    float64(clockHz),
		sampleRate: float64(sampleRate),
	}
}

// SetPeriod sets the half-period in clock ticks, 0 silences
func (b *Buzzer) SetPeriod(halfPeriod int) {
	if halfPeriod < 0 {
		halfPeriod = 0
	}
	b.period.Store(int64(halfPeriod))
}

// Period returns the current half-period
func (b *Buzzer) Period() int {
	return int(b.period.Load())
}

// Frequency returns the tone frequency in Hz, 0 when silent
func (b *Buzzer) Frequency() float64 {
	p := b.period.Load()
	if p <= 0 {
		return 0
	}
	return b.clockHz / float64(2*p)
}

// Stream never ends, silence is a run of zero samples
func (b *Buzzer) Stream(samples [][2]float64) (n int, ok bool) {
	freq := b.Frequency()
	if freq == 0 {
		for i := range samples {
			samples[i] = [2]float64{}
		}
		b.phase = 0
		return len(samples), true
	}

	inc := freq / b.sampleRate
	for i := range samples {
		val := 1.0
		if b.phase >= 0.5 {
			val = -1.0
		}
		samples[i][0] = val
		samples[i][1] = val

		b.phase += inc
		if b.phase >= 1.0 {
			b.phase -= float64(int(b.phase))
		}
	}
	return len(samples), true
}

func (b *Buzzer) Err() error { return nil }
