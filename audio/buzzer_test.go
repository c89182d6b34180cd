package audio

import (
	"testing"

	"github.com/gopxl/beep"
)

// TestBuzzerSilentByDefault verifies a fresh buzzer streams zeros
func TestBuzzerSilentByDefault(t *testing.T) {
	b := NewBuzzer(beep.SampleRate(44100), 2_000_000)

	samples := make([][2]float64, 64)
	n, ok := b.Stream(samples)
	if !ok || n != 64 {
		t.Fatalf("Stream = %d, %v", n, ok)
	}
	for i, s := range samples {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %d not silent: %v", i, s)
		}
	}
}

// TestBuzzerSquareWave verifies a set period produces a +-1 square wave at clock/(2*period)
func TestBuzzerSquareWave(t *testing.T) {
	b := NewBuzzer(beep.SampleRate(48000), 2_000_000)
	b.SetPeriod(2000)

	if f := b.Frequency(); f != 500 {
		t.Fatalf("Frequency = %f, want 500", f)
	}

	// 500 Hz at 48 kHz is 96 samples per cycle
	samples := make([][2]float64, 96)
	b.Stream(samples)

	highs := 0
	for i, s := range samples {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("sample %d = %f, want +-1", i, s[0])
		}
		if s[0] == 1 {
			highs++
		}
	}
	if highs < 46 || highs > 50 {
		t.Errorf("duty cycle off: %d high samples of 96", highs)
	}
}

func TestBuzzerZeroSilences(t *testing.T) {
	b := NewBuzzer(beep.SampleRate(44100), 2_000_000)
	b.SetPeriod(750)
	b.SetPeriod(0)

	if b.Frequency() != 0 || b.Period() != 0 {
		t.Errorf("period 0 should silence, got %d", b.Period())
	}

	b.SetPeriod(-5)
	if b.Period() != 0 {
		t.Errorf("negative period should clamp to 0, got %d", b.Period())
	}
}

// TestOutputGracefulDegradation verifies calls are safe without an initialized speaker
func TestOutputGracefulDegradation(t *testing.T) {
	o := NewOutput(DefaultConfig())

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("output panicked without initialization: %v", r)
		}
	}()

	o.SetPeriod(2000)
	if o.Buzzer().Period() != 2000 {
		t.Errorf("SetPeriod not forwarded")
	}
	o.Cleanup()
	if o.Buzzer().Period() != 0 {
		t.Errorf("Cleanup should silence the buzzer")
	}
}
