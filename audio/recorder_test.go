package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/gopxl/beep"
)

func TestRecorderWritesWav(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	b := NewBuzzer(beep.SampleRate(8000), 2_000_000)
	b.SetPeriod(2000)

	rec := NewRecorder(f, b, 8000)
	if err := rec.Capture(800); err != nil {
		t.Fatalf("Capture: %v", err)
	}
	b.SetPeriod(0)
	if err := rec.Capture(800); err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	f.Close()

	if rec.Samples() != 1600 {
		t.Errorf("Samples = %d, want 1600", rec.Samples())
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer in.Close()

	dec := wav.NewDecoder(in)
	if !dec.IsValidFile() {
		t.Fatal("output is not a valid WAV file")
	}
	if dec.SampleRate != 8000 || dec.NumChans != 1 || dec.BitDepth != 16 {
		t.Errorf("header = %d Hz %d ch %d bit", dec.SampleRate, dec.NumChans, dec.BitDepth)
	}
}

func TestRecorderEmptyClose(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "empty.wav"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	rec := NewRecorder(f, NewBuzzer(beep.SampleRate(8000), 2_000_000), 8000)
	if err := rec.Close(); !errors.Is(err, ErrNoSamples) {
		t.Errorf("Close on empty recorder = %v, want ErrNoSamples", err)
	}
}
