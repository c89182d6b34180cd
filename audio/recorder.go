package audio

import (
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gopxl/beep"
)

const (
	recorderBitDepth = 16
	wavFormatPCM     = 1
)

// Recorder pulls samples from a streamer and encodes them as mono 16-bit WAV
// Used by headless runs where no speaker drives the stream
type Recorder struct {
	src     beep.Streamer
	enc     *wav.Encoder
	scratch [][2]float64
	buf     *goaudio.IntBuffer
	written int
}

// NewRecorder writes WAV data for src to w
func NewRecorder(w io.WriteSeeker, src beep.Streamer, sampleRate int) *Recorder {
	return &Recorder{
		src: src,
		enc: wav.NewEncoder(w, sampleRate, recorderBitDepth, 1, wavFormatPCM),
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
			SourceBitDepth: recorderBitDepth,
		},
	}
}

// Capture streams n samples from the source into the file
func (r *Recorder) Capture(n int) error {
	if n <= 0 {
		return nil
	}
	if cap(r.scratch) < n {
		r.scratch = make([][2]float64, n)
		r.buf.Data = make([]int, n)
	}
	r.scratch = r.scratch[:n]
	r.buf.Data = r.buf.Data[:n]

	got, _ := r.src.Stream(r.scratch)
	peak := float64(math.MaxInt16)
	for i := 0; i < got; i++ {
		r.buf.Data[i] = int(r.scratch[i][0] * peak)
	}
	r.buf.Data = r.buf.Data[:got]

	if err := r.enc.Write(r.buf); err != nil {
		return fmt.Errorf("wav write: %w", err)
	}
	r.written += got
	return nil
}

// Samples returns the number of samples written so far
func (r *Recorder) Samples() int {
	return r.written
}

// Close finalizes the WAV header
func (r *Recorder) Close() error {
	if err := r.enc.Close(); err != nil {
		return fmt.Errorf("wav close: %w", err)
	}
	if r.written == 0 {
		return ErrNoSamples
	}
	return nil
}
