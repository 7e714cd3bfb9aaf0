package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Tone is a finite mono sine streamer with a linear attack/release
// envelope, used for short feedback cues.
type Tone struct {
	sr      beep.SampleRate
	freq    float64
	gain    float64
	total   int
	attack  int
	release int
	pos     int
}

// NewTone creates a tone of the given frequency and duration
func NewTone(sr beep.SampleRate, freq float64, dur time.Duration, gain float64) *Tone {
	total := sr.N(dur)
	edge := sr.N(5 * time.Millisecond)
	if 2*edge > total {
		edge = total / 2
	}
	return &Tone{
		sr:      sr,
		freq:    freq,
		gain:    gain,
		total:   total,
		attack:  edge,
		release: edge,
	}
}

func (t *Tone) envelope() float64 {
	if t.attack > 0 && t.pos < t.attack {
		return float64(t.pos) / float64(t.attack)
	}
	if t.release > 0 && t.pos >= t.total-t.release {
		return float64(t.total-t.pos) / float64(t.release)
	}
	return 1.0
}

// Stream fills samples with the next chunk of the tone
func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return n, true
		}
		v := math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(t.sr)) * t.gain * t.envelope()
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

// Err always returns nil; tone synthesis cannot fail
func (t *Tone) Err() error {
	return nil
}
