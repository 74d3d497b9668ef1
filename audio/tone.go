package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Tone is a finite sine wave with a short linear attack and a linear decay to
// silence, so consecutive tones do not click.
type Tone struct {
	freq   float64
	volume float64
	sr     beep.SampleRate
	pos    int
	total  int
	attack int
}

// NewTone creates a tone of the given frequency, volume in [0, 1] and length.
func NewTone(sr beep.SampleRate, freq, volume float64, d time.Duration) *Tone {
	total := sr.N(d)
	return &Tone{
		freq:   freq,
		volume: volume,
		sr:     sr,
		total:  total,
		attack: min(sr.N(5*time.Millisecond), total/2),
	}
}

func (t *Tone) envelope() float64 {
	if t.attack > 0 && t.pos < t.attack {
		return float64(t.pos) / float64(t.attack)
	}
	remaining := t.total - t.pos
	decay := t.total - t.attack
	if decay <= 0 {
		return 1
	}
	return float64(remaining) / float64(decay)
}

func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		s := float64(t.pos) / float64(t.sr)
		v := t.volume * t.envelope() * math.Sin(2*math.Pi*t.freq*s)
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

func (t *Tone) Err() error {
	return nil
}

// Len returns the tone length in samples.
func (t *Tone) Len() int { return t.total }
