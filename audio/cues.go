// Package audio plays short sound cues for session events.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/blockfall/tetris"
)

const sampleRate = beep.SampleRate(44100)

// Cue frequencies. Line clears climb a major arpeggio, one note per line.
var (
	lockFreq     = 196.0
	clearFreqs   = [tetris.MaxLinesPerLock]float64{523.25, 659.25, 783.99, 1046.5}
	gameOverFreq = []float64{392, 311.13, 261.63, 196}
)

// Cues turns session events into sounds. It implements tetris.Listener and
// is safe to call from the goroutine driving the session.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewCues creates a silent cue player. Call Init to open the audio device.
func NewCues() *Cues {
	return &Cues{
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer.
func (c *Cues) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Close silences everything still playing.
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

func (c *Cues) OnEvent(e tetris.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	if s := cueFor(e); s != nil {
		speaker.Lock()
		c.mixer.Add(s)
		speaker.Unlock()
	}
}

// cueFor builds the sound for an event, or nil for events without one.
func cueFor(e tetris.Event) beep.Streamer {
	switch e.Kind {
	case tetris.EventLocked:
		if e.Lines == 0 {
			return NewTone(sampleRate, lockFreq, 0.2, 40*time.Millisecond)
		}
		notes := make([]beep.Streamer, 0, e.Lines)
		for _, f := range clearFreqs[:min(e.Lines, len(clearFreqs))] {
			notes = append(notes, NewTone(sampleRate, f, 0.25, 70*time.Millisecond))
		}
		return beep.Seq(notes...)
	case tetris.EventGameOver:
		notes := make([]beep.Streamer, 0, len(gameOverFreq))
		for _, f := range gameOverFreq {
			notes = append(notes, NewTone(sampleRate, f, 0.3, 180*time.Millisecond))
		}
		return beep.Seq(notes...)
	}
	return nil
}
