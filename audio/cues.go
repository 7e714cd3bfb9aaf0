package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Cues plays short synthesized tones as feedback for entity
// lifecycle events. Disabled until Init succeeds; every method is
// safe to call on an uninitialized instance.
type Cues struct {
	mu          sync.Mutex
	sr          beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

// NewCues creates a cue player at the given sample rate
func NewCues(sampleRate int) *Cues {
	return &Cues{
		sr:    beep.SampleRate(sampleRate),
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer
func (c *Cues) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(c.sr, c.sr.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Close shuts the speaker down
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Close()
	c.initialized = false
}

func (c *Cues) play(freq float64, dur time.Duration) {
	c.mu.Lock()
	initialized := c.initialized
	c.mu.Unlock()
	if !initialized {
		return
	}

	speaker.Lock()
	c.mixer.Add(NewTone(c.sr, freq, dur, 0.3))
	speaker.Unlock()
}

// Spawn cues entity creation
func (c *Cues) Spawn() {
	c.play(880, 40*time.Millisecond)
}

// Kill cues entity removal
func (c *Cues) Kill() {
	c.play(220, 60*time.Millisecond)
}
