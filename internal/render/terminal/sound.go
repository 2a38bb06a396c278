package terminal

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	clickRate = beep.SampleRate(44100)
	clickFreq = 880
)

// Clicker plays a short tone on every single step. A nil Clicker is silent.
type Clicker struct {
	sampleRate beep.SampleRate
	duration   time.Duration
}

// NewClicker initializes the speaker.
func NewClicker() (*Clicker, error) {
	if err := speaker.Init(clickRate, clickRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	return &Clicker{sampleRate: clickRate, duration: 40 * time.Millisecond}, nil
}

// Click plays the step tone.
func (c *Clicker) Click() {
	if c == nil {
		return
	}

	sine, err := generators.SineTone(c.sampleRate, clickFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(c.sampleRate.N(c.duration), sine))
}

// Close shuts the speaker down.
func (c *Clicker) Close() {
	if c == nil {
		return
	}
	speaker.Close()
}
