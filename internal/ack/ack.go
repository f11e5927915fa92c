// Package ack delivers form acknowledgements to the desktop user.
package ack

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/particle-backdrop/internal/page"
)

// Dialog shows the message in a blocking info dialog.
type Dialog struct {
	Title string
}

func (d Dialog) Notify(message string) error {
	return zenity.Info(message, zenity.Title(d.Title), zenity.InfoIcon)
}

const (
	chimeSampleRate = beep.SampleRate(44100)
	chimeFrequency  = 880.0
	chimeDuration   = 180 * time.Millisecond
	chimeVolume     = 0.25
)

// Output is an audio sink such as the beep speaker.
type Output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
}

// Chime plays a short decaying tone. The output is initialised on first use.
type Chime struct {
	out     Output
	once    sync.Once
	initErr error
}

func NewChime(out Output) *Chime {
	return &Chime{out: out}
}

func (c *Chime) Notify(string) error {
	c.once.Do(func() {
		c.initErr = c.out.Init(chimeSampleRate, chimeSampleRate.N(time.Second/20))
	})
	if c.initErr != nil {
		return c.initErr
	}
	c.out.Play(tone(chimeSampleRate, chimeFrequency, chimeSampleRate.N(chimeDuration)))
	return nil
}

// tone generates length samples of a sine wave fading linearly to silence.
func tone(sr beep.SampleRate, freq float64, length int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= length {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= length {
				break
			}
			env := 1 - float64(pos)/float64(length)
			v := math.Sin(2*math.Pi*freq*float64(pos)/float64(sr)) * chimeVolume * env
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}

type chain []page.Notifier

// Chain runs every notifier in order and joins their errors.
func Chain(ns ...page.Notifier) page.Notifier {
	return chain(ns)
}

func (c chain) Notify(message string) error {
	var errs []error
	for _, n := range c {
		if err := n.Notify(message); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
