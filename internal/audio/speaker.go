// Package audio routes streamers to the system speaker.
package audio

import (
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Speaker plays through the process-wide beep speaker.
type Speaker struct{}

func (Speaker) Init(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}

func (Speaker) Play(s ...beep.Streamer) {
	speaker.Play(s...)
}
