package ack

import (
	"errors"
	"math"
	"testing"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotifier struct {
	got []string
	err error
}

func (s *stubNotifier) Notify(message string) error {
	s.got = append(s.got, message)
	return s.err
}

func TestChain_RunsAllAndJoinsErrors(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	first := &stubNotifier{err: errA}
	second := &stubNotifier{}
	third := &stubNotifier{err: errB}

	err := Chain(first, second, third).Notify("hola")

	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	for _, n := range []*stubNotifier{first, second, third} {
		assert.Equal(t, []string{"hola"}, n.got)
	}
}

func TestChain_Empty(t *testing.T) {
	assert.NoError(t, Chain().Notify("hola"))
}

func TestTone_LengthAndEnvelope(t *testing.T) {
	s := tone(beep.SampleRate(8000), 440, 1000)

	var all [][2]float64
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		if !ok {
			break
		}
		all = append(all, buf[:n]...)
	}

	require.Len(t, all, 1000)
	assert.Equal(t, 0.0, all[0][0])
	for i, smp := range all {
		assert.Equal(t, smp[0], smp[1])
		limit := chimeVolume*(1-float64(i)/1000) + 1e-12
		assert.LessOrEqual(t, math.Abs(smp[0]), limit)
	}

	n, ok := s.Stream(buf)
	assert.Zero(t, n)
	assert.False(t, ok)
}

type fakeOutput struct {
	inits   int
	initErr error
	played  int
}

func (o *fakeOutput) Init(sr beep.SampleRate, bufferSize int) error {
	o.inits++
	return o.initErr
}

func (o *fakeOutput) Play(s ...beep.Streamer) { o.played += len(s) }

func TestChime_InitOnce(t *testing.T) {
	out := &fakeOutput{}
	c := NewChime(out)

	require.NoError(t, c.Notify("uno"))
	require.NoError(t, c.Notify("dos"))

	assert.Equal(t, 1, out.inits)
	assert.Equal(t, 2, out.played)
}

func TestChime_InitFailure(t *testing.T) {
	boom := errors.New("no audio device")
	out := &fakeOutput{initErr: boom}
	c := NewChime(out)

	assert.ErrorIs(t, c.Notify("uno"), boom)
	assert.ErrorIs(t, c.Notify("dos"), boom)
	assert.Equal(t, 1, out.inits)
	assert.Zero(t, out.played)
}
