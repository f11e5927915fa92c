// Package animation drives one particle render pass per display refresh.
package animation

import (
	"errors"
	"image/color"
	"log/slog"

	"github.com/iburimskiy/particle-backdrop/internal/particle"
)

var (
	ErrNotRunning     = errors.New("animation not started")
	ErrAlreadyRunning = errors.New("animation already running")
)

// Scheduler asks the host for another frame callback. The host invokes
// Driver.OnTick at its own cadence once a frame has been requested.
type Scheduler interface {
	RequestFrame()
}

// FrameRequest is a Scheduler for hosts that call back every display
// refresh anyway: a request becomes a flag the host consumes with Take.
type FrameRequest struct {
	pending bool
}

func (r *FrameRequest) RequestFrame() { r.pending = true }

// Take reports whether a frame was requested and clears the request.
func (r *FrameRequest) Take() bool {
	p := r.pending
	r.pending = false
	return p
}

// FieldState is everything the animation mutates.
type FieldState struct {
	Surface particle.Surface
	Field   *particle.Field
}

// Driver owns the field state and runs it once started. There is no stop;
// the loop lives as long as the host keeps delivering frames.
type Driver struct {
	state      *FieldState
	sched      Scheduler
	background color.RGBA
	count      int
	log        *slog.Logger

	running bool
	frames  uint64
}

// NewDriver creates a driver that seeds count particles of particleColor
// drawn from rng.
func NewDriver(sched Scheduler, rng particle.Rand, count int, background, particleColor color.RGBA, log *slog.Logger) *Driver {
	if log == nil {
		log = slog.Default()
	}
	st := &FieldState{}
	st.Field = particle.NewField(&st.Surface, rng, particleColor)
	return &Driver{
		state:      st,
		sched:      sched,
		background: background,
		count:      count,
		log:        log,
	}
}

// Start sizes the surface, seeds the field and requests the first frame.
func (d *Driver) Start(w, h int) error {
	if d.running {
		return ErrAlreadyRunning
	}
	d.state.Surface.Resize(w, h)
	d.state.Field.Seed(d.count)
	d.running = true
	d.sched.RequestFrame()
	d.log.Info("animation started", "width", w, "height", h, "particles", d.count)
	return nil
}

// OnResize keeps the surface in step with the viewport.
func (d *Driver) OnResize(w, h int) {
	s := &d.state.Surface
	if s.Width == w && s.Height == h {
		return
	}
	d.log.Debug("surface resized", "from_width", s.Width, "from_height", s.Height, "width", w, "height", h)
	s.Resize(w, h)
}

// OnTick schedules the next frame, clears the canvas and advances then draws
// every particle.
func (d *Driver) OnTick(c particle.Canvas) error {
	if !d.running {
		return ErrNotRunning
	}
	d.sched.RequestFrame()
	c.Fill(d.background)
	d.state.Field.Each(func(p *particle.Particle) {
		d.state.Field.Advance(p)
		p.Draw(c)
	})
	d.frames++
	return nil
}

// Reseed replaces the whole particle collection using the current surface.
func (d *Driver) Reseed() {
	d.state.Field.Seed(d.count)
	d.log.Info("particles reseeded", "particles", d.count,
		"width", d.state.Surface.Width, "height", d.state.Surface.Height)
}

func (d *Driver) Running() bool { return d.running }

// Frames reports how many ticks have been rendered.
func (d *Driver) Frames() uint64 { return d.frames }

func (d *Driver) State() *FieldState { return d.state }
