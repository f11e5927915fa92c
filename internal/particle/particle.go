// Package particle implements the bouncing particle field drawn behind the page.
package particle

import "image/color"

// Rand is a uniform source over [0, 1). *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Canvas is the drawable surface particles are rendered into.
type Canvas interface {
	Fill(c color.Color)
	FillCircle(x, y, r float64, c color.Color)
}

// Particle is a moving circle. Radius does not change after creation.
type Particle struct {
	X, Y   float64
	Radius float64
	DX, DY float64
	Color  color.RGBA
}

// Draw paints the particle as a filled circle.
func (p *Particle) Draw(c Canvas) {
	c.FillCircle(p.X, p.Y, p.Radius, p.Color)
}

// Surface mirrors the viewport dimensions.
type Surface struct {
	Width  int
	Height int
}

// Resize sets the surface dimensions. Particles are not repositioned, so some
// may sit outside the new bounds until their next bounce.
func (s *Surface) Resize(w, h int) {
	s.Width = w
	s.Height = h
}

const (
	minRadius   = 1.0
	radiusRange = 3.0
	maxSpeed    = 1.0
)

// Field owns the particle collection.
type Field struct {
	surface   *Surface
	rng       Rand
	color     color.RGBA
	particles []Particle
}

func NewField(surface *Surface, rng Rand, clr color.RGBA) *Field {
	return &Field{
		surface: surface,
		rng:     rng,
		color:   clr,
	}
}

// Seed replaces every particle with count new ones placed fully inside the
// surface. A radius of half a dimension or more yields a negative sampling
// range and is not guarded against.
func (f *Field) Seed(count int) {
	if count < 0 {
		count = 0
	}
	w := float64(f.surface.Width)
	h := float64(f.surface.Height)

	next := make([]Particle, count)
	for i := range next {
		r := f.rng.Float64()*radiusRange + minRadius
		next[i] = Particle{
			X:      f.rng.Float64()*(w-r*2) + r,
			Y:      f.rng.Float64()*(h-r*2) + r,
			Radius: r,
			DX:     (f.rng.Float64() - 0.5) * 2 * maxSpeed,
			DY:     (f.rng.Float64() - 0.5) * 2 * maxSpeed,
			Color:  f.color,
		}
	}
	f.particles = next
}

// Advance moves p by its velocity. On an axis where the circle edge would
// leave the surface the velocity component is negated and the move for this
// frame uses the negated value.
func (f *Field) Advance(p *Particle) {
	p.X, p.DX = step(p.X, p.DX, p.Radius, float64(f.surface.Width))
	p.Y, p.DY = step(p.Y, p.DY, p.Radius, float64(f.surface.Height))
}

func step(pos, vel, r, size float64) (float64, float64) {
	next := pos + vel
	if next+r > size || next-r < 0 {
		vel = -vel
		next = pos + vel
	}
	return next, vel
}

func (f *Field) Len() int { return len(f.particles) }

// At returns the i-th particle for in-place inspection or mutation.
func (f *Field) At(i int) *Particle { return &f.particles[i] }

// Each calls fn for every particle in seeding order.
func (f *Field) Each(fn func(p *Particle)) {
	for i := range f.particles {
		fn(&f.particles[i])
	}
}
