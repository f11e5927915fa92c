package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenCanvas draws particles onto the ebiten screen.
type screenCanvas struct {
	img *ebiten.Image
}

func (c screenCanvas) Fill(clr color.Color) {
	c.img.Fill(clr)
}

func (c screenCanvas) FillCircle(x, y, r float64, clr color.Color) {
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(r), clr, true)
}
