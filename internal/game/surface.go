package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenSurface paints onto the ebiten screen image handed to Draw
type screenSurface struct {
	target        *ebiten.Image
	width, height float64
	background    color.Color
}

func (s *screenSurface) Dimensions() (float64, float64) {
	return s.width, s.height
}

func (s *screenSurface) Clear() {
	s.target.Fill(s.background)
}

func (s *screenSurface) DrawCircle(x, y, radius float64, clr color.Color) {
	vector.DrawFilledCircle(s.target, float32(x), float32(y), float32(radius), clr, true)
}

func (s *screenSurface) DrawLine(x1, y1, x2, y2 float64, clr color.Color, width float64) {
	vector.StrokeLine(s.target, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), clr, true)
}
