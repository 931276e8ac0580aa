package thicket

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// defaultFace is the bitmap face used for titles and symbols.
var defaultFace = text.NewGoXFace(basicfont.Face7x13)

// EbitenSurface draws onto an Ebitengine image. Target must be set before
// use; Overlay.Draw does this for you.
type EbitenSurface struct {
	Target *ebiten.Image
	// Face overrides the text face. Nil selects a 7x13 bitmap face.
	Face text.Face
}

// FillRect fills r with c scaled by alpha.
func (s *EbitenSurface) FillRect(r Box, c Color, alpha float64) {
	if s.Target == nil {
		return
	}
	vector.DrawFilledRect(s.Target,
		float32(r.X1()), float32(r.Y1()), float32(r.Width), float32(r.Height),
		c.WithAlpha(c.A*alpha).RGBA(), false)
}

// StrokeRect draws a one-pixel outline of r.
func (s *EbitenSurface) StrokeRect(r Box, c Color, alpha float64) {
	if s.Target == nil {
		return
	}
	vector.StrokeRect(s.Target,
		float32(r.X1()), float32(r.Y1()), float32(r.Width), float32(r.Height),
		1, c.WithAlpha(c.A*alpha).RGBA(), false)
}

// DrawText draws str with its top-left corner at (x, y).
func (s *EbitenSurface) DrawText(str string, x, y float64, c Color) {
	if s.Target == nil || str == "" {
		return
	}
	face := s.Face
	if face == nil {
		face = defaultFace
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.RGBA())
	text.Draw(s.Target, str, face, op)
}
