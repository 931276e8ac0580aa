package snapshot

import (
	"fmt"
	"image"
	"io"
	"path/filepath"

	"git.sr.ht/~sbinet/gg"
	"github.com/phanxgames/thicket"
	"golang.org/x/image/font/basicfont"
)

// Image is a raster surface backed by a gg context.
type Image struct {
	dc *gg.Context
}

// NewImage creates a transparent raster surface.
func NewImage(width, height int) *Image {
	dc := gg.NewContext(width, height)
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetLineWidth(1)
	return &Image{dc: dc}
}

// Clear fills the whole image with c.
func (m *Image) Clear(c thicket.Color) {
	m.dc.SetRGBA(c.R, c.G, c.B, c.A)
	m.dc.Clear()
}

// FillRect implements thicket.Surface.
func (m *Image) FillRect(r thicket.Box, c thicket.Color, alpha float64) {
	m.dc.SetRGBA(c.R, c.G, c.B, c.A*alpha)
	m.dc.DrawRectangle(r.X1(), r.Y1(), r.Width, r.Height)
	m.dc.Fill()
}

// StrokeRect implements thicket.Surface. The outline is centered on
// half-pixel coordinates so a one-pixel line stays crisp.
func (m *Image) StrokeRect(r thicket.Box, c thicket.Color, alpha float64) {
	m.dc.SetRGBA(c.R, c.G, c.B, c.A*alpha)
	m.dc.DrawRectangle(r.X1()+0.5, r.Y1()+0.5, max(0, r.Width-1), max(0, r.Height-1))
	m.dc.Stroke()
}

// DrawText implements thicket.Surface. (x, y) is the top-left of the text.
func (m *Image) DrawText(text string, x, y float64, c thicket.Color) {
	if text == "" {
		return
	}
	m.dc.SetRGBA(c.R, c.G, c.B, c.A)
	m.dc.DrawStringAnchored(text, x, y, 0, 1)
}

// Image returns the rendered pixels.
func (m *Image) Image() image.Image {
	return m.dc.Image()
}

// EncodePNG writes the image as PNG.
func (m *Image) EncodePNG(w io.Writer) error {
	if err := m.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// SavePNG writes the image to path as PNG.
func (m *Image) SavePNG(path string) error {
	if err := m.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return nil
}

var _ thicket.Surface = (*Image)(nil)

// RecordPNG sets ov.OnSnapshot so that every scripted snapshot step renders
// the overlay to dir/<label>.png. Failures are passed to onErr when non-nil.
func RecordPNG(ov *thicket.Overlay, dir string, width, height int, onErr func(error)) {
	n := 0
	ov.OnSnapshot = func(label string) {
		n++
		if label == "" {
			label = fmt.Sprintf("snapshot-%03d", n)
		}
		img := NewImage(width, height)
		ov.Render(img)
		if err := img.SavePNG(filepath.Join(dir, label+".png")); err != nil && onErr != nil {
			onErr(err)
		}
	}
}
