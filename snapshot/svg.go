package snapshot

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/phanxgames/thicket"
)

// textAscent is the ascent of the 7x13 face the raster surface uses; SVG
// text is positioned by baseline.
const textAscent = 11

// SVG is a vector surface writing to an io.Writer. Call Close to finish the
// document.
type SVG struct {
	canvas *svg.SVG
	closed bool
}

// NewSVG starts an SVG document of the given size on w.
func NewSVG(w io.Writer, width, height int) *SVG {
	c := svg.New(w)
	c.Start(width, height)
	return &SVG{canvas: c}
}

// FillRect implements thicket.Surface.
func (s *SVG) FillRect(r thicket.Box, c thicket.Color, alpha float64) {
	x, y, w, h := round(r)
	s.canvas.Rect(x, y, w, h, fmt.Sprintf("fill:%s;fill-opacity:%.3f", rgb(c), c.A*alpha))
}

// StrokeRect implements thicket.Surface.
func (s *SVG) StrokeRect(r thicket.Box, c thicket.Color, alpha float64) {
	x, y, w, h := round(r)
	s.canvas.Rect(x, y, w, h, fmt.Sprintf("fill:none;stroke:%s;stroke-opacity:%.3f;stroke-width:1", rgb(c), c.A*alpha))
}

// DrawText implements thicket.Surface.
func (s *SVG) DrawText(text string, x, y float64, c thicket.Color) {
	if text == "" {
		return
	}
	s.canvas.Text(int(math.Round(x)), int(math.Round(y))+textAscent, text,
		fmt.Sprintf("font-family:monospace;font-size:11px;fill:%s", rgb(c)))
}

// Close ends the document. Further drawing is invalid.
func (s *SVG) Close() {
	if s.closed {
		return
	}
	s.canvas.End()
	s.closed = true
}

func round(r thicket.Box) (x, y, w, h int) {
	return int(math.Round(r.X1())), int(math.Round(r.Y1())), int(math.Round(r.Width)), int(math.Round(r.Height))
}

// rgb formats c without its alpha channel.
func rgb(c thicket.Color) string {
	return c.Hex()[:7]
}

var _ thicket.Surface = (*SVG)(nil)
