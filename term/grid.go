// Package term hosts a thicket overlay in a terminal. [Grid] is a character
// surface rendered with lipgloss; [Model] is a bubbletea model that feeds
// terminal mouse events into the overlay.
package term

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/phanxgames/thicket"
)

// Default cell size in overlay units. A row matches the scroll row pitch.
const (
	DefaultCellWidth  = 6
	DefaultCellHeight = 12
)

type cell struct {
	ch        rune
	fg, bg    thicket.Color
	hasBg     bool
	underline bool
}

// Grid is a fixed-size character surface. Each cell covers CellWidth by
// CellHeight overlay units.
type Grid struct {
	CellWidth, CellHeight float64

	cols, rows int
	cells      []cell
}

// NewGrid creates a cols by rows grid with the default cell size.
func NewGrid(cols, rows int) *Grid {
	g := &Grid{CellWidth: DefaultCellWidth, CellHeight: DefaultCellHeight}
	g.Resize(cols, rows)
	return g
}

// Size returns the grid dimensions in cells.
func (g *Grid) Size() (cols, rows int) { return g.cols, g.rows }

// Resize changes the dimensions and clears the grid.
func (g *Grid) Resize(cols, rows int) {
	g.cols, g.rows = max(0, cols), max(0, rows)
	g.cells = make([]cell, g.cols*g.rows)
	g.Clear()
}

// Clear blanks every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = cell{ch: ' '}
	}
}

// CellCenter returns the overlay point at the middle of cell (col, row).
func (g *Grid) CellCenter(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * g.CellWidth, (float64(row) + 0.5) * g.CellHeight
}

func (g *Grid) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return nil
	}
	return &g.cells[row*g.cols+col]
}

// span returns the cell range whose centers fall inside [lo, hi).
func span(lo, hi, size float64) (first, last int) {
	first = int(math.Ceil(lo/size - 0.5))
	last = int(math.Ceil(hi/size-0.5)) - 1
	return first, last
}

// FillRect implements thicket.Surface. Translucent fills blend over the
// existing cell background.
func (g *Grid) FillRect(r thicket.Box, c thicket.Color, alpha float64) {
	c0, c1 := span(r.X1(), r.X2(), g.CellWidth)
	r0, r1 := span(r.Y1(), r.Y2(), g.CellHeight)
	a := clamp01(c.A * alpha)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cl := g.at(col, row)
			if cl == nil {
				continue
			}
			base := thicket.ColorBlack
			if cl.hasBg {
				base = cl.bg
			}
			cl.bg = blend(base, c, a)
			cl.hasBg = true
		}
	}
}

// StrokeRect implements thicket.Surface. A cell is too coarse for a
// one-unit outline, so the bottom row of the box is underlined instead.
func (g *Grid) StrokeRect(r thicket.Box, c thicket.Color, alpha float64) {
	c0, c1 := span(r.X1(), r.X2(), g.CellWidth)
	_, r1 := span(r.Y1(), r.Y2(), g.CellHeight)
	for col := c0; col <= c1; col++ {
		if cl := g.at(col, r1); cl != nil {
			cl.underline = true
		}
	}
}

// DrawText implements thicket.Surface. Text starts in the cell containing
// (x, y + CellHeight/2) and is clipped at the grid edge.
func (g *Grid) DrawText(text string, x, y float64, c thicket.Color) {
	col := int(math.Floor(x / g.CellWidth))
	row := int(math.Floor((y + g.CellHeight/2) / g.CellHeight))
	for _, ch := range text {
		if cl := g.at(col, row); cl != nil {
			cl.ch = ch
			cl.fg = c
		}
		col++
	}
}

// Plain returns the characters of the grid without styling, one line per
// row with trailing spaces trimmed.
func (g *Grid) Plain() string {
	var b strings.Builder
	for row := 0; row < g.rows; row++ {
		line := make([]rune, g.cols)
		for col := 0; col < g.cols; col++ {
			line[col] = g.cells[row*g.cols+col].ch
		}
		b.WriteString(strings.TrimRight(string(line), " "))
		if row < g.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// String renders the grid with lipgloss styles, grouping runs of cells that
// share a style.
func (g *Grid) String() string {
	lines := make([]string, g.rows)
	for row := 0; row < g.rows; row++ {
		var b strings.Builder
		var run []rune
		var runStyle cell
		flush := func() {
			if len(run) == 0 {
				return
			}
			b.WriteString(styleFor(runStyle).Render(string(run)))
			run = run[:0]
		}
		for col := 0; col < g.cols; col++ {
			cl := g.cells[row*g.cols+col]
			if len(run) > 0 && !sameStyle(cl, runStyle) {
				flush()
			}
			runStyle = cl
			run = append(run, cl.ch)
		}
		flush()
		lines[row] = b.String()
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func sameStyle(a, b cell) bool {
	return a.fg == b.fg && a.bg == b.bg && a.hasBg == b.hasBg && a.underline == b.underline
}

func styleFor(c cell) lipgloss.Style {
	st := lipgloss.NewStyle()
	if c.fg.A > 0 {
		st = st.Foreground(lipgloss.Color(c.fg.Hex()[:7]))
	}
	if c.hasBg {
		st = st.Background(lipgloss.Color(c.bg.Hex()[:7]))
	}
	if c.underline {
		st = st.Underline(true)
	}
	return st
}

// blend composites src over dst with alpha a. The result is opaque.
func blend(dst, src thicket.Color, a float64) thicket.Color {
	return thicket.Color{
		R: dst.R + (src.R-dst.R)*a,
		G: dst.G + (src.G-dst.G)*a,
		B: dst.B + (src.B-dst.B)*a,
		A: 1,
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

var _ thicket.Surface = (*Grid)(nil)
