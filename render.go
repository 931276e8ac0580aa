package thicket

import "time"

// Surface is the drawing capability the toolkit renders through.
// Implementations exist for Ebitengine images, raster and SVG snapshots, and
// terminal grids.
type Surface interface {
	FillRect(r Box, c Color, alpha float64)
	StrokeRect(r Box, c Color, alpha float64)
	DrawText(text string, x, y float64, c Color)
}

// StyleSource supplies named colors and floats. Widgets never cache the
// results; every frame re-reads them so live edits apply immediately.
type StyleSource interface {
	Color(name string) Color
	Float(name string) float64
}

// Style keys read during rendering.
const (
	KeyBackground = "gui.color.background"
	KeyForeground = "gui.color.foreground"
	KeyBorder     = "gui.color.border"
	KeyEnabled    = "gui.color.enabled"
	KeyFrozen     = "gui.color.frozen"
	KeyCategory   = "gui.color.category"
	KeyHover      = "gui.color.hover"
	KeyAlpha      = "gui.alpha"
)

// DefaultColors holds the built-in value of every color key.
var DefaultColors = map[string]Color{
	KeyBackground: {0.08, 0.08, 0.12, 1},
	KeyForeground: {1, 1, 1, 1},
	KeyBorder:     {1, 1, 1, 1},
	KeyEnabled:    {0.2, 0.6, 0.3, 1},
	KeyFrozen:     {0.9, 0.3, 0.3, 1},
	KeyCategory:   {0.25, 0.15, 0.45, 1},
	KeyHover:      {0.3, 0.3, 0.4, 1},
}

// DefaultFloats holds the built-in value of every float key.
var DefaultFloats = map[string]float64{
	KeyAlpha: 0.5,
}

// MapStyle is an in-memory StyleSource. Keys missing from the maps fall back
// to DefaultColors and DefaultFloats.
type MapStyle struct {
	Colors map[string]Color
	Floats map[string]float64
}

// DefaultStyle returns a MapStyle holding copies of the defaults.
func DefaultStyle() *MapStyle {
	s := &MapStyle{
		Colors: make(map[string]Color, len(DefaultColors)),
		Floats: make(map[string]float64, len(DefaultFloats)),
	}
	for k, v := range DefaultColors {
		s.Colors[k] = v
	}
	for k, v := range DefaultFloats {
		s.Floats[k] = v
	}
	return s
}

// Color returns the named color.
func (s *MapStyle) Color(name string) Color {
	if c, ok := s.Colors[name]; ok {
		return c
	}
	if c, ok := DefaultColors[name]; ok {
		return c
	}
	return ColorWhite
}

// Float returns the named float.
func (s *MapStyle) Float(name string) float64 {
	if f, ok := s.Floats[name]; ok {
		return f
	}
	return DefaultFloats[name]
}

// Frame carries the per-tick render inputs.
type Frame struct {
	Surface Surface
	Style   StyleSource
	MouseX  float64
	MouseY  float64

	drawn int
}

// Drawn returns how many widgets were drawn into this frame.
func (f *Frame) Drawn() int { return f.drawn }

// Render draws w and its visible descendants. Hidden widgets draw nothing.
func (w *Widget) Render(f *Frame) {
	if w.hidden {
		return
	}
	if w.OnRender != nil {
		w.OnRender(w)
	}
	switch w.Kind {
	case KindToggle:
		w.renderToggle(f)
	case KindSlider:
		w.renderSlider(f)
	case KindDropdown:
		w.renderDropdown(f)
	case KindScroll:
		w.renderScroll(f)
	default:
		w.renderBox(f, w.backgroundOr(f.Style.Color(KeyBackground)), w.Title, f.Style.Color(KeyBorder))
		w.renderChildren(f)
	}
}

func (w *Widget) backgroundOr(fallback Color) Color {
	if w.Background.A == 0 {
		return fallback
	}
	return w.Background
}

// renderBox draws the background, title, symbol and outline for one widget.
func (w *Widget) renderBox(f *Frame, bg Color, title string, outline Color) {
	if w.Hoverable && w.MouseWithin(f.MouseX, f.MouseY) {
		bg = f.Style.Color(KeyHover)
	}
	fg := f.Style.Color(KeyForeground)
	f.Surface.FillRect(w.box, bg, f.Style.Float(KeyAlpha))
	f.Surface.DrawText(title, w.X()+2, w.Y()+1.5, fg)
	if w.Symbol != 0 {
		f.Surface.DrawText(string(w.Symbol), w.X2()+w.SymbolOffsetX, w.Y()+w.SymbolOffsetY, fg)
	}
	f.Surface.StrokeRect(w.box, outline, 1)
	f.drawn++
}

func (w *Widget) renderChildren(f *Frame) {
	for _, c := range w.children {
		c.Render(f)
	}
}

func (w *Widget) renderToggle(f *Frame) {
	bg := f.Style.Color(KeyBackground)
	w.Symbol = symbolUnchecked
	if w.toggle.on {
		bg = f.Style.Color(KeyEnabled)
		w.Symbol = symbolChecked
	}
	w.renderBox(f, bg, w.Title, f.Style.Color(KeyBorder))
	w.renderChildren(f)
}

func (w *Widget) renderSlider(f *Frame) {
	w.renderBox(f, w.backgroundOr(f.Style.Color(KeyBackground)), w.Title, f.Style.Color(KeyBorder))
	tick := NewBox(Point{w.sliderTickX(), w.Y() - 0.25}, 1, w.Height()+0.75)
	f.Surface.FillRect(tick, ColorWhite, 0.75)
}

// headerColors picks background and outline for a dropdown header.
func (w *Widget) headerColors(f *Frame) (bg, outline Color) {
	bg = f.Style.Color(KeyBackground)
	if w.category {
		bg = f.Style.Color(KeyCategory)
	}
	outline = f.Style.Color(KeyBorder)
	if w.dropdown.frozen {
		outline = f.Style.Color(KeyFrozen)
	}
	return bg, outline
}

func (w *Widget) renderDropdown(f *Frame) {
	bg, outline := w.headerColors(f)
	w.updateSymbol()
	w.renderBox(f, bg, w.displayTitle(), outline)
	if !w.dropdown.open {
		return
	}
	w.renderChildren(f)
}

func (w *Widget) renderScroll(f *Frame) {
	bg, outline := w.headerColors(f)
	w.updateSymbol()
	w.renderBox(f, bg, w.displayTitle(), outline)
	if !w.dropdown.open {
		return
	}
	w.resetChildPos()
	start, end := w.VisibleRange()
	for i := start; i < end; i++ {
		w.children[i].Render(f)
	}
	if track, ok := w.ScrollTrack(); ok {
		f.Surface.FillRect(track, ColorBlack, f.Style.Float(KeyAlpha))
		f.Surface.StrokeRect(track, f.Style.Color(KeyForeground), 1)
		thumb, _ := w.ScrollThumb()
		f.Surface.FillRect(thumb, ColorWhite, f.Style.Float(KeyAlpha))
	}
}

// renderStats is collected when debug mode is on.
type renderStats struct {
	renderTime time.Duration
	drawn      int
	roots      int
}
