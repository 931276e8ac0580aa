package thicket

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorWhite is used for outlines, slider ticks and scrollbar thumbs.
	ColorWhite = Color{1, 1, 1, 1}
	// ColorBlack fills the scrollbar track.
	ColorBlack = Color{0, 0, 0, 1}
	// ColorIndigo is the background a widget starts with.
	ColorIndigo = Color{0.294, 0, 0.51, 1}
)

// RGBA converts c to a non-premultiplied 8-bit color.
func (c Color) RGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Hex formats c as #rrggbbaa.
func (c Color) Hex() string {
	n := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa". The leading '#' is optional.
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("parse color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// Point is a position in overlay space. The origin is the top-left corner,
// with Y increasing downward.
type Point struct {
	X, Y float64
}

// Box is an axis-aligned rectangle anchored at its top-left corner.
type Box struct {
	TopLeft       Point
	Width, Height float64
}

// NewBox returns a box at topLeft. Negative sizes are clamped to zero.
func NewBox(topLeft Point, width, height float64) Box {
	return Box{TopLeft: topLeft, Width: math.Max(0, width), Height: math.Max(0, height)}
}

func (b Box) X1() float64 { return b.TopLeft.X }
func (b Box) Y1() float64 { return b.TopLeft.Y }
func (b Box) X2() float64 { return b.TopLeft.X + b.Width }
func (b Box) Y2() float64 { return b.TopLeft.Y + b.Height }

// BottomRight returns the corner opposite TopLeft.
func (b Box) BottomRight() Point {
	return Point{b.X2(), b.Y2()}
}

// Middle returns the center of the box.
func (b Box) Middle() Point {
	return Point{b.TopLeft.X + b.Width/2, b.TopLeft.Y + b.Height/2}
}

// Contains reports whether (x, y) lies inside the box.
// Points on the edge are considered inside.
func (b Box) Contains(x, y float64) bool {
	return x >= b.X1() && x <= b.X2() && y >= b.Y1() && y <= b.Y2()
}

// SetTopLeft moves the box so its top-left corner is p. Size is unchanged.
func (b *Box) SetTopLeft(p Point) {
	b.TopLeft = p
}

// SetMiddle moves the box so its center is p. Size is unchanged.
func (b *Box) SetMiddle(p Point) {
	b.TopLeft = Point{p.X - b.Width/2, p.Y - b.Height/2}
}

// Translate shifts the box by (dx, dy).
func (b *Box) Translate(dx, dy float64) {
	b.TopLeft.X += dx
	b.TopLeft.Y += dy
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// Direction selects the axis a dropdown lays its children along.
type Direction uint8

const (
	DirectionDown  Direction = iota // children stacked below the header
	DirectionRight                  // children stacked in a column right of the header
)

func (d Direction) String() string {
	switch d {
	case DirectionDown:
		return "down"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// WidgetKind distinguishes interaction and rendering behavior for a Widget.
type WidgetKind uint8

const (
	KindPlain     WidgetKind = iota // label-like node, never handles input
	KindClickable                   // fires OnClick when pressed
	KindToggle                      // on/off switch
	KindSlider                      // continuous value in [0, 1]
	KindDropdown                    // open/closed container
	KindScroll                      // paginated dropdown with a scrollbar
)

func (k WidgetKind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindClickable:
		return "clickable"
	case KindToggle:
		return "toggle"
	case KindSlider:
		return "slider"
	case KindDropdown:
		return "dropdown"
	case KindScroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// EventType identifies a widget state change reported to an EventSink.
type EventType uint8

const (
	EventClicked       EventType = iota // a clickable was pressed
	EventToggled                        // a toggle flipped
	EventSliderChanged                  // a slider value was recomputed
	EventOpened                         // a dropdown opened
	EventClosed                         // a dropdown closed
	EventFrozen                         // a dropdown's frozen flag flipped
	EventPageChanged                    // a scroll container changed page
)

func (e EventType) String() string {
	switch e {
	case EventClicked:
		return "clicked"
	case EventToggled:
		return "toggled"
	case EventSliderChanged:
		return "slider_changed"
	case EventOpened:
		return "opened"
	case EventClosed:
		return "closed"
	case EventFrozen:
		return "frozen"
	case EventPageChanged:
		return "page_changed"
	default:
		return "unknown"
	}
}

// WidgetEvent describes a state change on a single widget.
type WidgetEvent struct {
	Type     EventType
	WidgetID uint32
	Title    string
	On       bool    // toggle state (EventToggled)
	Value    float64 // slider value (EventSliderChanged)
	Page     int     // current page (EventPageChanged)
	Open     bool    // open state (EventOpened, EventClosed)
	Frozen   bool    // frozen state (EventFrozen)
}

// EventSink receives widget events. Set one on an Interaction or Overlay to
// forward state changes to an ECS or any other consumer.
type EventSink interface {
	EmitEvent(event WidgetEvent)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
