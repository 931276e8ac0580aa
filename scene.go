package thicket

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay is the top-level object that owns the root widgets, the
// interaction state, the style source and the input state machine. It plays
// the host-loop role: feed it input and a render tick every frame.
type Overlay struct {
	roots []*Widget
	ix    *Interaction
	style StyleSource
	debug bool

	tweens []*SnapTween

	// Input state
	pointer     pointerState
	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner

	surface         EbitenSurface
	screenshotQueue []string

	// ScreenshotDir is where Screenshot writes PNGs. Empty means
	// "screenshots" in the working directory.
	ScreenshotDir string

	// OnSnapshot is called by "snapshot" steps of a TestRunner script. When
	// nil those steps queue a Screenshot instead.
	OnSnapshot func(label string)
}

// NewOverlay creates an overlay reading colors from style. A nil style
// selects DefaultStyle.
func NewOverlay(style StyleSource) *Overlay {
	if style == nil {
		style = DefaultStyle()
	}
	return &Overlay{
		ix:    NewInteraction(),
		style: style,
	}
}

// AddRoot appends a top-level widget. Roots receive input and draw in the
// order they were added.
func (o *Overlay) AddRoot(w *Widget) {
	if w == nil {
		panic("thicket: cannot add nil root")
	}
	if w.attached {
		panic("thicket: root already has a parent")
	}
	w.attached = true
	o.roots = append(o.roots, w)
}

// RemoveRoot detaches a top-level widget. Returns false if w is not a root.
func (o *Overlay) RemoveRoot(w *Widget) bool {
	for i, r := range o.roots {
		if r == w {
			o.roots = append(o.roots[:i], o.roots[i+1:]...)
			w.attached = false
			if o.ix.Active() != nil && w.contains(o.ix.Active()) {
				o.ix.Reset()
			}
			return true
		}
	}
	return false
}

// Roots returns the root list. The returned slice MUST NOT be mutated.
func (o *Overlay) Roots() []*Widget {
	return o.roots
}

// Interaction returns the overlay's interaction state.
func (o *Overlay) Interaction() *Interaction {
	return o.ix
}

// Style returns the current style source.
func (o *Overlay) Style() StyleSource {
	return o.style
}

// SetStyle replaces the style source. Nil is ignored.
func (o *Overlay) SetStyle(style StyleSource) {
	if style != nil {
		o.style = style
	}
}

// SetEventSink forwards widget events to sink. Pass nil to stop forwarding.
func (o *Overlay) SetEventSink(sink EventSink) {
	o.ix.SetSink(sink)
}

// SetDebugMode enables or disables debug mode. When enabled, AddElement warns
// about deep or wide trees and per-frame render stats are logged to stderr.
func (o *Overlay) SetDebugMode(enabled bool) {
	o.debug = enabled
	globalDebug = enabled
}

// --- Event routing ---

// Click routes a press to the roots in order; the first root that handles it
// wins.
func (o *Overlay) Click(x, y float64, button MouseButton) bool {
	o.ix.begin()
	defer o.ix.end()
	for _, r := range o.roots {
		if r.click(o.ix, x, y, button) {
			return true
		}
	}
	return false
}

// Drag routes one drag sample to the roots in order.
func (o *Overlay) Drag(x, y float64, button MouseButton, dx, dy float64) bool {
	o.ix.begin()
	defer o.ix.end()
	for _, r := range o.roots {
		if r.drag(o.ix, x, y, button, dx, dy) {
			return true
		}
	}
	return false
}

// Scroll routes a wheel tick to the roots in order.
func (o *Overlay) Scroll(x, y, delta float64) bool {
	o.ix.begin()
	defer o.ix.end()
	for _, r := range o.roots {
		if r.scrollEvent(o.ix, x, y, delta) {
			return true
		}
	}
	return false
}

// Release ends the current gesture: every root stops dragging, pressed flags
// clear and the active widget slot empties.
func (o *Overlay) Release() {
	for _, r := range o.roots {
		r.SetDragging(o.ix, false)
		r.release()
	}
	o.ix.clear()
}

// --- Frame ---

// Render draws every root onto s with the current pointer position for
// hover highlighting.
func (o *Overlay) Render(s Surface) {
	var t0 time.Time
	if o.debug {
		t0 = time.Now()
	}
	f := Frame{Surface: s, Style: o.style, MouseX: o.pointer.lastX, MouseY: o.pointer.lastY}
	for _, r := range o.roots {
		r.Render(&f)
	}
	if o.debug {
		o.debugLog(renderStats{renderTime: time.Since(t0), drawn: f.drawn, roots: len(o.roots)})
	}
}

// Update runs one input tick: advances snap-back tweens, steps an attached
// TestRunner, then processes injected or real pointer input.
func (o *Overlay) Update() {
	o.update(float32(1.0 / float64(ebiten.TPS())))
}

func (o *Overlay) update(dt float32) {
	o.updateTweens(dt)
	if o.testRunner != nil {
		o.testRunner.step(o)
	}
	o.processInput()
}

// Draw renders the overlay onto an Ebitengine image.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.surface.Target = screen
	o.Render(&o.surface)
	o.flushScreenshots(screen)
}
