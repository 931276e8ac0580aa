package thicket

import "github.com/hajimehoshi/ebiten/v2"

// pointerState tracks the mouse between ticks.
type pointerState struct {
	down   bool
	button MouseButton // button captured at press time
	lastX  float64
	lastY  float64
}

// PointerPosition returns the last pointer position seen by the overlay.
func (o *Overlay) PointerPosition() (x, y float64) {
	return o.pointer.lastX, o.pointer.lastY
}

// processInput handles one tick of pointer input. Injected events take
// precedence over the real mouse.
func (o *Overlay) processInput() {
	if o.processInjectedInput() {
		return
	}
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		switch {
		case left:
			button = MouseButtonLeft
		case right:
			button = MouseButtonRight
		default:
			button = MouseButtonMiddle
		}
	}
	o.processPointer(x, y, pressed, button)

	if _, wy := ebiten.Wheel(); wy != 0 {
		o.Scroll(x, y, wy)
	}
}

// processPointer runs the press/drag/release state machine.
func (o *Overlay) processPointer(x, y float64, pressed bool, button MouseButton) {
	ps := &o.pointer
	switch {
	case pressed && !ps.down:
		// Just pressed: capture the button for the whole gesture.
		ps.down = true
		ps.button = button
		ps.lastX, ps.lastY = x, y
		o.Click(x, y, button)
	case !pressed && ps.down:
		ps.down = false
		o.Release()
	case pressed && ps.down:
		if x != ps.lastX || y != ps.lastY {
			o.Drag(x, y, ps.button, x-ps.lastX, y-ps.lastY)
		}
	}
	ps.lastX, ps.lastY = x, y
}

// SetPointerPosition records the pointer position used for hover
// highlighting. Hosts that call Click and Drag directly use this to keep
// hover in sync.
func (o *Overlay) SetPointerPosition(x, y float64) {
	o.pointer.lastX, o.pointer.lastY = x, y
}
