package thicket

// syntheticPointerEvent represents a single injected input event.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	button  MouseButton
	wheel   float64 // non-zero for scroll events; pressed is ignored then
}

// InjectPress queues a left-button press at (x, y). The event is consumed
// on the next Update.
func (o *Overlay) InjectPress(x, y float64) {
	o.injectQueue = append(o.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectPressButton queues a press with a specific button.
func (o *Overlay) InjectPressButton(x, y float64, button MouseButton) {
	o.injectQueue = append(o.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true, button: button})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (o *Overlay) InjectMove(x, y float64) {
	o.injectQueue = append(o.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a release at (x, y).
func (o *Overlay) InjectRelease(x, y float64) {
	o.injectQueue = append(o.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick queues a press followed by a release at the same position.
// Consumes two ticks.
func (o *Overlay) InjectClick(x, y float64) {
	o.InjectPress(x, y)
	o.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate ticks, and a release at
// (toX, toY). Minimum frames is 2 (press + release).
func (o *Overlay) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	o.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		o.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	o.InjectRelease(toX, toY)
}

// InjectScroll queues a wheel tick at (x, y).
func (o *Overlay) InjectScroll(x, y, delta float64) {
	if delta == 0 {
		return
	}
	o.injectQueue = append(o.injectQueue, syntheticPointerEvent{x: x, y: y, wheel: delta})
}

// PendingInjections returns the number of queued synthetic events.
func (o *Overlay) PendingInjections() int {
	return len(o.injectQueue)
}

// processInjectedInput pops one event from the queue and feeds it through
// the pointer state machine. Returns true if an event was consumed (real
// mouse input is skipped for that tick).
func (o *Overlay) processInjectedInput() bool {
	if len(o.injectQueue) == 0 {
		return false
	}
	evt := o.injectQueue[0]
	copy(o.injectQueue, o.injectQueue[1:])
	o.injectQueue = o.injectQueue[:len(o.injectQueue)-1]

	if evt.wheel != 0 {
		o.pointer.lastX, o.pointer.lastY = evt.x, evt.y
		o.Scroll(evt.x, evt.y, evt.wheel)
		return true
	}
	o.processPointer(evt.x, evt.y, evt.pressed, evt.button)
	return true
}
