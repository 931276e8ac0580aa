package thicket

// Interaction is the per-host interaction state threaded through every
// dispatch call. It owns the single "active widget" slot: set when a widget
// claims a press, read during drag routing, cleared when a drag ends.
//
// Dispatches may nest when a callback synchronously triggers another event.
// Writes made while a dispatch is running are buffered and committed when the
// outermost dispatch returns: a claim made by the outermost dispatch wins
// over any buffered clear, and claims from nested dispatches are dropped.
// Outside a dispatch, writes apply immediately.
type Interaction struct {
	active *Widget
	sink   EventSink

	depth        int
	pendingClaim *Widget
	pendingClear bool
}

// NewInteraction returns an empty interaction state.
func NewInteraction() *Interaction {
	return &Interaction{}
}

// Active returns the widget that currently owns the pointer, or nil.
func (ix *Interaction) Active() *Widget {
	if ix == nil {
		return nil
	}
	return ix.active
}

// Dispatching reports whether a dispatch is in progress.
func (ix *Interaction) Dispatching() bool {
	return ix != nil && ix.depth > 0
}

// SetSink sets the optional receiver of widget events.
func (ix *Interaction) SetSink(sink EventSink) {
	ix.sink = sink
}

// Reset empties the active slot and any buffered writes.
func (ix *Interaction) Reset() {
	ix.active = nil
	ix.pendingClaim = nil
	ix.pendingClear = false
}

func (ix *Interaction) begin() {
	if ix == nil {
		return
	}
	ix.depth++
}

func (ix *Interaction) end() {
	if ix == nil {
		return
	}
	ix.depth--
	if ix.depth > 0 {
		return
	}
	ix.depth = 0
	switch {
	case ix.pendingClaim != nil:
		ix.active = ix.pendingClaim
	case ix.pendingClear:
		ix.active = nil
	}
	ix.pendingClaim = nil
	ix.pendingClear = false
}

// claim records w as the widget that took the current press or drag.
func (ix *Interaction) claim(w *Widget) {
	if ix == nil {
		return
	}
	switch ix.depth {
	case 0:
		ix.active = w
	case 1:
		ix.pendingClaim = w
	}
}

// owner returns the slot as the running dispatch sees it: the pending claim
// of this dispatch, else the committed value unless a clear is buffered.
func (ix *Interaction) owner() *Widget {
	if ix == nil {
		return nil
	}
	if ix.pendingClaim != nil {
		return ix.pendingClaim
	}
	if ix.pendingClear {
		return nil
	}
	return ix.active
}

func (ix *Interaction) clear() {
	if ix == nil {
		return
	}
	if ix.depth == 0 {
		ix.active = nil
		return
	}
	ix.pendingClear = true
}

func (ix *Interaction) emit(e WidgetEvent) {
	if ix == nil || ix.sink == nil {
		return
	}
	ix.sink.EmitEvent(e)
}
