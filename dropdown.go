package thicket

const (
	symbolOpen   = '▼'
	symbolClosed = '▶'
	frozenSuffix = " (!)"
)

// IsOpen reports whether a dropdown or scroll container is open.
func (w *Widget) IsOpen() bool {
	return w.dropdown != nil && w.dropdown.open
}

// IsFrozen reports whether a dropdown is pinned against sibling closing.
func (w *Widget) IsFrozen() bool {
	return w.dropdown != nil && w.dropdown.frozen
}

// Direction returns the child layout axis. DirectionDown for non-containers.
func (w *Widget) Direction() Direction {
	if w.dropdown == nil {
		return DirectionDown
	}
	return w.dropdown.direction
}

// SetDirection changes the child layout axis and re-lays the children.
func (w *Widget) SetDirection(d Direction) {
	if w.dropdown == nil {
		return
	}
	w.dropdown.direction = d
	w.layoutChildren()
}

// SetFrozen pins or unpins the dropdown.
func (w *Widget) SetFrozen(frozen bool) {
	if w.dropdown == nil {
		return
	}
	w.dropdown.frozen = frozen
}

// ToggleMenu flips between open and closed. Frozen dropdowns toggle too;
// frozen only guards against being closed by a sibling.
func (w *Widget) ToggleMenu() {
	w.toggleMenu(nil)
}

// SetOpen opens or closes the dropdown. No-op when already in that state.
func (w *Widget) SetOpen(open bool) {
	if w.dropdown == nil || w.dropdown.open == open {
		return
	}
	w.toggleMenu(nil)
}

func (w *Widget) toggleMenu(ix *Interaction) {
	if w.dropdown == nil {
		return
	}
	w.dropdown.open = !w.dropdown.open
	w.updateSymbol()
	w.layoutChildren()
	if w.OnOpen != nil {
		w.OnOpen(w)
	}
	typ := EventClosed
	if w.dropdown.open {
		typ = EventOpened
	}
	ix.emit(WidgetEvent{Type: typ, WidgetID: w.ID, Title: w.Title, Open: w.dropdown.open})
}

func (w *Widget) toggleFrozen(ix *Interaction) {
	w.dropdown.frozen = !w.dropdown.frozen
	ix.emit(WidgetEvent{Type: EventFrozen, WidgetID: w.ID, Title: w.Title, Frozen: w.dropdown.frozen})
}

// forceClose closes w on behalf of a sibling. Frozen dropdowns stay open.
func (w *Widget) forceClose(ix *Interaction) {
	if w.dropdown == nil || !w.dropdown.open || w.dropdown.frozen {
		return
	}
	w.toggleMenu(ix)
}

func (w *Widget) updateSymbol() {
	if w.dropdown.open {
		w.Symbol = symbolOpen
	} else {
		w.Symbol = symbolClosed
	}
}

// displayTitle is the title with the frozen marker appended.
func (w *Widget) displayTitle() string {
	if w.IsFrozen() {
		return w.Title + frozenSuffix
	}
	return w.Title
}

// clickHeader handles a press that no child claimed. A secondary press on a
// category toggles frozen; any other press toggles open/closed.
func (w *Widget) clickHeader(ix *Interaction, x, y float64, button MouseButton) bool {
	if !w.MouseWithin(x, y) {
		return false
	}
	if button == MouseButtonRight && w.category {
		w.toggleFrozen(ix)
		return true
	}
	w.toggleMenu(ix)
	ix.claim(w)
	return true
}

func (w *Widget) clickDropdown(ix *Interaction, x, y float64, button MouseButton) bool {
	if w.dropdown.open {
		for _, c := range w.children {
			if c.click(ix, x, y, button) {
				return true
			}
		}
	}
	return w.clickHeader(ix, x, y, button)
}

func (w *Widget) dragDropdown(ix *Interaction, x, y float64, button MouseButton, dx, dy float64) bool {
	if w.dropdown.open && ix.owner() != w {
		for _, c := range w.children {
			if c.drag(ix, x, y, button, dx, dy) {
				return true
			}
		}
	}
	if w.dragMove(ix, x, y, button, dx, dy) {
		w.layoutDropdown()
		return true
	}
	return false
}

// layoutDropdown stacks the children along the direction axis while open and
// hides them while closed.
func (w *Widget) layoutDropdown() {
	if !w.dropdown.open || w.hidden {
		for _, c := range w.children {
			c.Hide()
		}
		return
	}
	var next Point
	switch w.dropdown.direction {
	case DirectionRight:
		next = Point{w.X2() + childGap, w.Y()}
	default:
		next = Point{w.X(), w.Y2() + childGap}
	}
	for _, c := range w.children {
		c.SetPosition(next)
		c.Show()
		next.Y = c.Y2() + childGap
	}
}
