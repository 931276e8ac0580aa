package thicket

// --- Public dispatch entry points ---

// Click routes a pointer press at (x, y) into w's subtree. Children are
// queried before their containers. Returns false when nothing handled the
// press; callers treat that as a normal outcome and fall back to their own
// routing.
func (w *Widget) Click(ix *Interaction, x, y float64, button MouseButton) bool {
	ix.begin()
	defer ix.end()
	return w.click(ix, x, y, button)
}

// Drag routes one drag sample with the per-tick delta (dx, dy).
func (w *Widget) Drag(ix *Interaction, x, y float64, button MouseButton, dx, dy float64) bool {
	ix.begin()
	defer ix.end()
	return w.drag(ix, x, y, button, dx, dy)
}

// Scroll routes a wheel tick. A positive delta scrolls up one page, a
// negative delta scrolls down one page.
func (w *Widget) Scroll(ix *Interaction, x, y, delta float64) bool {
	ix.begin()
	defer ix.end()
	return w.scrollEvent(ix, x, y, delta)
}

// --- Kind dispatch ---

func (w *Widget) click(ix *Interaction, x, y float64, button MouseButton) bool {
	if w.hidden {
		return false
	}
	switch w.Kind {
	case KindClickable:
		return w.clickButton(ix, x, y)
	case KindToggle:
		return w.clickToggle(ix, x, y)
	case KindSlider:
		return w.clickSlider(ix, x, y, button)
	case KindDropdown:
		return w.clickDropdown(ix, x, y, button)
	case KindScroll:
		return w.clickScroll(ix, x, y, button)
	default:
		return false
	}
}

func (w *Widget) drag(ix *Interaction, x, y float64, button MouseButton, dx, dy float64) bool {
	if w.hidden {
		return false
	}
	switch w.Kind {
	case KindSlider:
		return w.dragSlider(x, y, button, ix)
	case KindDropdown:
		return w.dragDropdown(ix, x, y, button, dx, dy)
	case KindScroll:
		return w.dragScroll(ix, x, y, button, dx, dy)
	default:
		return false
	}
}

func (w *Widget) scrollEvent(ix *Interaction, x, y, delta float64) bool {
	if w.hidden {
		return false
	}
	switch w.Kind {
	case KindDropdown:
		if !w.dropdown.open {
			return false
		}
		for _, c := range w.children {
			if c.scrollEvent(ix, x, y, delta) {
				return true
			}
		}
		return false
	case KindScroll:
		return w.scrollScroll(ix, x, y, delta)
	default:
		return false
	}
}

// --- Clickable ---

// press is the shared clickable behavior: it accepts a press inside the box
// and claims the interaction slot.
func (w *Widget) press(ix *Interaction, x, y float64) bool {
	if !w.MouseWithin(x, y) {
		return false
	}
	w.pressed = true
	ix.claim(w)
	return true
}

func (w *Widget) clickButton(ix *Interaction, x, y float64) bool {
	if !w.press(ix, x, y) {
		return false
	}
	if w.OnClick != nil {
		w.OnClick(w)
	}
	ix.emit(WidgetEvent{Type: EventClicked, WidgetID: w.ID, Title: w.Title})
	return true
}

// --- Toggle ---

const (
	symbolChecked   = '☑'
	symbolUnchecked = '☐'
)

// IsOn reports the toggle state. Always false for other kinds.
func (w *Widget) IsOn() bool {
	return w.toggle != nil && w.toggle.on
}

// SetState sets the toggle state without firing OnToggle.
func (w *Widget) SetState(on bool) {
	if w.toggle == nil {
		return
	}
	w.toggle.on = on
}

func (w *Widget) clickToggle(ix *Interaction, x, y float64) bool {
	if !w.press(ix, x, y) {
		return false
	}
	w.toggle.on = !w.toggle.on
	if w.OnToggle != nil {
		w.OnToggle(w)
	}
	ix.emit(WidgetEvent{Type: EventToggled, WidgetID: w.ID, Title: w.Title, On: w.toggle.on})
	return true
}

// --- Slider ---

// Value returns the slider value in [0, 1]. Always 0 for other kinds.
func (w *Widget) Value() float64 {
	if w.slider == nil {
		return 0
	}
	return w.slider.value
}

// SetValue sets the slider value, clamped to [0, 1], without firing OnChange.
func (w *Widget) SetValue(v float64) {
	if w.slider == nil {
		return
	}
	w.slider.value = clamp01(v)
}

func (w *Widget) clickSlider(ix *Interaction, x, y float64, button MouseButton) bool {
	if !w.sampleSlider(x, y, button, ix) {
		return false
	}
	ix.claim(w)
	return true
}

func (w *Widget) dragSlider(x, y float64, button MouseButton, ix *Interaction) bool {
	return w.sampleSlider(x, y, button, ix)
}

// sampleSlider is shared by click and drag: a click is a one-sample drag.
func (w *Widget) sampleSlider(x, y float64, button MouseButton, ix *Interaction) bool {
	if button != MouseButtonLeft || !w.MouseWithin(x, y) {
		return false
	}
	w.slider.value = sliderValueAt(w.box, x)
	if w.OnChange != nil {
		w.OnChange(w)
	}
	ix.emit(WidgetEvent{Type: EventSliderChanged, WidgetID: w.ID, Title: w.Title, Value: w.slider.value})
	return true
}

// sliderValueAt maps a pointer x to a value. The usable span is two units
// narrower than the box so the tick mark stays inside the outline.
func sliderValueAt(b Box, x float64) float64 {
	span := b.Width - 2
	if span <= 0 {
		if x > b.X1() {
			return 1
		}
		return 0
	}
	return clamp01((x - b.X1()) / span)
}

// sliderTickX returns the x of the tick mark for the current value.
func (w *Widget) sliderTickX() float64 {
	return w.X() + (w.Width()-2)*w.Value()
}

// --- Drag ---

// dragMove moves a draggable container by (dx, dy). A drag starts when the
// slot is empty and the pointer is on the header, and continues for as long
// as w owns the slot.
func (w *Widget) dragMove(ix *Interaction, x, y float64, button MouseButton, dx, dy float64) bool {
	if button != MouseButtonLeft {
		return false
	}
	owner := ix.owner()
	if owner != nil && owner != w {
		return false
	}
	if owner == nil && !w.MouseWithin(x, y) {
		return false
	}
	w.Translate(dx, dy)
	w.SetDragging(ix, true)
	ix.claim(w)
	return true
}
