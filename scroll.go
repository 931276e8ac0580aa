package thicket

import "math"

// Page returns the current page (0-based). Always 0 for other kinds.
func (w *Widget) Page() int {
	if w.scroll == nil {
		return 0
	}
	return w.scroll.page
}

// PageSize returns how many children a page shows.
func (w *Widget) PageSize() int {
	if w.scroll == nil {
		return 0
	}
	return w.scroll.pageSize
}

// PageCount returns ceil(children / pageSize), or 0 when there are no children.
func (w *Widget) PageCount() int {
	if w.scroll == nil {
		return 0
	}
	return w.scroll.pageCount
}

// MaxRows returns the configured upper bound on the page size.
func (w *Widget) MaxRows() int {
	if w.scroll == nil {
		return 0
	}
	return w.scroll.maxRows
}

// SetPage jumps to page p, clamped to [0, PageCount-1], and re-lays the
// children.
func (w *Widget) SetPage(p int) {
	if w.scroll == nil {
		return
	}
	w.scroll.page = p
	w.resetChildPos()
}

// VisibleRange returns the child index window [start, end) of the current
// page.
func (w *Widget) VisibleRange() (start, end int) {
	if w.scroll == nil {
		return 0, len(w.children)
	}
	start = w.scroll.page * w.scroll.pageSize
	end = min(start+w.scroll.pageSize, len(w.children))
	if start > end {
		start = end
	}
	return start, end
}

// ShouldDrawScrollBar reports whether the children overflow one page.
func (w *Widget) ShouldDrawScrollBar() bool {
	return w.scroll != nil && len(w.children) > w.scroll.pageSize
}

// --- Structure ---

func (w *Widget) addScrollElement(child *Widget) {
	child.SetWidth(w.Width())
	w.children = append(w.children, child)
	if w.dropdown.direction == DirectionRight {
		child.SetPosition(Point{w.X2() + 2*rightColumnGap, w.Y2() + float64(len(w.children)*rowPitch)})
	}
	w.recomputePages()
	w.resetChildPos()
}

// recomputePages derives pageSize and pageCount from the child count and
// shrinks every child for the scrollbar once the children overflow.
func (w *Widget) recomputePages() {
	s := w.scroll
	n := len(w.children)
	s.pageSize = max(1, min(n, s.maxRows))
	if n == 0 {
		s.pageCount = 0
	} else {
		s.pageCount = int(math.Ceil(float64(n) / float64(s.pageSize)))
	}
	if w.ShouldDrawScrollBar() {
		for _, c := range w.children {
			c.ShrinkForScrollbar(w)
		}
	}
	s.clampPage()
}

func (s *scrollState) clampPage() {
	if s.page >= s.pageCount {
		s.page = s.pageCount - 1
	}
	if s.page < 0 {
		s.page = 0
	}
}

// --- Layout ---

// resetChildPos resolves the current page: children inside the page window
// are shown and stacked along the direction axis, every other child is
// hidden. A closed or hidden container hides all of its children.
func (w *Widget) resetChildPos() {
	s := w.scroll
	s.clampPage()
	if !w.dropdown.open || w.hidden {
		for _, c := range w.children {
			c.Hide()
		}
		return
	}
	start, end := w.VisibleRange()
	for i, c := range w.children {
		if i < start || i >= end {
			c.Hide()
			continue
		}
		row := float64(i - start)
		switch w.dropdown.direction {
		case DirectionRight:
			c.SetPosition(Point{w.X2() + rightColumnGap, w.Y() + row*rowPitch})
		default:
			c.SetPosition(Point{w.X(), w.Y2() + childGap + row*rowPitch})
		}
		c.Show()
	}
}

// --- Scrolling ---

func (w *Widget) scrollUp() {
	if w.scroll.page > 0 {
		w.scroll.page--
	}
}

func (w *Widget) scrollDown() {
	if w.scroll.page < w.scroll.pageCount-1 {
		w.scroll.page++
	}
}

// DoScroll pages by one in the direction of delta: positive scrolls up,
// negative scrolls down. Magnitude is ignored. No-op while closed.
func (w *Widget) DoScroll(delta float64) {
	w.doScroll(nil, delta)
}

func (w *Widget) doScroll(ix *Interaction, delta float64) {
	if w.scroll == nil || !w.dropdown.open {
		return
	}
	before := w.scroll.page
	switch {
	case delta > 0:
		w.scrollUp()
	case delta < 0:
		w.scrollDown()
	}
	w.resetChildPos()
	w.pageChanged(ix, before)
}

func (w *Widget) pageChanged(ix *Interaction, before int) {
	if w.scroll.page == before {
		return
	}
	if w.OnPage != nil {
		w.OnPage(w)
	}
	ix.emit(WidgetEvent{Type: EventPageChanged, WidgetID: w.ID, Title: w.Title, Page: w.scroll.page})
}

// contentContains reports whether (x, y) is over the header, a visible
// child, or the scrollbar track.
func (w *Widget) contentContains(x, y float64) bool {
	if w.MouseWithin(x, y) {
		return true
	}
	if w.hidden || !w.IsOpen() {
		return false
	}
	for _, c := range w.children {
		if c.MouseWithin(x, y) {
			return true
		}
	}
	if track, ok := w.ScrollTrack(); ok && track.Contains(x, y) {
		return true
	}
	return false
}

func (w *Widget) scrollScroll(ix *Interaction, x, y, delta float64) bool {
	if w.dropdown.open {
		for _, c := range w.children {
			if c.hidden || c.Kind != KindScroll || !c.contentContains(x, y) {
				continue
			}
			if c.dropdown.open {
				c.scrollEvent(ix, x, y, delta)
			} else {
				w.doScroll(ix, delta)
			}
			return true
		}
	}
	if w.contentContains(x, y) {
		w.doScroll(ix, delta)
		return true
	}
	return false
}

// --- Scrollbar geometry ---

// trackLength is the scrollbar track extent along the page axis.
func (w *Widget) trackLength() float64 {
	rows := float64(w.scroll.pageSize)
	return rows*w.Height() + rows + 2
}

// trackOrigin is the top-left of the track. For DirectionRight the track
// sits against the right edge of the visible child column.
func (w *Widget) trackOrigin() (Point, bool) {
	if w.dropdown.direction == DirectionRight {
		start, end := w.VisibleRange()
		if start >= end {
			return Point{}, false
		}
		return Point{w.children[start].X2(), w.Y()}, true
	}
	return Point{w.X() + w.Width() - scrollTrackWidth, w.Y2() + childGap}, true
}

// thumbSpan returns the start and end of the thumb along the track axis.
func (w *Widget) thumbSpan() (float64, float64) {
	length := w.trackLength()
	pages := float64(w.scroll.pageCount)
	base := w.Y2() + 3
	if w.dropdown.direction == DirectionRight {
		base = w.Y() + 1
	}
	top := length*(float64(w.scroll.page)/pages) + base
	return top, top + length/pages
}

// ScrollTrack returns the scrollbar track. ok is false when no scrollbar is
// shown.
func (w *Widget) ScrollTrack() (Box, bool) {
	if !w.ShouldDrawScrollBar() {
		return Box{}, false
	}
	origin, ok := w.trackOrigin()
	if !ok {
		return Box{}, false
	}
	return NewBox(origin, scrollTrackWidth, w.trackLength()), true
}

// ScrollThumb returns the scrollbar thumb as drawn.
func (w *Widget) ScrollThumb() (Box, bool) {
	track, ok := w.ScrollTrack()
	if !ok {
		return Box{}, false
	}
	top, bottom := w.thumbSpan()
	x := track.X1() + 1
	return NewBox(Point{x, top}, scrollThumbWidth, bottom-top-2), true
}

// clickScrollBar pages toward a press on the track. A press strictly above
// the thumb scrolls up, strictly below scrolls down, and a press on the thumb
// is handled without changing the page.
func (w *Widget) clickScrollBar(ix *Interaction, x, y float64) bool {
	track, ok := w.ScrollTrack()
	if !ok || !track.Contains(x, y) {
		return false
	}
	top, bottom := w.thumbSpan()
	before := w.scroll.page
	switch {
	case y < top:
		w.scrollUp()
	case y > bottom:
		w.scrollDown()
	default:
		return true
	}
	w.resetChildPos()
	w.pageChanged(ix, before)
	return true
}

// --- Click and drag ---

func (w *Widget) clickScroll(ix *Interaction, x, y float64, button MouseButton) bool {
	if w.dropdown.open {
		if w.clickScrollChildren(ix, x, y, button) {
			return true
		}
		if w.clickScrollBar(ix, x, y) {
			return true
		}
	}
	return w.clickHeader(ix, x, y, button)
}

// clickScrollChildren offers the press to the visible page. When a child
// takes it, every other open dropdown among the children is closed so at most
// one menu stays open. Frozen siblings are left alone.
func (w *Widget) clickScrollChildren(ix *Interaction, x, y float64, button MouseButton) bool {
	start, end := w.VisibleRange()
	for i := start; i < end; i++ {
		c := w.children[i]
		if c.hidden {
			continue
		}
		if !c.click(ix, x, y, button) {
			continue
		}
		for _, sibling := range w.children {
			if sibling != c {
				sibling.forceClose(ix)
			}
		}
		return true
	}
	return false
}

func (w *Widget) dragScroll(ix *Interaction, x, y float64, button MouseButton, dx, dy float64) bool {
	if ix.owner() != w {
		for _, c := range w.children {
			if c.hidden {
				continue
			}
			handled := c.drag(ix, x, y, button, dx, dy)
			if (handled && c.Kind == KindSlider) || c.dragging {
				return false
			}
		}
	}
	if w.dragMove(ix, x, y, button, dx, dy) {
		w.resetChildPos()
		return true
	}
	return false
}
