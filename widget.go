package thicket

// --- ID counter ---

// widgetIDCounter is a plain counter; thicket is single-threaded.
var widgetIDCounter uint32

func nextWidgetID() uint32 {
	widgetIDCounter++
	return widgetIDCounter
}

// Layout constants shared by every container kind.
const (
	firstChildOffsetX = 100 // first child of a plain widget starts off-panel
	firstChildOffsetY = 1
	childGap          = 2  // vertical gap between stacked children
	rowPitch          = 12 // distance between rows of a scroll container
	rightColumnGap    = 7  // horizontal gap before a RIGHT scroll column
	scrollGutter      = 6  // width removed from children when a scrollbar shows
	scrollTrackWidth  = 5
	scrollThumbWidth  = 3
	defaultMaxRows    = 4
)

// --- Widget ---

// Widget is the single node type of the toolkit. A flat struct with a Kind
// tag is used for every variant; variant state lives in the payload pointers
// and is dispatched by switching on Kind.
//
// A widget exclusively owns its children. Children hold no reference back to
// their parent.
type Widget struct {
	// Identity
	ID   uint32
	Kind WidgetKind

	// Presentation
	Title         string
	Symbol        rune // drawn near the right edge when non-zero
	SymbolOffsetX float64
	SymbolOffsetY float64
	Background    Color // zero alpha means "use the style background"
	Hoverable     bool

	box        Box
	defaultBox Box
	children   []*Widget

	hidden   bool
	dragging bool
	category bool
	pressed  bool
	attached bool
	shrunk   bool

	// Variant payloads (nil unless Kind needs them)
	toggle   *toggleState
	slider   *sliderState
	dropdown *dropdownState
	scroll   *scrollState

	// Callbacks (nil by default)
	OnClick  func(*Widget) // KindClickable
	OnToggle func(*Widget) // KindToggle, after the state flipped
	OnRender func(*Widget) // before every draw; toggles use it to sync state
	OnChange func(*Widget) // KindSlider, after every value update
	OnOpen   func(*Widget) // KindDropdown/KindScroll, after open/close
	OnPage   func(*Widget) // KindScroll, after the page changed
}

type toggleState struct {
	on bool
}

type sliderState struct {
	value float64
}

type dropdownState struct {
	open      bool
	frozen    bool
	direction Direction
}

type scrollState struct {
	maxRows   int
	pageSize  int
	pageCount int
	page      int
}

func newWidget(kind WidgetKind, topLeft Point, width, height float64, title string) *Widget {
	w := &Widget{
		ID:            nextWidgetID(),
		Kind:          kind,
		Title:         title,
		SymbolOffsetX: -9,
		SymbolOffsetY: 1.5,
		Background:    ColorIndigo,
		box:           NewBox(topLeft, width, height),
	}
	w.defaultBox = w.box
	return w
}

// NewWidget creates a plain widget that renders but never handles input.
func NewWidget(topLeft Point, width, height float64, title string) *Widget {
	return newWidget(KindPlain, topLeft, width, height, title)
}

// NewClickable creates a button that fires OnClick when pressed.
func NewClickable(topLeft Point, width, height float64, title string) *Widget {
	return newWidget(KindClickable, topLeft, width, height, title)
}

// NewToggle creates an on/off switch, initially off.
func NewToggle(topLeft Point, width, height float64, title string) *Widget {
	w := newWidget(KindToggle, topLeft, width, height, title)
	w.toggle = &toggleState{}
	w.Symbol = symbolUnchecked
	return w
}

// NewSlider creates a slider with value 0.
func NewSlider(topLeft Point, width, height float64, title string) *Widget {
	w := newWidget(KindSlider, topLeft, width, height, title)
	w.slider = &sliderState{}
	return w
}

// NewDropdown creates a closed, unfrozen dropdown laying children downward.
func NewDropdown(topLeft Point, width, height float64, title string) *Widget {
	w := newWidget(KindDropdown, topLeft, width, height, title)
	w.dropdown = &dropdownState{direction: DirectionDown}
	w.SymbolOffsetX = -10
	w.SymbolOffsetY = 1
	w.updateSymbol()
	return w
}

// NewScroll creates a closed scroll container showing at most maxRows
// children per page. maxRows below 1 selects the default of four.
func NewScroll(topLeft Point, width, height float64, title string, maxRows int) *Widget {
	w := NewDropdown(topLeft, width, height, title)
	w.Kind = KindScroll
	if maxRows < 1 {
		maxRows = defaultMaxRows
	}
	w.scroll = &scrollState{maxRows: maxRows, pageSize: 1}
	return w
}

// --- Identity ---

// Equal reports whether w and other are the same widget. Equality is by ID,
// never by structure.
func (w *Widget) Equal(other *Widget) bool {
	return other != nil && w.ID == other.ID
}

// --- Flags ---

// IsParent reports whether w is marked as a category. This is a visual and
// semantic marker; it says nothing about whether w has children.
func (w *Widget) IsParent() bool { return w.category }

// SetParent marks w as a category (or clears the mark).
func (w *Widget) SetParent(category bool) { w.category = category }

// IsHidden reports whether w is excluded from hit testing and rendering.
func (w *Widget) IsHidden() bool { return w.hidden }

// IsDragging reports whether w is part of an active drag gesture.
func (w *Widget) IsDragging() bool { return w.dragging }

// IsPressed reports whether a clickable was pressed and not yet released.
func (w *Widget) IsPressed() bool { return w.pressed }

// SetTitle replaces the title.
func (w *Widget) SetTitle(title string) { w.Title = title }

// SetSymbol replaces the glyph drawn near the right edge. Zero disables it.
func (w *Widget) SetSymbol(symbol rune) { w.Symbol = symbol }

// SetBackground replaces the background color.
func (w *Widget) SetBackground(c Color) { w.Background = c }

// --- Geometry ---

func (w *Widget) Box() Box           { return w.box }
func (w *Widget) DefaultBox() Box    { return w.defaultBox }
func (w *Widget) X() float64         { return w.box.X1() }
func (w *Widget) Y() float64         { return w.box.Y1() }
func (w *Widget) X2() float64        { return w.box.X2() }
func (w *Widget) Y2() float64        { return w.box.Y2() }
func (w *Widget) Width() float64     { return w.box.Width }
func (w *Widget) Height() float64    { return w.box.Height }
func (w *Widget) Position() Point    { return w.box.TopLeft }

// SetPosition moves w's top-left corner to p. Children are not moved; the
// containers re-lay their children on the next layout pass.
func (w *Widget) SetPosition(p Point) {
	w.box.SetTopLeft(p)
}

// SetMidPoint moves w so its center is p.
func (w *Widget) SetMidPoint(p Point) {
	w.box.SetMiddle(p)
}

// SetWidth resizes w horizontally, keeping its position.
func (w *Widget) SetWidth(width float64) {
	w.box = NewBox(w.box.TopLeft, width, w.box.Height)
}

// Translate shifts w and its whole subtree by (dx, dy).
func (w *Widget) Translate(dx, dy float64) {
	w.box.Translate(dx, dy)
	for _, c := range w.children {
		c.Translate(dx, dy)
	}
}

// ResetPosition restores the box captured at construction. Containers then
// re-lay their children so they follow the restored header.
func (w *Widget) ResetPosition() {
	w.box = w.defaultBox
	w.layoutChildren()
}

// MouseWithin reports whether (x, y) lies within w's box and w is not hidden.
func (w *Widget) MouseWithin(x, y float64) bool {
	return !w.hidden && w.box.Contains(x, y)
}

// ShrinkForScrollbar narrows w by the scrollbar gutter if it still spans the
// full width of container. Calling it again is a no-op.
func (w *Widget) ShrinkForScrollbar(container *Widget) {
	if w.box.Width == container.box.Width {
		w.SetWidth(w.box.Width - scrollGutter)
	}
	w.shrunk = true
}

// IsShrunkForScrollbar reports whether w has been narrowed for a scrollbar.
func (w *Widget) IsShrunkForScrollbar() bool { return w.shrunk }

// SetShrunkForScrollbar sets the shrunk flag on w and its descendants.
func (w *Widget) SetShrunkForScrollbar(shrunk bool) {
	w.shrunk = shrunk
	for _, c := range w.children {
		c.SetShrunkForScrollbar(shrunk)
	}
}

// --- Tree manipulation ---

// AddElement appends child and positions it relative to its siblings.
// Panics if child is nil, already owned by another widget, or would create a
// cycle.
func (w *Widget) AddElement(child *Widget) {
	if child == nil {
		panic("thicket: cannot add nil child")
	}
	if child.attached {
		panic("thicket: child already has a parent")
	}
	if child == w || child.contains(w) {
		panic("thicket: adding child would create a cycle")
	}
	child.attached = true

	switch w.Kind {
	case KindScroll:
		w.addScrollElement(child)
	case KindDropdown:
		w.placeAfterLast(child)
		w.children = append(w.children, child)
		w.layoutChildren()
	default:
		w.placeAfterLast(child)
		w.children = append(w.children, child)
	}

	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(w)
	}
}

// placeAfterLast positions child below the last existing child, or off-panel
// when child is the first.
func (w *Widget) placeAfterLast(child *Widget) {
	if len(w.children) == 0 {
		child.SetPosition(Point{w.X2() + firstChildOffsetX, w.Y2() + firstChildOffsetY})
		return
	}
	last := w.children[len(w.children)-1]
	child.SetPosition(Point{w.X(), last.Y2() + childGap})
}

// RemoveChild detaches child from w. Returns false if child is not a direct
// child of w.
func (w *Widget) RemoveChild(child *Widget) bool {
	for i, c := range w.children {
		if c == child {
			copy(w.children[i:], w.children[i+1:])
			w.children[len(w.children)-1] = nil
			w.children = w.children[:len(w.children)-1]
			child.attached = false
			w.afterStructuralChange()
			return true
		}
	}
	return false
}

// ClearChildren detaches every child.
func (w *Widget) ClearChildren() {
	for _, c := range w.children {
		c.attached = false
	}
	w.children = nil
	w.afterStructuralChange()
}

func (w *Widget) afterStructuralChange() {
	if w.Kind == KindScroll {
		w.recomputePages()
	}
	w.layoutChildren()
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (w *Widget) Children() []*Widget {
	return w.children
}

// NumChildren returns the number of children.
func (w *Widget) NumChildren() int {
	return len(w.children)
}

// HasChildren reports whether w has at least one child.
func (w *Widget) HasChildren() bool {
	return len(w.children) > 0
}

// ChildAt returns the child at the given index.
func (w *Widget) ChildAt(index int) *Widget {
	return w.children[index]
}

// Walk calls fn for w and every descendant in depth-first order. Returning
// false from fn skips that widget's subtree.
func (w *Widget) Walk(fn func(*Widget) bool) {
	if !fn(w) {
		return
	}
	for _, c := range w.children {
		c.Walk(fn)
	}
}

// contains reports whether target is w or a descendant of w.
func (w *Widget) contains(target *Widget) bool {
	if w == target {
		return true
	}
	for _, c := range w.children {
		if c.contains(target) {
			return true
		}
	}
	return false
}

// --- Visibility ---

// Hide hides w and every descendant.
func (w *Widget) Hide() {
	w.hidden = true
	for _, c := range w.children {
		c.Hide()
	}
}

// Show reveals w and its descendants. Children of a dropdown or scroll
// container then follow the container's open state and current page.
func (w *Widget) Show() {
	w.hidden = false
	switch w.Kind {
	case KindDropdown, KindScroll:
		w.layoutChildren()
	default:
		for _, c := range w.children {
			c.Show()
		}
	}
}

// --- Drag state ---

// SetDragging sets the dragging flag on w and every descendant and clears
// the active widget slot of ix. ix may be nil.
func (w *Widget) SetDragging(ix *Interaction, dragging bool) {
	w.setDraggingTree(dragging)
	ix.clear()
}

func (w *Widget) setDraggingTree(dragging bool) {
	w.dragging = dragging
	for _, c := range w.children {
		c.setDraggingTree(dragging)
	}
}

// release clears transient press state across the subtree.
func (w *Widget) release() {
	w.pressed = false
	for _, c := range w.children {
		c.release()
	}
}

// layoutChildren re-flows children for container kinds. Other kinds keep
// their children where AddElement put them.
func (w *Widget) layoutChildren() {
	switch w.Kind {
	case KindDropdown:
		w.layoutDropdown()
	case KindScroll:
		w.resetChildPos()
	}
}
