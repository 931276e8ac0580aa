package thicket

import "testing"

const tick = float32(1.0 / 60)

func TestNewOverlayDefaults(t *testing.T) {
	ov := NewOverlay(nil)
	if ov.Style() == nil || ov.Interaction() == nil {
		t.Fatal("overlay needs a style and an interaction")
	}
	if got := ov.Style().Color(KeyEnabled); got != DefaultColors[KeyEnabled] {
		t.Errorf("enabled = %v", got)
	}
	style := DefaultStyle()
	ov.SetStyle(style)
	ov.SetStyle(nil)
	if ov.Style() != style {
		t.Error("SetStyle(nil) must be ignored")
	}
}

func TestOverlayAddRootPanics(t *testing.T) {
	ov := NewOverlay(nil)
	assertPanics(t, "nil", func() { ov.AddRoot(nil) })

	w := NewWidget(pt(0, 0), 10, 10, "w")
	ov.AddRoot(w)
	assertPanics(t, "twice", func() { ov.AddRoot(w) })

	parent := NewWidget(pt(0, 0), 10, 10, "p")
	child := NewWidget(pt(0, 0), 10, 10, "c")
	parent.AddElement(child)
	assertPanics(t, "owned", func() { ov.AddRoot(child) })
}

func TestOverlayClickRouting(t *testing.T) {
	ov := NewOverlay(nil)
	a := NewToggle(pt(0, 0), 50, 10, "a")
	b := NewToggle(pt(0, 20), 50, 10, "b")
	over := NewToggle(pt(0, 20), 50, 10, "over")
	ov.AddRoot(a)
	ov.AddRoot(b)
	ov.AddRoot(over)

	if !ov.Click(5, 25, MouseButtonLeft) {
		t.Fatal("click should be handled")
	}
	if a.IsOn() || !b.IsOn() || over.IsOn() {
		t.Errorf("a = %v b = %v over = %v; the first root in order wins", a.IsOn(), b.IsOn(), over.IsOn())
	}
	if ov.Interaction().Active() != b {
		t.Errorf("active = %s", describe(ov.Interaction().Active()))
	}
	if ov.Click(200, 200, MouseButtonLeft) {
		t.Error("click on empty space is not handled")
	}
}

func TestOverlayRelease(t *testing.T) {
	ov := NewOverlay(nil)
	dd := NewDropdown(pt(0, 0), 50, 10, "menu")
	ov.AddRoot(dd)

	ov.Click(5, 5, MouseButtonLeft)
	ov.Drag(15, 5, MouseButtonLeft, 10, 0)
	if !dd.IsDragging() || ov.Interaction().Active() != dd {
		t.Fatal("drag should start on the header")
	}
	assertPos(t, dd, 10, 0)

	ov.Release()
	if dd.IsDragging() || ov.Interaction().Active() != nil {
		t.Error("release ends the drag and empties the slot")
	}
	// A drag off the header after release does nothing.
	if ov.Drag(100, 100, MouseButtonLeft, 5, 5) {
		t.Error("drag outside any header is not handled")
	}
	assertPos(t, dd, 10, 0)
}

func TestOverlayRemoveRoot(t *testing.T) {
	ov := NewOverlay(nil)
	dd := NewDropdown(pt(0, 0), 50, 10, "menu")
	item := NewClickable(pt(0, 0), 50, 10, "item")
	dd.AddElement(item)
	other := NewWidget(pt(0, 40), 50, 10, "other")
	ov.AddRoot(dd)
	ov.AddRoot(other)

	dd.SetOpen(true)
	ov.Click(5, 15, MouseButtonLeft)
	if ov.Interaction().Active() != item {
		t.Fatalf("active = %s", describe(ov.Interaction().Active()))
	}
	if !ov.RemoveRoot(dd) {
		t.Fatal("dd is a root")
	}
	if ov.Interaction().Active() != nil {
		t.Error("removing the active subtree resets the slot")
	}
	if len(ov.Roots()) != 1 || ov.Roots()[0] != other {
		t.Errorf("roots = %d", len(ov.Roots()))
	}
	if ov.RemoveRoot(dd) {
		t.Error("second removal reports false")
	}
	ov.AddRoot(dd)
}

func TestOverlayEventSink(t *testing.T) {
	ov := NewOverlay(nil)
	sink := &recordingSink{}
	ov.SetEventSink(sink)
	b := NewClickable(pt(0, 0), 50, 10, "b")
	ov.AddRoot(b)
	ov.Click(5, 5, MouseButtonLeft)
	if len(sink.events) != 1 || sink.events[0].Type != EventClicked || sink.events[0].WidgetID != b.ID {
		t.Errorf("events = %+v", sink.events)
	}
	ov.SetEventSink(nil)
	ov.Click(5, 5, MouseButtonLeft)
	if len(sink.events) != 1 {
		t.Error("nil sink stops forwarding")
	}
}

func TestOverlayInjectedClick(t *testing.T) {
	ov := NewOverlay(nil)
	tg := NewToggle(pt(0, 0), 50, 10, "t")
	ov.AddRoot(tg)

	ov.InjectClick(5, 5)
	if ov.PendingInjections() != 2 {
		t.Fatalf("pending = %d", ov.PendingInjections())
	}
	ov.update(tick)
	if !tg.IsOn() || !tg.IsPressed() {
		t.Fatal("press toggles immediately")
	}
	ov.update(tick)
	if tg.IsPressed() || ov.Interaction().Active() != nil {
		t.Error("release clears press state")
	}
	if ov.PendingInjections() != 0 {
		t.Errorf("pending = %d", ov.PendingInjections())
	}
}

func TestOverlayInjectedRightClick(t *testing.T) {
	ov := NewOverlay(nil)
	dd := NewDropdown(pt(0, 0), 50, 10, "menu")
	dd.SetParent(true)
	ov.AddRoot(dd)

	ov.InjectPressButton(5, 5, MouseButtonRight)
	ov.InjectRelease(5, 5)
	ov.update(tick)
	ov.update(tick)
	if !dd.IsFrozen() || dd.IsOpen() {
		t.Errorf("frozen = %v open = %v", dd.IsFrozen(), dd.IsOpen())
	}
}

func TestOverlayInjectedDrag(t *testing.T) {
	ov := NewOverlay(nil)
	dd := NewDropdown(pt(0, 0), 50, 10, "menu")
	ov.AddRoot(dd)

	ov.InjectDrag(5, 5, 25, 15, 3)
	if ov.PendingInjections() != 3 {
		t.Fatalf("pending = %d", ov.PendingInjections())
	}
	for ov.PendingInjections() > 0 {
		ov.update(tick)
	}
	// The press opens the menu; the single move carries the whole delta up
	// to the midpoint and the release does not move.
	if !dd.IsOpen() {
		t.Error("press on the header opens it")
	}
	assertPos(t, dd, 10, 5)
	if dd.IsDragging() {
		t.Error("drag ended with the release")
	}
	if x, y := ov.PointerPosition(); x != 25 || y != 15 {
		t.Errorf("pointer = (%v, %v)", x, y)
	}
}

func TestOverlayInjectDragMinimumFrames(t *testing.T) {
	ov := NewOverlay(nil)
	ov.InjectDrag(0, 0, 10, 10, 0)
	if ov.PendingInjections() != 2 {
		t.Errorf("pending = %d, want press and release", ov.PendingInjections())
	}
}

func TestOverlayInjectedScroll(t *testing.T) {
	ov := NewOverlay(nil)
	sc := newList(10, 4)
	sc.SetOpen(true)
	ov.AddRoot(sc)

	ov.InjectScroll(5, 5, 0)
	if ov.PendingInjections() != 0 {
		t.Fatal("zero delta is not queued")
	}
	ov.InjectScroll(5, 5, -1)
	ov.update(tick)
	if sc.Page() != 1 {
		t.Errorf("page = %d", sc.Page())
	}
	if x, y := ov.PointerPosition(); x != 5 || y != 5 {
		t.Errorf("pointer = (%v, %v)", x, y)
	}
}

func TestOverlayRenderHover(t *testing.T) {
	ov := NewOverlay(nil)
	b := NewClickable(pt(0, 0), 50, 10, "b")
	b.Hoverable = true
	ov.AddRoot(b)
	ov.AddRoot(NewWidget(pt(0, 20), 50, 10, "w"))

	ov.SetPointerPosition(5, 5)
	s := &recordingSurface{}
	ov.Render(s)
	if s.ops[0].color != DefaultColors[KeyHover] {
		t.Errorf("hover fill = %v", s.ops[0].color)
	}
	if s.count("fill") != 2 {
		t.Errorf("fills = %d, want one per root", s.count("fill"))
	}
}
