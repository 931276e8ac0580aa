package thicket

import "testing"

func TestScrollPagination(t *testing.T) {
	sc := newList(10, 4)
	if sc.PageSize() != 4 || sc.PageCount() != 3 {
		t.Fatalf("pageSize = %d pageCount = %d", sc.PageSize(), sc.PageCount())
	}
	sc.SetOpen(true)
	sc.SetPage(2)
	if s, e := sc.VisibleRange(); s != 8 || e != 10 {
		t.Fatalf("range = [%d, %d), want [8, 10)", s, e)
	}
	if got := visible(sc); !equalInts(got, []int{8, 9}) {
		t.Fatalf("visible = %v, want [8 9]", got)
	}

	sc.DoScroll(1)
	if sc.Page() != 1 {
		t.Fatalf("page = %d after scrolling up, want 1", sc.Page())
	}
	if got := visible(sc); !equalInts(got, []int{4, 5, 6, 7}) {
		t.Fatalf("visible = %v, want [4 5 6 7]", got)
	}
	for row, i := range []int{4, 5, 6, 7} {
		assertPos(t, sc.ChildAt(i), 0, 12+float64(row)*rowPitch)
	}
}

func TestScrollPageClamps(t *testing.T) {
	sc := newList(10, 4)
	sc.SetOpen(true)
	sc.SetPage(99)
	if sc.Page() != 2 {
		t.Errorf("page = %d, want 2", sc.Page())
	}
	sc.DoScroll(-5)
	if sc.Page() != 2 {
		t.Errorf("scrolling past the end moved to page %d", sc.Page())
	}
	sc.SetPage(-3)
	if sc.Page() != 0 {
		t.Errorf("page = %d, want 0", sc.Page())
	}
	sc.DoScroll(3)
	if sc.Page() != 0 {
		t.Errorf("scrolling before the start moved to page %d", sc.Page())
	}
	sc.DoScroll(0)
	if sc.Page() != 0 {
		t.Error("zero delta is a no-op")
	}
}

func TestScrollClosedIgnoresDoScroll(t *testing.T) {
	sc := newList(10, 4)
	sc.DoScroll(-1)
	if sc.Page() != 0 {
		t.Error("closed container does not page")
	}
	if got := visible(sc); len(got) != 0 {
		t.Errorf("closed container shows %v", got)
	}
}

func TestScrollEmptyAndSmall(t *testing.T) {
	empty := newList(0, 4)
	if empty.PageCount() != 0 || empty.PageSize() != 1 || empty.ShouldDrawScrollBar() {
		t.Errorf("empty: pageSize = %d pageCount = %d", empty.PageSize(), empty.PageCount())
	}
	if _, ok := empty.ScrollTrack(); ok {
		t.Error("empty container has no scrollbar")
	}

	small := newList(3, 4)
	if small.PageSize() != 3 || small.PageCount() != 1 || small.ShouldDrawScrollBar() {
		t.Errorf("small: pageSize = %d pageCount = %d", small.PageSize(), small.PageCount())
	}
	if small.ChildAt(0).Width() != 60 {
		t.Error("children are not shrunk without a scrollbar")
	}
}

func TestScrollChildrenShrinkOnOverflow(t *testing.T) {
	sc := newList(4, 4)
	if w := sc.ChildAt(0).Width(); w != 60 {
		t.Fatalf("width = %v before overflow", w)
	}
	sc.AddElement(NewWidget(pt(0, 0), 10, 10, "narrow"))
	// The new row is widened to the container before the shrink.
	for i, c := range sc.Children() {
		if c.Width() != 54 || !c.IsShrunkForScrollbar() {
			t.Errorf("child %d width = %v shrunk = %v", i, c.Width(), c.IsShrunkForScrollbar())
		}
	}
}

func TestScrollRemoveRecomputes(t *testing.T) {
	sc := newList(5, 2)
	sc.SetOpen(true)
	sc.SetPage(2)
	sc.RemoveChild(sc.ChildAt(4))
	if sc.PageCount() != 2 || sc.Page() != 1 {
		t.Errorf("pageCount = %d page = %d", sc.PageCount(), sc.Page())
	}
	sc.ClearChildren()
	if sc.PageCount() != 0 || sc.Page() != 0 {
		t.Errorf("after clear: pageCount = %d page = %d", sc.PageCount(), sc.Page())
	}
}

func TestScrollbarGeometry(t *testing.T) {
	sc := newList(10, 4)
	sc.SetOpen(true)

	track, ok := sc.ScrollTrack()
	if !ok {
		t.Fatal("overflowing container has a scrollbar")
	}
	// 4 rows of height 10, one unit between rows, one at each end.
	want := NewBox(pt(55, 12), 5, 46)
	if track != want {
		t.Errorf("track = %+v, want %+v", track, want)
	}
	thumb, _ := sc.ScrollThumb()
	assertNear(t, "thumb x", thumb.X1(), 56)
	assertNear(t, "thumb y", thumb.Y1(), 13)
	assertNear(t, "thumb w", thumb.Width, 3)
	assertNear(t, "thumb h", thumb.Height, 46.0/3-2)

	sc.SetPage(1)
	thumb, _ = sc.ScrollThumb()
	assertNear(t, "thumb y on page 1", thumb.Y1(), 46.0/3+13)
}

func TestScrollbarGeometryRight(t *testing.T) {
	sc := newList(10, 4)
	sc.SetDirection(DirectionRight)
	sc.SetOpen(true)
	assertPos(t, sc.ChildAt(0), 60+rightColumnGap, 0)
	assertPos(t, sc.ChildAt(1), 60+rightColumnGap, 12)

	track, ok := sc.ScrollTrack()
	if !ok {
		t.Fatal("no track")
	}
	assertNear(t, "track x", track.X1(), 67+54)
	assertNear(t, "track y", track.Y1(), 0)
	top, _ := sc.thumbSpan()
	assertNear(t, "thumb top", top, 1)
}

func TestScrollbarClicks(t *testing.T) {
	ix := NewInteraction()
	sc := newList(10, 4)
	sc.SetOpen(true)
	pages := 0
	sc.OnPage = func(*Widget) { pages++ }

	// Below the thumb pages down.
	if !sc.Click(ix, 57, 50, MouseButtonLeft) || sc.Page() != 1 {
		t.Fatalf("page = %d after click below thumb", sc.Page())
	}
	// On the thumb: handled, no change.
	if !sc.Click(ix, 57, 35, MouseButtonLeft) || sc.Page() != 1 {
		t.Fatalf("page = %d after click on thumb", sc.Page())
	}
	// Above the thumb pages up.
	if !sc.Click(ix, 57, 20, MouseButtonLeft) || sc.Page() != 0 {
		t.Fatalf("page = %d after click above thumb", sc.Page())
	}
	if pages != 2 {
		t.Errorf("OnPage called %d times, want 2", pages)
	}
	if ix.Active() != nil {
		t.Error("scrollbar clicks do not claim the slot")
	}
	if !sc.IsOpen() {
		t.Error("scrollbar clicks leave the container open")
	}
}

func TestScrollWheel(t *testing.T) {
	ix := NewInteraction()
	sc := newList(10, 4)
	sc.SetOpen(true)

	if !sc.Scroll(ix, 5, 5, -1) || sc.Page() != 1 {
		t.Fatalf("wheel over header: page = %d", sc.Page())
	}
	if !sc.Scroll(ix, 5, 17, -1) || sc.Page() != 2 {
		t.Fatalf("wheel over a row: page = %d", sc.Page())
	}
	if !sc.Scroll(ix, 57, 40, 1) || sc.Page() != 1 {
		t.Fatalf("wheel over track: page = %d", sc.Page())
	}
	if sc.Scroll(ix, 500, 500, 1) {
		t.Error("wheel elsewhere is not handled")
	}

	sc.SetOpen(false)
	if !sc.Scroll(ix, 5, 5, 1) {
		t.Error("wheel over a closed header is consumed")
	}
	if sc.Page() != 1 {
		t.Error("closed container does not page")
	}
}

func TestNestedScrollBubbling(t *testing.T) {
	inner := newList(3, 2)
	inner.Title = "inner"
	outer := NewScroll(pt(0, 0), 60, 10, "outer", 2)
	outer.AddElement(inner)
	outer.AddElement(NewWidget(pt(0, 0), 60, 10, "a"))
	outer.AddElement(NewWidget(pt(0, 0), 60, 10, "b"))
	outer.SetOpen(true)
	assertPos(t, inner, 0, 12)

	// Closed inner: the outer container pages.
	if !outer.Scroll(nil, 5, 17, -1) {
		t.Fatal("wheel over closed inner is handled")
	}
	if outer.Page() != 1 || inner.Page() != 0 {
		t.Fatalf("outer page = %d inner page = %d", outer.Page(), inner.Page())
	}

	// Open inner: the inner container pages, the outer stays put.
	outer.SetPage(0)
	inner.SetOpen(true)
	if !outer.Scroll(nil, 5, 17, -1) {
		t.Fatal("wheel over open inner is handled")
	}
	if outer.Page() != 0 || inner.Page() != 1 {
		t.Fatalf("outer page = %d inner page = %d", outer.Page(), inner.Page())
	}
}

func TestScrollExclusion(t *testing.T) {
	ix := NewInteraction()
	sc := NewScroll(pt(0, 0), 60, 10, "list", 4)
	a := NewDropdown(pt(0, 0), 60, 10, "a")
	b := NewDropdown(pt(0, 0), 60, 10, "b")
	c := NewDropdown(pt(0, 0), 60, 10, "c")
	sc.AddElement(a)
	sc.AddElement(b)
	sc.AddElement(c)
	sc.SetOpen(true)

	sc.Click(ix, 5, 17, MouseButtonLeft)
	if !a.IsOpen() {
		t.Fatal("a should open")
	}
	sc.Click(ix, 5, 29, MouseButtonLeft)
	if !b.IsOpen() || a.IsOpen() {
		t.Fatalf("a open = %v b open = %v", a.IsOpen(), b.IsOpen())
	}

	b.SetFrozen(true)
	sc.Click(ix, 5, 41, MouseButtonLeft)
	if !c.IsOpen() || !b.IsOpen() {
		t.Errorf("frozen b must stay open: b = %v c = %v", b.IsOpen(), c.IsOpen())
	}
}

func TestScrollDragDefersToSlider(t *testing.T) {
	ix := NewInteraction()
	sc := NewScroll(pt(0, 0), 60, 10, "list", 4)
	sl := NewSlider(pt(0, 0), 60, 10, "s")
	sc.AddElement(sl)
	sc.SetOpen(true)

	sc.Click(ix, 29, 17, MouseButtonLeft)
	if ix.Active() != sl {
		t.Fatalf("active = %s, want slider", describe(ix.Active()))
	}
	assertNear(t, "value", sl.Value(), 29.0/58)

	if sc.Drag(ix, 58, 17, MouseButtonLeft, 29, 0) {
		t.Error("container must not report a drag the slider took")
	}
	assertPos(t, sc, 0, 0)
	assertNear(t, "value", sl.Value(), 1)
}

func TestScrollHeaderDrag(t *testing.T) {
	ix := NewInteraction()
	sc := NewScroll(pt(0, 0), 60, 10, "list", 4)
	sl := NewSlider(pt(0, 0), 60, 10, "s")
	sc.AddElement(sl)
	sc.SetOpen(true)

	if !sc.Drag(ix, 5, 5, MouseButtonLeft, 10, 10) {
		t.Fatal("header drag should start")
	}
	assertPos(t, sc, 10, 10)
	assertPos(t, sl, 10, 22)
	if ix.Active() != sc {
		t.Error("container owns the drag")
	}
	// Once owned, the drag never falls through to the slider.
	sc.Drag(ix, 30, 27, MouseButtonLeft, 5, 5)
	assertNear(t, "value", sl.Value(), 0)
	assertPos(t, sc, 15, 15)
}

func TestScrollPageEvent(t *testing.T) {
	sink := &recordingSink{}
	ix := NewInteraction()
	ix.SetSink(sink)
	sc := newList(10, 4)
	sc.SetOpen(true)
	sc.Scroll(ix, 5, 5, -1)
	sc.Scroll(ix, 5, 5, 1)
	sc.Scroll(ix, 5, 5, 1) // already on the first page
	if len(sink.events) != 2 || sink.events[0].Page != 1 || sink.events[1].Page != 0 {
		t.Errorf("events = %+v", sink.events)
	}
}
