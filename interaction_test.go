package thicket

import "testing"

func TestClaimOutsideDispatchIsImmediate(t *testing.T) {
	ix := NewInteraction()
	w := NewClickable(pt(0, 0), 10, 10, "w")
	ix.claim(w)
	if ix.Active() != w {
		t.Fatal("claim at depth 0 should apply immediately")
	}
	ix.clear()
	if ix.Active() != nil {
		t.Fatal("clear at depth 0 should apply immediately")
	}
}

func TestNestedDispatchOutermostClaimWins(t *testing.T) {
	ix := NewInteraction()
	outer := NewClickable(pt(0, 0), 10, 10, "outer")
	inner := NewToggle(pt(0, 0), 10, 10, "inner")

	outer.OnClick = func(*Widget) {
		if !ix.Dispatching() {
			t.Error("callback runs inside a dispatch")
		}
		// A callback that synchronously clicks another widget.
		inner.Click(ix, 5, 5, MouseButtonLeft)
	}

	if !outer.Click(ix, 5, 5, MouseButtonLeft) {
		t.Fatal("outer click not handled")
	}
	if !inner.IsOn() {
		t.Error("nested click should still take effect")
	}
	if ix.Active() != outer {
		t.Errorf("active = %s, want outer", describe(ix.Active()))
	}
	if ix.Dispatching() {
		t.Error("dispatch depth should be back to zero")
	}
}

func TestBufferedClearLosesToClaim(t *testing.T) {
	ix := NewInteraction()
	other := NewDropdown(pt(50, 50), 10, 10, "other")
	btn := NewClickable(pt(0, 0), 10, 10, "btn")
	btn.OnClick = func(*Widget) {
		other.SetDragging(ix, false)
	}
	btn.Click(ix, 5, 5, MouseButtonLeft)
	if ix.Active() != btn {
		t.Errorf("active = %s, want btn", describe(ix.Active()))
	}
}

func TestBufferedClearWithoutClaim(t *testing.T) {
	ix := NewInteraction()
	w := NewClickable(pt(0, 0), 10, 10, "w")
	ix.claim(w)

	ix.begin()
	ix.clear()
	if ix.Active() != w {
		t.Error("clear during a dispatch must be buffered")
	}
	if ix.owner() != nil {
		t.Error("owner() reflects the buffered clear")
	}
	ix.end()
	if ix.Active() != nil {
		t.Error("buffered clear should commit when the dispatch ends")
	}
}

func TestNestedClaimDropped(t *testing.T) {
	ix := NewInteraction()
	a := NewClickable(pt(0, 0), 10, 10, "a")
	ix.begin()
	ix.begin()
	ix.claim(a)
	ix.end()
	if ix.owner() != nil {
		t.Error("claims from nested dispatches are dropped")
	}
	ix.end()
	if ix.Active() != nil {
		t.Errorf("active = %s, want none", describe(ix.Active()))
	}
}

func TestNilInteraction(t *testing.T) {
	var ix *Interaction
	if ix.Active() != nil || ix.Dispatching() {
		t.Error("nil interaction is empty")
	}
	tg := NewToggle(pt(0, 0), 10, 10, "t")
	if !tg.Click(nil, 5, 5, MouseButtonLeft) || !tg.IsOn() {
		t.Error("dispatch with a nil interaction still works")
	}
}

func TestResetClearsEverything(t *testing.T) {
	ix := NewInteraction()
	w := NewClickable(pt(0, 0), 10, 10, "w")
	ix.claim(w)
	ix.begin()
	ix.claim(w)
	ix.Reset()
	ix.end()
	if ix.Active() != nil {
		t.Error("Reset should drop the slot and pending writes")
	}
}

func TestSinkReceivesEvents(t *testing.T) {
	ix := NewInteraction()
	sink := &recordingSink{}
	ix.SetSink(sink)

	btn := NewClickable(pt(0, 0), 10, 10, "btn")
	tg := NewToggle(pt(0, 20), 10, 10, "tg")
	sl := NewSlider(pt(0, 40), 12, 10, "sl")
	dd := NewDropdown(pt(0, 60), 10, 10, "dd")

	btn.Click(ix, 5, 5, MouseButtonLeft)
	tg.Click(ix, 5, 25, MouseButtonLeft)
	sl.Click(ix, 5, 45, MouseButtonLeft)
	dd.Click(ix, 5, 65, MouseButtonLeft)
	dd.Click(ix, 5, 65, MouseButtonLeft)

	want := []EventType{EventClicked, EventToggled, EventSliderChanged, EventOpened, EventClosed}
	got := sink.types()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("events = %v, want %v", got, want)
		}
	}
	if e := sink.events[1]; !e.On || e.WidgetID != tg.ID || e.Title != "tg" {
		t.Errorf("toggle event = %+v", e)
	}
	assertNear(t, "slider event value", sink.events[2].Value, 0.5)
}
