package thicket

import (
	"math"
	"testing"
)

// recordingSurface captures draw calls for inspection.
type recordingSurface struct {
	ops []drawOp
}

type drawOp struct {
	kind  string // "fill", "stroke" or "text"
	box   Box
	color Color
	alpha float64
	text  string
	x, y  float64
}

func (s *recordingSurface) FillRect(r Box, c Color, alpha float64) {
	s.ops = append(s.ops, drawOp{kind: "fill", box: r, color: c, alpha: alpha})
}

func (s *recordingSurface) StrokeRect(r Box, c Color, alpha float64) {
	s.ops = append(s.ops, drawOp{kind: "stroke", box: r, color: c, alpha: alpha})
}

func (s *recordingSurface) DrawText(text string, x, y float64, c Color) {
	s.ops = append(s.ops, drawOp{kind: "text", text: text, x: x, y: y, color: c})
}

func (s *recordingSurface) texts() []string {
	var out []string
	for _, op := range s.ops {
		if op.kind == "text" {
			out = append(out, op.text)
		}
	}
	return out
}

func (s *recordingSurface) count(kind string) int {
	n := 0
	for _, op := range s.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

// recordingSink collects widget events.
type recordingSink struct {
	events []WidgetEvent
}

func (s *recordingSink) EmitEvent(e WidgetEvent) {
	s.events = append(s.events, e)
}

func (s *recordingSink) types() []EventType {
	out := make([]EventType, len(s.events))
	for i, e := range s.events {
		out[i] = e.Type
	}
	return out
}

func pt(x, y float64) Point { return Point{X: x, Y: y} }

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertPos(t *testing.T, w *Widget, x, y float64) {
	t.Helper()
	if math.Abs(w.X()-x) > 1e-9 || math.Abs(w.Y()-y) > 1e-9 {
		t.Errorf("%q at (%v, %v), want (%v, %v)", w.Title, w.X(), w.Y(), x, y)
	}
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

// newList builds a scroll container holding n plain rows of the container's
// size.
func newList(n, maxRows int) *Widget {
	sc := NewScroll(pt(0, 0), 60, 10, "list", maxRows)
	for i := 0; i < n; i++ {
		sc.AddElement(NewWidget(pt(0, 0), 60, 10, "row"))
	}
	return sc
}

// visible returns the indices of sc's children that are not hidden.
func visible(sc *Widget) []int {
	var out []int
	for i, c := range sc.Children() {
		if !c.IsHidden() {
			out = append(out, i)
		}
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
