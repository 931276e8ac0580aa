// Package layout builds overlay widget trees from declarative TOML or YAML
// documents, and captures live trees back into documents.
//
// A document is a list of panels, each an item positioned in overlay space:
//
//	[[panels]]
//	kind = "dropdown"
//	title = "render"
//	x = 10
//	y = 10
//	width = 120
//	height = 10
//
//	  [[panels.items]]
//	  kind = "toggle"
//	  name = "wireframe"
//	  title = "wireframe"
//
// Child items inherit width and height from their parent when unset.
package layout

import (
	"fmt"

	"github.com/phanxgames/thicket"
)

// Item kinds.
const (
	KindLabel    = "label"
	KindButton   = "button"
	KindToggle   = "toggle"
	KindSlider   = "slider"
	KindDropdown = "dropdown"
	KindScroll   = "scroll"
)

// Document is the root of a layout file.
type Document struct {
	Panels []Item `toml:"panels" yaml:"panels"`
}

// Item describes one widget. Position is only read for panels; children are
// placed by their container.
type Item struct {
	Kind      string  `toml:"kind" yaml:"kind"`
	Name      string  `toml:"name,omitempty" yaml:"name,omitempty"`
	Title     string  `toml:"title" yaml:"title"`
	X         float64 `toml:"x,omitempty" yaml:"x,omitempty"`
	Y         float64 `toml:"y,omitempty" yaml:"y,omitempty"`
	Width     float64 `toml:"width,omitempty" yaml:"width,omitempty"`
	Height    float64 `toml:"height,omitempty" yaml:"height,omitempty"`
	On        bool    `toml:"on,omitempty" yaml:"on,omitempty"`
	Value     float64 `toml:"value,omitempty" yaml:"value,omitempty"`
	Open      bool    `toml:"open,omitempty" yaml:"open,omitempty"`
	Frozen    bool    `toml:"frozen,omitempty" yaml:"frozen,omitempty"`
	Category  bool    `toml:"category,omitempty" yaml:"category,omitempty"`
	Direction string  `toml:"direction,omitempty" yaml:"direction,omitempty"`
	MaxRows   int     `toml:"max_rows,omitempty" yaml:"max_rows,omitempty"`
	Hoverable bool    `toml:"hoverable,omitempty" yaml:"hoverable,omitempty"`
	Items     []Item  `toml:"items,omitempty" yaml:"items,omitempty"`
}

// Tree is a built layout.
type Tree struct {
	Roots []*thicket.Widget
	names map[string]*thicket.Widget
}

// Lookup returns the widget built from the item carrying name.
func (t *Tree) Lookup(name string) (*thicket.Widget, bool) {
	w, ok := t.names[name]
	return w, ok
}

// Mount adds every root of the tree to ov.
func (t *Tree) Mount(ov *thicket.Overlay) {
	for _, r := range t.Roots {
		ov.AddRoot(r)
	}
}

// Build creates the widgets described by doc. Item names must be unique.
func Build(doc *Document) (*Tree, error) {
	t := &Tree{names: make(map[string]*thicket.Widget)}
	for i := range doc.Panels {
		p := &doc.Panels[i]
		path := fmt.Sprintf("panels[%d]", i)
		if p.Width <= 0 || p.Height <= 0 {
			return nil, fmt.Errorf("layout: %s: width and height must be positive", path)
		}
		w, err := t.build(p, path, thicket.Point{X: p.X, Y: p.Y}, p.Width, p.Height)
		if err != nil {
			return nil, err
		}
		t.Roots = append(t.Roots, w)
	}
	return t, nil
}

func (t *Tree) build(it *Item, path string, at thicket.Point, width, height float64) (*thicket.Widget, error) {
	if it.Width != 0 {
		width = it.Width
	}
	if it.Height != 0 {
		height = it.Height
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("layout: %s: width and height must be positive", path)
	}

	var w *thicket.Widget
	switch it.Kind {
	case KindLabel:
		w = thicket.NewWidget(at, width, height, it.Title)
	case KindButton:
		w = thicket.NewClickable(at, width, height, it.Title)
	case KindToggle:
		w = thicket.NewToggle(at, width, height, it.Title)
		w.SetState(it.On)
	case KindSlider:
		if it.Value < 0 || it.Value > 1 {
			return nil, fmt.Errorf("layout: %s: slider value %v outside [0, 1]", path, it.Value)
		}
		w = thicket.NewSlider(at, width, height, it.Title)
		w.SetValue(it.Value)
	case KindDropdown:
		w = thicket.NewDropdown(at, width, height, it.Title)
	case KindScroll:
		if it.MaxRows < 0 {
			return nil, fmt.Errorf("layout: %s: max_rows must not be negative", path)
		}
		w = thicket.NewScroll(at, width, height, it.Title, it.MaxRows)
	default:
		return nil, fmt.Errorf("layout: %s: unknown kind %q", path, it.Kind)
	}
	w.Hoverable = it.Hoverable
	w.SetParent(it.Category)

	if it.Name != "" {
		if _, dup := t.names[it.Name]; dup {
			return nil, fmt.Errorf("layout: %s: duplicate name %q", path, it.Name)
		}
		t.names[it.Name] = w
	}

	container := it.Kind == KindDropdown || it.Kind == KindScroll
	if !container {
		if len(it.Items) > 0 {
			return nil, fmt.Errorf("layout: %s: %s cannot hold items", path, it.Kind)
		}
		return w, nil
	}

	dir, err := parseDirection(it.Direction)
	if err != nil {
		return nil, fmt.Errorf("layout: %s: %w", path, err)
	}
	w.SetDirection(dir)
	for i := range it.Items {
		child, err := t.build(&it.Items[i], fmt.Sprintf("%s.items[%d]", path, i), thicket.Point{}, width, height)
		if err != nil {
			return nil, err
		}
		w.AddElement(child)
	}
	w.SetFrozen(it.Frozen)
	w.SetOpen(it.Open)
	return w, nil
}

func parseDirection(s string) (thicket.Direction, error) {
	switch s {
	case "", "down":
		return thicket.DirectionDown, nil
	case "right":
		return thicket.DirectionRight, nil
	}
	return thicket.DirectionDown, fmt.Errorf("unknown direction %q", s)
}

// Capture records the current state of roots as a document. Names are not
// recoverable and are left empty.
func Capture(roots []*thicket.Widget) *Document {
	doc := &Document{}
	for _, r := range roots {
		it := capture(r)
		it.X, it.Y = r.X(), r.Y()
		doc.Panels = append(doc.Panels, it)
	}
	return doc
}

func capture(w *thicket.Widget) Item {
	it := Item{
		Title:     w.Title,
		Width:     w.Width(),
		Height:    w.Height(),
		Category:  w.IsParent(),
		Hoverable: w.Hoverable,
	}
	switch w.Kind {
	case thicket.KindClickable:
		it.Kind = KindButton
	case thicket.KindToggle:
		it.Kind = KindToggle
		it.On = w.IsOn()
	case thicket.KindSlider:
		it.Kind = KindSlider
		it.Value = w.Value()
	case thicket.KindDropdown, thicket.KindScroll:
		it.Kind = KindDropdown
		if w.Kind == thicket.KindScroll {
			it.Kind = KindScroll
			it.MaxRows = w.MaxRows()
		}
		it.Open = w.IsOpen()
		it.Frozen = w.IsFrozen()
		if w.Direction() == thicket.DirectionRight {
			it.Direction = "right"
		}
		for _, c := range w.Children() {
			ci := capture(c)
			if c.IsShrunkForScrollbar() {
				// Build applies the shrink again on overflow.
				ci.Width = w.Width()
			}
			it.Items = append(it.Items, ci)
		}
	default:
		it.Kind = KindLabel
	}
	return it
}
