package thicket

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// SnapTween glides a widget from its current position back to its default
// box. Call Update(dt) each frame, or let the owning Overlay do it. The last
// step calls ResetPosition, so the widget ends bit-exact on its default box.
type SnapTween struct {
	tx, ty *gween.Tween
	target *Widget
	Done   bool
}

// NewSnapTween creates a tween that returns w to its default box over
// duration seconds using the easing function. A nil fn selects ease.OutQuad.
func NewSnapTween(w *Widget, duration float32, fn ease.TweenFunc) *SnapTween {
	if fn == nil {
		fn = ease.OutQuad
	}
	from, to := w.Position(), w.DefaultBox().TopLeft
	return &SnapTween{
		tx:     gween.New(float32(from.X), float32(to.X), duration, fn),
		ty:     gween.New(float32(from.Y), float32(to.Y), duration, fn),
		target: w,
	}
}

// Update advances the tween by dt seconds and moves the target's subtree.
func (t *SnapTween) Update(dt float32) {
	if t.Done {
		return
	}
	x, doneX := t.tx.Update(dt)
	y, doneY := t.ty.Update(dt)
	if doneX && doneY {
		t.target.ResetPosition()
		t.Done = true
		return
	}
	cur := t.target.Position()
	t.target.Translate(float64(x)-cur.X, float64(y)-cur.Y)
}

// SnapBack starts a SnapTween on w that the overlay advances every Update.
func (o *Overlay) SnapBack(w *Widget, duration float32, fn ease.TweenFunc) *SnapTween {
	t := NewSnapTween(w, duration, fn)
	o.tweens = append(o.tweens, t)
	return t
}

// updateTweens advances running tweens and drops finished ones.
func (o *Overlay) updateTweens(dt float32) {
	live := o.tweens[:0]
	for _, t := range o.tweens {
		t.Update(dt)
		if !t.Done {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(o.tweens); i++ {
		o.tweens[i] = nil
	}
	o.tweens = live
}
