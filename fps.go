package thicket

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// fpsRefresh is how often an FPS label rewrites its title.
const fpsRefresh = 500 * time.Millisecond

// NewFPSLabel creates a plain widget whose title shows Ebitengine's current
// FPS and TPS, refreshed about twice a second while it is drawn.
func NewFPSLabel(topLeft Point, width, height float64) *Widget {
	return newStatsLabel(topLeft, width, height, time.Now, func() string {
		return fmt.Sprintf("FPS: %.1f TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	})
}

func newStatsLabel(topLeft Point, width, height float64, now func() time.Time, text func() string) *Widget {
	w := NewWidget(topLeft, width, height, text())
	last := now()
	w.OnRender = func(w *Widget) {
		if t := now(); t.Sub(last) >= fpsRefresh {
			last = t
			w.SetTitle(text())
		}
	}
	return w
}
