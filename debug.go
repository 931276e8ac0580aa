package thicket

import (
	"fmt"
	"io"
	"os"
)

// globalDebug mirrors the most recently set Overlay debug flag so that widget
// operations (which lack an Overlay pointer) can check it cheaply. Only valid
// with a single Overlay; multiple Overlays with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// debugOut is where diagnostics go. Tests swap it for a buffer.
var debugOut io.Writer = os.Stderr

// debugLog prints render stats to stderr.
func (o *Overlay) debugLog(stats renderStats) {
	if !o.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut,
		"[thicket] render: %v | roots: %d | widgets drawn: %d | active: %s\n",
		stats.renderTime, stats.roots, stats.drawn, describe(o.ix.Active()))
}

// debugMaxTreeDepth is the subtree depth above which AddElement warns.
const debugMaxTreeDepth = 16

func debugCheckTreeDepth(w *Widget) {
	if depth := subtreeDepth(w); depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(debugOut, "[thicket] warning: subtree depth %d exceeds %d (widget %q)\n",
			depth, debugMaxTreeDepth, w.Title)
	}
}

// debugMaxChildCount is the child count above which AddElement warns.
const debugMaxChildCount = 256

func debugCheckChildCount(w *Widget) {
	if len(w.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(debugOut, "[thicket] warning: widget %q has %d children (threshold %d)\n",
			w.Title, len(w.children), debugMaxChildCount)
	}
}

func subtreeDepth(w *Widget) int {
	deepest := 0
	for _, c := range w.children {
		deepest = max(deepest, subtreeDepth(c))
	}
	return deepest + 1
}

func describe(w *Widget) string {
	if w == nil {
		return "none"
	}
	return fmt.Sprintf("%s#%d %q", w.Kind, w.ID, w.Title)
}
