// Package thicket is a small retained-mode debug overlay toolkit for
// [Ebitengine] and other immediate-mode hosts.
//
// An overlay is a forest of [Widget] values: labels, buttons, toggles,
// sliders, dropdowns and paginated scroll containers. The host feeds pointer
// input and a render tick every frame; widgets route input through their
// trees, mutate their own state and fire callbacks.
//
// # Quick start
//
//	ov := thicket.NewOverlay(nil)
//	menu := thicket.NewDropdown(thicket.Point{X: 10, Y: 10}, 120, 10, "debug")
//	menu.AddElement(thicket.NewToggle(thicket.Point{}, 120, 10, "wireframe"))
//	ov.AddRoot(menu)
//
// Inside an [ebiten.Game], call [Overlay.Update] from Update and
// [Overlay.Draw] from Draw. Hosts without Ebitengine call [Overlay.Click],
// [Overlay.Drag], [Overlay.Scroll] and [Overlay.Release] directly and render
// through any [Surface].
//
// # Interaction
//
// At most one widget per gesture is active, tracked by an [Interaction]. The
// first widget to handle a press claims it; clicks triggered from callbacks
// during dispatch never override the outermost claim. Dragging is exclusive
// to the claimed widget until [Overlay.Release].
//
// # Style
//
// Colors come from a [StyleSource] read on every frame. [MapStyle] is the
// in-memory default; the settings subpackage provides a file-backed source
// that reloads on change.
//
// [Ebitengine]: https://ebitengine.org
package thicket
