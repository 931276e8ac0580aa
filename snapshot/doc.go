// Package snapshot renders overlays off-screen: [Image] rasterizes through
// gg for PNG output, [SVG] streams vector markup through svgo.
//
// Both implement thicket.Surface, so any overlay renders into them with
// Overlay.Render:
//
//	img := snapshot.NewImage(320, 240)
//	overlay.Render(img)
//	err := img.SavePNG("overlay.png")
package snapshot
