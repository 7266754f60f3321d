// Package export renders a canvas as a static picture.
//
// Both renderers draw elements in paint order (ascending zIndex), so what
// overlaps on the canvas overlaps the same way in the output. The picture
// covers [Bounds] of the elements plus a margin.
//
//	svg := export.RenderSVG(store.Elements(), export.WithSelection(store.SelectedIDs()...))
//	png, err := export.RenderPNG(store.Elements(), export.WithScale(2))
//
// The output is a projection: nothing about the elements' opaque
// presentation payload (class names, styles, markup) is interpreted beyond
// the element type.
package export
